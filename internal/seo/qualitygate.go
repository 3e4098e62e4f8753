// internal/seo/qualitygate.go
package seo

import (
	"unicode/utf8"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// QualityGateResult is the pass/fail decision about whether a page has
// enough content to be worth search-indexing. Its only consumer is the
// robots meta directive: a failed gate means noindex,nofollow, with no
// exception. The page itself always renders for human visitors.
type QualityGateResult struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

// Quality gate scoring constants. These are configuration decided once, not
// derived values; DESIGN.md records the choice. The score is the sum of the
// awarded points, so adding content never lowers it.
const (
	gateNamePoints      = 30 // non-empty display name
	gateBioFullPoints   = 30 // bio of at least gateBioMinRunes runes
	gateBioShortPoints  = 15 // bio present but shorter
	gateBioMinRunes     = 40
	gateBlocksFull      = 20 // at least gateBlocksFullCount blocks
	gateBlocksSome      = 10 // at least one block
	gateBlocksFullCount = 3
	gateContactPoints   = 20 // at least one outbound link/contact mechanism

	// GatePassThreshold is the score an established page needs to be
	// indexed. GateNewAccountThreshold is the lowered bar inside the
	// new-account grace window.
	GatePassThreshold       = 60
	GateNewAccountThreshold = 40
)

// EvaluateQualityGate scores the page content and decides indexability.
// Deterministic and cheap; safe to call on every request.
//
// isNewAccount only lowers the pass threshold. It never reduces the score,
// so a new account can never fare worse than an established one with
// identical content.
func EvaluateQualityGate(blocks []models.Block, name, bio string, isNewAccount bool) QualityGateResult {
	score := 0

	if name != "" {
		score += gateNamePoints
	}

	switch {
	case utf8.RuneCountInString(bio) >= gateBioMinRunes:
		score += gateBioFullPoints
	case bio != "":
		score += gateBioShortPoints
	}

	switch {
	case len(blocks) >= gateBlocksFullCount:
		score += gateBlocksFull
	case len(blocks) >= 1:
		score += gateBlocksSome
	}

	if HasContactMechanism(blocks) {
		score += gateContactPoints
	}

	threshold := GatePassThreshold
	if isNewAccount {
		threshold = GateNewAccountThreshold
	}

	return QualityGateResult{Score: score, Passed: score >= threshold}
}
