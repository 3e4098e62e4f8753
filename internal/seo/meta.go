// internal/seo/meta.go
package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// PageMeta is the human-facing meta-tag bundle for one page render.
// Pure function output; recompute per request.
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
	Robots      string `json:"robots"`
	OGImage     string `json:"ogImage"`
}

// Search-engine-safe display limits, in runes.
const (
	TitleMaxRunes       = 60
	DescriptionMaxRunes = 160
)

// Robots directive values. The quality gate picks one; there is no partial
// state in between.
const (
	RobotsIndex   = "index, follow"
	RobotsNoIndex = "noindex, nofollow"
)

// Generator derives meta bundles and schema graphs with the platform
// constants baked in. One Generator is built at startup from config and
// shared by all requests; it carries no mutable state.
type Generator struct {
	BaseURL        string // canonical origin, no trailing slash
	Brand          string // title suffix, e.g. "LinkFolio"
	DefaultOGImage string // og:image when the page has no avatar
}

// PageMeta builds the meta-tag bundle for a page. Canonical is always
// base + "/" + slug regardless of query parameters or language; language
// variants are declared via hreflang alternates, not canonical variants.
func (g Generator) PageMeta(p Profile, blocks []models.Block, slug string, gate QualityGateResult, lang models.Lang) PageMeta {
	name := p.Name
	if name == "" {
		name = slug
	}

	desc := p.Bio
	if desc == "" {
		desc = AutoAbout(p, blocks, lang)
	}

	robots := RobotsIndex
	if !gate.Passed {
		robots = RobotsNoIndex
	}

	ogImage := p.Avatar
	if ogImage == "" {
		ogImage = g.DefaultOGImage
	}

	return PageMeta{
		Title:       BuildMetaTitle(name, g.Brand),
		Description: BuildMetaDescription(desc),
		Canonical:   g.BaseURL + "/" + slug,
		Robots:      robots,
		OGImage:     ogImage,
	}
}

// BuildMetaTitle joins the page name with the brand suffix and truncates to
// TitleMaxRunes on a word boundary. The brand is dropped before the name is
// ever cut mid-word.
func BuildMetaTitle(name, brand string) string {
	name = collapseWhitespace(name)
	title := name
	if brand != "" {
		title = name + " | " + brand
	}
	if utf8.RuneCountInString(title) <= TitleMaxRunes {
		return title
	}
	// Brand suffix does not survive truncation; cut the bare name instead.
	if utf8.RuneCountInString(name) <= TitleMaxRunes {
		return name
	}
	return truncateWords(name, TitleMaxRunes)
}

// BuildMetaDescription strips markdown link syntax, collapses whitespace,
// and truncates to DescriptionMaxRunes with a trailing ellipsis when cut.
// Input already within the limit is returned unchanged (after
// normalization).
func BuildMetaDescription(text string) string {
	text = collapseWhitespace(StripMarkdownLinks(text))
	if utf8.RuneCountInString(text) <= DescriptionMaxRunes {
		return text
	}
	return truncateWords(text, DescriptionMaxRunes-3) + "..."
}

var markdownLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

// StripMarkdownLinks rewrites [text](url) to text. Bios are authored in a
// markdown-ish editor and link syntax must not leak into meta descriptions.
func StripMarkdownLinks(s string) string {
	return markdownLinkRe.ReplaceAllString(s, "$1")
}

// collapseWhitespace trims and squeezes internal whitespace runs to single
// spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateWords cuts s to at most maxRunes runes, preferring the last word
// boundary inside the window. Never splits a multibyte rune; falls back to
// a hard rune cut when the text is one giant word.
func truncateWords(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	cut := runes[:maxRunes]
	if idx := strings.LastIndexByte(string(cut), ' '); idx > 0 {
		return strings.TrimRight(string(cut)[:idx], " ")
	}
	return string(cut)
}
