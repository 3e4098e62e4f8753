// internal/domain/models/page.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a tenant's link-in-bio micro-site: a slug plus an ordered block
// sequence. Everything SEO-facing (profile, quality gate, meta, schemas) is
// derived from Blocks at request time and never persisted.
type Page struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug      string             `bson:"slug" json:"slug"`
	OwnerID   primitive.ObjectID `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	Blocks    []Block            `bson:"blocks" json:"blocks"`
	Published bool               `bson:"published" json:"published"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewAccountGrace is how long after creation a page is treated as a new
// account by the quality gate. New pages get a lower indexing bar so a
// legitimately fresh page is not penalized before content accrues.
const NewAccountGrace = 14 * 24 * time.Hour

// IsNewAccount reports whether the page is still inside the grace window
// at the given moment.
func (p Page) IsNewAccount(now time.Time) bool {
	if p.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(p.CreatedAt) < NewAccountGrace
}

// ReservedSlugs are single-segment paths that can never be page slugs
// because the router owns them.
var ReservedSlugs = map[string]bool{
	"gallery": true,
	"health":  true,
	"ready":   true,
	"readyz":  true,
	"livez":   true,
	"static":  true,
	"assets":  true,
	"api":     true,
}

// IsValidSlug reports whether s may identify a page: lowercase letters,
// digits, and hyphens, 1-63 characters, not reserved.
func IsValidSlug(s string) bool {
	if len(s) == 0 || len(s) > 63 {
		return false
	}
	if ReservedSlugs[s] {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return false
	}
	return true
}
