// internal/seo/sourcectx.go
package seo

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// SourceContext is a short machine-readable provenance string embedded for
// AI crawlers: the page slug, its last update, and a content hash. It is
// opaque metadata for citation, not a cache key; nothing in this service
// compares hashes to detect drift.
func SourceContext(slug string, updatedAt time.Time, blocks []models.Block) string {
	return fmt.Sprintf("slug=%s;updated=%s;hash=%s",
		slug,
		updatedAt.UTC().Format(time.RFC3339),
		ContentHash(blocks),
	)
}

// ContentHash derives a stable 64-bit hex digest of the block content.
// encoding/json emits map keys in sorted order, so identical content always
// hashes identically.
func ContentHash(blocks []models.Block) string {
	h := fnv.New64a()
	if data, err := json.Marshal(blocks); err == nil {
		h.Write(data)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
