// internal/seo/headtags/bundle.go
package headtags

import (
	"encoding/json"
	"fmt"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/seo"
)

// MaxEventSchemas bounds how many per-event ld+json scripts one page emits.
// Event count in blocks is unbounded, but the cleanup selector list must be
// enumerable, so both emission and teardown stop at this fixed bound.
const MaxEventSchemas = 20

// Stable tag keys. The SPA's head applier looks elements up by these before
// creating, which is what makes re-application idempotent on the client.
const (
	KeyTitle         = "title"
	KeyDescription   = "meta:description"
	KeyRobots        = "meta:robots"
	KeyGooglebot     = "meta:googlebot"
	KeyCanonical     = "link:canonical"
	KeyOGTitle       = "meta:og:title"
	KeyOGDescription = "meta:og:description"
	KeyOGImage       = "meta:og:image"
	KeyOGURL         = "meta:og:url"
	KeyOGType        = "meta:og:type"
	KeyTwitterCard   = "meta:twitter:card"
	KeyTwitterTitle  = "meta:twitter:title"
	KeyTwitterDesc   = "meta:twitter:description"
	KeyTwitterImage  = "meta:twitter:image"
	KeySourceContext = "meta:ai-source-context"
	KeySchemaWebPage = "script:schema-webpage"
	KeySchemaEntity  = "script:schema-main-entity"
	KeySchemaCrumbs  = "script:schema-breadcrumb"
	KeySchemaFAQ     = "script:schema-faq"
	KeySchemaService = "script:schema-services"
)

// KeySchemaEvent returns the indexed key for the i-th event schema script.
func KeySchemaEvent(i int) string {
	return fmt.Sprintf("script:schema-event-%d", i)
}

// Build assembles the full head-tag set for one page render. Calling it
// again with a different bundle produces a fresh set; nothing accumulates
// between renders.
func Build(meta seo.PageMeta, schemas seo.SchemaGraph, sourceContext string, lang models.Lang) *HeadSet {
	h := New()

	h.Set(Tag{Kind: KindTitle, Key: KeyTitle, Body: meta.Title})
	h.Set(metaName(KeyDescription, "description", meta.Description))
	h.Set(metaName(KeyRobots, "robots", meta.Robots))
	h.Set(metaName(KeyGooglebot, "googlebot", meta.Robots))
	h.Set(Tag{Kind: KindLink, Key: KeyCanonical, Attrs: map[string]string{
		"rel": "canonical", "href": meta.Canonical,
	}})

	h.Set(metaProp(KeyOGTitle, "og:title", meta.Title))
	h.Set(metaProp(KeyOGDescription, "og:description", meta.Description))
	h.Set(metaProp(KeyOGImage, "og:image", meta.OGImage))
	h.Set(metaProp(KeyOGURL, "og:url", meta.Canonical))
	h.Set(metaProp(KeyOGType, "og:type", "profile"))

	h.Set(metaName(KeyTwitterCard, "twitter:card", "summary"))
	h.Set(metaName(KeyTwitterTitle, "twitter:title", meta.Title))
	h.Set(metaName(KeyTwitterDesc, "twitter:description", meta.Description))
	h.Set(metaName(KeyTwitterImage, "twitter:image", meta.OGImage))

	if sourceContext != "" {
		h.Set(metaName(KeySourceContext, "ai-source-context", sourceContext))
	}

	setSchema(h, KeySchemaWebPage, schemas.WebPage)
	setSchema(h, KeySchemaEntity, schemas.MainEntity)
	setSchema(h, KeySchemaCrumbs, schemas.Breadcrumb)
	if schemas.FAQ != nil {
		setSchema(h, KeySchemaFAQ, schemas.FAQ)
	}
	for i, ev := range schemas.Events {
		if i >= MaxEventSchemas {
			break
		}
		setSchema(h, KeySchemaEvent(i), ev)
	}
	if len(schemas.Services) > 0 {
		setSchema(h, KeySchemaService, map[string]any{
			"@context": seo.SchemaContext,
			"@graph":   schemas.Services,
		})
	}

	return h
}

// CleanupSelectors enumerates every key Build may ever set, including all
// bounded event-schema slots. The client applier removes exactly this list
// on teardown, so cleanup is exhaustive even when the current bundle is
// smaller than a previous one.
func CleanupSelectors() []string {
	keys := []string{
		KeyTitle,
		KeyDescription,
		KeyRobots,
		KeyGooglebot,
		KeyCanonical,
		KeyOGTitle,
		KeyOGDescription,
		KeyOGImage,
		KeyOGURL,
		KeyOGType,
		KeyTwitterCard,
		KeyTwitterTitle,
		KeyTwitterDesc,
		KeyTwitterImage,
		KeySourceContext,
		KeySchemaWebPage,
		KeySchemaEntity,
		KeySchemaCrumbs,
		KeySchemaFAQ,
		KeySchemaService,
	}
	for i := 0; i < MaxEventSchemas; i++ {
		keys = append(keys, KeySchemaEvent(i))
	}
	return keys
}

func metaName(key, name, content string) Tag {
	return Tag{Kind: KindMeta, Key: key, Attrs: map[string]string{
		"name": name, "content": content,
	}}
}

func metaProp(key, property, content string) Tag {
	return Tag{Kind: KindMeta, Key: key, Attrs: map[string]string{
		"property": property, "content": content,
	}}
}

// setSchema marshals obj and sets it as an ld+json script. A marshal
// failure (not reachable for the map shapes this package receives) skips
// the tag rather than failing the render.
func setSchema(h *HeadSet, key string, obj map[string]any) {
	if obj == nil {
		return
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return
	}
	h.Set(Tag{
		Kind:    KindScript,
		Key:     key,
		Attrs:   map[string]string{"type": "application/ld+json", "id": scriptID(key)},
		Body:    string(data),
		RawBody: true,
	})
}

// scriptID turns "script:schema-faq" into the DOM id "schema-faq".
func scriptID(key string) string {
	const prefix = "script:"
	if len(key) > len(prefix) && key[:len(prefix)] == prefix {
		return key[len(prefix):]
	}
	return key
}
