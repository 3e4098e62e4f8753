package headtags

import (
	"strings"
	"testing"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/seo"
)

func testMeta() seo.PageMeta {
	return seo.PageMeta{
		Title:       "Анна | LinkFolio",
		Description: "Мастер маникюра в Алматы.",
		Canonical:   "https://linkfolio.example/anna",
		Robots:      seo.RobotsIndex,
		OGImage:     "https://cdn.example/anna.jpg",
	}
}

func testSchemas() seo.SchemaGraph {
	return seo.SchemaGraph{
		WebPage:    map[string]any{"@type": "WebPage"},
		MainEntity: map[string]any{"@type": "Person", "name": "Анна"},
		Breadcrumb: map[string]any{"@type": "BreadcrumbList"},
	}
}

func TestBuild_CoreTags(t *testing.T) {
	h := Build(testMeta(), testSchemas(), "slug=anna;updated=2026-08-01T00:00:00Z;hash=0000000000000000", models.LangRU)

	for _, key := range []string{
		KeyTitle, KeyDescription, KeyRobots, KeyGooglebot, KeyCanonical,
		KeyOGTitle, KeyOGImage, KeyTwitterCard, KeySourceContext,
		KeySchemaWebPage, KeySchemaEntity, KeySchemaCrumbs,
	} {
		if _, ok := h.Get(key); !ok {
			t.Errorf("Build missing %s", key)
		}
	}

	robots, _ := h.Get(KeyRobots)
	googlebot, _ := h.Get(KeyGooglebot)
	if robots.Attrs["content"] != googlebot.Attrs["content"] {
		t.Error("robots and googlebot directives differ")
	}
}

func TestBuild_OptionalSchemasOmitted(t *testing.T) {
	h := Build(testMeta(), testSchemas(), "", models.LangRU)

	if _, ok := h.Get(KeySchemaFAQ); ok {
		t.Error("FAQ script emitted with no FAQ schema")
	}
	if _, ok := h.Get(KeySchemaService); ok {
		t.Error("services script emitted with no service schemas")
	}
	if _, ok := h.Get(KeySchemaEvent(0)); ok {
		t.Error("event script emitted with no event schemas")
	}
	if _, ok := h.Get(KeySourceContext); ok {
		t.Error("source-context meta emitted for empty context")
	}
}

func TestBuild_EventSchemasBounded(t *testing.T) {
	schemas := testSchemas()
	for i := 0; i < MaxEventSchemas+5; i++ {
		schemas.Events = append(schemas.Events, map[string]any{"@type": "Event", "name": "e"})
	}

	h := Build(testMeta(), schemas, "", models.LangRU)

	if _, ok := h.Get(KeySchemaEvent(MaxEventSchemas - 1)); !ok {
		t.Errorf("event slot %d missing", MaxEventSchemas-1)
	}
	if _, ok := h.Get(KeySchemaEvent(MaxEventSchemas)); ok {
		t.Errorf("event slot %d emitted past the bound", MaxEventSchemas)
	}
}

func TestBuild_RebuildIsFresh(t *testing.T) {
	schemas := testSchemas()
	schemas.FAQ = map[string]any{"@type": "FAQPage"}
	first := Build(testMeta(), schemas, "ctx", models.LangRU)

	// second render without FAQ must not inherit the FAQ script
	second := Build(testMeta(), testSchemas(), "ctx", models.LangRU)

	if _, ok := first.Get(KeySchemaFAQ); !ok {
		t.Error("first build missing FAQ script")
	}
	if _, ok := second.Get(KeySchemaFAQ); ok {
		t.Error("second build inherited a tag from the first")
	}
}

func TestBuild_SchemaScriptsAreRawJSON(t *testing.T) {
	schemas := testSchemas()
	schemas.MainEntity["description"] = `contains </script> and "quotes"`

	out := Build(testMeta(), schemas, "", models.LangRU).Render()

	if strings.Contains(out, "</script> and") {
		t.Error("raw close tag survived inside ld+json body")
	}
	if !strings.Contains(out, `type="application/ld+json"`) {
		t.Error("schema script missing its type attribute")
	}
	// json escaping, not html-entity escaping, inside the script body
	if strings.Contains(out, "&quot;quotes&quot;") {
		t.Error("ld+json body was html-escaped instead of json-escaped")
	}
}

func TestCleanupSelectors_CoversEveryBuildKey(t *testing.T) {
	schemas := testSchemas()
	schemas.FAQ = map[string]any{"@type": "FAQPage"}
	schemas.Services = []map[string]any{{"@type": "Service"}}
	for i := 0; i < MaxEventSchemas; i++ {
		schemas.Events = append(schemas.Events, map[string]any{"@type": "Event"})
	}

	h := Build(testMeta(), schemas, "ctx", models.LangRU)

	covered := make(map[string]bool)
	for _, key := range CleanupSelectors() {
		covered[key] = true
	}
	for _, key := range h.Keys() {
		if !covered[key] {
			t.Errorf("Build sets %q but CleanupSelectors does not list it", key)
		}
	}
}
