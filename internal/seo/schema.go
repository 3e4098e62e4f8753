// internal/seo/schema.go
package seo

import (
	"github.com/dalemusser/linkfolio/internal/domain/models"
)

// SchemaGraph is the JSON-LD structured data derived for one page render.
// WebPage, MainEntity, and Breadcrumb are always present; the optional
// sections are nil (and omitted from JSON) when the source blocks carry
// nothing, never emitted as empty objects or arrays.
type SchemaGraph struct {
	WebPage    map[string]any   `json:"webPage"`
	MainEntity map[string]any   `json:"mainEntity"`
	Breadcrumb map[string]any   `json:"breadcrumb"`
	FAQ        map[string]any   `json:"faq,omitempty"`
	Events     []map[string]any `json:"events,omitempty"`
	Services   []map[string]any `json:"services,omitempty"`
}

// SchemaContext is the vocabulary every emitted JSON-LD object declares.
const SchemaContext = "https://schema.org"

// Schemas builds the structured-data graph for a page. Schema generation is
// independent of the quality gate: a noindex page still gets well-formed
// structured data.
func (g Generator) Schemas(p Profile, blocks []models.Block, slug string, meta PageMeta, lang models.Lang) SchemaGraph {
	graph := SchemaGraph{
		WebPage:    g.webPageSchema(meta, lang),
		MainEntity: g.mainEntitySchema(p, blocks, meta),
		Breadcrumb: g.breadcrumbSchema(p, slug, meta),
	}

	if faq := FAQEntries(blocks, lang); len(faq) > 0 {
		graph.FAQ = faqSchema(faq)
	}
	if events := Events(blocks, lang); len(events) > 0 {
		graph.Events = eventSchemas(events, meta.Canonical)
	}
	if services := Services(blocks, lang); len(services) > 0 {
		graph.Services = serviceSchemas(services, p.Name)
	}

	return graph
}

func (g Generator) webPageSchema(meta PageMeta, lang models.Lang) map[string]any {
	return map[string]any{
		"@context":   SchemaContext,
		"@type":      "WebPage",
		"name":       meta.Title,
		"url":        meta.Canonical,
		"inLanguage": string(lang),
		"isPartOf": map[string]any{
			"@type": "WebSite",
			"name":  g.Brand,
			"url":   g.BaseURL,
		},
	}
}

func (g Generator) mainEntitySchema(p Profile, blocks []models.Block, meta PageMeta) map[string]any {
	entityType := "Person"
	if p.Kind == models.EntityOrganization {
		entityType = "Organization"
	}

	entity := map[string]any{
		"@context": SchemaContext,
		"@type":    entityType,
		"url":      meta.Canonical,
	}
	if p.Name != "" {
		entity["name"] = p.Name
	}
	if meta.Description != "" {
		entity["description"] = meta.Description
	}
	if p.Avatar != "" {
		entity["image"] = p.Avatar
	}
	if p.Location != "" {
		entity["address"] = p.Location
	}
	if p.Niche != "" {
		if entityType == "Person" {
			entity["jobTitle"] = p.Niche
		} else {
			entity["knowsAbout"] = p.Niche
		}
	}
	if sameAs := SameAs(blocks); len(sameAs) > 0 {
		entity["sameAs"] = sameAs
	}
	return entity
}

func (g Generator) breadcrumbSchema(p Profile, slug string, meta PageMeta) map[string]any {
	leafName := p.Name
	if leafName == "" {
		leafName = slug
	}
	return map[string]any{
		"@context": SchemaContext,
		"@type":    "BreadcrumbList",
		"itemListElement": []map[string]any{
			{
				"@type":    "ListItem",
				"position": 1,
				"name":     g.Brand,
				"item":     g.BaseURL,
			},
			{
				"@type":    "ListItem",
				"position": 2,
				"name":     leafName,
				"item":     meta.Canonical,
			},
		},
	}
}

func faqSchema(entries []FAQEntry) map[string]any {
	questions := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, map[string]any{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   SchemaContext,
		"@type":      "FAQPage",
		"mainEntity": questions,
	}
}

func eventSchemas(events []EventEntry, canonical string) []map[string]any {
	out := make([]map[string]any, 0, len(events))
	for _, e := range events {
		ev := map[string]any{
			"@context": SchemaContext,
			"@type":    "Event",
			"name":     e.Title,
		}
		if e.Description != "" {
			ev["description"] = e.Description
		}
		if e.StartAt != "" {
			ev["startDate"] = e.StartAt
		}
		if e.Location != "" {
			// Plain address text, not a nested Place: the builder collects
			// free-form location strings only.
			ev["location"] = map[string]any{
				"@type":   "Place",
				"name":    e.Location,
				"address": e.Location,
			}
		}
		if e.URL != "" {
			ev["url"] = e.URL
		} else {
			ev["url"] = canonical
		}
		out = append(out, ev)
	}
	return out
}

func serviceSchemas(services []ServiceEntry, providerName string) []map[string]any {
	out := make([]map[string]any, 0, len(services))
	for _, s := range services {
		svc := map[string]any{
			"@context": SchemaContext,
			"@type":    "Service",
			"name":     s.Name,
		}
		if s.Description != "" {
			svc["description"] = s.Description
		}
		if providerName != "" {
			svc["provider"] = map[string]any{
				"@type": "Person",
				"name":  providerName,
			}
		}
		if s.Price != "" {
			svc["offers"] = map[string]any{
				"@type":         "Offer",
				"price":         s.Price,
				"priceCurrency": s.Currency,
			}
		}
		out = append(out, svc)
	}
	return out
}
