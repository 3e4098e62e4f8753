// internal/ssr/gallery.go
package ssr

import (
	"net/url"
	"strings"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/htmlutil"
)

// BuildGalleryHTML renders the gallery listing document. items beyond
// models.GalleryPageSize are dropped, and the grid and the ItemList schema
// always describe the same set. niche, when non-empty, only labels the
// canonical URL; filtering happens at the store layer.
func (b Builder) BuildGalleryHTML(lang models.Lang, items []models.GalleryItem, niche string) string {
	txt := textFor(galleryText, lang)
	base := strings.TrimRight(b.BaseURL, "/")

	if len(items) > models.GalleryPageSize {
		items = items[:models.GalleryPageSize]
	}

	canonical := base + "/gallery"
	if niche != "" {
		canonical += "?niche=" + url.QueryEscape(niche)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"")
	sb.WriteString(string(lang))
	sb.WriteString("\">\n<head>\n<meta charset=\"utf-8\" />\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1" />` + "\n")

	sb.WriteString("<title>")
	sb.WriteString(htmlutil.EscapeHTML(txt.Title))
	sb.WriteString("</title>\n")
	sb.WriteString(`<meta name="description" content="`)
	sb.WriteString(htmlutil.EscapeHTML(txt.Description))
	sb.WriteString("\" />\n")
	sb.WriteString(`<meta name="robots" content="index, follow" />` + "\n")
	sb.WriteString(`<link rel="canonical" href="`)
	sb.WriteString(htmlutil.EscapeHTML(canonical))
	sb.WriteString("\" />\n")
	sb.WriteString(HreflangLinks(b.BaseURL, "/gallery"))

	writeSchemaScript(&sb, b.gallerySchema(txt, base, items))

	sb.WriteString("</head>\n<body>\n")
	sb.WriteString("<h1>")
	sb.WriteString(htmlutil.EscapeHTML(txt.Heading))
	sb.WriteString("</h1>\n")

	sb.WriteString("<ul class=\"gallery\">\n")
	for _, it := range items {
		sb.WriteString(`<li><a href="`)
		sb.WriteString(htmlutil.EscapeHTML(base + "/" + it.Slug))
		sb.WriteString("\">")
		sb.WriteString(htmlutil.EscapeHTML(it.Title))
		sb.WriteString("</a>")
		if it.Description != "" {
			sb.WriteString("<p>")
			sb.WriteString(htmlutil.EscapeHTML(it.Description))
			sb.WriteString("</p>")
		}
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>\n")

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// gallerySchema describes the listing as a CollectionPage whose mainEntity
// is an ItemList over the rendered items, in grid order.
func (b Builder) gallerySchema(txt surfaceText, base string, items []models.GalleryItem) map[string]any {
	list := make([]map[string]any, 0, len(items))
	for i, it := range items {
		list = append(list, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      base + "/" + it.Slug,
			"name":     it.Title,
		})
	}
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "CollectionPage",
		"url":      base + "/gallery",
		"name":     txt.Heading,
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"numberOfItems":   len(list),
			"itemListElement": list,
		},
	}
}
