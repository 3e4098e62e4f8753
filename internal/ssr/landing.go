// internal/ssr/landing.go
package ssr

import (
	"encoding/json"
	"strings"

	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/htmlutil"
)

// Builder renders the static crawler documents. BaseURL carries no trailing
// slash; Brand names the product in titles and schema.
type Builder struct {
	BaseURL string
	Brand   string
}

// BuildLandingHTML renders the complete landing document for lang. The
// output is deterministic for a given (lang, Builder) pair so it can be
// cached by the edge as-is.
func (b Builder) BuildLandingHTML(lang models.Lang) string {
	txt := textFor(landingText, lang)
	base := strings.TrimRight(b.BaseURL, "/")

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
	sb.WriteString(htmlutil.EscapeHTML(base + "/"))
	sb.WriteString("\" />\n")
	sb.WriteString(HreflangLinks(b.BaseURL, "/"))

	sb.WriteString(`<meta property="og:title" content="`)
	sb.WriteString(htmlutil.EscapeHTML(txt.Title))
	sb.WriteString("\" />\n")
	sb.WriteString(`<meta property="og:description" content="`)
	sb.WriteString(htmlutil.EscapeHTML(txt.Description))
	sb.WriteString("\" />\n")
	sb.WriteString(`<meta property="og:type" content="website" />` + "\n")
	sb.WriteString(`<meta property="og:url" content="`)
	sb.WriteString(htmlutil.EscapeHTML(base + "/"))
	sb.WriteString("\" />\n")

	writeSchemaScript(&sb, b.landingSchema(txt, base))

	sb.WriteString("</head>\n<body>\n")

	sb.WriteString("<header>\n<h1>")
	sb.WriteString(htmlutil.EscapeHTML(txt.Heading))
	sb.WriteString("</h1>\n<p>")
	sb.WriteString(htmlutil.EscapeHTML(txt.Tagline))
	sb.WriteString("</p>\n</header>\n")

	sb.WriteString("<main>\n<ul class=\"features\">\n")
	for _, f := range txt.Features {
		sb.WriteString("<li>")
		sb.WriteString(htmlutil.EscapeHTML(f))
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>\n")

	sb.WriteString(`<a class="cta" href="`)
	sb.WriteString(htmlutil.EscapeHTML(base + "/signup"))
	sb.WriteString("\">")
	sb.WriteString(htmlutil.EscapeHTML(txt.CTALabel))
	sb.WriteString("</a>\n")

	if len(txt.FAQ) > 0 {
		sb.WriteString("<section class=\"faq\">\n<dl>\n")
		for _, item := range txt.FAQ {
			sb.WriteString("<dt>")
			sb.WriteString(htmlutil.EscapeHTML(item.Q))
			sb.WriteString("</dt>\n<dd>")
			sb.WriteString(htmlutil.EscapeHTML(item.A))
			sb.WriteString("</dd>\n")
		}
		sb.WriteString("</dl>\n</section>\n")
	}

	sb.WriteString("</main>\n</body>\n</html>\n")
	return sb.String()
}

// landingSchema assembles the landing @graph: the site, the operating
// organization, the product, and the visible FAQ.
func (b Builder) landingSchema(txt surfaceText, base string) map[string]any {
	graph := []map[string]any{
		{
			"@type": "WebSite",
			"@id":   base + "/#website",
			"url":   base + "/",
			"name":  b.Brand,
		},
		{
			"@type": "Organization",
			"@id":   base + "/#organization",
			"url":   base + "/",
			"name":  b.Brand,
		},
		{
			"@type":               "SoftwareApplication",
			"name":                b.Brand,
			"applicationCategory": "BusinessApplication",
			"operatingSystem":     "Web",
			"url":                 base + "/",
			"description":         txt.Description,
			"offers": map[string]any{
				"@type":         "Offer",
				"price":         "0",
				"priceCurrency": "KZT",
			},
		},
	}

	if len(txt.FAQ) > 0 {
		entities := make([]map[string]any, 0, len(txt.FAQ))
		for _, item := range txt.FAQ {
			entities = append(entities, map[string]any{
				"@type": "Question",
				"name":  item.Q,
				"acceptedAnswer": map[string]any{
					"@type": "Answer",
					"text":  item.A,
				},
			})
		}
		graph = append(graph, map[string]any{
			"@type":      "FAQPage",
			"mainEntity": entities,
		})
	}

	return map[string]any{
		"@context": "https://schema.org",
		"@graph":   graph,
	}
}

// writeSchemaScript marshals obj into an ld+json script tag. encoding/json
// escapes <, > and & inside strings, so the payload cannot terminate the
// script element early.
func writeSchemaScript(sb *strings.Builder, obj map[string]any) {
	data, err := json.Marshal(obj)
	if err != nil {
		return
	}
	sb.WriteString(`<script type="application/ld+json">`)
	sb.Write(data)
	sb.WriteString("</script>\n")
}
