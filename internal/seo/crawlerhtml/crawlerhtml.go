// internal/seo/crawlerhtml/crawlerhtml.go

// Package crawlerhtml renders the no-script projection of a page: the same
// facts the live page shows, as plain semantic markup with schema.org
// microdata, for clients that do not execute script.
package crawlerhtml

import (
	"strings"
	"time"

	"github.com/dalemusser/linkfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/htmlutil"
	"github.com/dalemusser/linkfolio/internal/seo"
)

// Render builds the semantic HTML fragment for the page. Missing sections
// are omitted entirely; an empty block list yields a minimal fragment with
// just the slug as heading. Pure rendering: no I/O, no mutation.
func Render(blocks []models.Block, slug string, updatedAt time.Time, lang models.Lang) string {
	profile := seo.ExtractProfile(blocks, lang)

	var sb strings.Builder
	sb.WriteString(`<main class="crawler-content">` + "\n")

	name := profile.Name
	if name == "" {
		name = slug
	}
	sb.WriteString("<h1>")
	sb.WriteString(htmlutil.EscapeHTML(name))
	sb.WriteString("</h1>\n")

	about := profile.Bio
	if about == "" {
		about = seo.AutoAbout(profile, blocks, lang)
	}
	if about != "" {
		sb.WriteString(`<p class="about">`)
		sb.WriteString(htmlutil.EscapeHTML(about))
		sb.WriteString("</p>\n")
	}

	writeTextSections(&sb, blocks, lang)
	writeLinks(&sb, blocks, lang)
	writeFAQ(&sb, blocks, lang)
	writeEvents(&sb, blocks, lang)
	writeServices(&sb, blocks, lang)

	if !updatedAt.IsZero() {
		sb.WriteString(`<footer><time datetime="`)
		sb.WriteString(updatedAt.UTC().Format(time.RFC3339))
		sb.WriteString(`">`)
		sb.WriteString(updatedAt.UTC().Format("2006-01-02"))
		sb.WriteString("</time></footer>\n")
	}

	sb.WriteString("</main>\n")
	return sb.String()
}

// RenderNoScript wraps the projection in a native no-script guard so it is
// rendered unconditionally but visible only to clients without script.
func RenderNoScript(blocks []models.Block, slug string, updatedAt time.Time, lang models.Lang) string {
	return "<noscript>\n" + Render(blocks, slug, updatedAt, lang) + "</noscript>\n"
}

// writeTextSections projects rich-text blocks. User-authored HTML passes
// through the sanitizer, never raw into the output.
func writeTextSections(sb *strings.Builder, blocks []models.Block, lang models.Lang) {
	for _, b := range blocks {
		if b.Text == nil {
			continue
		}
		body := strings.TrimSpace(b.Text.Body.Resolve(lang))
		if body == "" {
			continue
		}
		sb.WriteString("<section>")
		if htmlsanitize.IsPlainText(body) {
			sb.WriteString("<p>")
			sb.WriteString(htmlutil.EscapeHTML(body))
			sb.WriteString("</p>")
		} else {
			sb.WriteString(htmlsanitize.Sanitize(body))
		}
		sb.WriteString("</section>\n")
	}
}

func writeLinks(sb *strings.Builder, blocks []models.Block, lang models.Lang) {
	links := seo.Links(blocks, lang)
	if len(links) == 0 {
		return
	}
	sb.WriteString(`<nav><ul class="links">` + "\n")
	for _, l := range links {
		sb.WriteString(`<li><a href="`)
		sb.WriteString(htmlutil.EscapeHTML(l.URL))
		sb.WriteString(`" rel="noopener">`)
		sb.WriteString(htmlutil.EscapeHTML(l.Title))
		sb.WriteString("</a></li>\n")
	}
	sb.WriteString("</ul></nav>\n")
}

func writeFAQ(sb *strings.Builder, blocks []models.Block, lang models.Lang) {
	faq := seo.FAQEntries(blocks, lang)
	if len(faq) == 0 {
		return
	}
	sb.WriteString(`<dl itemscope itemtype="https://schema.org/FAQPage">` + "\n")
	for _, e := range faq {
		sb.WriteString(`<div itemscope itemprop="mainEntity" itemtype="https://schema.org/Question">`)
		sb.WriteString(`<dt itemprop="name">`)
		sb.WriteString(htmlutil.EscapeHTML(e.Question))
		sb.WriteString("</dt>")
		sb.WriteString(`<dd itemscope itemprop="acceptedAnswer" itemtype="https://schema.org/Answer"><span itemprop="text">`)
		sb.WriteString(htmlutil.EscapeHTML(e.Answer))
		sb.WriteString("</span></dd></div>\n")
	}
	sb.WriteString("</dl>\n")
}

func writeEvents(sb *strings.Builder, blocks []models.Block, lang models.Lang) {
	events := seo.Events(blocks, lang)
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		sb.WriteString(`<article itemscope itemtype="https://schema.org/Event">` + "\n")
		sb.WriteString(`<h2 itemprop="name">`)
		sb.WriteString(htmlutil.EscapeHTML(e.Title))
		sb.WriteString("</h2>\n")
		if e.StartAt != "" {
			sb.WriteString(`<time itemprop="startDate" datetime="`)
			sb.WriteString(htmlutil.EscapeHTML(e.StartAt))
			sb.WriteString(`">`)
			sb.WriteString(htmlutil.EscapeHTML(e.StartAt))
			sb.WriteString("</time>\n")
		}
		if e.Location != "" {
			sb.WriteString(`<p itemprop="location">`)
			sb.WriteString(htmlutil.EscapeHTML(e.Location))
			sb.WriteString("</p>\n")
		}
		if e.Description != "" {
			sb.WriteString(`<p itemprop="description">`)
			sb.WriteString(htmlutil.EscapeHTML(e.Description))
			sb.WriteString("</p>\n")
		}
		sb.WriteString("</article>\n")
	}
}

func writeServices(sb *strings.Builder, blocks []models.Block, lang models.Lang) {
	services := seo.Services(blocks, lang)
	if len(services) == 0 {
		return
	}
	sb.WriteString(`<ul class="services">` + "\n")
	for _, s := range services {
		sb.WriteString(`<li itemscope itemtype="https://schema.org/Service"><span itemprop="name">`)
		sb.WriteString(htmlutil.EscapeHTML(s.Name))
		sb.WriteString("</span>")
		if s.Price != "" {
			sb.WriteString(` — <span itemprop="offers" itemscope itemtype="https://schema.org/Offer">`)
			sb.WriteString(`<span itemprop="price">`)
			sb.WriteString(htmlutil.EscapeHTML(s.Price))
			sb.WriteString(`</span> <span itemprop="priceCurrency">`)
			sb.WriteString(htmlutil.EscapeHTML(s.Currency))
			sb.WriteString("</span></span>")
		}
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>\n")
}
