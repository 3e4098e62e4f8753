// Package publicpage serves tenant pages to both crawlers and browsers.
//
// Endpoints:
//   - GET /{slug} - the public page; crawlers get a fully rendered document,
//     browsers get the SPA shell with the same head tags and a noscript
//     projection
//   - GET /api/pages/{slug}/meta - the head-tag bundle as JSON for the SPA's
//     client-side applier
//
// All SEO output (meta, schemas, robots directive) is derived per request
// from the page's blocks; nothing derived is persisted.
package publicpage

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/linkfolio/internal/app/system/jsonutil"
	"github.com/dalemusser/linkfolio/internal/app/system/normalize"
	"github.com/dalemusser/linkfolio/internal/botdetect"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/htmlutil"
	"github.com/dalemusser/linkfolio/internal/seo"
	"github.com/dalemusser/linkfolio/internal/seo/crawlerhtml"
	"github.com/dalemusser/linkfolio/internal/seo/headtags"
	"github.com/dalemusser/linkfolio/internal/ssr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PageLoader is the slice of the page store this handler needs.
type PageLoader interface {
	GetPublishedBySlug(ctx context.Context, slug string) (models.Page, error)
}

// Handler serves public pages and their meta bundles.
type Handler struct {
	pages  PageLoader
	gen    seo.Generator
	logger *zap.Logger
}

// NewHandler creates a new public page handler.
func NewHandler(pages PageLoader, gen seo.Generator, logger *zap.Logger) *Handler {
	return &Handler{pages: pages, gen: gen, logger: logger}
}

// derived bundles everything computed from one page load.
type derived struct {
	page    models.Page
	lang    models.Lang
	profile seo.Profile
	gate    seo.QualityGateResult
	meta    seo.PageMeta
	schemas seo.SchemaGraph
	head    *headtags.HeadSet
	srcCtx  string
}

// load fetches the page and derives the full SEO bundle for it.
func (h *Handler) load(r *http.Request, slug string) (derived, error) {
	lang := models.ParseLang(normalize.LangCode(r.URL.Query().Get("lang")))

	page, err := h.pages.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		return derived{}, err
	}

	profile := seo.ExtractProfile(page.Blocks, lang)
	gate := seo.EvaluateQualityGate(page.Blocks, profile.Name, profile.Bio, page.IsNewAccount(time.Now().UTC()))
	meta := h.gen.PageMeta(profile, page.Blocks, slug, gate, lang)
	schemas := h.gen.Schemas(profile, page.Blocks, slug, meta, lang)
	srcCtx := seo.SourceContext(slug, page.UpdatedAt, page.Blocks)

	return derived{
		page:    page,
		lang:    lang,
		profile: profile,
		gate:    gate,
		meta:    meta,
		schemas: schemas,
		head:    headtags.Build(meta, schemas, srcCtx, lang),
		srcCtx:  srcCtx,
	}, nil
}

// ServePage handles GET /{slug}.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	slug := normalize.Slug(chi.URLParam(r, "slug"))
	if !models.IsValidSlug(slug) {
		http.NotFound(w, r)
		return
	}

	d, err := h.load(r, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to load page", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	isBot := botdetect.ShouldReturnSSR(r.URL.Path, r.UserAgent())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isBot {
		w.Write([]byte(h.renderCrawlerDocument(d, slug)))
		return
	}
	w.Write([]byte(h.renderShell(d, slug)))
}

// renderCrawlerDocument builds the complete server-rendered document a
// crawler receives: full head plus the semantic content projection as the
// visible body.
func (h *Handler) renderCrawlerDocument(d derived, slug string) string {
	var sb strings.Builder
	h.writeDocumentHead(&sb, d, slug)
	sb.WriteString("<body>\n")
	sb.WriteString(crawlerhtml.Render(d.page.Blocks, slug, d.page.UpdatedAt, d.lang))
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// renderShell builds the SPA shell for browsers: the same head tags, the app
// mount point, and the noscript projection so script-less browsers still see
// the content.
func (h *Handler) renderShell(d derived, slug string) string {
	var sb strings.Builder
	h.writeDocumentHead(&sb, d, slug)
	sb.WriteString("<body>\n")
	sb.WriteString(`<div id="app" data-page-slug="`)
	sb.WriteString(htmlutil.EscapeHTML(slug))
	sb.WriteString("\"></div>\n")
	sb.WriteString(crawlerhtml.RenderNoScript(d.page.Blocks, slug, d.page.UpdatedAt, d.lang))
	sb.WriteString(`<script src="/static/app.js" defer></script>` + "\n")
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func (h *Handler) writeDocumentHead(sb *strings.Builder, d derived, slug string) {
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"")
	sb.WriteString(string(d.lang))
	sb.WriteString("\">\n<head>\n<meta charset=\"utf-8\" />\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1" />` + "\n")
	sb.WriteString(d.head.Render())
	sb.WriteString(ssr.HreflangLinks(h.gen.BaseURL, "/"+slug))
	sb.WriteString("</head>\n")
}

// MetaBundle handles GET /api/pages/{slug}/meta. The SPA fetches this on
// client-side navigation and applies the tags itself; cleanupSelectors tells
// it exactly what to tear down before applying.
func (h *Handler) MetaBundle(w http.ResponseWriter, r *http.Request) {
	slug := normalize.Slug(chi.URLParam(r, "slug"))
	if !models.IsValidSlug(slug) {
		jsonutil.NotFound(w, "page not found")
		return
	}

	d, err := h.load(r, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "page not found")
			return
		}
		h.logger.Error("failed to load page meta", zap.String("slug", slug), zap.Error(err))
		jsonutil.InternalError(w, "internal error")
		return
	}

	jsonutil.OK(w, map[string]any{
		"slug":             slug,
		"lang":             string(d.lang),
		"meta":             d.meta,
		"schemas":          d.schemas,
		"gate":             d.gate,
		"sourceContext":    d.srcCtx,
		"tags":             d.head.Tags(),
		"cleanupSelectors": headtags.CleanupSelectors(),
	})
}
