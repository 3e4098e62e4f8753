// Package sitemap serves sitemap.xml and robots.txt. Only pages that clear
// the quality gate are listed: a noindex page in the sitemap would send
// crawlers contradictory signals.
package sitemap

import (
	"encoding/xml"
	"net/http"
	"time"

	pagestore "github.com/dalemusser/linkfolio/internal/app/store/pages"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/seo"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the crawler control surfaces.
type Handler struct {
	pages  *pagestore.Store
	gen    seo.Generator
	logger *zap.Logger
}

// NewHandler creates a new sitemap handler.
func NewHandler(pages *pagestore.Store, gen seo.Generator, logger *zap.Logger) *Handler {
	return &Handler{pages: pages, gen: gen, logger: logger}
}

// Routes mounts sitemap.xml and robots.txt on the root router.
func Routes(r chi.Router, h *Handler) {
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap handles GET /sitemap.xml.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.ListPublished(r.Context(), 0)
	if err != nil {
		h.logger.Error("failed to list pages for sitemap", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{
			{Loc: h.gen.BaseURL + "/"},
			{Loc: h.gen.BaseURL + "/gallery"},
		},
	}

	now := time.Now().UTC()
	for _, p := range pages {
		profile := seo.ExtractProfile(p.Blocks, models.LangRU)
		gate := seo.EvaluateQualityGate(p.Blocks, profile.Name, profile.Bio, p.IsNewAccount(now))
		if !gate.Passed {
			continue
		}
		entry := urlEntry{Loc: h.gen.BaseURL + "/" + p.Slug}
		if !p.UpdatedAt.IsZero() {
			entry.LastMod = p.UpdatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.logger.Error("failed to marshal sitemap", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// Robots handles GET /robots.txt. Everything is crawlable; per-page indexing
// is controlled by the robots meta directive, not by path exclusions.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nAllow: /\n\nSitemap: " + h.gen.BaseURL + "/sitemap.xml\n"))
}
