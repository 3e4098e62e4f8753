// Package gallery serves the public gallery listing of example pages. The
// document is fully server-rendered for every audience; it changes only when
// curators change the item set, so there is nothing for a SPA to hydrate.
package gallery

import (
	"net/http"

	gallerystore "github.com/dalemusser/linkfolio/internal/app/store/gallery"
	"github.com/dalemusser/linkfolio/internal/app/system/normalize"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/ssr"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the gallery listing.
type Handler struct {
	store   *gallerystore.Store
	builder ssr.Builder
	logger  *zap.Logger
}

// NewHandler creates a new gallery handler.
func NewHandler(store *gallerystore.Store, builder ssr.Builder, logger *zap.Logger) *Handler {
	return &Handler{store: store, builder: builder, logger: logger}
}

// Routes mounts the gallery listing.
func Routes(r chi.Router, h *Handler) {
	r.Get("/gallery", h.Serve)
}

// Serve handles GET /gallery.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	lang := models.ParseLang(normalize.LangCode(r.URL.Query().Get("lang")))
	niche := normalize.Niche(r.URL.Query().Get("niche"))

	items, err := h.store.ListVisible(r.Context(), niche, models.GalleryPageSize)
	if err != nil {
		h.logger.Error("failed to list gallery items", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(h.builder.BuildGalleryHTML(lang, items, niche)))
}
