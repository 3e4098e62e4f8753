package publicpage

import "github.com/go-chi/chi/v5"

// Routes mounts the public page endpoints directly on the root router. The
// slug route must be registered last by the caller's router setup so fixed
// paths (gallery, health, sitemap) win.
func Routes(r chi.Router, h *Handler) {
	r.Get("/api/pages/{slug}/meta", h.MetaBundle)
	r.Get("/{slug}", h.ServePage)
}
