// Package landing serves the marketing front page. Crawlers get the fully
// static server-rendered document; browsers get the SPA shell pointing at
// the same canonical URL.
package landing

import (
	"net/http"
	"strings"

	"github.com/dalemusser/linkfolio/internal/app/system/normalize"
	"github.com/dalemusser/linkfolio/internal/botdetect"
	"github.com/dalemusser/linkfolio/internal/domain/models"
	"github.com/dalemusser/linkfolio/internal/ssr"
	"github.com/go-chi/chi/v5"
)

// Handler serves the landing page.
type Handler struct {
	builder ssr.Builder
}

// NewHandler creates a new landing handler.
func NewHandler(builder ssr.Builder) *Handler {
	return &Handler{builder: builder}
}

// Routes mounts the landing page on the root path.
func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Serve)
}

// Serve handles GET /.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	lang := models.ParseLang(normalize.LangCode(r.URL.Query().Get("lang")))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if botdetect.ShouldReturnSSR(r.URL.Path, r.UserAgent()) {
		w.Write([]byte(h.builder.BuildLandingHTML(lang)))
		return
	}
	w.Write([]byte(h.shell(lang)))
}

// shell is the SPA entry document for human visitors. It reuses the static
// document's head so both audiences see identical metadata.
func (h *Handler) shell(lang models.Lang) string {
	doc := h.builder.BuildLandingHTML(lang)

	// Swap the static body for the app mount. The head is kept verbatim.
	if i := strings.Index(doc, "<body>"); i >= 0 {
		var sb strings.Builder
		sb.WriteString(doc[:i+len("<body>")])
		sb.WriteString("\n<div id=\"app\"></div>\n")
		sb.WriteString(`<script src="/static/app.js" defer></script>` + "\n")
		sb.WriteString("</body>\n</html>\n")
		return sb.String()
	}
	return doc
}
