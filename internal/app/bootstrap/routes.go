// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	galleryfeature "github.com/dalemusser/linkfolio/internal/app/features/gallery"
	healthfeature "github.com/dalemusser/linkfolio/internal/app/features/health"
	landingfeature "github.com/dalemusser/linkfolio/internal/app/features/landing"
	publicpagefeature "github.com/dalemusser/linkfolio/internal/app/features/publicpage"
	sitemapfeature "github.com/dalemusser/linkfolio/internal/app/features/sitemap"
	gallerystore "github.com/dalemusser/linkfolio/internal/app/store/gallery"
	pagestore "github.com/dalemusser/linkfolio/internal/app/store/pages"
	"github.com/dalemusser/linkfolio/internal/seo"
	"github.com/dalemusser/linkfolio/internal/ssr"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Route ordering matters here: the public page route claims every
// single-segment path (/{slug}), so all fixed surfaces (health, static
// assets, sitemap, robots, landing, gallery) must be registered before it.
// Reserved slugs and application paths are additionally filtered inside the
// public page handler, so a page can never shadow a product surface even if
// one slips into the database.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	gen := seo.Generator{
		BaseURL:        appCfg.BaseURL,
		Brand:          appCfg.Brand,
		DefaultOGImage: appCfg.DefaultOGImage,
	}
	builder := ssr.Builder{
		BaseURL: appCfg.BaseURL,
		Brand:   appCfg.Brand,
	}

	pages := pagestore.New(deps.MongoDatabase)
	galleryItems := gallerystore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli).
	// The SPA bundle referenced by the browser shells lives here.
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	// Crawler control surfaces: sitemap.xml and robots.txt
	sitemapHandler := sitemapfeature.NewHandler(pages, gen, logger)
	sitemapfeature.Routes(r, sitemapHandler)

	// Product landing page at /
	landingHandler := landingfeature.NewHandler(builder)
	landingfeature.Routes(r, landingHandler)

	// Public gallery of example pages at /gallery
	galleryHandler := galleryfeature.NewHandler(galleryItems, builder, logger)
	galleryfeature.Routes(r, galleryHandler)

	// Published user pages at /{slug}. Registered last so every fixed
	// path above wins the route match.
	publicHandler := publicpagefeature.NewHandler(pages, gen, logger)
	publicpagefeature.Routes(r, publicHandler)

	return r, nil
}
