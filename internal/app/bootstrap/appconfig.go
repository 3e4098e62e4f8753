// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to linkfolio lives: the MongoDB
// connection, the canonical base URL the crawler-facing documents are
// generated against, and the branding applied to titles and social cards.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Canonical base URL used in canonical links, hreflang alternates,
	// Open Graph URLs, JSON-LD @id values, and the sitemap.
	// Must not end with a trailing slash (LoadConfig trims it).
	BaseURL string // e.g., "https://linkfolio.kz"

	// Brand name appended to page titles and used as the publisher
	// in structured data.
	Brand string

	// DefaultOGImage is the Open Graph image used when a page has no
	// avatar of its own. Relative values are resolved against BaseURL.
	DefaultOGImage string

	// StaticDir is the directory the SPA bundle and other static assets
	// are served from under /static.
	StaticDir string
}
