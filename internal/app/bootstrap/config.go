// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "LINKFOLIO"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, base_url, etc.
//   - Environment variables: LINKFOLIO_MONGO_URI, LINKFOLIO_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "linkfolio", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Public surface configuration
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Canonical base URL for links, hreflang and the sitemap"},
	{Name: "brand", Default: "LinkFolio", Desc: "Brand name used in titles and structured data"},
	{Name: "default_og_image", Default: "/static/og-default.png", Desc: "Fallback Open Graph image (relative paths resolve against base_url)"},
	{Name: "static_dir", Default: "static", Desc: "Directory served under /static (SPA bundle, images)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, LINKFOLIO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		BaseURL:        strings.TrimRight(appValues.String("base_url"), "/"),
		Brand:          appValues.String("brand"),
		DefaultOGImage: appValues.String("default_og_image"),
		StaticDir:      appValues.String("static_dir"),
	}

	// Resolve a relative OG image path against the canonical base URL so
	// the meta tag always carries an absolute URL.
	if strings.HasPrefix(appCfg.DefaultOGImage, "/") {
		appCfg.DefaultOGImage = appCfg.BaseURL + appCfg.DefaultOGImage
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if !strings.HasPrefix(appCfg.BaseURL, "http://") && !strings.HasPrefix(appCfg.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", appCfg.BaseURL)
	}

	return nil
}
