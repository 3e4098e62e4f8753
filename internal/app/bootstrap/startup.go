// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are complete,
// but before the HTTP handler is built and requests are served.
//
// linkfolio keeps this light: the only application-level check is that the
// static asset directory exists, because a missing SPA bundle means every
// human visitor gets a blank shell. A missing directory is logged as a
// warning rather than aborting startup, since the crawler-facing documents
// are rendered server-side and keep working without it.
//
// Returning a non-nil error would abort startup and prevent the server
// from starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	info, err := os.Stat(appCfg.StaticDir)
	switch {
	case err != nil:
		logger.Warn("static asset directory not found; SPA shell will have no bundle to load",
			zap.String("static_dir", appCfg.StaticDir),
			zap.Error(err),
		)
	case !info.IsDir():
		logger.Warn("static asset path is not a directory",
			zap.String("static_dir", appCfg.StaticDir),
		)
	default:
		logger.Info("serving static assets", zap.String("static_dir", appCfg.StaticDir))
	}

	return nil
}
