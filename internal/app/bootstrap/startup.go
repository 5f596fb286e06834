// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after the database is connected and indexed, before the HTTP
// handler is built. It reports the settings the handlers will run with.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	t := timeouts.Current()
	logger.Info("lessonshop starting",
		zap.String("env", coreCfg.Env),
		zap.String("database", appCfg.MongoDatabase),
		zap.String("public_dir", appCfg.PublicDir),
		zap.String("lesson_images_dir", appCfg.LessonImagesDir),
		zap.Strings("api_cors_origins", appCfg.CORSAllowedOrigins),
		zap.Duration("timeout_ping", t.Ping),
		zap.Duration("timeout_short", t.Short),
		zap.Duration("timeout_medium", t.Medium),
	)
	return nil
}
