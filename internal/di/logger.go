package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
	"github.com/gidacan/blog-backend/pkg/logger"
)

// LoggerModule provides the application logger
var LoggerModule = fx.Options(
	fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
		encoding := "json"
		if cfg.App.Debug {
			encoding = "console"
		}
		return logger.New(logger.Config{
			Level:       logLevel(cfg),
			Development: cfg.App.Environment != "production",
			Encoding:    encoding,
		})
	}),
)

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}
