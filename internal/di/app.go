package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
)

// AppModule aggregates every application module
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	DatabaseModule,
	DAOModule,
	RepositoryModule,
	SecurityModule,
	ServiceModule,
	ControllerModule,
	ServerModule,
	fx.Invoke(logStartup),
)

func logStartup(cfg *config.Config, logger *zap.Logger) {
	logger.Info("application starting",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))
}
