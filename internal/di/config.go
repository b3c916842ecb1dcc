// Package di wires the application together with fx.
package di

import (
	"go.uber.org/fx"

	"github.com/gidacan/blog-backend/internal/config"
)

// ConfigModule provides the application configuration
var ConfigModule = fx.Options(
	fx.Provide(
		func() (*config.Config, error) {
			return config.Load()
		},
		func(cfg *config.Config) *config.AppConfig { return &cfg.App },
		func(cfg *config.Config) *config.ServerConfig { return &cfg.Server },
		func(cfg *config.Config) *config.DatabaseConfig { return &cfg.Database },
		func(cfg *config.Config) *config.JWTConfig { return &cfg.JWT },
		func(cfg *config.Config) *config.MetricsConfig { return &cfg.Metrics },
	),
)
