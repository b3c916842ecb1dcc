package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
	"github.com/gidacan/blog-backend/internal/observability"
)

// ObservabilityModule provides the metrics provider
var ObservabilityModule = fx.Options(
	fx.Provide(newMetricsProvider),
)

func newMetricsProvider(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*observability.MetricsProvider, error) {
	mp, err := observability.NewMetricsProvider(&observability.MetricsConfig{
		Enabled:     cfg.Metrics.Enabled,
		ServiceName: cfg.App.Name,
		Path:        cfg.Metrics.Path,
	}, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return mp.Shutdown(ctx)
		},
	})

	return mp, nil
}
