package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
	controller "github.com/gidacan/blog-backend/internal/controller/http"
	"github.com/gidacan/blog-backend/internal/middleware"
	"github.com/gidacan/blog-backend/internal/observability"
)

// ServerModule provides the HTTP server
var ServerModule = fx.Options(
	fx.Provide(newGinEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(startServer),
)

func newGinEngine(cfg *config.Config, logger *zap.Logger, mp *observability.MetricsProvider) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(middleware.DefaultCORSConfig()),
		observability.MetricsMiddleware(mp),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(mp.Handler()))
	}

	return engine
}

// Controllers collects every HTTP controller for route registration
type Controllers struct {
	fx.In

	Article *controller.ArticleController
	User    *controller.UserController
}

func registerRoutes(engine *gin.Engine, ctrls Controllers) {
	api := engine.Group("")
	ctrls.Article.RegisterRoutes(api)
	ctrls.User.RegisterRoutes(api)
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting http server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}
