package di

import (
	"go.uber.org/fx"

	"github.com/gidacan/blog-backend/internal/domain/service"
)

// ServiceModule provides the business services
var ServiceModule = fx.Options(
	fx.Provide(
		service.NewArticleService,
		service.NewUserService,
		service.NewAuthService,
	),
)
