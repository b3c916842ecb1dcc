package di

import (
	"go.uber.org/fx"

	controller "github.com/gidacan/blog-backend/internal/controller/http"
)

// ControllerModule provides the HTTP controllers
var ControllerModule = fx.Options(
	fx.Provide(
		controller.NewArticleController,
		controller.NewUserController,
	),
)
