package di

import (
	"go.uber.org/fx"

	mongodao "github.com/gidacan/blog-backend/internal/domain/dao/mongo"
)

// DAOModule provides the data access objects
var DAOModule = fx.Options(
	fx.Provide(
		mongodao.NewIDCounter,
		mongodao.NewArticleDAO,
		mongodao.NewUserDAO,
	),
)
