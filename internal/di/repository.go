package di

import (
	"go.uber.org/fx"

	"github.com/gidacan/blog-backend/internal/domain/repository/impl"
)

// RepositoryModule provides the repositories
var RepositoryModule = fx.Options(
	fx.Provide(
		impl.NewArticleRepository,
		impl.NewUserRepository,
	),
)
