package di

import (
	"go.uber.org/fx"

	"github.com/gidacan/blog-backend/internal/security"
)

// SecurityModule provides password hashing and access tokens
var SecurityModule = fx.Options(
	fx.Provide(
		security.NewPasswordHasher,
		security.NewJWTProvider,
	),
)
