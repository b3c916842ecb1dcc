package dao

import (
	"context"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// UserDAO extends BaseDAO with user-specific data access operations.
type UserDAO interface {
	BaseDAO[entity.User, uint]

	// Delete permanently removes a user by ID.
	Delete(ctx context.Context, id uint) error

	// FindByUsernameOrEmail retrieves a user by username or email.
	// This is useful for login where users can use either identifier.
	// Returns nil, nil if the user is not found.
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entity.User, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpsertByEmail inserts the user if no document matches the email,
	// otherwise updates the existing document's profile fields.
	// Returns true when a new document was inserted.
	UpsertByEmail(ctx context.Context, user *entity.User) (bool, error)
}
