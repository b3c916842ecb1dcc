package repository

import (
	"context"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*entity.User, error)

	// GetByUsernameOrEmail retrieves a user by username or email
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entity.User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *entity.User) error

	// Delete permanently removes a user by ID
	Delete(ctx context.Context, id uint) error

	// List retrieves users with pagination
	List(ctx context.Context, page, size int) ([]*entity.User, int64, error)

	// ExistsByUsername checks if a username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if an email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpsertByEmail inserts or updates a user keyed by email.
	// Returns true when a new record was inserted.
	UpsertByEmail(ctx context.Context, user *entity.User) (bool, error)
}
