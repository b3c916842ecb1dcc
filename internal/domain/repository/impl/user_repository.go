package impl

import (
	"context"
	"time"

	"github.com/gidacan/blog-backend/internal/domain/dao"
	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/observability"
)

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao     dao.UserDAO
	metrics *observability.MetricsProvider
}

// NewUserRepository creates a new UserRepository instance.
// The metrics provider may be nil; operations are then unrecorded.
func NewUserRepository(userDAO dao.UserDAO, metrics *observability.MetricsProvider) repository.UserRepository {
	return &userRepository{dao: userDAO, metrics: metrics}
}

func (r *userRepository) record(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordDBOperation(ctx, op, err == nil, time.Since(start))
}

// Create inserts a new user.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	start := time.Now()
	err := r.dao.Create(ctx, user)
	r.record(ctx, "users.insert", start, err)
	return err
}

// GetByID retrieves a user by their ID.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	start := time.Now()
	user, err := r.dao.FindByID(ctx, id)
	r.record(ctx, "users.find", start, err)
	return user, err
}

// GetByUsernameOrEmail retrieves a user by username or email.
func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	start := time.Now()
	user, err := r.dao.FindByUsernameOrEmail(ctx, usernameOrEmail)
	r.record(ctx, "users.find", start, err)
	return user, err
}

// Update modifies an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	start := time.Now()
	err := r.dao.Update(ctx, user)
	r.record(ctx, "users.update", start, err)
	return err
}

// Delete permanently removes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.dao.Delete(ctx, id)
	r.record(ctx, "users.delete", start, err)
	return err
}

// List retrieves users with pagination.
func (r *userRepository) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	start := time.Now()
	users, total, err := r.dao.FindAll(ctx, page, size)
	r.record(ctx, "users.find", start, err)
	return users, total, err
}

// ExistsByUsername checks if a user with the given username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	start := time.Now()
	exists, err := r.dao.ExistsByUsername(ctx, username)
	r.record(ctx, "users.count", start, err)
	return exists, err
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	start := time.Now()
	exists, err := r.dao.ExistsByEmail(ctx, email)
	r.record(ctx, "users.count", start, err)
	return exists, err
}

// UpsertByEmail inserts or updates a user keyed by email.
func (r *userRepository) UpsertByEmail(ctx context.Context, user *entity.User) (bool, error) {
	start := time.Now()
	inserted, err := r.dao.UpsertByEmail(ctx, user)
	r.record(ctx, "users.upsert", start, err)
	return inserted, err
}
