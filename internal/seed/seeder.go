package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/security"
)

// Result reports the upsert outcome
type Result string

const (
	ResultInserted Result = "inserted"
	ResultUpdated  Result = "updated"
)

// Seeder provisions the administrator account keyed by email
type Seeder struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	logger *zap.Logger
}

// NewSeeder creates a new Seeder instance
func NewSeeder(users repository.UserRepository, hasher *security.PasswordHasher, logger *zap.Logger) *Seeder {
	return &Seeder{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Run upserts the administrator account described by the profile.
// The operation is idempotent: repeated runs against the same email
// converge on a single admin record.
func (s *Seeder) Run(ctx context.Context, profile Profile) (Result, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(profile.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Age:           profile.Age,
		Gender:        profile.Gender,
		ContactNumber: profile.ContactNumber,
		Username:      profile.Username,
		Email:         profile.Email,
		Password:      hash,
		Address:       profile.Address,
		IsActive:      true,
		Role:          entity.RoleAdmin,
	}

	inserted, err := s.users.UpsertByEmail(ctx, user)
	if err != nil {
		return "", fmt.Errorf("upsert admin user: %w", err)
	}

	result := ResultUpdated
	if inserted {
		result = ResultInserted
	}
	s.logger.Info("admin user seeded",
		zap.String("email", profile.Email),
		zap.String("result", string(result)))
	return result, nil
}
