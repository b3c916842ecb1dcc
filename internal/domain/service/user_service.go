package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/dto/request"
	"github.com/gidacan/blog-backend/internal/security"
	apperrors "github.com/gidacan/blog-backend/pkg/errors"
)

var (
	ErrUserNotFound      = apperrors.ErrNotFound.WithMessage("user not found")
	ErrUserAlreadyExists = apperrors.ErrConflict.WithMessage("username or email already taken")
)

// UserService defines the business operations for users
type UserService interface {
	List(ctx context.Context, page, size int) ([]*entity.User, int64, error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error)
	Update(ctx context.Context, id uint, req *request.UpdateUserRequest) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	logger *zap.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(users repository.UserRepository, hasher *security.PasswordHasher, logger *zap.Logger) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

func (s *userService) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	page, size = normalizePage(page, size)
	users, total, err := s.users.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, 0, apperrors.ErrStoreUnavailable.WithError(err)
	}
	return users, total, nil
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("failed to check username", zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if taken {
		return nil, ErrUserAlreadyExists
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to check email", zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if taken {
		return nil, ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternalError.WithError(err)
	}

	role := entity.UserRole(req.Type)
	if role == "" {
		role = entity.RoleMember
	}

	user := &entity.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Username:      req.Username,
		Email:         req.Email,
		Password:      hash,
		Address:       req.Address,
		IsActive:      true,
		Role:          role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}

	s.logger.Info("user created", zap.Uint("id", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *request.UpdateUserRequest) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, *req.Username)
		if err != nil {
			return nil, apperrors.ErrStoreUnavailable.WithError(err)
		}
		if taken {
			return nil, ErrUserAlreadyExists
		}
		user.Username = *req.Username
	}
	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, apperrors.ErrStoreUnavailable.WithError(err)
		}
		if taken {
			return nil, ErrUserAlreadyExists
		}
		user.Email = *req.Email
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.ContactNumber != nil {
		user.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Type != nil {
		user.Role = entity.UserRole(*req.Type)
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.logger.Error("failed to hash password", zap.Error(err))
			return nil, apperrors.ErrInternalError.WithError(err)
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return apperrors.ErrStoreUnavailable.WithError(err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return apperrors.ErrStoreUnavailable.WithError(err)
	}

	s.logger.Info("user deleted", zap.Uint("id", id), zap.String("username", user.Username))
	return nil
}
