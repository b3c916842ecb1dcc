package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/dto/request"
	"github.com/gidacan/blog-backend/internal/dto/response"
	"github.com/gidacan/blog-backend/internal/security"
	apperrors "github.com/gidacan/blog-backend/pkg/errors"
)

var (
	// ErrInvalidCredentials covers unknown account, wrong password, and
	// deactivated account alike, so responses never reveal which one failed.
	ErrInvalidCredentials = apperrors.ErrAuthentication.WithMessage("invalid credentials")
)

// AuthService defines the authentication operations
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	jwt    *security.JWTProvider
	logger *zap.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(users repository.UserRepository, hasher *security.PasswordHasher, jwt *security.JWTProvider, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("login attempt on deactivated account", zap.Uint("id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err))
		return nil, apperrors.ErrInternalError.WithError(err)
	}

	s.logger.Info("user logged in", zap.Uint("id", user.ID), zap.String("username", user.Username))
	return &response.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwt.GetAccessTokenDuration(),
		User:        response.NewUserResponse(user),
	}, nil
}
