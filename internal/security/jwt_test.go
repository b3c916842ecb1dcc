package security

import (
	"errors"
	"testing"
	"time"

	"github.com/gidacan/blog-backend/internal/config"
	"github.com/gidacan/blog-backend/internal/domain/entity"
)

func newTestProvider(d time.Duration) *JWTProvider {
	return NewJWTProvider(&config.JWTConfig{
		Secret:              "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration: d,
		Issuer:              "blog-backend-test",
	})
}

func testUser() *entity.User {
	return &entity.User{
		ID:       1,
		Username: "carla",
		Email:    "carla@example.com",
		Role:     entity.RoleAdmin,
	}
}

func TestJWTProvider_GenerateAndValidate(t *testing.T) {
	p := newTestProvider(time.Hour)

	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateAccessToken() returned empty token")
	}

	claims, err := p.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != 1 || claims.Username != "carla" || claims.Role != entity.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "blog-backend-test" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestJWTProvider_WrongSecret(t *testing.T) {
	p := newTestProvider(time.Hour)
	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTProvider(&config.JWTConfig{
		Secret:              "a-completely-different-secret",
		AccessTokenDuration: time.Hour,
		Issuer:              "blog-backend-test",
	})

	if _, err := other.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTProvider_ExpiredToken(t *testing.T) {
	p := newTestProvider(-time.Minute)
	token, err := p.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := p.ValidateAccessToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTProvider_Garbage(t *testing.T) {
	p := newTestProvider(time.Hour)
	if _, err := p.ValidateAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrInvalidToken", err)
	}
}
