package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gidacan/blog-backend/internal/security"
	"github.com/gidacan/blog-backend/internal/testutil/mocks"
)

func newSeeder(repo *mocks.MockUserRepository) *Seeder {
	return NewSeeder(repo, security.NewPasswordHasherWithCost(bcrypt.MinCost), zap.NewNop())
}

func TestSeeder_InsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockUserRepository()
	s := newSeeder(repo)
	profile := DefaultProfile()

	result, err := s.Run(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, ResultInserted, result)

	user, err := repo.GetByUsernameOrEmail(ctx, profile.Email)
	require.NoError(t, err)
	require.NotNil(t, user, "admin user not created")
	assert.Equal(t, "carla@example.com", user.Email)
	assert.Equal(t, "carla", user.Username)
	assert.Equal(t, "Gidacan", user.LastName)
	assert.Equal(t, 21, user.Age)
	assert.True(t, user.IsAdmin())
	assert.True(t, user.IsActive)
	assert.NotEqual(t, profile.Password, user.Password, "password stored as plaintext")

	// Second run updates in place
	profile.Address = "Cebu, Philippines"
	result, err = s.Run(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, ResultUpdated, result)

	again, err := repo.GetByUsernameOrEmail(ctx, profile.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID, "ID changed across runs")
	assert.Equal(t, "Cebu, Philippines", again.Address)
}

func TestSeeder_InvalidProfile(t *testing.T) {
	s := newSeeder(mocks.NewMockUserRepository())

	_, err := s.Run(context.Background(), Profile{Username: "x", Password: "y"})
	assert.Error(t, err, "missing email must fail")
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	content := []byte(`firstName: Carla
lastName: Smith
username: carla
email: carla@example.com
password: "12345"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "carla@example.com", p.Email)
	assert.Equal(t, "12345", p.Password)
	assert.Equal(t, "Carla", p.FirstName)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile("/nonexistent/profile.yaml")
	assert.Error(t, err)
}

func TestLoadProfile_IncompleteProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("firstName: Carla\n"), 0o600))

	_, err := LoadProfile(path)
	assert.Error(t, err, "profile without credentials must be rejected")
}
