package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvaldez/repairshop-pro/internal/application/auth"
	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/usecase"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/memory"
)

const testSecret = "unit-test-secret"

func TestUserCreate_RoleDefaultsToUser(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	user, err := uc.Create(dto.CreateUserRequest{Username: "tech1", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	_, err := uc.Create(dto.CreateUserRequest{Username: "tech1", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "tech1", Password: "otherpassword"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_InvalidRole(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	_, err := uc.Create(dto.CreateUserRequest{Username: "tech1", Password: "hunter2hunter2", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnsureAdmin_CreatedOnceThenIdempotent(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())

	created, err := uc.EnsureAdmin("admin", "bootstrap-password")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin("admin", "different-password")
	require.NoError(t, err)
	assert.False(t, created, "existing account must not be recreated")
}

func TestEnsureAdmin_SkippedWithoutPassword(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository())
	created, err := uc.EnsureAdmin("admin", "")
	require.NoError(t, err)
	assert.False(t, created)
}

// Login flow against the stored bcrypt hash.
func TestLogin_Flow(t *testing.T) {
	repo := memory.NewUserRepository()
	userUC := usecase.NewUserUseCase(repo)
	authUC := auth.NewUseCase(repo, testSecret, "test", 60)

	created, err := userUC.Create(dto.CreateUserRequest{Username: "dana", Password: "s3cret-pass", Role: "admin"})
	require.NoError(t, err)

	out, err := authUC.Login(dto.LoginRequest{Username: "dana", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)
	assert.Equal(t, "admin", out.User.Role)

	_, err = authUC.Login(dto.LoginRequest{Username: "dana", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = authUC.Login(dto.LoginRequest{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
