// Package auth implements credential verification and token issuance for
// the staff login flow.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
	"github.com/rvaldez/repairshop-pro/pkg/jwt"
)

// UseCase verifies credentials against stored bcrypt hashes and issues
// signed bearer tokens.
type UseCase struct {
	users      repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{
		users:      users,
		secret:     secret,
		issuer:     issuer,
		expMinutes: expMinutes,
	}
}

// Login checks the credentials and returns a token plus the user profile.
// Unknown username maps to domain.ErrUserNotFound; a wrong password to
// domain.ErrUnauthorized.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.secret, user.ID, user.Username, user.Role, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
