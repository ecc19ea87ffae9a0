package usecase

import (
	"context"
	"errors"
	"log/slog"

	"renobooking/internal/domain/user"
	"renobooking/internal/infra"
	"renobooking/internal/pkg/errs"
	"renobooking/internal/pkg/jwt"
	"renobooking/internal/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type LoginResult struct {
	Token string
	User  *user.User
}

type AuthUseCase interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login deliberately reports the same error for an unknown email, a wrong
// password, and a deactivated account.
func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	u, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to find user"), ErrDatabaseOperationFailed)
	}

	if !u.IsActive() {
		slog.Warn("login attempt for inactive account", "user_id", u.ID())
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: u}, nil
}
