package usecase

import (
	"renobooking/internal/domain/user"
	"renobooking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware needs from the token layer.
type TokenValidator interface {
	ValidateToken(raw string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (v *tokenValidator) ValidateToken(raw string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, "", err
	}

	// A token minted before a role rename would carry an unknown role.
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
