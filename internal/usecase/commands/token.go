package commands

import (
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator checks access tokens for the auth middleware.
type TokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) *TokenValidator {
	return &TokenValidator{jwtService: jwtService}
}

func (v *TokenValidator) ValidateAccessToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	return claims.UserID, role, nil
}
