package usecase

import (
	"shareit/internal/pkg/jwt"
)

// TokenValidator resolves a bearer or cookie token to the acting user id.
type TokenValidator interface {
	ValidateToken(tokenString string) (int64, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (int64, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID()
}
