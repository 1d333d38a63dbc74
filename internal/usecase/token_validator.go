package usecase

import (
	"shop-winback/internal/pkg/errs"
	"shop-winback/internal/pkg/jwt"
)

var ErrNotOperator = errs.New("token does not carry the operator role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (operator string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if claims.Role != jwt.RoleOperator || claims.Operator == "" {
		return "", ErrNotOperator
	}

	return claims.Operator, nil
}
