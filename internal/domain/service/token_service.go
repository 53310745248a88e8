package service

import (
	"placehub/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the identity information carried by an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      entity.Role
	Superuser bool
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)
}
