package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for end-user token operations.
// Request authentication is an external collaborator boundary; only
// verification is exercised by this service.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token TTL.
	GetRefreshTokenDuration() time.Duration
}
