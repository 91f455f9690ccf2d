package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims holds what the shop reads from a verified access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Shoppers obtain tokens from the identity provider; the shop only verifies them.
type TokenService interface {
	// GenerateAccessToken signs an access token for the given user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
