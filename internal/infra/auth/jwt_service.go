// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"vitashop/config"
	"vitashop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// accessClaims is the wire form of an access token.
type accessClaims struct {
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret string        // Secret key shared with the identity provider.
	accessTTL    time.Duration // Time-to-live for tokens minted by GenerateAccessToken.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := cfg.SecretKey.AccessTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
	}, nil
}

// GenerateAccessToken signs an access token whose subject is the user's ID.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Type: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken verifies the signature, expiry and subject of an access token.
// Tokens carrying a type other than "access" are rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type: %s", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user ID")
	}

	return &service.Claims{
		UserID:           userID,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
