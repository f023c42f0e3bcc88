package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every validation failure: malformed, forged,
	// altered, and expired tokens all collapse to this one error so the
	// response never reveals which check failed. The specific cause is
	// logged instead.
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// TokenTTL is the fixed lifetime of every issued token.
const TokenTTL = 30 * time.Minute

// JWTManager issues and validates bearer tokens. Tokens are HS256-signed with
// a process-wide symmetric key and carry the username as subject.
type JWTManager struct {
	secretKey []byte
	ttl       time.Duration
	logger    *slog.Logger
}

// NewJWTManager creates a JWT manager with the given secret and token
// lifetime. secretKey should be a strong random string (e.g. 32 bytes).
func NewJWTManager(secretKey string, ttl time.Duration, logger *slog.Logger) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		logger:    logger,
	}
}

// Issue creates a signed token for the given username.
func (m *JWTManager) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token, returning the subject username.
// Any failure returns ErrInvalidToken.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		m.logger.Debug("Token rejected", "error", err)
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
