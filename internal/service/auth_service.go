package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ametov/pointhub/internal/auth"
)

// ErrMissingCredentials is returned when login or password is absent.
var ErrMissingCredentials = errors.New("login and password are required")

// AuthService orchestrates registration and login: credential checks through
// the password authenticator, then token issue.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account and returns a token for it, so a fresh
// registration is immediately logged in. Returns auth.ErrUserExists if the
// username is taken.
func (s *AuthService) Register(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.authenticator.Register(ctx, login, password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			s.logger.Warn("Registration conflict", "username", login)
			return "", err
		}
		s.logger.Error("Registration failed", "username", login, "error", err)
		return "", err
	}

	token, err := s.jwtManager.Issue(user.Username)
	if err != nil {
		s.logger.Error("Failed to issue token", "username", login, "error", err)
		return "", err
	}

	s.logger.Info("User registered", "username", user.Username, "user_id", user.ID)
	return token, nil
}

// Login authenticates a user and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, login, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", login)
		return "", err
	}

	token, err := s.jwtManager.Issue(user.Username)
	if err != nil {
		s.logger.Error("Failed to issue token", "username", login, "error", err)
		return "", err
	}

	s.logger.Info("User logged in", "username", user.Username)
	return token, nil
}
