package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ametov/pointhub/internal/auth"
	"github.com/ametov/pointhub/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const userKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey).(*models.User)
	return u, ok
}

// RequireAuth validates the bearer token and resolves its subject to a stored
// user, which is attached to the request context. Every failure — missing
// header, malformed token, expired or forged signature, unknown subject —
// results in a bare 401 with no body, so the response never reveals which
// check failed.
func RequireAuth(jwtManager *auth.JWTManager, users auth.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			username, err := jwtManager.Validate(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetUserByUsername(r.Context(), username)
			if err != nil || user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
