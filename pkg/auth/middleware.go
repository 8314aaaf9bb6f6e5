package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/sacco/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

const adminRole = "ADMIN"

var ErrInvalidSession = errors.New("invalid session")

// SessionValidator resolves a bearer token to the caller's current identity.
// Tokens that are malformed, expired or belong to a removed user yield
// ErrInvalidSession.
type SessionValidator interface {
	ValidateSession(ctx context.Context, tokenString string) (*Claims, error)
}

func AuthMiddleware(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := sessions.ValidateSession(r.Context(), token)
			if errors.Is(err, ErrInvalidSession) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, role := Identity(r.Context()); role != adminRole {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Identity returns the user id and role put in ctx by AuthMiddleware.
func Identity(ctx context.Context) (int, string) {
	userID, _ := ctx.Value(UserIDKey).(int)
	role, _ := ctx.Value(RoleKey).(string)
	return userID, role
}
