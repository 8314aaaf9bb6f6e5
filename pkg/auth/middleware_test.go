package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// currentRoles validates tokens with the JWT service and replaces the role
// with the one stored for the user, like the auth service does.
type currentRoles struct {
	jwt   *JWTService
	roles map[int]string
	err   error
}

func (c currentRoles) ValidateSession(_ context.Context, token string) (*Claims, error) {
	claims, err := c.jwt.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if c.err != nil {
		return nil, c.err
	}
	role, ok := c.roles[claims.UserID]
	if !ok {
		return nil, ErrInvalidSession
	}
	claims.Role = role
	return claims, nil
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	memberToken, _ := jwtService.GenerateJWT(7, "MEMBER", time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT(1, "ADMIN", time.Now().Add(time.Hour))
	demotedToken, _ := jwtService.GenerateJWT(2, "ADMIN", time.Now().Add(time.Hour))
	removedToken, _ := jwtService.GenerateJWT(3, "ADMIN", time.Now().Add(time.Hour))

	sessions := currentRoles{
		jwt:   jwtService,
		roles: map[int]string{1: "ADMIN", 2: "MEMBER", 7: "MEMBER"},
	}

	var gotID int
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotRole = Identity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		header       string
		admin        bool
		sessions     SessionValidator
		expectedCode int
		expectedID   int
		expectedRole string
	}{
		{name: "Missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Not a bearer token", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer garbage", expectedCode: http.StatusUnauthorized},
		{name: "Member token", header: "Bearer " + memberToken, expectedCode: http.StatusOK, expectedID: 7, expectedRole: "MEMBER"},
		{name: "Member on admin route", header: "Bearer " + memberToken, admin: true, expectedCode: http.StatusForbidden},
		{name: "Admin on admin route", header: "Bearer " + adminToken, admin: true, expectedCode: http.StatusOK, expectedID: 1, expectedRole: "ADMIN"},
		{name: "Demoted admin on admin route", header: "Bearer " + demotedToken, admin: true, expectedCode: http.StatusForbidden},
		{name: "Demoted admin keeps member access", header: "Bearer " + demotedToken, expectedCode: http.StatusOK, expectedID: 2, expectedRole: "MEMBER"},
		{name: "Removed user", header: "Bearer " + removedToken, admin: true, expectedCode: http.StatusUnauthorized},
		{
			name:         "Identity lookup fails",
			header:       "Bearer " + adminToken,
			sessions:     currentRoles{jwt: jwtService, err: errors.New("db error")},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotRole = 0, ""
			validator := tt.sessions
			if validator == nil {
				validator = sessions
			}
			var handler http.Handler = next
			if tt.admin {
				handler = AdminOnly(handler)
			}
			handler = AuthMiddleware(validator)(handler)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedID, gotID)
			assert.Equal(t, tt.expectedRole, gotRole)
		})
	}
}
