package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmelo/catalog/pkg/auth"
	"github.com/dmelo/catalog/pkg/response"
	"github.com/google/uuid"
)

type userIDKey struct{}
type roleKey struct{}

// AuthMiddleware validates the bearer token and stores the authenticated
// principal (user ID and role) in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, roleKey{}, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx returns the authenticated user's ID, if any.
func UserIDFromCtx(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey{}).(string)
	return role, ok
}
