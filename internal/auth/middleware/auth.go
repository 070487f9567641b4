package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edustore/dashboard/internal/auth/service"
	"github.com/edustore/dashboard/internal/models"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
	tokenKey  contextKey = "token"
)

// AccessTokenCookie is the cookie the browser keeps the platform access token in
const AccessTokenCookie = "access_token"

// AuthMiddleware validates the JWT access token and stores the caller in the request context
func AuthMiddleware(tokenValidator *service.TokenValidator) func(http.Handler) http.Handler {
	return RoleMiddleware(tokenValidator)
}

// RoleMiddleware validates the JWT access token and checks that the caller holds one of allowed.
// With no roles given any authenticated caller passes.
func RoleMiddleware(tokenValidator *service.TokenValidator, allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			// If no token found, return 401
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := tokenValidator.ValidateAccessToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if len(allowed) > 0 && !hasRole(claims.Role, allowed) {
				writeError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the bearer token from the Authorization header, then from the cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func hasRole(role models.Role, allowed []models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetRole retrieves the caller's role from context
func GetRole(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(roleKey).(models.Role)
	return role, ok
}

// GetToken retrieves the raw access token from context
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
