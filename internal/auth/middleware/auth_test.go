package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edustore/dashboard/internal/auth/service"
	"github.com/edustore/dashboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signToken(t *testing.T, userID string, role models.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tokenString
}

func TestRoleMiddleware(t *testing.T) {
	tv := service.NewTokenValidator(testSecret)
	adminToken := signToken(t, "u-admin", models.RoleAdmin)
	salesmanToken := signToken(t, "u-sales", models.RoleSalesman)

	tests := []struct {
		name           string
		allowed        []models.Role
		setupRequest   func(r *http.Request)
		expectedStatus int
		expectedBody   string
		expectedUserID string
	}{
		{
			name:           "missing token",
			allowed:        []models.Role{models.RoleAdmin},
			setupRequest:   func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"authentication required"}`,
		},
		{
			name:    "invalid token",
			allowed: []models.Role{models.RoleAdmin},
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer not-a-token")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid or expired token"}`,
		},
		{
			name:    "role not allowed",
			allowed: []models.Role{models.RoleAdmin, models.RoleManager},
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+salesmanToken)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"insufficient permissions"}`,
		},
		{
			name:    "allowed role from header",
			allowed: []models.Role{models.RoleAdmin, models.RoleManager},
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+adminToken)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "u-admin",
		},
		{
			name:    "any authenticated caller from cookie",
			allowed: nil,
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: salesmanToken})
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "u-sales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID, gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				gotToken = GetToken(r.Context())
				role, ok := GetRole(r.Context())
				assert.True(t, ok)
				assert.True(t, role.Known())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			RoleMiddleware(tv, tt.allowed...)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			assert.Equal(t, tt.expectedUserID, gotUserID)
			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, gotToken)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	tv := service.NewTokenValidator(testSecret)
	token := signToken(t, "u-child", models.RoleChild)

	var gotRole models.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = GetRole(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	AuthMiddleware(tv)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleChild, gotRole)
}
