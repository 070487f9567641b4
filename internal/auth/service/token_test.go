package service

import (
	"testing"
	"time"

	"github.com/edustore/dashboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestNewTokenValidator(t *testing.T) {
	tv := NewTokenValidator("test-secret-key")

	assert.NotNil(t, tv)
	assert.Equal(t, "test-secret-key", tv.secret)
}

func TestTokenValidator_ValidateAccessToken(t *testing.T) {
	tv := NewTokenValidator(testSecret)
	exp := time.Now().Add(1 * time.Hour).Unix()

	tests := []struct {
		name           string
		token          func(t *testing.T) string
		expectedClaims *Claims
		expectedError  bool
		errorContains  string
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"user_id": "u-1", "role": "ADMIN", "type": "access", "exp": exp})
			},
			expectedClaims: &Claims{UserID: "u-1", Role: models.RoleAdmin},
		},
		{
			name: "sub claim and lowercase role",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"sub": "u-2", "role": "content_creator", "exp": exp})
			},
			expectedClaims: &Claims{UserID: "u-2", Role: models.RoleContentCreator},
		},
		{
			name:          "empty string token",
			token:         func(t *testing.T) string { return "" },
			expectedError: true,
		},
		{
			name:          "malformed JWT",
			token:         func(t *testing.T) string { return "header.payload" },
			expectedError: true,
		},
		{
			name: "wrong signature method - non-HMAC",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "u-1", "role": "ADMIN", "exp": exp})
				tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tokenString
			},
			expectedError: true,
			errorContains: "unexpected signing method",
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"user_id": "u-1", "role": "ADMIN", "type": "refresh", "exp": exp})
			},
			expectedError: true,
			errorContains: "not an access token",
		},
		{
			name: "token without user id",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"role": "ADMIN", "exp": exp})
			},
			expectedError: true,
			errorContains: "user_id not found",
		},
		{
			name: "unknown role",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"user_id": "u-1", "role": "ROOT", "exp": exp})
			},
			expectedError: true,
			errorContains: "role not found",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{"user_id": "u-1", "role": "ADMIN", "exp": time.Now().Add(-1 * time.Hour).Unix()})
			},
			expectedError: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, "wrong-secret", jwt.MapClaims{"user_id": "u-1", "role": "ADMIN", "exp": exp})
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tv.ValidateAccessToken(tt.token(t))

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedClaims, claims)
		})
	}
}
