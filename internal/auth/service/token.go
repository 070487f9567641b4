package service

import (
	"fmt"
	"strings"

	"github.com/edustore/dashboard/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the caller details carried by a platform access token
type Claims struct {
	UserID string
	Role   models.Role
}

// TokenValidator checks access tokens issued by the platform
type TokenValidator struct {
	secret string
}

// NewTokenValidator creates a new token validator for tokens signed with secret
func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{secret: secret}
}

// ValidateAccessToken validates an access token and returns its claims.
// Tokens that declare a type must be access tokens; the user id is read from "user_id" or "sub".
func (tv *TokenValidator) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tv.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if tokenType, present := claims["type"]; present {
		if s, ok := tokenType.(string); !ok || s != "access" {
			return nil, fmt.Errorf("token is not an access token")
		}
	}

	userID := stringClaim(claims, "user_id")
	if userID == "" {
		userID = stringClaim(claims, "sub")
	}
	if userID == "" {
		return nil, fmt.Errorf("user_id not found in token")
	}

	role := models.Role(strings.ToUpper(stringClaim(claims, "role")))
	if !role.Known() {
		return nil, fmt.Errorf("role not found in token")
	}

	return &Claims{UserID: userID, Role: role}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	s, _ := claims[name].(string)
	return strings.TrimSpace(s)
}
