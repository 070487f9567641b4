package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/edustore/dashboard/internal/apiclient"
	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockAuthPlatform is a mock implementation of AuthPlatform
type mockAuthPlatform struct {
	result  *models.Envelope[models.LoginResult]
	err     error
	lastReq *models.LoginRequest
}

func (m *mockAuthPlatform) Login(ctx context.Context, req models.LoginRequest) (*models.Envelope[models.LoginResult], error) {
	m.lastReq = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func loginResult(role models.Role, message string) *models.Envelope[models.LoginResult] {
	return &models.Envelope[models.LoginResult]{
		Message: message,
		Data: models.LoginResult{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Account:      models.Account{ID: "u1", Username: "jane", Role: role},
		},
	}
}

func TestRedirectFor(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		redirect string
		expected string
	}{
		{name: "admin", role: models.RoleAdmin, expected: "/admin"},
		{name: "manager", role: models.RoleManager, expected: "/manager"},
		{name: "supporter", role: models.RoleSupporter, expected: "/support"},
		{name: "content creator", role: models.RoleContentCreator, expected: "/content-creator"},
		{name: "expert", role: models.RoleExpert, expected: "/expert"},
		{name: "salesman", role: models.RoleSalesman, expected: "/salesman"},
		{name: "adult", role: models.RoleAdult, expected: "/"},
		{name: "child", role: models.RoleChild, expected: "/kid"},
		{name: "unknown role goes back", role: models.Role("GUEST"), expected: RedirectBack},
		{name: "local redirect wins", role: models.RoleAdmin, redirect: "/blog/abc", expected: "/blog/abc"},
		{name: "scheme relative redirect ignored", role: models.RoleAdult, redirect: "//evil.example.com", expected: "/"},
		{name: "backslash redirect ignored", role: models.RoleAdult, redirect: "/\\evil.example.com", expected: "/"},
		{name: "absolute url ignored", role: models.RoleChild, redirect: "https://evil.example.com", expected: "/kid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RedirectFor(tt.role, tt.redirect))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name             string
		form             forms.LoginForm
		platform         *mockAuthPlatform
		expectedError    bool
		expectedField    string
		expectedRedirect string
		expectedMessage  string
	}{
		{
			name:             "success with platform message",
			form:             forms.LoginForm{LoginKey: " jane@example.com ", Password: "secret1", DeviceID: "d1"},
			platform:         &mockAuthPlatform{result: loginResult(models.RoleContentCreator, "Welcome back")},
			expectedRedirect: "/content-creator",
			expectedMessage:  "Welcome back",
		},
		{
			name:             "success with default message",
			form:             forms.LoginForm{LoginKey: "jane", Password: "secret1", Redirect: "/course/c1"},
			platform:         &mockAuthPlatform{result: loginResult(models.RoleAdult, "")},
			expectedRedirect: "/course/c1",
			expectedMessage:  "Signed in successfully",
		},
		{
			name:          "short password",
			form:          forms.LoginForm{LoginKey: "jane", Password: "123"},
			platform:      &mockAuthPlatform{},
			expectedError: true,
			expectedField: "password",
		},
		{
			name:          "missing login key",
			form:          forms.LoginForm{LoginKey: "  ", Password: "secret1"},
			platform:      &mockAuthPlatform{},
			expectedError: true,
			expectedField: "loginKey",
		},
		{
			name:          "wrong credentials",
			form:          forms.LoginForm{LoginKey: "jane", Password: "secret1"},
			platform:      &mockAuthPlatform{err: &apiclient.Error{Status: 401, Message: "Invalid credentials"}},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.platform, zap.NewNop())

			outcome, err := svc.Login(context.Background(), tt.form)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, outcome)
				if tt.expectedField != "" {
					vErr, ok := validation.AsError(err)
					require.True(t, ok)
					assert.True(t, vErr.Has(tt.expectedField))
					assert.Nil(t, tt.platform.lastReq)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", outcome.AccessToken)
			assert.Equal(t, "refresh", outcome.RefreshToken)
			assert.Equal(t, tt.expectedRedirect, outcome.Redirect)
			assert.Equal(t, tt.expectedMessage, outcome.Message)
			assert.Equal(t, "u1", outcome.Account.ID)
		})
	}
}

func TestAuthService_Login_TrimsLoginKey(t *testing.T) {
	platform := &mockAuthPlatform{result: loginResult(models.RoleAdmin, "")}
	svc := NewAuthService(platform, zap.NewNop())

	_, err := svc.Login(context.Background(), forms.LoginForm{LoginKey: " jane ", Password: "secret1", DeviceID: "d1"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginRequest{LoginKey: "jane", Password: "secret1", DeviceID: "d1"}, *platform.lastReq)
}

func TestAuthService_Login_RemoteMessage(t *testing.T) {
	platform := &mockAuthPlatform{err: &apiclient.Error{Status: 401, Message: "Invalid credentials"}}
	svc := NewAuthService(platform, zap.NewNop())

	_, err := svc.Login(context.Background(), forms.LoginForm{LoginKey: "jane", Password: "secret1"})

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestAuthService_Login_RejectionLogOmitsLoginKey(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	platform := &mockAuthPlatform{err: &apiclient.Error{Status: 401, Message: "Wrong credentials"}}
	svc := NewAuthService(platform, zap.New(core))

	_, err := svc.Login(context.Background(), forms.LoginForm{LoginKey: "jane@example.com", Password: "secret1"})

	require.Error(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "login rejected", entry.Message)
	assert.NotContains(t, entry.ContextMap(), "loginKey")
	for _, v := range entry.ContextMap() {
		assert.NotContains(t, fmt.Sprint(v), "jane@example.com")
	}
}
