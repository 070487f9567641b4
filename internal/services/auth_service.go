package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/models"
	"go.uber.org/zap"
)

// RedirectBack tells the browser to return to the previous page
const RedirectBack = "back"

// AuthPlatform is the interface that wraps the platform login call
type AuthPlatform interface {
	// Method Login exchanges credentials for platform tokens and the signed-in account.
	//
	// Wrong credentials are a remote error carrying the message to show.
	Login(ctx context.Context, req models.LoginRequest) (*models.Envelope[models.LoginResult], error)
}

// LoginOutcome is the result of a successful sign in
type LoginOutcome struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	Account      models.Account `json:"account"`
	Redirect     string         `json:"redirect"`
	Message      string         `json:"message"`
}

type authService struct {
	platform AuthPlatform
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(platform AuthPlatform, logger *zap.Logger) *authService {
	return &authService{
		platform: platform,
		logger:   logger,
	}
}

// Login validates the form, signs in against the platform and picks the landing page
func (s *authService) Login(ctx context.Context, form forms.LoginForm) (*LoginOutcome, error) {
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}

	env, err := s.platform.Login(ctx, form.Request())
	if err != nil {
		s.logger.Info("login rejected", zap.Error(err))
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	message := env.Message
	if message == "" {
		message = "Signed in successfully"
	}
	return &LoginOutcome{
		AccessToken:  env.Data.AccessToken,
		RefreshToken: env.Data.RefreshToken,
		Account:      env.Data.Account,
		Redirect:     RedirectFor(env.Data.Account.Role, form.Redirect),
		Message:      message,
	}, nil
}

// RedirectFor returns the landing page after sign in.
// A same-site redirect path wins; otherwise each role has its home and unknown roles go back.
func RedirectFor(role models.Role, redirect string) string {
	if redirect = strings.TrimSpace(redirect); isLocalPath(redirect) {
		return redirect
	}
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleManager:
		return "/manager"
	case models.RoleSupporter:
		return "/support"
	case models.RoleContentCreator:
		return "/content-creator"
	case models.RoleExpert:
		return "/expert"
	case models.RoleSalesman:
		return "/salesman"
	case models.RoleAdult:
		return "/"
	case models.RoleChild:
		return "/kid"
	default:
		return RedirectBack
	}
}

// isLocalPath accepts absolute paths on this site and rejects scheme-relative ones such as "//evil.com"
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
