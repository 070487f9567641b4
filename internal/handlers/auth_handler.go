package handlers

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/auth/middleware"
	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps the sign in flow.
type AuthService interface {
	// Method Login validates the form, signs in against the platform and picks the landing page.
	//
	// Wrong credentials are returned as the platform error carrying the message to show.
	Login(ctx context.Context, form forms.LoginForm) (*services.LoginOutcome, error)
}

// AuthHandler handles HTTP requests for sign in
type AuthHandler struct {
	BaseHandler
	service      AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler.
// "secureCookie" marks the token cookie as HTTPS only.
func NewAuthHandler(svc AuthService, secureCookie bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      svc,
		secureCookie: secureCookie,
		BaseHandler:  BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
}

// Login handles POST /auth/login
// @Summary Sign in
// @Description Sign in against the platform. The access token is also set as a cookie and the response names the landing page.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body forms.LoginForm true "Credentials"
// @Success 200 {object} services.LoginOutcome
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 401 {object} ErrorResponse "Wrong credentials"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form forms.LoginForm
	if !h.decodeJSON(w, r, &form) {
		return
	}
	if form.Redirect == "" {
		form.Redirect = r.URL.Query().Get("redirect")
	}

	outcome, err := h.service.Login(r.Context(), form)
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	if outcome.AccessToken != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.AccessTokenCookie,
			Value:    outcome.AccessToken,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	h.RespondJSON(w, http.StatusOK, outcome)
}
