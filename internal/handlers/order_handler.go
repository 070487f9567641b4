package handlers

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderPageService is the interface that wraps methods for the customer order settings page.
type OrderPageService interface {
	// Method SettingsPage loads the refund and exchange tabs.
	//
	// "f" selects the tab and filters that tab's requests by order code and status.
	// Fetch failures are rendered as an error state inside the tab, so no error is returned.
	SettingsPage(ctx context.Context, f services.OrderFilter) *services.SettingsPage
}

// OrderHandler handles HTTP requests for the order settings page
type OrderHandler struct {
	BaseHandler
	service OrderPageService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(svc OrderPageService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all order handler routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/setting/refund", h.GetSettings)
}

// GetSettings handles GET /setting/refund
// @Summary Refund and exchange requests
// @Description Get the caller's refund and exchange requests. The filter applies to the selected tab.
// @Tags settings
// @Produce json
// @Param tab query string false "Selected tab (refund, return)"
// @Param search query string false "Order code search"
// @Param status query string false "Status filter (all or a status value)"
// @Success 200 {object} services.SettingsPage
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security ApiKeyAuth
// @Router /setting/refund [get]
func (h *OrderHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	filter := services.ParseOrderFilter(r.URL.Query())
	h.RespondJSON(w, http.StatusOK, h.service.SettingsPage(platformContext(r), filter))
}
