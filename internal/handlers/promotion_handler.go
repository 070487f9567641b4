package handlers

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/auth/middleware"
	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/services"
	"github.com/edustore/dashboard/internal/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PromotionService is the interface that wraps methods for the salesman promotion pages.
type PromotionService interface {
	// Method List builds one page of promotions whose code or name contains the keyword of "q".
	//
	// If some error will occur during data retrieve, the error will be returned together with "nil" value.
	List(ctx context.Context, q listquery.Query) (*services.PromotionListPage, error)
	// Method Get builds the edit page of the promotion identified by "id".
	//
	// A promotion that does not exist is reported with a *views.NotFoundError.
	Get(ctx context.Context, id string) (*views.PromotionDetail, error)
	// Method Create validates the form and stores a promotion owned by "userID".
	//
	// The new promotion ID is returned. A code used by another promotion is a validation error on "code".
	Create(ctx context.Context, userID string, form forms.PromotionForm) (string, error)
	// Method Update validates the form and replaces the promotion identified by "id".
	//
	// Please reference Create and Get methods for more information about error values.
	Update(ctx context.Context, id string, form forms.PromotionForm) error
	// Method Delete deletes the promotion identified by "id".
	Delete(ctx context.Context, id string) error
}

// PromotionHandler handles HTTP requests for salesman promotions
type PromotionHandler struct {
	BaseHandler
	service PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(svc PromotionService, logger *zap.Logger) *PromotionHandler {
	return &PromotionHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all promotion handler routes
func (h *PromotionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/salesman/promotions", func(r chi.Router) {
		r.Get("/", h.GetPromotions)
		r.Post("/", h.CreatePromotion)
		r.Get("/{id}", h.GetPromotion)
		r.Put("/{id}", h.UpdatePromotion)
		r.Delete("/{id}", h.DeletePromotion)
	})
}

// GetPromotions handles GET /salesman/promotions
// @Summary Promotion list
// @Tags salesman
// @Produce json
// @Param keyword query string false "Code or name search"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.PromotionListPage
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /salesman/promotions [get]
func (h *PromotionHandler) GetPromotions(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), listQuery(r))
	if err != nil {
		h.Logger.Error("failed to get promotions", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get promotions")
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetPromotion handles GET /salesman/promotions/{id}
// @Summary Promotion edit page
// @Tags salesman
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} views.PromotionDetail
// @Failure 404 {object} ErrorResponse "Promotion not found, with the not-found view"
// @Security ApiKeyAuth
// @Router /salesman/promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// CreatePromotion handles POST /salesman/promotions
// @Summary Create a promotion
// @Tags salesman
// @Accept json
// @Produce json
// @Param request body forms.PromotionForm true "Promotion"
// @Success 201 {object} map[string]string "Promotion created"
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Security ApiKeyAuth
// @Router /salesman/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var form forms.PromotionForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	id, err := h.service.Create(r.Context(), userID, form)
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]string{
		"id":      id,
		"message": "promotion created successfully",
	})
}

// UpdatePromotion handles PUT /salesman/promotions/{id}
// @Summary Update a promotion
// @Tags salesman
// @Accept json
// @Param id path string true "Promotion ID"
// @Param request body forms.PromotionForm true "Promotion"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 404 {object} ErrorResponse "Promotion not found"
// @Security ApiKeyAuth
// @Router /salesman/promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	var form forms.PromotionForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), form); err != nil {
		h.RespondFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeletePromotion handles DELETE /salesman/promotions/{id}
// @Summary Delete a promotion
// @Tags salesman
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Promotion not found"
// @Security ApiKeyAuth
// @Router /salesman/promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.RespondFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
