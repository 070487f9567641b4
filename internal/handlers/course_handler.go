package handlers

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/services"
	"github.com/edustore/dashboard/internal/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CoursePageService is the interface that wraps methods for the course and category pages.
type CoursePageService interface {
	// Method AdminCourses builds the admin course list.
	//
	// "q" carries the keyword and page from the URL. Please reference listquery.Parse for defaults.
	// If the platform call fails, the error will be returned together with "nil" value.
	AdminCourses(ctx context.Context, q listquery.Query) (*services.CourseListPage, error)
	// Method ManagerCourseDetail builds the manager review page of a course.
	//
	// A course that does not exist is reported with a *views.NotFoundError.
	ManagerCourseDetail(ctx context.Context, id string) (*views.CourseDetail, error)
	// Method Categories builds the admin category list.
	//
	// Please reference AdminCourses method for more information about parameters and error values.
	Categories(ctx context.Context, q listquery.Query) (*services.CategoryListPage, error)
	// Method CreateCategory validates the form and creates a category.
	CreateCategory(ctx context.Context, form forms.CategoryForm) (*models.StatusEnvelope, error)
	// Method UpdateCategory validates the form and updates the category identified by "id".
	UpdateCategory(ctx context.Context, id string, form forms.CategoryForm) (*models.StatusEnvelope, error)
	// Method DeleteCategory deletes the category identified by "id".
	DeleteCategory(ctx context.Context, id string) (*models.StatusEnvelope, error)
}

// CourseHandler handles HTTP requests for the admin and manager course pages
type CourseHandler struct {
	BaseHandler
	service CoursePageService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CoursePageService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterAdminRoutes registers the admin course and category routes
func (h *CourseHandler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/courses", h.GetAdminCourses)
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.GetCategories)
			r.Post("/", h.CreateCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})
	})
}

// RegisterManagerRoutes registers the manager course review routes
func (h *CourseHandler) RegisterManagerRoutes(r chi.Router) {
	r.Get("/manager/courses/{id}", h.GetManagerCourse)
}

// GetAdminCourses handles GET /admin/courses
// @Summary Admin course list
// @Description Get one page of courses with statistics, table rows and pager links
// @Tags admin
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.CourseListPage
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /admin/courses [get]
func (h *CourseHandler) GetAdminCourses(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.AdminCourses(platformContext(r), listQuery(r))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetManagerCourse handles GET /manager/courses/{id}
// @Summary Manager course review
// @Description Get a course with its chapters, lessons and quiz questions
// @Tags manager
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} views.CourseDetail
// @Failure 404 {object} ErrorResponse "Course not found, with the not-found view"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /manager/courses/{id} [get]
func (h *CourseHandler) GetManagerCourse(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.ManagerCourseDetail(platformContext(r), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// GetCategories handles GET /admin/categories
// @Summary Admin category list
// @Description Get one page of course categories
// @Tags admin
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.CategoryListPage
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /admin/categories [get]
func (h *CourseHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Categories(platformContext(r), listQuery(r))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// CreateCategory handles POST /admin/categories
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body forms.CategoryForm true "Category"
// @Success 201 {object} models.StatusEnvelope
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /admin/categories [post]
func (h *CourseHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form forms.CategoryForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	resp, err := h.service.CreateCategory(platformContext(r), form)
	if err != nil {
		h.Logger.Info("failed to create category", zap.Error(err))
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// UpdateCategory handles PUT /admin/categories/{id}
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body forms.CategoryForm true "Category"
// @Success 200 {object} models.StatusEnvelope
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /admin/categories/{id} [put]
func (h *CourseHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var form forms.CategoryForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	resp, err := h.service.UpdateCategory(platformContext(r), chi.URLParam(r, "id"), form)
	if err != nil {
		h.Logger.Info("failed to update category", zap.Error(err))
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// DeleteCategory handles DELETE /admin/categories/{id}
// @Summary Delete a category
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.StatusEnvelope
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /admin/categories/{id} [delete]
func (h *CourseHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.DeleteCategory(platformContext(r), chi.URLParam(r, "id"))
	if err != nil {
		h.Logger.Info("failed to delete category", zap.Error(err))
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
