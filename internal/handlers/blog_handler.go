package handlers

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BlogService is the interface that wraps methods for the blog pages.
type BlogService interface {
	// Method List builds one page of published blogs.
	//
	// "q" carries the keyword and page from the URL.
	List(ctx context.Context, q listquery.Query) (*services.BlogListPage, error)
	// Method Detail builds a blog page from its id or slug.
	//
	// A blog that does not exist is reported with a *views.NotFoundError.
	Detail(ctx context.Context, id string) (*services.BlogDetail, error)
	// Method MyBlogs builds the caller's blog dashboard with statistics.
	MyBlogs(ctx context.Context, q listquery.Query) (*services.MyBlogsPage, error)
	// Method Create validates the form and creates a blog.
	Create(ctx context.Context, form forms.BlogForm) (*models.BlogBody, error)
	// Method Update validates the form and updates the blog identified by "id".
	Update(ctx context.Context, id string, form forms.BlogForm) (*models.BlogBody, error)
	// Method Comments builds one page of threaded comments of a blog.
	Comments(ctx context.Context, blogID string, q listquery.Query) (*services.CommentsPage, error)
	// Method AddComment posts a comment or a reply on the blog.
	AddComment(ctx context.Context, blogID string, form forms.CommentForm) (*models.StatusEnvelope, error)
	// Method ToggleReact sets the caller's reaction on the blog.
	ToggleReact(ctx context.Context, blogID string, isReact bool) (*models.ReactData, error)
}

// BlogHandler handles HTTP requests for blogs
type BlogHandler struct {
	BaseHandler
	service BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(svc BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// ReactRequest toggles the caller's reaction
type ReactRequest struct {
	IsReact bool `json:"isReact"`
}

// RegisterRoutes registers all blog handler routes.
// Reading is public; writing goes through authMiddleware.
func (h *BlogHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.GetBlogs)
		r.Get("/{id}", h.GetBlog)
		r.Get("/{id}/comments", h.GetComments)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.CreateBlog)
			r.Put("/{id}", h.UpdateBlog)
			r.Post("/{id}/comments", h.CreateComment)
			r.Put("/{id}/react", h.UpdateReact)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me/blogs", h.GetMyBlogs)
	})
}

// GetBlogs handles GET /blogs
// @Summary Blog list
// @Description Get one page of published blogs as cards
// @Tags blogs
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.BlogListPage
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Router /blogs [get]
func (h *BlogHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(platformContext(r), listQuery(r))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetBlog handles GET /blogs/{id}
// @Summary Blog page
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID or slug"
// @Success 200 {object} services.BlogDetail
// @Failure 404 {object} ErrorResponse "Blog not found, with the not-found view"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Detail(platformContext(r), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// GetComments handles GET /blogs/{id}/comments
// @Summary Blog comments
// @Description Get one page of comments with replies nested under their parent
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.CommentsPage
// @Failure 404 {object} ErrorResponse "Blog not found"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Router /blogs/{id}/comments [get]
func (h *BlogHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Comments(platformContext(r), chi.URLParam(r, "id"), listQuery(r))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// GetMyBlogs handles GET /me/blogs
// @Summary My blogs
// @Description Get the caller's blogs with statistics
// @Tags blogs
// @Produce json
// @Param keyword query string false "Search keyword"
// @Param page_size query int false "Items per page (default: 10, max: 100)"
// @Param page_index query int false "Page number (default: 1)"
// @Success 200 {object} services.MyBlogsPage
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /me/blogs [get]
func (h *BlogHandler) GetMyBlogs(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.MyBlogs(platformContext(r), listQuery(r))
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, page)
}

// CreateBlog handles POST /blogs
// @Summary Create a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body forms.BlogForm true "Blog"
// @Success 201 {object} models.BlogBody
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /blogs [post]
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var form forms.BlogForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	body, err := h.service.Create(platformContext(r), form)
	if err != nil {
		h.Logger.Info("failed to create blog", zap.Error(err))
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, body)
}

// UpdateBlog handles PUT /blogs/{id}
// @Summary Update a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body forms.BlogForm true "Blog"
// @Success 200 {object} models.BlogBody
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 404 {object} ErrorResponse "Blog not found"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	var form forms.BlogForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	body, err := h.service.Update(platformContext(r), chi.URLParam(r, "id"), form)
	if err != nil {
		h.Logger.Info("failed to update blog", zap.Error(err))
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, body)
}

// CreateComment handles POST /blogs/{id}/comments
// @Summary Comment on a blog
// @Description Post a comment, or a reply when replyId is set
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body forms.CommentForm true "Comment"
// @Success 201 {object} models.StatusEnvelope
// @Failure 400 {object} ErrorResponse "Invalid form, with field messages"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /blogs/{id}/comments [post]
func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var form forms.CommentForm
	if !h.decodeJSON(w, r, &form) {
		return
	}

	resp, err := h.service.AddComment(platformContext(r), chi.URLParam(r, "id"), form)
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// UpdateReact handles PUT /blogs/{id}/react
// @Summary React to a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body ReactRequest true "Reaction"
// @Success 200 {object} models.ReactData
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Platform API failure"
// @Security ApiKeyAuth
// @Router /blogs/{id}/react [put]
func (h *BlogHandler) UpdateReact(w http.ResponseWriter, r *http.Request) {
	var req ReactRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	data, err := h.service.ToggleReact(platformContext(r), chi.URLParam(r, "id"), req.IsReact)
	if err != nil {
		h.RespondFailure(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, data)
}
