package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for the content creator lesson editor.
type LessonService interface {
	// Method CreateLesson validates the form, uploads the video when the lesson type uses one
	// and creates the lesson in the chapter.
	//
	// The submission is returned even on failure so the editor can show which step failed.
	CreateLesson(ctx context.Context, courseID, chapterID string, form forms.LessonForm, video *services.VideoFile) (*services.LessonSubmission, error)
	// Method UpdateLesson runs the same steps against the lesson identified by "lessonID".
	//
	// Please reference CreateLesson method for more information about return values.
	UpdateLesson(ctx context.Context, lessonID, courseID, chapterID string, form forms.LessonForm, video *services.VideoFile) (*services.LessonSubmission, error)
}

// LessonHandler handles HTTP requests for the lesson editor
type LessonHandler struct {
	BaseHandler
	service        LessonService
	maxUploadBytes int64
}

// NewLessonHandler creates a new lesson handler.
// "maxUploadBytes" bounds the multipart body kept in memory.
func NewLessonHandler(svc LessonService, maxUploadBytes int64, logger *zap.Logger) *LessonHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = forms.DefaultMaxVideoSize
	}
	return &LessonHandler{
		service:        svc,
		maxUploadBytes: maxUploadBytes,
		BaseHandler:    BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/content-creator", func(r chi.Router) {
		r.Post("/courses/{id}/chapters/{chapterId}/lessons", h.CreateLesson)
		r.Put("/lessons/{id}", h.UpdateLesson)
	})
}

// LessonSubmissionResponse is the body of a lesson submission
type LessonSubmissionResponse struct {
	Error      string                     `json:"error,omitempty"`
	Submission *services.LessonSubmission `json:"submission"`
}

// CreateLesson handles POST /content-creator/courses/{id}/chapters/{chapterId}/lessons
// @Summary Create a lesson
// @Description Validate the lesson, upload the optional video and create the lesson. The response lists each step's state.
// @Tags content-creator
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Lesson type (DOCUMENT, VIDEO, BOTH)"
// @Param durations formData int false "Duration in seconds"
// @Param content formData string false "Rich text body"
// @Param videoUrl formData string false "Existing video URL"
// @Param video formData file false "Video file"
// @Success 201 {object} LessonSubmissionResponse
// @Failure 400 {object} LessonSubmissionResponse "Invalid form or video"
// @Failure 502 {object} LessonSubmissionResponse "Upload or save failed"
// @Security ApiKeyAuth
// @Router /content-creator/courses/{id}/chapters/{chapterId}/lessons [post]
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	form, video, closeVideo, ok := h.parseLessonForm(w, r)
	if !ok {
		return
	}
	defer closeVideo()

	sub, err := h.service.CreateLesson(platformContext(r), chi.URLParam(r, "id"), chi.URLParam(r, "chapterId"), form, video)
	h.respondSubmission(w, http.StatusCreated, sub, err)
}

// UpdateLesson handles PUT /content-creator/lessons/{id}
// @Summary Update a lesson
// @Description Same steps as lesson creation against an existing lesson
// @Tags content-creator
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Lesson ID"
// @Param courseId formData string false "Course ID used for the redirect"
// @Param chapterId formData string true "Chapter ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Lesson type (DOCUMENT, VIDEO, BOTH)"
// @Param durations formData int false "Duration in seconds"
// @Param content formData string false "Rich text body"
// @Param videoUrl formData string false "Existing video URL"
// @Param video formData file false "Video file"
// @Success 200 {object} LessonSubmissionResponse
// @Failure 400 {object} LessonSubmissionResponse "Invalid form or video"
// @Failure 502 {object} LessonSubmissionResponse "Upload or save failed"
// @Security ApiKeyAuth
// @Router /content-creator/lessons/{id} [put]
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	form, video, closeVideo, ok := h.parseLessonForm(w, r)
	if !ok {
		return
	}
	defer closeVideo()

	sub, err := h.service.UpdateLesson(platformContext(r), chi.URLParam(r, "id"),
		r.FormValue("courseId"), r.FormValue("chapterId"), form, video)
	h.respondSubmission(w, http.StatusOK, sub, err)
}

// parseLessonForm reads the lesson fields and the optional video from a multipart body
func (h *LessonHandler) parseLessonForm(w http.ResponseWriter, r *http.Request) (forms.LessonForm, *services.VideoFile, func(), bool) {
	noop := func() {}
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.Logger.Error("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return forms.LessonForm{}, nil, noop, false
	}

	form := forms.LessonForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Type:        models.LessonType(strings.ToUpper(strings.TrimSpace(r.FormValue("type")))),
		Content:     r.FormValue("content"),
		VideoURL:    r.FormValue("videoUrl"),
	}
	if durations := r.FormValue("durations"); durations != "" {
		d, err := strconv.Atoi(durations)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid durations")
			return forms.LessonForm{}, nil, noop, false
		}
		form.Durations = d
	}

	file, header, err := r.FormFile(forms.VideoField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			h.Logger.Error("failed to get video file from form", zap.Error(err))
			h.RespondError(w, http.StatusBadRequest, "failed to process video file")
			return forms.LessonForm{}, nil, noop, false
		}
		return form, nil, noop, true
	}

	video := &services.VideoFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return form, video, func() { file.Close() }, true
}

// respondSubmission writes the submission with a status derived from the failed step
func (h *LessonHandler) respondSubmission(w http.ResponseWriter, okStatus int, sub *services.LessonSubmission, err error) {
	if sub == nil {
		h.RespondFailure(w, err)
		return
	}
	if err == nil {
		h.RespondJSON(w, okStatus, LessonSubmissionResponse{Submission: sub})
		return
	}

	h.Logger.Info("lesson submission failed", zap.Error(err))
	status := http.StatusBadGateway
	if sub.Step(services.StepValidate).State == services.StepFailed {
		status = http.StatusBadRequest
	}
	h.RespondJSON(w, status, LessonSubmissionResponse{Error: sub.Message, Submission: sub})
}
