package services

import (
	"context"
	"fmt"
	"io"

	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"go.uber.org/zap"
)

// LessonPlatform is the interface that wraps the platform API calls of the lesson editor
type LessonPlatform interface {
	// Method UploadVideo uploads a lesson video and returns its public URL.
	//
	// "filename" and "contentType" describe the file, "body" is its content.
	//
	// If the upload fails or the platform returns no URL, the error will be returned together with an empty string.
	UploadVideo(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	// Method CreateLesson creates a lesson in the chapter named by the request.
	CreateLesson(ctx context.Context, req models.CreateLessonRequest) (*models.StatusEnvelope, error)
	// Method UpdateLesson replaces the lesson identified by "id".
	UpdateLesson(ctx context.Context, id string, req models.CreateLessonRequest) (*models.StatusEnvelope, error)
}

// StepState is the progress of one submission step
type StepState string

const (
	StepPending   StepState = "pending"
	StepSucceeded StepState = "succeeded"
	StepFailed    StepState = "failed"
	StepSkipped   StepState = "skipped"
)

// Submission step names
const (
	StepValidate = "validate"
	StepUpload   = "upload"
	StepSave     = "save"
)

// Step is one stage of a lesson submission
type Step struct {
	Name    string    `json:"name"`
	State   StepState `json:"state"`
	Message string    `json:"message,omitempty"`
}

// LessonSubmission reports how far a lesson submission got
type LessonSubmission struct {
	Steps       []Step            `json:"steps"`
	Redirect    string            `json:"redirect,omitempty"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Step returns the step named name
func (s *LessonSubmission) Step(name string) Step {
	for _, st := range s.Steps {
		if st.Name == name {
			return st
		}
	}
	return Step{Name: name}
}

func (s *LessonSubmission) set(name string, state StepState, message string) {
	for i := range s.Steps {
		if s.Steps[i].Name == name {
			s.Steps[i].State = state
			s.Steps[i].Message = message
			return
		}
	}
}

// skipRest marks every pending step as skipped
func (s *LessonSubmission) skipRest() {
	for i := range s.Steps {
		if s.Steps[i].State == StepPending {
			s.Steps[i].State = StepSkipped
		}
	}
}

// fail records err on step and skips the steps after it
func (s *LessonSubmission) fail(name string, err error) {
	s.Message = errorMessage(err)
	s.FieldErrors = fieldErrors(err)
	s.set(name, StepFailed, s.Message)
	s.skipRest()
}

// VideoFile is a video attached to the lesson form
type VideoFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type lessonService struct {
	platform    LessonPlatform
	videoPolicy forms.VideoPolicy
	logger      *zap.Logger
}

// NewLessonService creates a new lesson service.
// "maxVideoBytes" bounds attached videos; non-positive values use the default limit.
func NewLessonService(platform LessonPlatform, maxVideoBytes int64, logger *zap.Logger) *lessonService {
	return &lessonService{
		platform:    platform,
		videoPolicy: forms.VideoPolicy{MaxBytes: maxVideoBytes},
		logger:      logger,
	}
}

// ChapterPath is the content creator's chapter page a lesson submission returns to
func ChapterPath(courseID, chapterID string) string {
	return fmt.Sprintf("/content-creator/course/%s/chapter/%s", courseID, chapterID)
}

// CreateLesson validates the form, uploads the attached video when the lesson type uses one,
// then creates the lesson. A failed step skips every step after it.
func (s *lessonService) CreateLesson(ctx context.Context, courseID, chapterID string, form forms.LessonForm, video *VideoFile) (*LessonSubmission, error) {
	return s.submit(ctx, courseID, chapterID, form, video, func(req models.CreateLessonRequest) error {
		_, err := s.platform.CreateLesson(ctx, req)
		return err
	})
}

// UpdateLesson runs the same steps as CreateLesson against an existing lesson
func (s *lessonService) UpdateLesson(ctx context.Context, lessonID, courseID, chapterID string, form forms.LessonForm, video *VideoFile) (*LessonSubmission, error) {
	if lessonID == "" {
		return nil, fmt.Errorf("invalid lesson id")
	}
	return s.submit(ctx, courseID, chapterID, form, video, func(req models.CreateLessonRequest) error {
		_, err := s.platform.UpdateLesson(ctx, lessonID, req)
		return err
	})
}

func (s *lessonService) submit(ctx context.Context, courseID, chapterID string, form forms.LessonForm, video *VideoFile, save func(models.CreateLessonRequest) error) (*LessonSubmission, error) {
	sub := &LessonSubmission{
		Steps: []Step{
			{Name: StepValidate, State: StepPending},
			{Name: StepUpload, State: StepPending},
			{Name: StepSave, State: StepPending},
		},
	}

	if err := s.validate(&form, video); err != nil {
		sub.fail(StepValidate, err)
		return sub, err
	}
	sub.set(StepValidate, StepSucceeded, "")

	var uploadedURL *string
	if video != nil && form.Type.HasVideo() {
		url, err := s.platform.UploadVideo(ctx, video.Name, video.ContentType, video.Body)
		if err != nil {
			s.logger.Error("failed to upload lesson video", zap.String("file", video.Name), zap.Error(err))
			sub.fail(StepUpload, err)
			if sub.FieldErrors == nil {
				sub.FieldErrors = map[string]string{forms.VideoField: sub.Message}
			}
			return sub, fmt.Errorf("failed to upload video: %w", err)
		}
		uploadedURL = &url
		sub.set(StepUpload, StepSucceeded, url)
	} else {
		sub.set(StepUpload, StepSkipped, "")
	}

	if err := save(form.Submission(chapterID, uploadedURL)); err != nil {
		s.logger.Error("failed to save lesson", zap.String("chapterId", chapterID), zap.Error(err))
		sub.fail(StepSave, err)
		return sub, fmt.Errorf("failed to save lesson: %w", err)
	}
	sub.set(StepSave, StepSucceeded, "")

	if courseID != "" && chapterID != "" {
		sub.Redirect = ChapterPath(courseID, chapterID)
	}
	return sub, nil
}

// validate checks the form and, when the lesson type uses one, the attached video
func (s *lessonService) validate(form *forms.LessonForm, video *VideoFile) error {
	vErr := &validation.Error{}
	if err := forms.Validate(form); err != nil {
		formErr, ok := validation.AsError(err)
		if !ok {
			return err
		}
		vErr.Merge(formErr)
	}

	if video != nil && form.Type.HasVideo() {
		if err := s.videoPolicy.Check(video.Name, video.ContentType, video.Size); err != nil {
			videoErr, ok := validation.AsError(err)
			if !ok {
				return err
			}
			vErr.Merge(videoErr)
		}
	}
	return vErr.OrNil()
}
