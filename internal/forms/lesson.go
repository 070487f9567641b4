package forms

import "github.com/edustore/dashboard/internal/models"

const minLessonContent = 50

// LessonForm is the lesson create and edit form.
// Content rules apply only to lesson types that carry a body.
type LessonForm struct {
	Title       string            `json:"title" validate:"min=5"`
	Description string            `json:"description" validate:"min=10"`
	Type        models.LessonType `json:"type" validate:"required,oneof=DOCUMENT VIDEO BOTH"`
	Durations   int               `json:"durations" validate:"gte=0"`
	Content     string            `json:"content"`
	VideoURL    string            `json:"videoUrl" validate:"omitempty,url"`
}

// Normalize trims the single-line fields
func (f *LessonForm) Normalize() {
	f.Title = trim(f.Title)
	f.Description = trim(f.Description)
	f.VideoURL = trim(f.VideoURL)
}

// Submission builds the request body for the lesson type, whatever the user typed into
// the fields the type does not use: DOCUMENT drops the video, VIDEO drops the content.
// uploadedURL, when set, replaces the video URL typed into the form.
func (f LessonForm) Submission(chapterID string, uploadedURL *string) models.CreateLessonRequest {
	req := models.CreateLessonRequest{
		ChapterID:   chapterID,
		Type:        f.Type,
		Title:       f.Title,
		Description: f.Description,
		Durations:   f.Durations,
	}

	if f.Type.HasContent() {
		content := f.Content
		req.Content = &content
	}

	if f.Type.HasVideo() {
		switch {
		case uploadedURL != nil && *uploadedURL != "":
			video := *uploadedURL
			req.VideoURL = &video
		case f.VideoURL != "":
			video := f.VideoURL
			req.VideoURL = &video
		}
	}

	return req
}
