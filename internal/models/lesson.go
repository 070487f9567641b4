package models

// LessonType selects which of a lesson's content and video are populated
type LessonType string

const (
	LessonTypeDocument LessonType = "DOCUMENT"
	LessonTypeVideo    LessonType = "VIDEO"
	LessonTypeBoth     LessonType = "BOTH"
)

// LessonTypes lists every lesson type in display order
var LessonTypes = []LessonType{LessonTypeDocument, LessonTypeVideo, LessonTypeBoth}

// ParseLessonType returns the lesson type named by s
func ParseLessonType(s string) (LessonType, bool) {
	switch t := LessonType(s); t {
	case LessonTypeDocument, LessonTypeVideo, LessonTypeBoth:
		return t, true
	}
	return "", false
}

// HasContent reports whether lessons of this type carry a rich-text body
func (t LessonType) HasContent() bool {
	switch t {
	case LessonTypeDocument, LessonTypeBoth:
		return true
	case LessonTypeVideo:
		return false
	}
	return false
}

// HasVideo reports whether lessons of this type carry a video
func (t LessonType) HasVideo() bool {
	switch t {
	case LessonTypeVideo, LessonTypeBoth:
		return true
	case LessonTypeDocument:
		return false
	}
	return false
}

// Lesson represents a lesson inside a chapter.
// Content is set only for DOCUMENT and BOTH, VideoURL only for VIDEO and BOTH.
type Lesson struct {
	ID               string     `json:"id" validate:"required"`
	ChapterID        string     `json:"chapterId"`
	Type             LessonType `json:"type" validate:"oneof=DOCUMENT VIDEO BOTH"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Durations        int        `json:"durations" validate:"gte=0"`
	Content          *string    `json:"content"`
	VideoURL         *string    `json:"videoUrl"`
	Sequence         int        `json:"sequence" validate:"gte=0"`
	DurationsDisplay string     `json:"durationsDisplay,omitempty"`
	Creator          *UserRef   `json:"creator,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// CreateLessonRequest is the body sent to create a lesson
type CreateLessonRequest struct {
	ChapterID   string     `json:"chapterId,omitempty"`
	Type        LessonType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Durations   int        `json:"durations"`
	Content     *string    `json:"content"`
	VideoURL    *string    `json:"videoUrl"`
}

// CreateChapterRequest is the body sent to create or update a chapter
type CreateChapterRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CourseID    string `json:"courseId,omitempty"`
}

