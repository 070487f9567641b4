package models

import "time"

// Course represents a course as returned by the platform API
type Course struct {
	IsDeleted        bool       `json:"isDeleted"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	ID               string     `json:"id" validate:"required"`
	CreatorID        string     `json:"creatorId"`
	Title            string     `json:"title"`
	TitleNoTone      string     `json:"titleNoTone"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	Durations        int        `json:"durations" validate:"gte=0"`
	ImageURL         string     `json:"imageUrl"`
	ImageBanner      string     `json:"imageBanner"`
	Price            float64    `json:"price" validate:"gte=0"`
	Discount         float64    `json:"discount" validate:"gte=0,lte=100"`
	TotalEnrollment  int        `json:"totalEnrollment" validate:"gte=0"`
	AveRating        float64    `json:"aveRating" validate:"gte=0,lte=5"`
	IsBanned         bool       `json:"isBanned"`
	IsCustom         bool       `json:"isCustom"`
	Level            string     `json:"level"`
	CensorID         *string    `json:"censorId,omitempty"`
	DurationsDisplay string     `json:"durationsDisplay"`
	AgeStage         string     `json:"ageStage"`
	IsCombo          bool       `json:"isCombo"`
	IsVisible        bool       `json:"isVisible"`
	Creator          *UserRef   `json:"creator,omitempty"`
	Censor           *UserRef   `json:"censor,omitempty"`
	Categories       []NamedRef `json:"categories" validate:"dive"`
	Chapters         []Chapter  `json:"chapters" validate:"dive"`
}

func (Course) StrictKeys() {}

// Chapter is a course chapter with its ordered lessons and optional quiz
type Chapter struct {
	ID               string     `json:"id" validate:"required"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Durations        int        `json:"durations" validate:"gte=0"`
	DurationsDisplay string     `json:"durationsDisplay"`
	Sequence         int        `json:"sequence" validate:"gte=0"`
	Lessons          []Lesson   `json:"lessons" validate:"dive"`
	Questions        []Question `json:"questions,omitempty" validate:"omitempty,dive"`
}

// ChapterInfo is a chapter as listed by the chapter endpoints
type ChapterInfo struct {
	ID          string  `json:"id" validate:"required"`
	CreatorID   string  `json:"creatorId"`
	CourseID    string  `json:"courseId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Durations   int     `json:"durations" validate:"gte=0"`
	Sequence    int     `json:"sequence" validate:"gte=0"`
	Creator     UserRef `json:"creator"`
}

func (ChapterInfo) StrictKeys() {}

// Question is a quiz question attached to a chapter
type Question struct {
	IsDeleted       bool             `json:"isDeleted"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	ID              string           `json:"id" validate:"required"`
	Content         string           `json:"content"`
	NumCorrect      int              `json:"numCorrect" validate:"gte=0"`
	QuestionOptions []QuestionOption `json:"questionOptions" validate:"dive"`
}

// QuestionOption is one answer of a quiz question
type QuestionOption struct {
	IsDeleted  bool      `json:"isDeleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ID         string    `json:"id" validate:"required"`
	QuestionID string    `json:"questionId"`
	OptionData string    `json:"optionData"`
	IsCorrect  bool      `json:"isCorrect"`
}

// Category is a course or blog category
type Category struct {
	ID                 string    `json:"id" validate:"required"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	IsDeleted          bool      `json:"isDeleted,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	CreatedAtFormatted string    `json:"createdAtFormatted,omitempty"`
	UpdatedAtFormatted string    `json:"updatedAtFormatted,omitempty"`
}

// CategoryRequest is the body for creating or updating a category
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateCourseRequest is the body for creating a course
type CreateCourseRequest struct {
	CategoryIDs []string `json:"categoryIds"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	ImageBanner string   `json:"imageBanner"`
	Price       float64  `json:"price"`
	Discount    float64  `json:"discount"`
	Level       string   `json:"level"`
}

// CreateCustomCourseRequest is the body for assembling a custom course from chapters
type CreateCustomCourseRequest struct {
	ChapterIDs        []string `json:"chapterIds"`
	CustomTitle       string   `json:"customTitle"`
	CustomDescription string   `json:"customDescription"`
	CustomImageURL    string   `json:"customImageUrl"`
}

// UpdateQuizScoreRequest is the body for recording a quiz attempt
type UpdateQuizScoreRequest struct {
	ChapterID string  `json:"chapterId"`
	Score     float64 `json:"score"`
}

// QuizScore is the recorded quiz result
type QuizScore struct {
	Score    float64 `json:"score"`
	Attempts int     `json:"attempts" validate:"gte=0"`
}

// ReactData is the reaction state of the current user on an entity
type ReactData struct {
	TotalReacts int  `json:"totalReacts" validate:"gte=0"`
	IsReact     bool `json:"isReact"`
}

func (ReactData) StrictKeys() {}

// UpdateReactRequest toggles a reaction
type UpdateReactRequest struct {
	Identifier string `json:"identifier"`
	IsReact    bool   `json:"isReact"`
}

// CourseReview aggregates ratings of a course
type CourseReview struct {
	RatingInfos []RatingInfo `json:"ratingInfos" validate:"dive"`
	Stars       StarSummary  `json:"stars"`
}

// RatingInfo is one user review
type RatingInfo struct {
	Review             string  `json:"review"`
	Rating             float64 `json:"rating" validate:"gte=0,lte=5"`
	CreatedAtFormatted string  `json:"createdAtFormatted"`
	UpdatedAtFormatted string  `json:"updatedAtFormatted"`
	User               UserRef `json:"user"`
}

// StarSummary is the star histogram keyed "1".."5"
type StarSummary struct {
	TotalRating   int            `json:"totalRating" validate:"gte=0"`
	Ratings       map[string]int `json:"ratings" validate:"required,dive,gte=0"`
	AverageRating float64        `json:"averageRating" validate:"gte=0,lte=5"`
}

// UserCourseProgress is a learner's progress through one course
type UserCourseProgress struct {
	Status                        string            `json:"status"`
	Title                         string            `json:"title"`
	ImageURL                      string            `json:"imageUrl"`
	Description                   string            `json:"description"`
	Chapters                      []ChapterProgress `json:"chapters" validate:"dive"`
	TotalLessonsInCourse          int               `json:"totalLessonsInCourse" validate:"gte=0"`
	TotalCompletedLessonsInCourse int               `json:"totalCompletedLessonsInCourse" validate:"gte=0"`
	CourseCompletionPercentage    float64           `json:"courseCompletionPercentage" validate:"gte=0,lte=100"`
}

// ChapterProgress is a chapter within a learner's progress
type ChapterProgress struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Durations        int              `json:"durations"`
	DurationsDisplay string           `json:"durationsDisplay"`
	Sequence         int              `json:"sequence"`
	Status           string           `json:"status"`
	IsTakeQuiz       bool             `json:"isTakeQuiz"`
	IsQuestion       bool             `json:"isQuestion"`
	Lessons          []LessonProgress `json:"lessons" validate:"dive"`
	Questions        []Question       `json:"questions,omitempty" validate:"omitempty,dive"`
}

// LessonProgress is a lesson within a learner's progress
type LessonProgress struct {
	ID               string     `json:"id"`
	Type             LessonType `json:"type" validate:"oneof=DOCUMENT VIDEO BOTH"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Durations        int        `json:"durations"`
	DurationsDisplay string     `json:"durationsDisplay"`
	Sequence         int        `json:"sequence"`
	Status           string     `json:"status"`
}

// CourseCombo is a bundle of courses sold together
type CourseCombo struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name"`
	NameNoTone  string       `json:"nameNoTone"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Price       float64      `json:"price" validate:"gte=0"`
	Discount    float64      `json:"discount" validate:"gte=0,lte=100"`
	ImageURL    string       `json:"imageUrl"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	CourseInfos []ComboEntry `json:"courseInfos" validate:"dive"`
}

// ComboEntry is a course summary inside a combo
type ComboEntry struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	TitleNoTone     string  `json:"titleNoTone"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	Durations       int     `json:"durations"`
	ImageURL        string  `json:"imageUrl"`
	ImageBanner     string  `json:"imageBanner"`
	Price           float64 `json:"price" validate:"gte=0"`
	Discount        float64 `json:"discount" validate:"gte=0,lte=100"`
	TotalEnrollment int     `json:"totalEnrollment" validate:"gte=0"`
	AveRating       float64 `json:"aveRating" validate:"gte=0,lte=5"`
}

// PreviewLessons is the free preview of a course's first chapter
type PreviewLessons struct {
	Course         PreviewCourse   `json:"course"`
	PreviewChapter PreviewChapter  `json:"previewChapter"`
	PreviewLessons []PreviewLesson `json:"previewLessons" validate:"dive"`
}

// PreviewCourse is the course summary shown on a preview
type PreviewCourse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Durations        int     `json:"durations"`
	DurationsDisplay string  `json:"durationsDisplay"`
	ImageURL         string  `json:"imageUrl"`
	ImageBanner      string  `json:"imageBanner"`
	TotalChapters    int     `json:"totalChapters"`
	TotalLessons     int     `json:"totalLessons"`
	Price            float64 `json:"price"`
	Rating           float64 `json:"rating"`
}

// PreviewChapter is the chapter a preview is taken from
type PreviewChapter struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
}

// PreviewLesson is a lesson visible without enrollment
type PreviewLesson struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Durations        int        `json:"durations"`
	DurationsDisplay string     `json:"durationsDisplay"`
	Sequence         int        `json:"sequence"`
	Type             LessonType `json:"type" validate:"oneof=DOCUMENT VIDEO BOTH"`
	Content          string     `json:"content"`
	VideoURL         string     `json:"videoUrl"`
	Status           string     `json:"status"`
}
