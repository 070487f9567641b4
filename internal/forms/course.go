package forms

import "github.com/edustore/dashboard/internal/models"

// CourseForm is the course create and edit form
type CourseForm struct {
	CategoryIDs []string `json:"categoryIds" validate:"min=1"`
	Title       string   `json:"title" validate:"min=5"`
	Description string   `json:"description" validate:"min=10"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
	ImageBanner string   `json:"imageBanner" validate:"omitempty,url"`
	Price       float64  `json:"price" validate:"gte=0"`
	Discount    float64  `json:"discount" validate:"gte=0,lte=100"`
	Level       string   `json:"level" validate:"required"`
}

// Request converts the form into the platform request body
func (f CourseForm) Request() models.CreateCourseRequest {
	return models.CreateCourseRequest{
		CategoryIDs: f.CategoryIDs,
		Title:       f.Title,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		ImageBanner: f.ImageBanner,
		Price:       f.Price,
		Discount:    f.Discount,
		Level:       f.Level,
	}
}

// ChapterForm is the chapter create form
type ChapterForm struct {
	Title       string `json:"title" validate:"min=3,max=255"`
	Description string `json:"description" validate:"min=10,max=255"`
	CourseID    string `json:"courseId" validate:"required"`
}

// Normalize trims surrounding whitespace
func (f *ChapterForm) Normalize() {
	f.Title = trim(f.Title)
	f.Description = trim(f.Description)
	f.CourseID = trim(f.CourseID)
}

// Request converts the form into the platform request body
func (f ChapterForm) Request() models.CreateChapterRequest {
	return models.CreateChapterRequest{Title: f.Title, Description: f.Description, CourseID: f.CourseID}
}

// ChapterUpdateForm is the chapter edit form; the course cannot change.
type ChapterUpdateForm struct {
	Title       string `json:"title" validate:"min=3,max=255"`
	Description string `json:"description" validate:"min=10,max=255"`
}

// Normalize trims surrounding whitespace
func (f *ChapterUpdateForm) Normalize() {
	f.Title = trim(f.Title)
	f.Description = trim(f.Description)
}

// Request converts the form into the platform request body, without a course id
func (f ChapterUpdateForm) Request() models.CreateChapterRequest {
	return models.CreateChapterRequest{Title: f.Title, Description: f.Description}
}

// CategoryForm is the category create and edit form
type CategoryForm struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
}

// Normalize trims surrounding whitespace
func (f *CategoryForm) Normalize() {
	f.Name = trim(f.Name)
	f.Description = trim(f.Description)
}

// Request converts the form into the platform request body
func (f CategoryForm) Request() models.CategoryRequest {
	return models.CategoryRequest{Name: f.Name, Description: f.Description}
}

// CustomCourseForm assembles a personal course from existing chapters
type CustomCourseForm struct {
	ChapterIDs        []string `json:"chapterIds" validate:"min=1"`
	CustomTitle       string   `json:"customTitle" validate:"min=5"`
	CustomDescription string   `json:"customDescription" validate:"min=10"`
	CustomImageURL    string   `json:"customImageUrl" validate:"omitempty,url"`
}

// Request converts the form into the platform request body
func (f CustomCourseForm) Request() models.CreateCustomCourseRequest {
	return models.CreateCustomCourseRequest{
		ChapterIDs:        f.ChapterIDs,
		CustomTitle:       f.CustomTitle,
		CustomDescription: f.CustomDescription,
		CustomImageURL:    f.CustomImageURL,
	}
}

// QuizScoreForm records the score of a chapter quiz
type QuizScoreForm struct {
	ChapterID string  `json:"chapterId" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
}

// Request converts the form into the platform request body
func (f QuizScoreForm) Request() models.UpdateQuizScoreRequest {
	return models.UpdateQuizScoreRequest{ChapterID: f.ChapterID, Score: f.Score}
}
