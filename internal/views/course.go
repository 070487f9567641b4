package views

import (
	"math"

	"github.com/edustore/dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceholderCourseImage is shown for courses without a thumbnail
const PlaceholderCourseImage = "/placeholder-course.jpg"

// CourseStats are the aggregates shown above the admin course table
type CourseStats struct {
	TotalCourses     int     `json:"totalCourses"`
	TotalEnrollments int     `json:"totalEnrollments"`
	AverageRating    float64 `json:"averageRating"`
	BannedCourses    int     `json:"bannedCourses"`
}

// NewCourseStats aggregates one fetched page. total is the remote item count;
// the average over an empty page is 0.
func NewCourseStats(total int, courses []models.Course) CourseStats {
	stats := CourseStats{TotalCourses: total}
	var ratingSum float64
	for _, c := range courses {
		stats.TotalEnrollments += c.TotalEnrollment
		ratingSum += c.AveRating
		if c.IsBanned {
			stats.BannedCourses++
		}
	}
	if len(courses) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(courses))*10) / 10
	}
	return stats
}

// AdminCourseColumns are the columns of the admin course table
func AdminCourseColumns() []ColumnDef[models.Course] {
	return []ColumnDef[models.Course]{
		{
			Key:   "course",
			Label: "Course",
			Render: func(c models.Course) Cell {
				image := c.ImageURL
				if image == "" {
					image = PlaceholderCourseImage
				}
				title := c.Title
				if title == "" {
					title = "Untitled Course"
				}
				description := c.Description
				if description == "" {
					description = "No description"
				}
				return Cell{Kind: CellMedia, Text: title, SubText: description, ImageURL: image}
			},
		},
		{
			Key:    "createdAt",
			Label:  "Created",
			Render: func(c models.Course) Cell { return DateTimeCell(c.CreatedAt) },
		},
		{
			Key:   "creator",
			Label: "Creator",
			Render: func(c models.Course) Cell {
				if c.Creator == nil || c.Creator.Username == "" {
					return TextCell("N/A", "")
				}
				return TextCell(c.Creator.Username, "")
			},
		},
		{
			Key:   "censor",
			Label: "Reviewed by",
			Render: func(c models.Course) Cell {
				if c.Censor == nil || c.Censor.Username == "" {
					return TextCell("Not reviewed", "")
				}
				return TextCell(c.Censor.Username, "")
			},
		},
		{
			Key:   "price",
			Label: "Price",
			Render: func(c models.Course) Cell {
				final := FormatPrice(DiscountedPrice(c.Price, c.Discount))
				if c.Discount <= 0 {
					return TextCell(final, "")
				}
				return TextCell(final, FormatPrice(decimal.NewFromFloat(c.Price)))
			},
		},
		{
			Key:    "status",
			Label:  "Status",
			Render: func(c models.Course) Cell { return BadgeCell(CourseStatusBadge(c.IsBanned)) },
		},
		{
			Key:   "actions",
			Label: "",
			Render: func(c models.Course) Cell {
				return ActionsCell(Action{Label: "View", Href: "/admin/course/" + c.ID})
			},
		},
	}
}

// CategoryColumns are the columns of the category management table
func CategoryColumns(basePath string) []ColumnDef[models.Category] {
	return []ColumnDef[models.Category]{
		{
			Key:    "name",
			Label:  "Name",
			Render: func(c models.Category) Cell { return TextCell(c.Name, c.Description) },
		},
		{
			Key:    "createdAt",
			Label:  "Created",
			Render: func(c models.Category) Cell { return DateTimeCell(c.CreatedAt) },
		},
		{
			Key:    "updatedAt",
			Label:  "Updated",
			Render: func(c models.Category) Cell { return DateTimeCell(c.UpdatedAt) },
		},
		{
			Key:   "actions",
			Label: "",
			Render: func(c models.Category) Cell {
				return ActionsCell(Action{Label: "Edit", Href: basePath + "/" + c.ID})
			},
		},
	}
}

// ChapterItem is a lesson or quiz question listed under a chapter of the course detail view
type ChapterItem struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ChapterID   string            `json:"chapterId"`
	Sequence    int               `json:"sequence"`
	LessonType  models.LessonType `json:"lessonType,omitempty"`
}

// ChapterView is a chapter of the course detail view
type ChapterView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Durations   string        `json:"durations"`
	Sequence    int           `json:"sequence"`
	Lessons     []ChapterItem `json:"lessons"`
	Questions   []ChapterItem `json:"questions"`
}

// CourseDetail is the manager's course review page
type CourseDetail struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	ImageURL       string        `json:"imageUrl"`
	ImageBanner    string        `json:"imageBanner"`
	Level          string        `json:"level"`
	Price          string        `json:"price"`
	FinalPrice     string        `json:"finalPrice"`
	Discount       float64       `json:"discount"`
	Categories     []string      `json:"categories"`
	Status         Badge         `json:"status"`
	CreatedDate    string        `json:"createdDate"`
	Chapters       []ChapterView `json:"chapters"`
	TotalLessons   int           `json:"totalLessons"`
	TotalQuestions int           `json:"totalQuestions"`
	BackLink       string        `json:"backLink"`
}

// NewCourseDetail adapts a course for the manager review page.
// Questions are listed with their content as both title and description and sequence 0.
func NewCourseDetail(c models.Course, backLink string) CourseDetail {
	date, _ := FormatDate(c.CreatedAt)
	detail := CourseDetail{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ImageBanner: c.ImageBanner,
		Level:       c.Level,
		Price:       FormatPriceFloat(c.Price),
		FinalPrice:  FormatPrice(DiscountedPrice(c.Price, c.Discount)),
		Discount:    c.Discount,
		Categories:  make([]string, 0, len(c.Categories)),
		Status:      CourseStatusBadge(c.IsBanned),
		CreatedDate: date,
		Chapters:    make([]ChapterView, 0, len(c.Chapters)),
		BackLink:    backLink,
	}
	for _, cat := range c.Categories {
		detail.Categories = append(detail.Categories, cat.Name)
	}

	for _, ch := range c.Chapters {
		view := ChapterView{
			ID:          ch.ID,
			Title:       ch.Title,
			Description: ch.Description,
			Durations:   ch.DurationsDisplay,
			Sequence:    ch.Sequence,
			Lessons:     make([]ChapterItem, 0, len(ch.Lessons)),
			Questions:   make([]ChapterItem, 0, len(ch.Questions)),
		}
		for _, l := range ch.Lessons {
			view.Lessons = append(view.Lessons, ChapterItem{
				ID:          l.ID,
				Kind:        "lesson",
				Title:       l.Title,
				Description: l.Description,
				ChapterID:   ch.ID,
				Sequence:    l.Sequence,
				LessonType:  l.Type,
			})
		}
		for _, q := range ch.Questions {
			view.Questions = append(view.Questions, ChapterItem{
				ID:          q.ID,
				Kind:        "question",
				Title:       q.Content,
				Description: q.Content,
				ChapterID:   ch.ID,
				Sequence:    0,
			})
		}
		detail.TotalLessons += len(view.Lessons)
		detail.TotalQuestions += len(view.Questions)
		detail.Chapters = append(detail.Chapters, view)
	}
	return detail
}
