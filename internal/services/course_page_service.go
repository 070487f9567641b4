package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edustore/dashboard/internal/apiclient"
	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/views"
	"go.uber.org/zap"
)

// Page paths the course pages link to
const (
	AdminCoursePath      = "/admin/course"
	AdminCategoryPath    = "/admin/category"
	ManagerCoursePath    = "/manager/course"
	courseNoun           = "courses"
	categoryNoun         = "categories"
	courseDetailNotFound = "Course"
)

// CoursePlatform is the interface that wraps the platform API calls of the course pages
type CoursePlatform interface {
	// Method AdminCourses retrieves one page of the admin course list.
	//
	// "q" carries the keyword and page requested by the user.
	//
	// If the call or the payload fails, the error will be returned together with "nil" value.
	AdminCourses(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Course], error)
	// Method Course retrieves a course with its chapters, lessons and questions.
	//
	// "id" parameter is used to identify the course. A missing course is a remote 404.
	Course(ctx context.Context, id string) (*models.Course, error)
	// Method Categories retrieves one page of course categories.
	//
	// Please reference AdminCourses method for more information about parameters and error values.
	Categories(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Category], error)
	// Method CreateCategory creates a category.
	CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.StatusEnvelope, error)
	// Method UpdateCategory updates the category identified by "id".
	UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.StatusEnvelope, error)
	// Method DeleteCategory deletes the category identified by "id".
	DeleteCategory(ctx context.Context, id string) (*models.StatusEnvelope, error)
}

// PageInfo is the pager state of a list page
type PageInfo struct {
	Query      listquery.Query   `json:"query"`
	Pagination models.Pagination `json:"pagination"`
	PrevLink   string            `json:"prevLink,omitempty"`
	NextLink   string            `json:"nextLink,omitempty"`
}

// newPageInfo builds pager links for path from the remote pagination
func newPageInfo(path string, q listquery.Query, p models.Pagination) PageInfo {
	info := PageInfo{Query: q, Pagination: p}
	if q.PageIndex > 1 {
		info.PrevLink = q.WithPage(q.PageIndex - 1).Link(path)
	}
	if q.PageIndex < p.TotalPage {
		info.NextLink = q.WithPage(q.PageIndex + 1).Link(path)
	}
	return info
}

// CourseListPage is the admin course list
type CourseListPage struct {
	Stats views.CourseStats `json:"stats"`
	Table views.Table       `json:"table"`
	Page  PageInfo          `json:"page"`
	Empty views.EmptyState  `json:"empty"`
}

// CategoryListPage is the admin category list
type CategoryListPage struct {
	Table views.Table      `json:"table"`
	Page  PageInfo         `json:"page"`
	Empty views.EmptyState `json:"empty"`
}

type coursePageService struct {
	platform CoursePlatform
	logger   *zap.Logger
}

// NewCoursePageService creates a new course page service
func NewCoursePageService(platform CoursePlatform, logger *zap.Logger) *coursePageService {
	return &coursePageService{
		platform: platform,
		logger:   logger,
	}
}

// AdminCourses builds the admin course list from one remote page
func (s *coursePageService) AdminCourses(ctx context.Context, q listquery.Query) (*CourseListPage, error) {
	env, err := s.platform.AdminCourses(ctx, q)
	if err != nil {
		s.logger.Error("failed to get admin courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	return &CourseListPage{
		Stats: views.NewCourseStats(env.Pagination.TotalItem, env.Data),
		Table: views.BuildTable(views.AdminCourseColumns(), env.Data, func(c models.Course) string { return c.ID }),
		Page:  newPageInfo(AdminCoursePath, q, env.Pagination),
		Empty: views.ForList(len(env.Data), q.Keyword, courseNoun),
	}, nil
}

// ManagerCourseDetail builds the manager review page of a course.
// A course the platform does not know, or answers without data for, is reported as not found.
func (s *coursePageService) ManagerCourseDetail(ctx context.Context, id string) (*views.CourseDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, views.NewNotFoundError(courseDetailNotFound, ManagerCoursePath)
	}

	course, err := s.platform.Course(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) || isMissingData(err) {
			return nil, views.NewNotFoundError(courseDetailNotFound, ManagerCoursePath)
		}
		s.logger.Error("failed to get course", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	detail := views.NewCourseDetail(*course, ManagerCoursePath)
	return &detail, nil
}

// Categories builds the admin category list
func (s *coursePageService) Categories(ctx context.Context, q listquery.Query) (*CategoryListPage, error) {
	env, err := s.platform.Categories(ctx, q)
	if err != nil {
		s.logger.Error("failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return &CategoryListPage{
		Table: views.BuildTable(views.CategoryColumns(AdminCategoryPath), env.Data, func(c models.Category) string { return c.ID }),
		Page:  newPageInfo(AdminCategoryPath, q, env.Pagination),
		Empty: views.ForList(len(env.Data), q.Keyword, categoryNoun),
	}, nil
}

// CreateCategory validates the form and creates the category
func (s *coursePageService) CreateCategory(ctx context.Context, form forms.CategoryForm) (*models.StatusEnvelope, error) {
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}
	return s.platform.CreateCategory(ctx, form.Request())
}

// UpdateCategory validates the form and updates the category
func (s *coursePageService) UpdateCategory(ctx context.Context, id string, form forms.CategoryForm) (*models.StatusEnvelope, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("invalid category id")
	}
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}
	return s.platform.UpdateCategory(ctx, id, form.Request())
}

// DeleteCategory deletes the category
func (s *coursePageService) DeleteCategory(ctx context.Context, id string) (*models.StatusEnvelope, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("invalid category id")
	}
	return s.platform.DeleteCategory(ctx, id)
}
