package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edustore/dashboard/internal/apiclient"
	"github.com/edustore/dashboard/internal/forms"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/edustore/dashboard/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCoursePlatform is a mock implementation of CoursePlatform
type mockCoursePlatform struct {
	courses      *models.PagedEnvelope[models.Course]
	course       *models.Course
	categories   *models.PagedEnvelope[models.Category]
	err          error
	lastQuery    listquery.Query
	lastRequest  *models.CategoryRequest
	lastID       string
	mutationResp *models.StatusEnvelope
}

func (m *mockCoursePlatform) AdminCourses(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Course], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCoursePlatform) Course(ctx context.Context, id string) (*models.Course, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.course, nil
}

func (m *mockCoursePlatform) Categories(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Category], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockCoursePlatform) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.StatusEnvelope, error) {
	m.lastRequest = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.mutationResp, nil
}

func (m *mockCoursePlatform) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.StatusEnvelope, error) {
	m.lastID = id
	m.lastRequest = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.mutationResp, nil
}

func (m *mockCoursePlatform) DeleteCategory(ctx context.Context, id string) (*models.StatusEnvelope, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.mutationResp, nil
}

func TestNewCoursePageService(t *testing.T) {
	logger := zap.NewNop()
	platform := &mockCoursePlatform{}

	svc := NewCoursePageService(platform, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, platform, svc.platform)
	assert.Equal(t, logger, svc.logger)
}

func TestCoursePageService_AdminCourses(t *testing.T) {
	tests := []struct {
		name          string
		query         listquery.Query
		platform      *mockCoursePlatform
		expectedError bool
		expectedRows  int
		expectedEmpty views.EmptyKind
		expectedPrev  bool
		expectedNext  bool
	}{
		{
			name:  "middle page",
			query: listquery.Query{PageSize: 2, PageIndex: 2},
			platform: &mockCoursePlatform{courses: &models.PagedEnvelope[models.Course]{
				Data: []models.Course{
					{ID: "c1", Title: "Math 1", IsVisible: true},
					{ID: "c2", Title: "Math 2", IsBanned: true},
				},
				Pagination: models.Pagination{TotalItem: 6, PageSize: 2, CurrentPage: 2, TotalPage: 3},
			}},
			expectedRows:  2,
			expectedEmpty: views.EmptyNone,
			expectedPrev:  true,
			expectedNext:  true,
		},
		{
			name:  "search without results",
			query: listquery.Query{Keyword: "physics", PageSize: 10, PageIndex: 1},
			platform: &mockCoursePlatform{courses: &models.PagedEnvelope[models.Course]{
				Data:       []models.Course{},
				Pagination: models.Pagination{PageSize: 10, CurrentPage: 1},
			}},
			expectedEmpty: views.EmptyNoResults,
		},
		{
			name:  "no courses at all",
			query: listquery.Default(),
			platform: &mockCoursePlatform{courses: &models.PagedEnvelope[models.Course]{
				Pagination: models.Pagination{PageSize: 10, CurrentPage: 1},
			}},
			expectedEmpty: views.EmptyNoData,
		},
		{
			name:          "platform error",
			query:         listquery.Default(),
			platform:      &mockCoursePlatform{err: errors.New("connection refused")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCoursePageService(tt.platform, zap.NewNop())

			page, err := svc.AdminCourses(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, page)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.query, tt.platform.lastQuery)
			assert.Len(t, page.Table.Rows, tt.expectedRows)
			assert.NotNil(t, page.Table.Rows)
			assert.Equal(t, tt.expectedEmpty, page.Empty.Kind)
			assert.Equal(t, tt.expectedPrev, page.Page.PrevLink != "")
			assert.Equal(t, tt.expectedNext, page.Page.NextLink != "")
		})
	}
}

func TestCoursePageService_AdminCourses_PagerLinks(t *testing.T) {
	platform := &mockCoursePlatform{courses: &models.PagedEnvelope[models.Course]{
		Data:       []models.Course{{ID: "c1"}},
		Pagination: models.Pagination{TotalItem: 3, PageSize: 1, CurrentPage: 2, TotalPage: 3},
	}}
	svc := NewCoursePageService(platform, zap.NewNop())

	page, err := svc.AdminCourses(context.Background(), listquery.Query{Keyword: "math", PageSize: 1, PageIndex: 2})

	require.NoError(t, err)
	assert.Equal(t, "/admin/course?keyword=math&page_index=1&page_size=1", page.Page.PrevLink)
	assert.Equal(t, "/admin/course?keyword=math&page_index=3&page_size=1", page.Page.NextLink)
}

func TestCoursePageService_ManagerCourseDetail(t *testing.T) {
	tests := []struct {
		name             string
		id               string
		platform         *mockCoursePlatform
		expectedNotFound bool
		expectedError    bool
	}{
		{
			name:     "success",
			id:       "c1",
			platform: &mockCoursePlatform{course: &models.Course{ID: "c1", Title: "Math"}},
		},
		{
			name:             "empty id",
			id:               "  ",
			platform:         &mockCoursePlatform{},
			expectedNotFound: true,
		},
		{
			name:             "remote 404",
			id:               "missing",
			platform:         &mockCoursePlatform{err: &apiclient.Error{Status: 404, Message: "Course not found"}},
			expectedNotFound: true,
		},
		{
			name: "payload without data",
			id:   "c1",
			platform: &mockCoursePlatform{err: &apiclient.PayloadError{Payload: "course", Fields: []validation.FieldError{
				{Field: "data", Rule: "required", Message: "data is required"},
			}}},
			expectedNotFound: true,
		},
		{
			name: "payload breaking lesson rules",
			id:   "c1",
			platform: &mockCoursePlatform{err: &apiclient.PayloadError{Payload: "course", Fields: []validation.FieldError{
				{Field: "data.chapters[0].lessons[0].videoUrl", Rule: "excluded_unless", Message: "videoUrl must be empty"},
			}}},
			expectedError: true,
		},
		{
			name:          "remote failure",
			id:            "c1",
			platform:      &mockCoursePlatform{err: &apiclient.Error{Status: 500, Message: "boom"}},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCoursePageService(tt.platform, zap.NewNop())

			detail, err := svc.ManagerCourseDetail(context.Background(), tt.id)

			switch {
			case tt.expectedNotFound:
				var nf *views.NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, views.EmptyNotFound, nf.State.Kind)
				assert.Equal(t, ManagerCoursePath, nf.State.BackLink)
				assert.Nil(t, detail)
			case tt.expectedError:
				assert.Error(t, err)
				var nf *views.NotFoundError
				assert.False(t, errors.As(err, &nf))
			default:
				require.NoError(t, err)
				assert.Equal(t, "c1", detail.ID)
			}
		})
	}
}

func TestCoursePageService_Categories(t *testing.T) {
	platform := &mockCoursePlatform{categories: &models.PagedEnvelope[models.Category]{
		Data: []models.Category{
			{ID: "cat1", Name: "Math"},
			{ID: "cat2", Name: "Science"},
		},
		Pagination: models.Pagination{TotalItem: 2, PageSize: 10, CurrentPage: 1, TotalPage: 1},
	}}
	svc := NewCoursePageService(platform, zap.NewNop())

	page, err := svc.Categories(context.Background(), listquery.Default())

	require.NoError(t, err)
	require.Len(t, page.Table.Rows, 2)
	assert.Equal(t, "cat1", page.Table.Rows[0].ID)
	assert.Equal(t, views.EmptyNone, page.Empty.Kind)
	assert.Empty(t, page.Page.PrevLink)
	assert.Empty(t, page.Page.NextLink)
}

func TestCoursePageService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		form          forms.CategoryForm
		platform      *mockCoursePlatform
		expectedError bool
		expectedField string
		expectedCall  bool
	}{
		{
			name:         "success trims fields",
			form:         forms.CategoryForm{Name: "  Math  ", Description: " Numbers "},
			platform:     &mockCoursePlatform{mutationResp: &models.StatusEnvelope{Message: "Created", StatusCode: 201}},
			expectedCall: true,
		},
		{
			name:          "missing name",
			form:          forms.CategoryForm{Name: "   "},
			platform:      &mockCoursePlatform{},
			expectedError: true,
			expectedField: "name",
		},
		{
			name:          "remote error",
			form:          forms.CategoryForm{Name: "Math"},
			platform:      &mockCoursePlatform{err: &apiclient.Error{Status: 409, Message: "Category exists"}},
			expectedError: true,
			expectedCall:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCoursePageService(tt.platform, zap.NewNop())

			resp, err := svc.CreateCategory(context.Background(), tt.form)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedField != "" {
					vErr, ok := validation.AsError(err)
					require.True(t, ok)
					assert.True(t, vErr.Has(tt.expectedField))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Created", resp.Message)
				assert.Equal(t, models.CategoryRequest{Name: "Math", Description: "Numbers"}, *tt.platform.lastRequest)
			}
			assert.Equal(t, tt.expectedCall, tt.platform.lastRequest != nil)
		})
	}
}

func TestCoursePageService_UpdateCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		platform := &mockCoursePlatform{mutationResp: &models.StatusEnvelope{Message: "Updated"}}
		svc := NewCoursePageService(platform, zap.NewNop())

		resp, err := svc.UpdateCategory(context.Background(), "cat1", forms.CategoryForm{Name: "Math"})

		require.NoError(t, err)
		assert.Equal(t, "Updated", resp.Message)
		assert.Equal(t, "cat1", platform.lastID)
	})

	t.Run("empty id", func(t *testing.T) {
		platform := &mockCoursePlatform{}
		svc := NewCoursePageService(platform, zap.NewNop())

		_, err := svc.UpdateCategory(context.Background(), "", forms.CategoryForm{Name: "Math"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid category id")
		assert.Nil(t, platform.lastRequest)
	})
}

func TestCoursePageService_DeleteCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		platform := &mockCoursePlatform{mutationResp: &models.StatusEnvelope{Message: "Deleted"}}
		svc := NewCoursePageService(platform, zap.NewNop())

		resp, err := svc.DeleteCategory(context.Background(), "cat1")

		require.NoError(t, err)
		assert.Equal(t, "Deleted", resp.Message)
		assert.Equal(t, "cat1", platform.lastID)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewCoursePageService(&mockCoursePlatform{}, zap.NewNop())

		_, err := svc.DeleteCategory(context.Background(), " ")

		assert.Error(t, err)
	})
}
