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

// Blog page paths
const (
	BlogPath   = "/blog"
	MyBlogPath = "/me/blog"
	blogNoun   = "blogs"
)

// BlogPlatform is the interface that wraps the platform API calls of the blog pages
type BlogPlatform interface {
	// Method Blogs retrieves one page of published blogs matching the keyword of "q".
	Blogs(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Blog], error)
	// Method Blog retrieves a blog by its id or slug. A missing blog is a remote 404.
	Blog(ctx context.Context, id string) (*models.Blog, error)
	// Method MyBlogs retrieves the caller's blogs together with their statistics.
	MyBlogs(ctx context.Context, q listquery.Query) (*models.PagedObjectEnvelope[models.MyBlogs], error)
	// Method CreateBlog creates a blog and returns the stored body.
	CreateBlog(ctx context.Context, req models.BlogRequest) (*models.BlogBody, error)
	// Method UpdateBlog updates the blog identified by "id" and returns the stored body.
	UpdateBlog(ctx context.Context, id string, req models.BlogRequest) (*models.BlogBody, error)
	// Method BlogComments retrieves one page of a blog's comments with their replies.
	BlogComments(ctx context.Context, blogID string, q listquery.Query) (*models.PagedObjectEnvelope[models.BlogCommentPage], error)
	// Method CreateComment posts a comment, or a reply when the request carries a reply id.
	CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.StatusEnvelope, error)
	// Method UpdateReact sets the caller's reaction on a blog and returns the new totals.
	UpdateReact(ctx context.Context, req models.UpdateReactRequest) (*models.ReactData, error)
}

// BlogListPage is the public blog list
type BlogListPage struct {
	Cards []views.BlogCard `json:"cards"`
	Page  PageInfo         `json:"page"`
	Empty views.EmptyState `json:"empty"`
}

// BlogDetail is a blog page
type BlogDetail struct {
	views.BlogCard
	Content string `json:"content"`
}

// MyBlogsPage is the author's blog dashboard
type MyBlogsPage struct {
	Statistics models.BlogStatistics `json:"statistics"`
	Table      views.Table           `json:"table"`
	Page       PageInfo              `json:"page"`
	Empty      views.EmptyState      `json:"empty"`
}

// CommentsPage is one page of a blog's threaded comments
type CommentsPage struct {
	Comments      []views.CommentNode `json:"comments"`
	TotalComments int                 `json:"totalComments"`
	Page          PageInfo            `json:"page"`
}

type blogService struct {
	platform BlogPlatform
	logger   *zap.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(platform BlogPlatform, logger *zap.Logger) *blogService {
	return &blogService{
		platform: platform,
		logger:   logger,
	}
}

// List builds the public blog list
func (s *blogService) List(ctx context.Context, q listquery.Query) (*BlogListPage, error) {
	env, err := s.platform.Blogs(ctx, q)
	if err != nil {
		s.logger.Error("failed to get blogs", zap.Error(err))
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}

	page := &BlogListPage{
		Cards: make([]views.BlogCard, 0, len(env.Data)),
		Page:  newPageInfo(BlogPath, q, env.Pagination),
		Empty: views.ForList(len(env.Data), q.Keyword, blogNoun),
	}
	for _, b := range env.Data {
		page.Cards = append(page.Cards, views.NewBlogCard(b))
	}
	return page, nil
}

// Detail builds a blog page
func (s *blogService) Detail(ctx context.Context, id string) (*BlogDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, views.NewNotFoundError("Blog", BlogPath)
	}

	blog, err := s.platform.Blog(ctx, id)
	if err != nil {
		if apiclient.IsNotFound(err) || isMissingData(err) {
			return nil, views.NewNotFoundError("Blog", BlogPath)
		}
		s.logger.Error("failed to get blog", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	return &BlogDetail{BlogCard: views.NewBlogCard(*blog), Content: blog.Content}, nil
}

// MyBlogs builds the author's dashboard
func (s *blogService) MyBlogs(ctx context.Context, q listquery.Query) (*MyBlogsPage, error) {
	env, err := s.platform.MyBlogs(ctx, q)
	if err != nil {
		s.logger.Error("failed to get my blogs", zap.Error(err))
		return nil, fmt.Errorf("failed to get my blogs: %w", err)
	}

	return &MyBlogsPage{
		Statistics: env.Data.Statistics,
		Table:      views.BuildTable(views.MyBlogColumns(), env.Data.Blogs, func(b models.MyBlog) string { return b.ID }),
		Page:       newPageInfo(MyBlogPath, q, env.Pagination),
		Empty:      views.ForList(len(env.Data.Blogs), q.Keyword, blogNoun),
	}, nil
}

// Create validates the form and creates the blog
func (s *blogService) Create(ctx context.Context, form forms.BlogForm) (*models.BlogBody, error) {
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}
	return s.platform.CreateBlog(ctx, form.Request())
}

// Update validates the form and updates the blog
func (s *blogService) Update(ctx context.Context, id string, form forms.BlogForm) (*models.BlogBody, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("invalid blog id")
	}
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}
	body, err := s.platform.UpdateBlog(ctx, id, form.Request())
	if apiclient.IsNotFound(err) {
		return nil, views.NewNotFoundError("Blog", MyBlogPath)
	}
	return body, err
}

// Comments builds one page of a blog's comments with replies nested under their parent
func (s *blogService) Comments(ctx context.Context, blogID string, q listquery.Query) (*CommentsPage, error) {
	env, err := s.platform.BlogComments(ctx, blogID, q)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, views.NewNotFoundError("Blog", BlogPath)
		}
		s.logger.Error("failed to get blog comments", zap.String("blogId", blogID), zap.Error(err))
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	comments := views.ThreadComments(env.Data.CommentsWithReplies)
	if comments == nil {
		comments = []views.CommentNode{}
	}
	return &CommentsPage{
		Comments:      comments,
		TotalComments: env.Data.TotalComments,
		Page:          newPageInfo(BlogPath+"/"+blogID+"/comments", q, env.Pagination),
	}, nil
}

// AddComment posts a comment on the blog, which is always the blog named in the path
func (s *blogService) AddComment(ctx context.Context, blogID string, form forms.CommentForm) (*models.StatusEnvelope, error) {
	form.Identifier = strings.TrimSpace(blogID)
	if err := forms.Validate(&form); err != nil {
		return nil, err
	}
	return s.platform.CreateComment(ctx, form.Request())
}

// ToggleReact sets the caller's reaction on the blog
func (s *blogService) ToggleReact(ctx context.Context, blogID string, isReact bool) (*models.ReactData, error) {
	blogID = strings.TrimSpace(blogID)
	if blogID == "" {
		return nil, fmt.Errorf("invalid blog id")
	}
	return s.platform.UpdateReact(ctx, models.UpdateReactRequest{Identifier: blogID, IsReact: isReact})
}
