package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/schema"
)

// Blogs returns one page of published blogs
func (c *Client) Blogs(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Blog], error) {
	raw, err := c.getJSON(ctx, "/blogs", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePaged[models.Blog](raw)
	if err != nil {
		return nil, c.invalidPayload("blogs", err)
	}
	return env, nil
}

// Blog returns a blog by id or slug
func (c *Client) Blog(ctx context.Context, id string) (*models.Blog, error) {
	raw, err := c.getJSON(ctx, "/blogs/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodeEnvelope[models.Blog](raw)
	if err != nil {
		return nil, c.invalidPayload("blog", err)
	}
	return &env.Data, nil
}

// MyBlogs returns the caller's blogs with their statistics
func (c *Client) MyBlogs(ctx context.Context, q listquery.Query) (*models.PagedObjectEnvelope[models.MyBlogs], error) {
	raw, err := c.getJSON(ctx, "/blogs/me", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePagedObject[models.MyBlogs](raw)
	if err != nil {
		return nil, c.invalidPayload("my blogs", err)
	}
	return env, nil
}

// CreateBlog creates a blog
func (c *Client) CreateBlog(ctx context.Context, req models.BlogRequest) (*models.BlogBody, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/blogs", nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeBlogBody(raw)
}

// UpdateBlog updates a blog
func (c *Client) UpdateBlog(ctx context.Context, id string, req models.BlogRequest) (*models.BlogBody, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeBlogBody(raw)
}

// BlogComments returns one page of a blog's comments with their replies
func (c *Client) BlogComments(ctx context.Context, blogID string, q listquery.Query) (*models.PagedObjectEnvelope[models.BlogCommentPage], error) {
	raw, err := c.getJSON(ctx, "/blogs/"+url.PathEscape(blogID)+"/comments", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePagedObject[models.BlogCommentPage](raw)
	if err != nil {
		return nil, c.invalidPayload("comments", err)
	}
	return env, nil
}

// CreateComment posts a comment or a reply
func (c *Client) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/blog-comments", nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

// UpdateReact sets the caller's reaction on a blog
func (c *Client) UpdateReact(ctx context.Context, req models.UpdateReactRequest) (*models.ReactData, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/blogs/react", nil, req)
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodeEnvelope[models.ReactData](raw)
	if err != nil {
		return nil, c.invalidPayload("react", err)
	}
	return &env.Data, nil
}

func (c *Client) decodeBlogBody(raw []byte) (*models.BlogBody, error) {
	env, err := schema.DecodeEnvelope[models.BlogBody](raw)
	if err != nil {
		return nil, c.invalidPayload("blog", err)
	}
	return &env.Data, nil
}
