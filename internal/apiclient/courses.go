package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/schema"
)

// AdminCourses returns one page of the admin course list
func (c *Client) AdminCourses(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Course], error) {
	raw, err := c.getJSON(ctx, "/courses/admin", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePaged[models.Course](raw)
	if err != nil {
		return nil, c.invalidPayload("courses", err)
	}
	return env, nil
}

// Course returns a course with its chapters
func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	raw, err := c.getJSON(ctx, "/courses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodeEnvelope[models.Course](raw)
	if err != nil {
		return nil, c.invalidPayload("course", err)
	}
	return &env.Data, nil
}

// Categories returns one page of course categories
func (c *Client) Categories(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.Category], error) {
	raw, err := c.getJSON(ctx, "/category-courses", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePaged[models.Category](raw)
	if err != nil {
		return nil, c.invalidPayload("categories", err)
	}
	return env, nil
}

// CreateCategory creates a course category
func (c *Client) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/category-courses", nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

// UpdateCategory updates a course category
func (c *Client) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodPut, "/category-courses/"+url.PathEscape(id), nil, req)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

// DeleteCategory deletes a course category
func (c *Client) DeleteCategory(ctx context.Context, id string) (*models.StatusEnvelope, error) {
	raw, err := c.doJSON(ctx, http.MethodDelete, "/category-courses/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeStatus(raw)
}

func (c *Client) decodeStatus(raw []byte) (*models.StatusEnvelope, error) {
	var env models.StatusEnvelope
	if err := schema.Decode(raw, &env); err != nil {
		return nil, c.invalidPayload("response", err)
	}
	return &env, nil
}
