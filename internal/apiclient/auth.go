package apiclient

import (
	"context"
	"net/http"

	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/schema"
)

// Login exchanges credentials for platform tokens
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.Envelope[models.LoginResult], error) {
	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodeEnvelope[models.LoginResult](raw)
	if err != nil {
		return nil, c.invalidPayload("login", err)
	}
	return env, nil
}
