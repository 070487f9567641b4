package apiclient

import (
	"context"

	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/schema"
)

// RefundOrders returns one page of the caller's refund requests
func (c *Client) RefundOrders(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.RefundOrder], error) {
	raw, err := c.getJSON(ctx, "/orders/refund", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePaged[models.RefundOrder](raw)
	if err != nil {
		return nil, c.invalidPayload("refund orders", err)
	}
	return env, nil
}

// ReturnOrders returns one page of the caller's exchange requests
func (c *Client) ReturnOrders(ctx context.Context, q listquery.Query) (*models.PagedEnvelope[models.ReturnOrder], error) {
	raw, err := c.getJSON(ctx, "/orders/return", q.Values())
	if err != nil {
		return nil, err
	}
	env, err := schema.DecodePaged[models.ReturnOrder](raw)
	if err != nil {
		return nil, c.invalidPayload("return orders", err)
	}
	return env, nil
}
