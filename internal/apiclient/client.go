// Package apiclient talks to the EduStore platform API on behalf of dashboard pages.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type tokenKey struct{}

// WithToken stores the caller's bearer token so outgoing requests act on their behalf
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token stored by WithToken
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client is a thin JSON client for the platform API
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a new API client.
// "baseURL" is the platform API root, e.g. https://api.edustore.vn/api/v1.
// "timeout" bounds every request; non-positive values use 30 seconds.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("client", "platform-api")),
	}
}

// getJSON performs a GET and returns the raw 2xx body
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.doJSON(ctx, http.MethodGet, path, query, nil)
}

// doJSON sends body encoded as JSON and returns the raw 2xx body
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("platform api request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to call %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("platform api request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp.StatusCode, raw)
	}
	return raw, nil
}
