package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/edustore/dashboard/internal/schema"
	"go.uber.org/zap"
)

// ErrInvalidPayload is returned when a 2xx platform answer does not match its schema
var ErrInvalidPayload = errors.New("invalid platform response")

// Error is a non-2xx answer of the platform API
type Error struct {
	Status  int
	Message string
	Fields  []schema.FieldError
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform api error (status %d): %s", e.Status, e.Message)
}

// FieldMap returns the remote field messages keyed by field name
func (e *Error) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := m[f.Field]; !ok {
			m[f.Field] = f.Message
		}
	}
	return m
}

// IsNotFound reports whether err is a remote 404
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// AsError unwraps err into an *Error
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// parseError reads the platform error body {message, errors:[{field,message}]}.
// Bodies that are not JSON fall back to the status text.
func parseError(status int, raw []byte) *Error {
	apiErr := &Error{Status: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
		for _, fe := range body.Errors {
			apiErr.Fields = append(apiErr.Fields, schema.FieldError{
				Field:   fe.Field,
				Rule:    "remote",
				Message: fe.Message,
			})
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// PayloadError is a 2xx platform answer that does not match its schema.
// Fields hold server payload paths and are only logged.
type PayloadError struct {
	Payload string
	Fields  []schema.FieldError
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPayload, e.Payload)
}

// Is matches ErrInvalidPayload
func (e *PayloadError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// IsMissingData reports whether err is a payload whose "data" was absent or null
func IsMissingData(err error) bool {
	var pErr *PayloadError
	if !errors.As(err, &pErr) {
		return false
	}
	for _, f := range pErr.Fields {
		if f.Field == "data" {
			return true
		}
	}
	return false
}

// invalidPayload logs the schema violations of a platform payload and returns them as a *PayloadError
func (c *Client) invalidPayload(what string, err error) error {
	pErr := &PayloadError{Payload: what}
	fields := []string{}
	var vErr *schema.ValidationError
	if errors.As(err, &vErr) {
		pErr.Fields = vErr.Fields
		for _, f := range vErr.Fields {
			fields = append(fields, f.Field+": "+f.Message)
		}
	}
	c.logger.Error("platform api payload failed validation",
		zap.String("payload", what),
		zap.Strings("fields", fields),
		zap.Error(err),
	)
	return pErr
}
