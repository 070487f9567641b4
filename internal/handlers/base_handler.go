package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/edustore/dashboard/internal/apiclient"
	"github.com/edustore/dashboard/internal/auth/middleware"
	"github.com/edustore/dashboard/internal/listquery"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/edustore/dashboard/internal/views"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// ErrorResponse is the body of every failed request.
// Fields maps form fields to their messages; Empty is set for missing entities.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Empty  *views.EmptyState `json:"empty,omitempty"`
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondFailure maps a service error to its status code and body.
//
// Form validation errors are 400 with the field messages, missing entities are 404
// with their not-found view and platform API failures are 502 carrying the remote message.
// Platform answers that break their schema are 502 without field details.
func (h *BaseHandler) RespondFailure(w http.ResponseWriter, err error) {
	var nf *views.NotFoundError
	if errors.As(err, &nf) {
		state := nf.State
		h.RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: state.Title, Empty: &state})
		return
	}

	if errors.Is(err, apiclient.ErrInvalidPayload) {
		h.RespondError(w, http.StatusBadGateway, apiclient.ErrInvalidPayload.Error())
		return
	}

	if vErr, ok := validation.AsError(err); ok {
		h.RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Fields: vErr.Map()})
		return
	}

	if apiErr, ok := apiclient.AsError(err); ok {
		status := http.StatusBadGateway
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden {
			status = apiErr.Status
		}
		resp := ErrorResponse{Error: apiErr.Message}
		if len(apiErr.Fields) > 0 {
			resp.Fields = apiErr.FieldMap()
		}
		h.RespondJSON(w, status, resp)
		return
	}

	if errors.Is(err, apiclient.ErrEmptyUpload) {
		h.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	errStatus := http.StatusInternalServerError
	switch {
	case strings.Contains(err.Error(), "not found"):
		errStatus = http.StatusNotFound
	case strings.Contains(err.Error(), "invalid"):
		errStatus = http.StatusBadRequest
	}
	h.RespondError(w, errStatus, err.Error())
}

// decodeJSON reads the request body into dst, answering 400 when it is not valid JSON
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// platformContext returns the request context carrying the caller's token for the platform API
func platformContext(r *http.Request) context.Context {
	ctx := r.Context()
	if token := middleware.GetToken(ctx); token != "" {
		return apiclient.WithToken(ctx, token)
	}
	return ctx
}

// listQuery reads the keyword and page from the request URL
func listQuery(r *http.Request) listquery.Query {
	return listquery.Parse(r.URL.Query())
}
