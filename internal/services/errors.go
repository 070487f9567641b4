package services

import (
	"github.com/edustore/dashboard/internal/apiclient"
	"github.com/edustore/dashboard/internal/validation"
)

// isMissingData reports whether a payload failed only because its "data" was absent or null
func isMissingData(err error) bool {
	return apiclient.IsMissingData(err)
}

// fieldErrors returns the field messages carried by a form or remote error, nil otherwise
func fieldErrors(err error) map[string]string {
	if vErr, ok := validation.AsError(err); ok {
		return vErr.Map()
	}
	if apiErr, ok := apiclient.AsError(err); ok && len(apiErr.Fields) > 0 {
		return apiErr.FieldMap()
	}
	return nil
}

// errorMessage returns the text shown to the user for err
func errorMessage(err error) string {
	if apiErr, ok := apiclient.AsError(err); ok {
		return apiErr.Message
	}
	if _, ok := validation.AsError(err); ok {
		return "Please fix the highlighted fields"
	}
	return err.Error()
}
