package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is used to indicate an error with a specific field.
//
// Field is a dotted JSON path such as "data.chapters[0].lessons[1].type".
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// Error enumerates every field that violated a constraint.
type Error struct {
	Fields []FieldError `json:"fields"`
}

// NewError creates an error from the given field errors
func NewError(fields ...FieldError) *Error {
	e := &Error{}
	for _, f := range fields {
		e.Add(f.Field, f.Rule, f.Message)
	}
	return e
}

func (e *Error) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error unless the same field already failed the same rule.
func (e *Error) Add(field, rule, message string) {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

// Merge appends all field errors of other.
func (e *Error) Merge(other *Error) {
	if other == nil {
		return
	}
	for _, f := range other.Fields {
		e.Add(f.Field, f.Rule, f.Message)
	}
}

// Has reports whether field failed any rule.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for field.
func (e *Error) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Map returns the first message per field, the shape surfaced next to form inputs.
func (e *Error) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := m[f.Field]; !ok {
			m[f.Field] = f.Message
		}
	}
	return m
}

// OrNil returns nil when no field failed.
func (e *Error) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsError unwraps err into an *Error.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// FromValidator converts validator.ValidationErrors raised for root into an *Error.
//
// Field paths drop the root struct name so they match the JSON document.
func FromValidator(err error, locale string, root any) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	prefix := ""
	if t := reflect.TypeOf(root); t != nil {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		prefix = t.Name() + "."
	}

	trans := Translator(locale)
	out := &Error{}
	for _, fe := range vErrs {
		out.Add(strings.TrimPrefix(fe.Namespace(), prefix), fe.Tag(), fe.Translate(trans))
	}
	return out
}
