// Package schema decodes untyped remote payloads into typed entities and reports
// every structural or rule violation with its JSON path.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/validation"
	"github.com/mitchellh/mapstructure"
)

// ValidationError lists every field of a payload that violated a constraint
type ValidationError = validation.Error

// FieldError is one violation inside a ValidationError
type FieldError = validation.FieldError

var (
	timeType   = reflect.TypeOf(time.Time{})
	strictType = reflect.TypeOf((*models.StrictSchema)(nil)).Elem()

	// mapstructure reports paths as "'a.b[0].c' expected type ..." or "error decoding 'a.b': ..."
	decodeErrPattern = regexp.MustCompile(`^(?:error decoding )?'([^']*)':? (.*)$`)
)

type options struct {
	strict bool
	locale string
}

// Option configures Decode
type Option func(*options)

// Strict rejects unknown keys on every object of the payload, not only on strict schemas.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// WithLocale selects the language of rule violation messages
func WithLocale(locale string) Option {
	return func(o *options) { o.locale = locale }
}

// Decode parses raw JSON and decodes it into out, which must be a non-nil pointer to a struct.
//
// Missing required keys, nulls in non-nullable fields, type mismatches, unknown keys on
// strict schemas and rule violations are all returned together as a *ValidationError.
// Optional keys are those whose json tag carries omitempty; absent optional slices stay nil.
func Decode(raw []byte, out any, opts ...Option) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return validation.NewError(FieldError{Rule: "json", Message: "payload is not valid JSON"})
	}
	return DecodeValue(doc, out, opts...)
}

// DecodeValue is Decode for a document that is already parsed into maps and slices.
func DecodeValue(doc any, out any, opts ...Option) error {
	o := options{locale: validation.LocaleEN}
	for _, opt := range opts {
		opt(&o)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", out)
	}
	target := rv.Type().Elem()

	w := &walker{strict: o.strict, errs: &ValidationError{}}
	w.check("", doc, target)
	if err := w.errs.OrNil(); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return fromDecodeError(err)
	}

	if target.Kind() != reflect.Struct {
		return nil
	}
	return validation.Struct(out, o.locale)
}

// DecodeEnvelope decodes a single-entity response
func DecodeEnvelope[T any](raw []byte, opts ...Option) (*models.Envelope[T], error) {
	var env models.Envelope[T]
	if err := Decode(raw, &env, opts...); err != nil {
		return nil, err
	}
	return &env, nil
}

// DecodeList decodes an unpaginated list response
func DecodeList[T any](raw []byte, opts ...Option) (*models.ListEnvelope[T], error) {
	var env models.ListEnvelope[T]
	if err := Decode(raw, &env, opts...); err != nil {
		return nil, err
	}
	return &env, nil
}

// DecodePaged decodes one page of a list response
func DecodePaged[T any](raw []byte, opts ...Option) (*models.PagedEnvelope[T], error) {
	var env models.PagedEnvelope[T]
	if err := Decode(raw, &env, opts...); err != nil {
		return nil, err
	}
	return &env, nil
}

// DecodePagedObject decodes a paginated aggregate response
func DecodePagedObject[T any](raw []byte, opts ...Option) (*models.PagedObjectEnvelope[T], error) {
	var env models.PagedObjectEnvelope[T]
	if err := Decode(raw, &env, opts...); err != nil {
		return nil, err
	}
	return &env, nil
}

// walker checks the untyped document against the target type before decoding,
// so that absent keys and nulls are told apart from zero values.
type walker struct {
	strict bool
	errs   *ValidationError
}

func (w *walker) check(path string, v any, t reflect.Type) {
	switch t.Kind() {
	case reflect.Ptr:
		if v == nil {
			return
		}
		w.check(path, v, t.Elem())
		return
	case reflect.Interface:
		return
	}

	if v == nil {
		w.errs.Add(path, "required", "must not be null")
		return
	}

	if t == timeType {
		s, ok := v.(string)
		if !ok {
			w.typeError(path, "a timestamp string")
			return
		}
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			w.errs.Add(path, "datetime", "must be an RFC 3339 timestamp")
		}
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			w.typeError(path, "an object")
			return
		}
		w.checkObject(path, obj, t)
	case reflect.Slice, reflect.Array:
		arr, ok := v.([]any)
		if !ok {
			w.typeError(path, "an array")
			return
		}
		for i, item := range arr {
			w.check(fmt.Sprintf("%s[%d]", path, i), item, t.Elem())
		}
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			w.typeError(path, "an object")
			return
		}
		for _, k := range sortedKeys(obj) {
			w.check(join(path, k), obj[k], t.Elem())
		}
	case reflect.String:
		if _, ok := v.(string); !ok {
			w.typeError(path, "a string")
		}
	case reflect.Bool:
		if _, ok := v.(bool); !ok {
			w.typeError(path, "a boolean")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f, ok := v.(float64)
		if !ok {
			w.typeError(path, "a number")
			return
		}
		if f != math.Trunc(f) {
			w.errs.Add(path, "integer", "must be a whole number")
		}
	case reflect.Float32, reflect.Float64:
		if _, ok := v.(float64); !ok {
			w.typeError(path, "a number")
		}
	}
}

func (w *walker) checkObject(path string, obj map[string]any, t reflect.Type) {
	known := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, optional := jsonField(f)
		if name == "-" {
			continue
		}
		known[name] = struct{}{}

		v, ok := obj[name]
		if !ok {
			if !optional {
				w.errs.Add(join(path, name), "required", "is required")
			}
			continue
		}
		w.check(join(path, name), v, f.Type)
	}

	if !w.strict && !t.Implements(strictType) {
		return
	}
	for _, k := range sortedKeys(obj) {
		if _, ok := known[k]; !ok {
			w.errs.Add(join(path, k), "unknown", "is not an allowed field")
		}
	}
}

func (w *walker) typeError(path, want string) {
	w.errs.Add(path, "type", "must be "+want)
}

func jsonField(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = f.Name
	}
	optional := false
	for _, p := range parts[1:] {
		if p == "omitempty" {
			optional = true
		}
	}
	return name, optional
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fromDecodeError(err error) error {
	var msErr *mapstructure.Error
	if !errors.As(err, &msErr) {
		return validation.NewError(FieldError{Rule: "type", Message: err.Error()})
	}
	out := &ValidationError{}
	for _, msg := range msErr.Errors {
		if m := decodeErrPattern.FindStringSubmatch(msg); m != nil {
			out.Add(m[1], "type", m[2])
			continue
		}
		out.Add("", "type", msg)
	}
	return out
}

