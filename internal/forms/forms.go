// Package forms holds the user-submitted forms of the dashboards and their rules.
package forms

import (
	"html"
	"regexp"
	"strings"

	"github.com/edustore/dashboard/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Custom rule tags
const (
	TagRichText  = "richtext"
	TagPromoCode = "promocode"
)

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	promoCodePattern = regexp.MustCompile(`^[A-Z0-9]{3,32}$`)
)

func init() {
	_ = validation.Validate.RegisterValidation(TagRichText, func(fl validator.FieldLevel) bool {
		return !IsEmptyRichText(fl.Field().String())
	})
	_ = validation.Validate.RegisterValidation(TagPromoCode, func(fl validator.FieldLevel) bool {
		return promoCodePattern.MatchString(fl.Field().String())
	})
	validation.Validate.RegisterStructValidation(lessonFormRule, LessonForm{})

	validation.RegisterCustomTranslation(TagRichText, map[string]string{
		validation.LocaleEN: "{0} must not be empty",
		validation.LocaleVI: "{0} không được để trống",
	})
	validation.RegisterCustomTranslation(TagPromoCode, map[string]string{
		validation.LocaleEN: "{0} must be 3 to 32 uppercase letters or digits",
		validation.LocaleVI: "{0} phải gồm 3 đến 32 chữ in hoa hoặc chữ số",
	})
}

// IsEmptyRichText reports whether an editor body carries no visible text,
// such as "<p></p>" or "<p><br></p>".
func IsEmptyRichText(s string) bool {
	text := tagPattern.ReplaceAllString(s, "")
	text = strings.ReplaceAll(html.UnescapeString(text), " ", " ")
	return strings.TrimSpace(text) == ""
}

// Validate checks form against its rules with English messages
func Validate(form any) error {
	return ValidateIn(form, validation.LocaleEN)
}

// ValidateIn checks form against its rules with messages in locale.
// Forms with a Normalize method are normalized first.
func ValidateIn(form any, locale string) error {
	if n, ok := form.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	return validation.Struct(form, locale)
}

// lessonFormRule applies the body rules only to lesson types that carry a body.
func lessonFormRule(sl validator.StructLevel) {
	form := sl.Current().Interface().(LessonForm)
	if !form.Type.HasContent() {
		return
	}
	switch {
	case IsEmptyRichText(form.Content):
		sl.ReportError(form.Content, "content", "Content", TagRichText, "")
	case len([]rune(form.Content)) < minLessonContent:
		sl.ReportError(form.Content, "content", "Content", "min", "50")
	}
}
