// Package validation holds the shared validator instance, its translators and the
// field-scoped error type produced by entity decoding and form checks.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/vi"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	vi_translations "github.com/go-playground/validator/v10/translations/vi"
)

// Supported message locales
const (
	LocaleEN = "en"
	LocaleVI = "vi"
)

var (
	// Validate is the process-wide validator. Packages register their own tags in init.
	Validate *validator.Validate

	uni *ut.UniversalTranslator
)

func init() {
	Validate = validator.New()

	enLocale := en.New()
	uni = ut.New(enLocale, enLocale, vi.New())

	enTrans, _ := uni.GetTranslator(LocaleEN)
	viTrans, _ := uni.GetTranslator(LocaleVI)
	_ = en_translations.RegisterDefaultTranslations(Validate, enTrans)
	_ = vi_translations.RegisterDefaultTranslations(Validate, viTrans)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Translator returns the translator for locale, falling back to English.
func Translator(locale string) ut.Translator {
	trans, _ := uni.GetTranslator(locale)
	return trans
}

// RegisterCustomTranslation registers per-locale texts for a validation tag.
//
// Texts may reference the field name as {0} and the tag parameter as {1}.
// Locales missing from texts fall back to the English text.
func RegisterCustomTranslation(tag string, texts map[string]string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	for _, locale := range []string{LocaleEN, LocaleVI} {
		text, ok := texts[locale]
		if !ok {
			text = texts[LocaleEN]
		}
		trans := Translator(locale)
		_ = Validate.RegisterTranslation(
			tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, _ := t.T(tag, fe.Field(), fe.Param())
				return s
			},
		)
	}
}

// Struct validates s and converts any failure into an *Error with JSON field paths.
func Struct(s any, locale string) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	return FromValidator(err, locale, s)
}
