// Package messages embeds the YAML message catalog and renders validation
// errors through it.
package messages

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"github.com/dmitrymomot/deromanizer/pkg/i18n"
	"github.com/dmitrymomot/deromanizer/pkg/roman"
	"github.com/dmitrymomot/deromanizer/pkg/validator"
)

//go:embed *.yaml
var catalog embed.FS

// FS returns the embedded catalog.
func FS() fs.FS {
	return catalog
}

// NewTranslator loads the embedded catalog.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), catalog, "."), opts...)
}

// RomanError renders err in lang. Errors that are not grammar violations
// render as their Error text.
func RomanError(t *i18n.Translator, lang string, err error) string {
	verr, ok := roman.AsValidationError(err)
	if !ok {
		return err.Error()
	}
	return t.T(lang, verr.TranslationKey(), verr.TranslationValues()...)
}

// FieldError renders a single validator error in lang.
func FieldError(t *i18n.Translator, lang string, verr validator.ValidationError) string {
	if verr.TranslationKey == "" {
		return verr.Message
	}
	return t.T(lang, verr.TranslationKey, Args(verr.TranslationValues)...)
}

// FieldErrors renders every error in verrs grouped by field.
func FieldErrors(t *i18n.Translator, lang string, verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, verr := range verrs {
		out[verr.Field] = append(out[verr.Field], FieldError(t, lang, verr))
	}
	return out
}

// Args flattens translation values into name, value pairs sorted by name.
func Args(values map[string]any) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	args := make([]string, 0, 2*len(names))
	for _, name := range names {
		args = append(args, name, fmt.Sprint(values[name]))
	}
	return args
}
