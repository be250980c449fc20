package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator renders messages from a loaded catalog.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, entries := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if entries == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "Translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the language codes present in the catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args given
// as name, value pairs. Unknown languages use the default language; missing
// keys fall back to the key itself unless WithFallbackToKey(false) is set.
//
//	// "roman.invalid_pair": "invalid subtractive pair: %{pair}"
//	msg := translator.T("en", "roman.invalid_pair", "pair", "IL")
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		langMap, ok = t.translations[t.defaultLang]
	}
	if !ok {
		t.missing("Language not supported", lang, key)
		return t.fallback(key, args)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		t.missing("Translation not found", lang, key)
		return t.fallback(key, args)
	}

	switch v := val.(type) {
	case string:
		return substitute(v, args)
	case fmt.Stringer:
		return substitute(v.String(), args)
	default:
		t.missing("Translation is not a string", lang, key)
		return t.fallback(key, args)
	}
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) missing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, slog.String("lang", lang), slog.String("key", key))
	}
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup walks a nested map with a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as-is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
