// Package i18n renders user-facing messages from a translation catalog.
//
// A Translator loads its catalog through a TranslationAdapter: MapAdapter for
// in-memory data, FSAdapter for a directory in any fs.FS (embed.FS included)
// parsed with YAMLParser. Keys are dot-separated paths into nested maps and
// messages use %{name} placeholders:
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), messages.FS, ".")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("en", "roman.invalid_symbol", "symbol", "A")
//
// ParseAcceptLanguage negotiates a language with golang.org/x/text/language,
// and Middleware stores the result in the request context for Tc.
//
// A Translator is read-only after construction and safe for concurrent use.
package i18n
