package i18n

import "net/http"

// Middleware negotiates the request language from Accept-Language against the
// translator's catalog and stores it with SetLocale.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	supported := t.SupportedLanguages()
	def := t.DefaultLanguage()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, def)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
