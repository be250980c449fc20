package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/deromanizer/core"
	"github.com/dmitrymomot/deromanizer/internal/messages"
	"github.com/dmitrymomot/deromanizer/pkg/binder"
	"github.com/dmitrymomot/deromanizer/pkg/i18n"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/roman"
	"github.com/dmitrymomot/deromanizer/pkg/validator"
)

const validationErrorCode = "validation_error"

func (a *API) lang(r *http.Request) string {
	return i18n.GetLocale(r.Context())
}

func (a *API) render(w http.ResponseWriter, r *http.Request, resp core.Response) {
	if err := resp.Render(w, r); err != nil {
		a.logger.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

// fail writes err as a JSON error envelope.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := a.describe(a.lang(r), err)

	code := detail.Code
	if status == http.StatusUnprocessableEntity {
		code = validationErrorCode
		a.logger.InfoContext(r.Context(), "conversion rejected", logger.Code(detail.Code), logger.Error(err))
	} else if status >= http.StatusInternalServerError {
		a.logger.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}

	a.render(w, r, core.JSONErrorDetail(status, code, detail))
}

// describe maps err to a status and a translated error detail.
func (a *API) describe(lang string, err error) (int, core.ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		first := verrs[0]
		return http.StatusUnprocessableEntity, core.ErrorDetail{
			Code:    errorCode(first.TranslationKey),
			Message: messages.FieldError(a.translator, lang, first),
			Details: messages.FieldErrors(a.translator, lang, verrs),
		}
	}

	if verr, ok := roman.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity, core.ErrorDetail{
			Code:    verr.Code(),
			Message: messages.RomanError(a.translator, lang, err),
		}
	}

	httpErr := httpError(err)
	return httpErr.Code, core.ErrorDetail{
		Code:    httpErr.Key,
		Message: a.translator.T(lang, "http."+httpErr.Key),
	}
}

func httpError(err error) core.HTTPError {
	var httpErr core.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrRequestTooLarge):
		return core.ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return core.ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		return core.ErrBadRequest
	default:
		return core.ErrInternalServerError
	}
}

// errorCode turns a translation key such as "roman.invalid_symbol" into its
// last segment.
func errorCode(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) {
	a.fail(w, r, core.ErrNotFound)
}

func (a *API) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.fail(w, r, core.ErrMethodNotAllowed)
}

func (a *API) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	a.fail(w, r, core.ErrTooManyRequests)
}
