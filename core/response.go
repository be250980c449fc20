package core

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/deromanizer/pkg/validator"
)

// Response renders itself to an HTTP response.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// JSONResponse is the standard JSON response structure.
type JSONResponse struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON creates a 200 response carrying data.
func JSON(data any) Response {
	return jsonResponse{
		status: http.StatusOK,
		body:   JSONResponse{Data: data},
	}
}

// JSONErrorDetail creates an error response with an explicit status and detail.
func JSONErrorDetail(status int, code string, detail ErrorDetail) Response {
	return jsonResponse{
		status: status,
		body: JSONResponse{
			Code:  code,
			Error: &detail,
		},
	}
}

// JSONError creates an error response from err.
// validator.ValidationErrors become 422 with per-field details, HTTPError
// uses its own status and key, anything else is a 500 that does not leak the
// error text.
func JSONError(err error) Response {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		return JSONErrorDetail(http.StatusUnprocessableEntity, "validation_error", ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
			Details: details,
		})
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return JSONErrorDetail(httpErr.Code, httpErr.Key, ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		})
	}

	return JSONErrorDetail(http.StatusInternalServerError, ErrInternalServerError.Key, ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
