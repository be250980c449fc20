package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deromanizer/core"
	"github.com/dmitrymomot/deromanizer/internal/api"
	"github.com/dmitrymomot/deromanizer/internal/messages"
	"github.com/dmitrymomot/deromanizer/pkg/ratelimiter"
	"github.com/dmitrymomot/deromanizer/pkg/requestid"
)

func newHandler(t *testing.T, opts ...api.Option) http.Handler {
	t.Helper()
	tr, err := messages.NewTranslator(context.Background())
	require.NoError(t, err)
	a, err := api.New(tr, opts...)
	require.NoError(t, err)
	return a.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) core.JSONResponse {
	t.Helper()
	var body core.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewRequiresTranslator(t *testing.T) {
	_, err := api.New(nil)
	assert.ErrorIs(t, err, api.ErrNilTranslator)
}

func TestConvertPath(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		target string
		want   string
	}{
		{"/v1/numerals/XIV", `{"data":{"roman":"XIV","decimal":14}}`},
		{"/v1/numerals/xiv", `{"data":{"roman":"XIV","decimal":14}}`},
		{"/v1/numerals/%20mCmXc%20", `{"data":{"roman":"MCMXC","decimal":1990}}`},
		{"/v1/numerals/MMMCMXCIX", `{"data":{"roman":"MMMCMXCIX","decimal":3999}}`},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		})
	}
}

func TestConvertBody(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/v1/numerals", `{"numeral":" xiv "}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"roman":"XIV","decimal":14}}`, rec.Body.String())
}

func TestValidationErrors(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"repetition", http.MethodGet, "/v1/numerals/IIII", "", "excessive_repetition", "Too many repeated characters in sequence."},
		{"repeated five", http.MethodGet, "/v1/numerals/VV", "", "excessive_repetition", "Too many repeated characters in sequence."},
		{"pair", http.MethodGet, "/v1/numerals/IL", "", "invalid_subtractive_pair", "Invalid subtractive pair: 'IL'."},
		{"symbol", http.MethodPost, "/v1/numerals", `{"numeral":"X7"}`, "invalid_symbol", "Invalid character: '7'. Valid: I V X L C D M."},
		{"empty body field", http.MethodPost, "/v1/numerals", `{"numeral":"   "}`, "empty_input", "Empty input; please enter a Roman numeral."},
		{"missing field", http.MethodPost, "/v1/numerals", `{}`, "empty_input", "Empty input; please enter a Roman numeral."},
		{"too long", http.MethodPost, "/v1/numerals", `{"numeral":"` + strings.Repeat("M", 65) + `"}`, "max_length", "numeral must be at most 64 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, "validation_error", body.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, []string{tt.wantMsg}, body.Error.Details["numeral"])
		})
	}
}

func TestValidationErrorLocalized(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/v1/numerals/IL", "", "Accept-Language", "es-ES,es;q=0.9,en;q=0.5")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "par sustractivo no válido 'IL'", decode(t, rec).Error.Message)
}

func TestRequestErrors(t *testing.T) {
	h := newHandler(t, api.WithMaxBodySize(32))

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"malformed json", http.MethodPost, "/v1/numerals", `{"numeral":`, http.StatusBadRequest, "bad_request"},
		{"unknown field", http.MethodPost, "/v1/numerals", `{"number":"X"}`, http.StatusBadRequest, "bad_request"},
		{"too large", http.MethodPost, "/v1/numerals", `{"numeral":"` + strings.Repeat(" ", 64) + `X"}`, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
		{"not found", http.MethodGet, "/v2/numerals/X", "", http.StatusNotFound, "not_found"},
		{"method not allowed", http.MethodDelete, "/v1/numerals/X", "", http.StatusMethodNotAllowed, "method_not_allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Message)
		})
	}

	t.Run("wrong content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/v1/numerals", strings.NewReader(`{"numeral":"X"}`))
		r.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestConvertBatch(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/v1/numerals/batch", `{"numerals":["xiv","IIII","MCMXC","IL"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []api.BatchItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 4)

	assert.Equal(t, "xiv", body.Data[0].Input)
	assert.Equal(t, &api.NumeralResponse{Roman: "XIV", Decimal: 14}, body.Data[0].Data)
	assert.Nil(t, body.Data[0].Error)

	require.NotNil(t, body.Data[1].Error)
	assert.Equal(t, "excessive_repetition", body.Data[1].Error.Code)
	assert.Nil(t, body.Data[1].Data)

	assert.Equal(t, 1990, body.Data[2].Data.Decimal)

	require.NotNil(t, body.Data[3].Error)
	assert.Equal(t, "Invalid subtractive pair: 'IL'.", body.Data[3].Error.Message)
}

func TestConvertBatchLimits(t *testing.T) {
	h := newHandler(t, api.WithMaxBatchSize(2))

	t.Run("empty", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/numerals/batch", `{"numerals":[]}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "required", body.Error.Code)
		assert.Equal(t, []string{"numerals is required"}, body.Error.Details["numerals"])
	})

	t.Run("too many", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/v1/numerals/batch", `{"numerals":["I","II","III"]}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "max_items", body.Error.Code)
		assert.Equal(t, "numerals must have at most 2 items", body.Error.Message)
	})
}

func TestHealth(t *testing.T) {
	t.Run("live", func(t *testing.T) {
		rec := do(t, newHandler(t), http.MethodGet, "/health/live", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready without checks reports alive", func(t *testing.T) {
		rec := do(t, newHandler(t), http.MethodGet, "/health/ready", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ready with failing check", func(t *testing.T) {
		h := newHandler(t, api.WithReadinessChecks(func(context.Context) error { return errors.New("down") }))
		rec := do(t, h, http.MethodGet, "/health/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}

func TestRequestIDIsEchoed(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/v1/numerals/X", "", requestid.Header, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(requestid.Header))
}

func TestRateLimit(t *testing.T) {
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	h := newHandler(t, api.WithRateLimiter(limiter))

	for range 2 {
		rec := do(t, h, http.MethodGet, "/v1/numerals/X", "", "X-Forwarded-For", "203.0.113.1")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/v1/numerals/X", "", "X-Forwarded-For", "203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "too_many_requests", decode(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Another client still has its own budget.
	rec = do(t, h, http.MethodGet, "/v1/numerals/X", "", "X-Forwarded-For", "203.0.113.2")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health checks are not limited.
	rec = do(t, h, http.MethodGet, "/health/live", "", "X-Forwarded-For", "203.0.113.1")
	assert.Equal(t, http.StatusOK, rec.Code)
}
