// Package api serves numeral conversion over HTTP.
//
// Routes:
//
//	GET  /v1/numerals/{numeral}   convert a numeral from the path
//	POST /v1/numerals             convert {"numeral": "..."}
//	POST /v1/numerals/batch       convert {"numerals": ["...", ...]}
//	GET  /health/live             liveness check
//	GET  /health/ready            readiness check
//
// Successful conversions answer {"data": {"roman": "XIV", "decimal": 14}}.
// Invalid numerals answer 422 with the error envelope from package core; the
// message is rendered in the language negotiated from Accept-Language. With a
// rate limiter configured, the /v1 routes answer 429 once a client address
// runs out of tokens.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/deromanizer/pkg/clientip"
	"github.com/dmitrymomot/deromanizer/pkg/environment"
	"github.com/dmitrymomot/deromanizer/pkg/httpserver"
	"github.com/dmitrymomot/deromanizer/pkg/i18n"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/ratelimiter"
	"github.com/dmitrymomot/deromanizer/pkg/requestid"
)

// API holds the handler dependencies.
type API struct {
	translator       *i18n.Translator
	logger           *slog.Logger
	env              environment.Environment
	maxNumeralLength int
	maxBatchSize     int
	maxBodySize      int64
	readiness        []func(ctx context.Context) error
	limiter          ratelimiter.RateLimiter
}

// New creates the API. The translator renders error messages.
func New(t *i18n.Translator, opts ...Option) (*API, error) {
	if t == nil {
		return nil, ErrNilTranslator
	}

	a := &API{
		translator:       t,
		logger:           logger.Discard(),
		env:              environment.Development,
		maxNumeralLength: defaultMaxNumeralLength,
		maxBatchSize:     defaultMaxBatchSize,
		maxBodySize:      defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("api"))

	return a, nil
}

// Handler returns the router with all middleware installed.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(a.env),
		i18n.Middleware(a.translator),
	)

	r.NotFound(a.notFound)
	r.MethodNotAllowed(a.methodNotAllowed)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.HealthCheckHandler(a.logger))
		r.Get("/ready", httpserver.HealthCheckHandler(a.logger, a.readiness...))
	})

	r.Route("/v1/numerals", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, clientKey, a.tooManyRequests))
		}
		r.Get("/{numeral}", a.convertPath)
		r.Post("/", a.convertBody)
		r.Post("/batch", a.convertBatch)
	})

	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}
