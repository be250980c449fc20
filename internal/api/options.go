package api

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/deromanizer/pkg/environment"
	"github.com/dmitrymomot/deromanizer/pkg/ratelimiter"
)

const (
	defaultMaxNumeralLength = 64
	defaultMaxBatchSize     = 100
	defaultMaxBodySize      = 64 << 10
)

// Option configures the API handler.
type Option func(*API)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithEnvironment sets the environment attached to every request.
func WithEnvironment(env environment.Environment) Option {
	return func(a *API) {
		a.env = env
	}
}

// WithMaxNumeralLength bounds the raw length of a single numeral in runes.
func WithMaxNumeralLength(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.maxNumeralLength = n
		}
	}
}

// WithMaxBatchSize bounds the number of numerals in one batch request.
func WithMaxBatchSize(n int) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBatchSize = n
		}
	}
}

// WithMaxBodySize bounds JSON request bodies in bytes.
func WithMaxBodySize(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

// WithReadinessChecks adds checks served on /health/ready.
func WithReadinessChecks(checks ...func(ctx context.Context) error) Option {
	return func(a *API) {
		a.readiness = append(a.readiness, checks...)
	}
}

// WithRateLimiter limits conversion requests per client address. Nil disables limiting.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(a *API) {
		a.limiter = l
	}
}
