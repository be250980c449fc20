// Package deromanizer wires configuration, logging and the message catalog
// into the interactive prompt or the HTTP API.
package deromanizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/deromanizer/internal/api"
	"github.com/dmitrymomot/deromanizer/internal/messages"
	"github.com/dmitrymomot/deromanizer/internal/prompt"
	"github.com/dmitrymomot/deromanizer/pkg/clientip"
	"github.com/dmitrymomot/deromanizer/pkg/environment"
	"github.com/dmitrymomot/deromanizer/pkg/httpserver"
	"github.com/dmitrymomot/deromanizer/pkg/i18n"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/ratelimiter"
	"github.com/dmitrymomot/deromanizer/pkg/requestid"
)

// Run starts the configured mode and blocks until it finishes or ctx is done.
// Cancellation is a clean exit.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	log := newLogger(cfg, errOut)

	translator, err := messages.NewTranslator(ctx,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	lang := cfg.Lang
	if !slices.Contains(translator.SupportedLanguages(), lang) {
		log.WarnContext(ctx, "unsupported language, using default",
			slog.String("lang", lang),
			slog.String("default", translator.DefaultLanguage()),
		)
		lang = translator.DefaultLanguage()
	}

	log.DebugContext(ctx, "starting", logger.Mode(cfg.Mode), slog.String("lang", lang))

	switch cfg.Mode {
	case ModeServe:
		err = serve(ctx, cfg, translator, log)
	default:
		err = repl(ctx, cfg, lang, translator, log, in, out, errOut)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func repl(ctx context.Context, cfg Config, lang string, t *i18n.Translator, log *slog.Logger, in io.Reader, out, errOut io.Writer) error {
	p, err := prompt.New(t,
		prompt.WithLanguage(lang),
		prompt.WithQuiet(cfg.Quiet),
		prompt.WithLogger(log),
	)
	if err != nil {
		return err
	}
	return p.Run(ctx, in, out, errOut)
}

func serve(ctx context.Context, cfg Config, t *i18n.Translator, log *slog.Logger) error {
	opts := []api.Option{
		api.WithLogger(log),
		api.WithEnvironment(environment.Parse(cfg.Env)),
		api.WithMaxBatchSize(cfg.MaxBatchSize),
	}

	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
		opts = append(opts, api.WithRateLimiter(limiter))
		log.InfoContext(ctx, "rate limiting enabled",
			slog.Int("capacity", cfg.RateLimit.Capacity),
			slog.Int("refill_rate", cfg.RateLimit.RefillRate),
			slog.Duration("refill_interval", cfg.RateLimit.RefillInterval),
		)
	}

	a, err := api.New(t, opts...)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, a.Handler()); err != nil {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

// newLogger writes to errOut so stdout carries only conversion output.
// The prompt defaults to warn level, keeping per-line traces off the terminal
// unless LOG_LEVEL asks for them.
func newLogger(cfg Config, errOut io.Writer) *slog.Logger {
	level := cfg.LogLevel
	if level == "" && cfg.Mode == ModeREPL {
		level = "warn"
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevelName(level),
		logger.WithOutput(errOut),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
}
