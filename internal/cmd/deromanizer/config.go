package deromanizer

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dmitrymomot/deromanizer/pkg/config"
	"github.com/dmitrymomot/deromanizer/pkg/httpserver"
	"github.com/dmitrymomot/deromanizer/pkg/logger"
	"github.com/dmitrymomot/deromanizer/pkg/ratelimiter"
)

const (
	ModeREPL  = "repl"
	ModeServe = "serve"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config holds the deromanizer command configuration.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Service      string `env:"APP_SERVICE" envDefault:"deromanizer"`
	LogLevel     string `env:"LOG_LEVEL"`
	Mode         string `env:"DEROMANIZER_MODE" envDefault:"repl"`
	Lang         string `env:"DEROMANIZER_LANG" envDefault:"en"`
	Quiet        bool   `env:"DEROMANIZER_QUIET"`
	MaxBatchSize int    `env:"DEROMANIZER_MAX_BATCH" envDefault:"100"`
	HTTP         httpserver.Config
	RateLimit    ratelimiter.Config
}

// ParseConfig reads environ, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "run mode: repl or serve")
	fs.StringVar(&cfg.HTTP.Addr, "addr", cfg.HTTP.Addr, "HTTP listen address (serve mode)")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "print ROMAN<TAB>DECIMAL per line without prompts (repl mode)")
	fs.IntVar(&cfg.RateLimit.Capacity, "rate-limit", cfg.RateLimit.Capacity, "requests per client burst, 0 disables limiting (serve mode)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch cfg.Mode {
	case ModeREPL, ModeServe:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	if cfg.LogLevel != "" {
		if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel)
		}
	}

	return cfg, nil
}

// EnvMap turns os.Environ style KEY=VALUE entries into a map.
func EnvMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			m[k] = v
		}
	}
	return m
}
