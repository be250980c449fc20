// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type AppConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load caches one copy per configuration type for the life of the process.
// Parse reads from an explicit map instead, which keeps command tests
// independent of the process environment. ResetCache clears the cache.
//
// Errors are sentinels (ErrParsingConfig, ErrLoadingEnvFile, ErrNilPointer)
// joined with the underlying cause, so errors.Is works on every result.
package config
