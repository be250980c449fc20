// Package environment propagates the application environment (development,
// staging, production) through context.Context, HTTP requests and logs.
//
// Parse turns configuration values such as APP_ENV=prod into an Environment.
// Middleware stores it on every request context, and LoggerExtractor exposes
// it to slog loggers built by the logger package.
package environment
