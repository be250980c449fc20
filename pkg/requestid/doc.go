// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID header when it is short
// and made of [a-zA-Z0-9_-]; otherwise it generates a UUIDv7. The id is stored
// in the request context, echoed in the response header, and exposed to slog
// through LoggerExtractor.
package requestid
