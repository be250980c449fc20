// Package clientip resolves the client address of an HTTP request.
//
// Middleware stores the address in the request context, where the rate
// limiter keys on it and LoggerExtractor adds it to log records:
//
//	r.Use(clientip.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
