// Package httpserver runs an http.Handler with configurable timeouts,
// lifecycle hooks and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run returns once ctx is cancelled (callers usually derive it from
// signal.NotifyContext) or Shutdown is called. HealthCheckHandler provides
// liveness and readiness endpoints.
package httpserver
