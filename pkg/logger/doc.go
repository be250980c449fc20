// Package logger builds *slog.Logger values from functional options and adds
// attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record. That is how request ids and the
// environment name reach log lines without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "deromanizer"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "numeral converted", logger.Numeral("XIV", 14))
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment pick
//     format and level per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter override the format.
//   - WithLevel / WithLevelName set the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
