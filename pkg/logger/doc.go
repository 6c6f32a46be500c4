// Package logger builds *slog.Logger instances from functional options and
// injects attributes taken from context.Context into every record.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs the registered ContextExtractor
// callbacks on each call to Handle.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "validates"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "validation completed",
//		logger.Type("Post"),
//		logger.ErrorCount(2),
//		logger.Duration(time.Since(start)),
//	)
//
// ParseLevel and ParseFormat convert configuration strings; WithFormat panics
// on an unknown format so that a misconfigured logger stops startup.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
