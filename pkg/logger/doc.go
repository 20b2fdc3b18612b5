// Package logger builds *slog.Logger instances through functional options and
// keeps attribute names consistent across the application.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which injects attributes pulled from the
// context (for example the request id set by chi's RequestID middleware) on
// every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "qanda"),
//	    logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field validated",
//	    logger.FormID(id),
//	    logger.Field("title"),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog drops,
// so callers never need a nil check.
package logger
