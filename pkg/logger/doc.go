// Package logger configures *slog.Logger instances for the uikit packages.
//
// New builds a text or JSON handler from functional options and wraps it in
// LogHandlerDecorator, which appends attributes pulled from the record's
// context (for example the request id set by pkg/requestid) on every call.
//
// Helper constructors in attr.go keep attribute keys consistent across
// packages. Helpers that take an error or an id return an empty slog.Attr
// for nil/empty input, which slog drops, so callers never need a nil check:
//
//	log.WarnContext(ctx, "request failed", logger.Error(err), logger.StatusCode(code))
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "billing-ui"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Nop returns a discard logger; library types default to it so they are
// silent unless a logger is passed in.
package logger
