package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uikit/pkg/logger"
)

// LoggerExtractor adds the request id from context to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
