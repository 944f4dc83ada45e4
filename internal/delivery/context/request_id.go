// Package context carries per-request values between the bridge middleware
// and the use cases: the request id and a logger already tagged with it.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey string

const (
	keyRequestID ctxKey = "request_id"
	keyLogger    ctxKey = "logger"

	// HeaderXRequestID is read from the shell and echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id stored by SetRequestID, or "" outside a tagged request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(keyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context was not produced by the request id middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
