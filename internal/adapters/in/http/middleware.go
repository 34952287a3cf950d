package http

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestIDHeader carries the correlation id assigned to each request.
const requestIDHeader = "X-Request-Id"

// RequestID assigns a correlation id to every request that does not already
// carry one and echoes it back in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx.Set(requestIDHeader, id)
			ctx.Response().Header().Set(requestIDHeader, id)
			return next(ctx)
		}
	}
}

// RequestLogger writes one structured log line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			requestID, _ := ctx.Get(requestIDHeader).(string)
			logger.Info("request",
				slog.String("request_id", requestID),
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Request().URL.Path),
				slog.Int("status", ctx.Response().Status),
				slog.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}
