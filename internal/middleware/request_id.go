package middleware

import (
	"regexp"

	"fuel-ledger/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives in the echo context
	TraceIDContextKey = handlers.TraceIDContextKey
)

// upstream trace IDs end up in log lines, so only short opaque tokens are kept
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID propagates a valid X-Trace-ID from the caller or issues a new
// UUID, and exposes it on the context and the response
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID of the request, or "" outside RequestID
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
