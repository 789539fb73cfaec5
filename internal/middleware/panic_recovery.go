package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"fuel-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a SYSTEM_001 response. When
// the handler already started writing a body nothing more is sent.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"route", c.Path(),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}

				if sendErr := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); sendErr != nil {
					slog.Error("failed to send panic recovery response", "trace_id", traceID, "error", sendErr)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
