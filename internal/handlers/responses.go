package handlers

import (
	"log/slog"
	"net/http"

	"fuel-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError and SendSystemError, never
// through echo.NewHTTPError or a bare c.JSON. Request and domain failures
// (bad window, unknown account, unsupported format) go through SendError with
// their code. Repository, ledger and rendering failures go through
// SendSystemError, which logs the cause and answers with SYSTEM_001.

// TraceIDContextKey is the context key the request ID middleware fills
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps the payload of a successful call
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the response registered for code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)

	slog.Error("request failed",
		"trace_id", traceID,
		"route", c.Path(),
		"method", c.Request().Method,
		"error", cause)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
