package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fuel-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, route, and status",
	},
	[]string{"code", "route", "status"},
)

// statusCodes maps statuses echo raises itself (unmatched routes, wrong
// methods, oversized bodies) onto API error codes
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders every error that escapes a handler as an
// ErrorResponse. Handlers normally answer through handlers.SendError, so this
// mostly sees echo's own errors, validator errors and unexpected failures.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	status, errorResponse := classifyError(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "request error",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", status,
		"route", c.Path(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, errorResponse); sendErr != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func classifyError(err error, traceID string) (int, *errors.ErrorResponse) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		var opts []errors.ErrorOption
		// echo fills Message with the status text when none is given; keep
		// the registered message in that case
		if message := fmt.Sprint(httpErr.Message); message != http.StatusText(httpErr.Code) {
			opts = append(opts, errors.WithMessage(message))
		}
		return httpErr.Code, errors.NewErrorResponse(mapHTTPStatusToErrorCode(httpErr.Code), traceID, opts...)
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
		}
		return http.StatusBadRequest, errors.NewValidationError(fieldErrors, traceID)
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse.GetHTTPStatus(), errorResponse
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

// formatValidationError turns a failed rule into a message for the client
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid", "entity_id":
		return "must be a valid ID (UUID format)"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "ledger_date":
		return "must be a calendar date formatted as YYYY-MM-DD"
	case "export_format":
		return "must be one of: csv, xlsx, pdf"
	case "account_kind":
		return "must be one of: customers, suppliers, bank-accounts, tanks"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
