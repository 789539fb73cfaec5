package middleware

import (
	stderrors "errors"
	"slices"

	"fuel-ledger/internal/errors"
	"fuel-ledger/internal/handlers"
	"fuel-ledger/internal/models"
	"fuel-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth accepts requests carrying a valid staff access token and puts
// the staff ID, role and station in the request context. Every outcome is
// counted as an authentication_event.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	record := func(eventType string) {
		if metrics != nil {
			metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
		}
	}
	reject := func(c echo.Context, eventType string, code errors.ErrorCode, opts ...errors.ErrorOption) error {
		record(eventType)
		return handlers.SendError(c, code, opts...)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return reject(c, "missing_token", errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return reject(c, "invalid_header", errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			switch {
			case stderrors.Is(err, services.ErrExpiredToken):
				return reject(c, "expired_token", errors.AuthExpiredToken)
			case err != nil:
				return reject(c, "invalid_token", errors.AuthInvalidTokenFormat)
			}

			staffID, err := uuid.Parse(claims.StaffID)
			if err != nil {
				return reject(c, "invalid_token", errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid staff ID in token"))
			}

			c.Set(handlers.StaffIDContextKey, staffID)
			c.Set(handlers.RoleContextKey, claims.Role)
			if claims.StationID != "" {
				c.Set(handlers.StationIDContextKey, claims.StationID)
			}

			record("authenticated")
			return next(c)
		}
	}
}

// RequireRole lets through staff holding one of roles. It must run after
// RequireAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(handlers.RoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Staff role not found in token"))
			}
			if !slices.Contains(roles, role) {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireStatementExport allows the roles that may download statements
func RequireStatementExport() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin, models.RoleManager, models.RoleAccountant)
}
