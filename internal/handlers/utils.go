package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by middleware.RequireAuth
const (
	StaffIDContextKey   = "staff_id"
	RoleContextKey      = "role"
	StationIDContextKey = "station_id"
)

var ErrUnauthorized = errors.New("unauthorized")

// getStaffIDFromContext returns the authenticated staff member
func getStaffIDFromContext(c echo.Context) (uuid.UUID, error) {
	staffID, ok := c.Get(StaffIDContextKey).(uuid.UUID)
	if !ok || staffID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return staffID, nil
}

func getRoleFromContext(c echo.Context) string {
	role, _ := c.Get(RoleContextKey).(string)
	return role
}

// getIntParam reads an integer query parameter, falling back when it is
// absent or not a number
func getIntParam(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return value
}

func clampInt(value, lo, hi int) int {
	return max(lo, min(value, hi))
}

// ClientIP returns the originating client address: the first hop of
// X-Forwarded-For, then X-Real-IP, then the connection address
func ClientIP(c echo.Context) string {
	header := c.Request().Header
	if xff := header.Get(echo.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := header.Get(echo.HeaderXRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}
	return c.RealIP()
}
