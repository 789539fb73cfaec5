package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fuel-ledger/internal/dto"
	"fuel-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthCheckHandler reports whether the API can reach its database
type HealthCheckHandler struct {
	db *gorm.DB
}

func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck pings the database within pingTimeout
//
// Method: GET /health
// Authentication: None
//
// Success Response: 200 OK
//   - status: "healthy"
//   - time: RFC 3339 timestamp
//   - checks.database: status and ping latency
//
// Error Responses:
//   - 503: Database unreachable (SYSTEM_003)
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	started := time.Now()
	if err := h.pingDatabase(ctx); err != nil {
		slog.Warn("health check failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Checks: map[string]dto.DependencyCheck{
			"database": {Status: "up", LatencyMS: time.Since(started).Milliseconds()},
		},
	})
}

func (h *HealthCheckHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
