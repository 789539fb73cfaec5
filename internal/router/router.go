package router

import (
	"context"
	"log/slog"
	"net/http"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/handlers"
	"fuel-ledger/internal/middleware"
	"fuel-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the HTTP surface serves. Dev may be nil, in
// which case the test data routes are not registered.
type Handlers struct {
	Health  *handlers.HealthCheckHandler
	Ledger  *handlers.LedgerHandler
	Account *handlers.AccountHandler
	Dev     *handlers.DevHandler
}

// Dependencies are the services the middleware chain needs
type Dependencies struct {
	TokenService services.TokenServiceInterface
	Metrics      services.MetricsRecorderInterface
	Limiter      *middleware.VisitorLimiter
}

// New builds the echo instance with the middleware chain and all routes
func New(cfg *config.Config, h Handlers, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewVisitorLimiterFromConfig(cfg.Security)
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
		MaxAge:        300,
	}))

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.Use(middleware.RateLimiter(limiter, deps.Metrics))
	api.Use(middleware.RequireAuth(deps.TokenService, deps.Metrics))

	if h.Dev != nil && cfg.IsDevelopment() {
		dev := api.Group("/dev", middleware.RequireAdmin())
		dev.POST("/customers/:id/generate-test-data", h.Dev.GenerateCustomerRecords)
	}

	api.GET("/:kind", h.Account.ListAccounts)
	api.GET("/:kind/:id/ledger", h.Ledger.GetLedger)
	api.GET("/:kind/:id/ledger/export", h.Ledger.ExportLedger, middleware.RequireStatementExport())

	return e
}

// requestLogger writes one structured line per request
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRoutePath: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			slog.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
