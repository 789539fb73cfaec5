package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuel-ledger/internal/database"
	"fuel-ledger/internal/dto"
	apierrors "fuel-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerSuite))
}

func (s *HealthCheckHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
}

func (s *HealthCheckHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *HealthCheckHandlerSuite) TestHealthCheck_Healthy() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := NewHealthCheckHandler(s.db.DB).HealthCheck(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body.Status)
	s.NotEmpty(body.Time)
	s.Require().Contains(body.Checks, "database")
	s.Equal("up", body.Checks["database"].Status)
	s.GreaterOrEqual(body.Checks["database"].LatencyMS, int64(0))
}

func (s *HealthCheckHandlerSuite) TestHealthCheck_DatabaseClosed() {
	sqlDB, err := s.db.DB.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	err = NewHealthCheckHandler(s.db.DB).HealthCheck(c)

	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(apierrors.SystemServiceUnavailable), response.Error.Code)
	s.Equal("trace-123", response.Error.TraceID)
	s.Equal([]string{"Database connection failed"}, response.Error.Details)
}

func (s *HealthCheckHandlerSuite) TestHealthCheck_CancelledRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	s.NoError(NewHealthCheckHandler(s.db.DB).HealthCheck(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
