package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/handlers"
	"fuel-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLimitedHandler(limiter *VisitorLimiter) echo.HandlerFunc {
	return RateLimiter(limiter, nil)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func serveFrom(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	err := handler(e.NewContext(req, rec))
	return rec, err
}

// frozenLimiter never refills tokens during a test
func frozenLimiter(perSecond, burst int) *VisitorLimiter {
	limiter := NewVisitorLimiter(perSecond, burst)
	fixed := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	return limiter
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := newLimitedHandler(frozenLimiter(2, 4))

	for i := 0; i < 4; i++ {
		rec, err := serveFrom(e, handler, "192.168.1.2:12345")
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// SendError writes the response and returns nil
	rec, err := serveFrom(e, handler, "192.168.1.2:12345")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_RecordsMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter("rate_limited_request", gomock.Any()).Times(1)

	e := echo.New()
	handler := RateLimiter(frozenLimiter(1, 1), metrics)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec, _ := serveFrom(e, handler, "10.0.0.9:1000")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = serveFrom(e, handler, "10.0.0.9:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := newLimitedHandler(frozenLimiter(5, 5))

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec, err := serveFrom(e, handler, ip)
			assert.NoError(t, err, "request %d for %s", i, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	limiter := NewVisitorLimiter(1, 1)
	current := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	current = current.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestNewVisitorLimiter_Defaults(t *testing.T) {
	limiter := NewVisitorLimiter(0, -1)
	assert.Equal(t, 10, limiter.burst)

	fromConfig := NewVisitorLimiterFromConfig(config.SecurityConfig{RateLimitPerSecond: 3, RateLimitBurst: 6})
	assert.Equal(t, 6, fromConfig.burst)
	assert.InDelta(t, 3.0, float64(fromConfig.limit), 0.0001)
}

func TestVisitorLimiter_Prune(t *testing.T) {
	limiter := NewVisitorLimiter(5, 10)
	current := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	limiter.Allow("old_ip")
	current = current.Add(5 * time.Minute)
	limiter.Allow("new_ip")

	remaining := limiter.Prune(visitorTTL)

	assert.Equal(t, 1, remaining)
	_, oldExists := limiter.visitors["old_ip"]
	_, newExists := limiter.visitors["new_ip"]
	assert.False(t, oldExists, "idle visitor should be removed")
	assert.True(t, newExists, "recent visitor should remain")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Forwarded-For chain uses first hop",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.expected, handlers.ClientIP(c))
		})
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := newLimitedHandler(frozenLimiter(5, 10))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount, rateLimitCount := 0, 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := serveFrom(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return
			}
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, successCount)
	assert.Equal(t, 10, rateLimitCount)
}
