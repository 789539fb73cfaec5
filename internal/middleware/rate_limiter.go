package middleware

import (
	"context"
	"sync"
	"time"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/errors"
	"fuel-ledger/internal/handlers"
	"fuel-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorLimiter keeps one token bucket per client address
type VisitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewVisitorLimiter creates a limiter allowing perSecond requests with the
// given burst for each client. Non-positive values fall back to 5 and 10.
func NewVisitorLimiter(perSecond, burst int) *VisitorLimiter {
	if perSecond <= 0 {
		perSecond = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &VisitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// NewVisitorLimiterFromConfig reads the limits from the security config
func NewVisitorLimiterFromConfig(cfg config.SecurityConfig) *VisitorLimiter {
	return NewVisitorLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
}

// Allow reports whether the client at ip may make a request now
func (l *VisitorLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Prune drops visitors idle for longer than ttl and returns how many remain
func (l *VisitorLimiter) Prune(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > ttl {
			delete(l.visitors, ip)
		}
	}
	return len(l.visitors)
}

// Run prunes idle visitors every minute until ctx is done
func (l *VisitorLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune(visitorTTL)
		}
	}
}

// RateLimiter rejects requests over the per-client limit with SYSTEM_006.
// metrics may be nil.
func RateLimiter(limiter *VisitorLimiter, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(handlers.ClientIP(c)) {
				if metrics != nil {
					metrics.IncrementCounter("rate_limited_request", map[string]string{"route": c.Path()})
				}
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}
