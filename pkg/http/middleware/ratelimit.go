package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// limiter is a per-key token bucket. Keys are client IPs here; buckets
// are created on first sight and refilled lazily on each check.
type limiter struct {
	mu sync.Mutex
	m  map[string]*bucket
}

func newLimiter() *limiter { return &limiter{m: make(map[string]*bucket)} }

func (l *limiter) allow(key string, capacity, refillPerSec float64) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, refillRate: refillPerSec, last: now}
		l.m[key] = b
	}
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens -= 1
		return true
	}
	return false
}

// RateLimit throttles requests per client IP. Every analyze request
// can fan out to upstream market-data calls, so the cap here is what
// keeps the provider quota intact under abusive clients.
func RateLimit(refillPerSec, burst float64) echo.MiddlewareFunc {
	l := newLimiter()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP(), burst, refillPerSec) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"code":    "ERR_RATE_LIMITED",
					"message": "too many requests",
				})
			}
			return next(c)
		}
	}
}
