package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/salesreport/internal/logger"
)

// Default budget of RateLimiter when called with non-positive values.
const (
	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute
)

// RateLimiter allows bursts of up to limit requests per client IP and refills
// at limit per window. Requests beyond that get 429. Every call returns an
// independent store.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	every := rate.Every(window / time.Duration(limit))

	var limiters sync.Map

	return func(c *gin.Context) {
		ip := c.ClientIP()
		l, _ := limiters.LoadOrStore(ip, rate.NewLimiter(every, limit))

		if !l.(*rate.Limiter).Allow() {
			rid, _ := c.Get(RequestIDKey)
			lg := logger.Component("http")
			lg.Warn().Str("request_id", toString(rid)).Str("client_ip", ip).Msg("rate limit exceeded")
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
