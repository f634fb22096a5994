package middleware

import (
	"net/http"
	"sync"

	"github.com/rohitguptaaa/AmazeMart/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(p.rps, p.burst)
		p.limiters[key] = l
	}
	return l
}

func rateLimit(pool *limiterPool, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pool.get(keyFn(c)).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP throttles anonymous browsing endpoints per client IP.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)
	return rateLimit(pool, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitBySession throttles mutation endpoints per session, which also
// shields the stores from accidental double-clicks.
func RateLimitBySession(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)
	return rateLimit(pool, func(c *gin.Context) string {
		if sid := c.GetString("session_id_validated"); sid != "" {
			return sid
		}
		return c.ClientIP()
	})
}
