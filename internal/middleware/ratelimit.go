package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"school-assistant/pkg/response"
)

const (
	defaultMaxClients = 1000
	defaultClientTTL  = 5 * time.Minute
)

// RateLimit throttles each client IP. It is a no-op when rate limiting is
// disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s exceeded the limit", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int, ttl time.Duration) *rateLimiter {
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	if ttl <= 0 {
		ttl = defaultClientTTL
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
