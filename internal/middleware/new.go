package middleware

import (
	"time"

	"school-assistant/pkg/log"
)

// Config configures the shared middleware.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	MaxClients       int
	ClientTTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients, cfg.ClientTTL)
	}
	return m
}
