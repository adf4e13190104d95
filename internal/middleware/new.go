package middleware

import (
	"notes-client/config"
	"notes-client/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New builds the shared middleware set. A non-positive requests-per-minute
// budget disables rate limiting.
func New(l log.Logger, cfg *config.Config) Middleware {
	mw := Middleware{
		l:    l,
		cors: cfg.CORS,
	}
	if cfg.RateLimit.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin)
	}
	return mw
}
