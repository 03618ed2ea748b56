package middleware

import (
	pkgLog "multilingual-chat/pkg/log"
)

// Config tunes the cross-cutting middleware.
type Config struct {
	// RateLimitPerMin caps chat requests per client IP per minute.
	// Zero disables the limiter.
	RateLimitPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	cfg     Config
	limiter *clientRateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	var limiter *clientRateLimiter
	if cfg.RateLimitPerMin > 0 {
		limiter = newClientRateLimiter(cfg.RateLimitPerMin)
	}
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: limiter,
	}
}
