package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"multilingual-chat/pkg/response"
)

var errRateLimited = errors.New("rate limit exceeded")

// clientRateLimiter keeps one token bucket per client IP in an expiring LRU
// so idle clients are evicted.
type clientRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientRateLimiter(requestsPerMin int) *clientRateLimiter {
	return &clientRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			10*time.Minute,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: requestsPerMin,
	}
}

func (rl *clientRateLimiter) allow(clientIP string) bool {
	limiter, ok := rl.limiters.Get(clientIP)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(clientIP, limiter)
	}
	return limiter.Allow()
}

// RateLimit caps requests per client IP. A nil limiter (rate limiting
// disabled) passes everything through.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		if !mw.limiter.allow(c.ClientIP()) {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c, errRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
