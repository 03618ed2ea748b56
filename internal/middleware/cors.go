package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS settings for the public chat API: any origin, a fixed header
// allowlist, no credentials, preflight cached for 10 minutes.
const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
	corsMaxAge       = "600"
)

// CORS attaches the CORS headers to every response and answers preflight
// requests directly.
func (mw Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Max-Age", corsMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
