package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chat/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The chat
// endpoint carries the rate limiter; history retrieval stays unmetered.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.POST("/text-to-speech", mw.RateLimit(), h.TextToSpeech)

	history := rg.Group("/chat-history")
	{
		history.GET("/:session_id", h.GetHistory)
		history.DELETE("/:session_id", h.ResetHistory)
	}
}
