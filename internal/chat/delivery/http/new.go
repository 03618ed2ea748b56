package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chat/internal/chat"
	pkgLog "multilingual-chat/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	GetHistory(c *gin.Context)
	ResetHistory(c *gin.Context)
	TextToSpeech(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
