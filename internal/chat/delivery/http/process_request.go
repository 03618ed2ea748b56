package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. Every field is optional; a
// missing or empty body yields the zero request, mirroring the defaults of
// the chat contract.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSpeechReq binds the text-to-speech request body.
func (h *handler) processSpeechReq(c *gin.Context) (speechReq, error) {
	var req speechReq
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
