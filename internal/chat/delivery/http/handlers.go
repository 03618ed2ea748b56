package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-chat/pkg/response"
)

// Chat godoc
// @Summary     Run one chat turn
// @Description Routes the message through the session's prompt orchestrator and returns the localized reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq false "Chat turn"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.ErrResp "Bad Request"
// @Failure     500  {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// GetHistory godoc
// @Summary     Get chat history
// @Description Returns the session's history records in insertion order; empty array for unknown sessions.
// @Tags        History
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {array}  historyRecordResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Router      /api/v1/chat-history/{session_id} [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.uc.GetHistory(ctx, c.Param("session_id"))
	if err != nil {
		response.BadRequest(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(records))
}

// ResetHistory godoc
// @Summary     Reset a session
// @Description Discards the session's conversational memory and clears its history log.
// @Tags        History
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} resetResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/chat-history/{session_id} [DELETE]
func (h *handler) ResetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResetSession(ctx, c.Param("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ResetSession: %v", err)
		response.InternalError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResetResp(output))
}

// TextToSpeech godoc
// @Summary     Text to speech
// @Description Returns a deterministic audio payload for the given text.
// @Tags        Speech
// @Accept      json
// @Produce     audio/mpeg
// @Param       body body speechReq false "Text to synthesize"
// @Success     200 {string} binary "audio payload"
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/text-to-speech [POST]
func (h *handler) TextToSpeech(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSpeechReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	audio, err := h.uc.Synthesize(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Synthesize: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Bytes(c, audio.ContentType, audio.Data)
}
