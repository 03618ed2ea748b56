package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrResp is the error payload surfaced to callers on failure. Internal
// state never crosses the transport boundary; only the message does.
type ErrResp struct {
	Error string `json:"error"`
}

// OK sends 200 with a flat JSON payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// InternalError sends 500 with the error message.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: err.Error()})
}

// TooManyRequests sends 429 with the error message.
func TooManyRequests(c *gin.Context, err error) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: err.Error()})
}

// Bytes sends 200 with a raw body and explicit content type.
func Bytes(c *gin.Context, contentType string, body []byte) {
	c.Data(http.StatusOK, contentType, body)
}
