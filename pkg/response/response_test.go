package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multilingual-chat/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var payload map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if payload["foo"] != "bar" {
			t.Errorf("unexpected payload: %v", payload)
		}
	})

	t.Run("BadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.BadRequest(c, errors.New("bad input"))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}

		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "bad input" {
			t.Errorf("expected error message 'bad input', got %q", resp.Error)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("backend down"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}

		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "backend down" {
			t.Errorf("expected error message 'backend down', got %q", resp.Error)
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Bytes(c, "audio/mpeg", []byte("ID3hello"))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
			t.Errorf("expected audio/mpeg content type, got %q", ct)
		}
		if w.Body.String() != "ID3hello" {
			t.Errorf("unexpected body: %q", w.Body.String())
		}
	})
}
