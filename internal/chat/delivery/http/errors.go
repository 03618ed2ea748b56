package http

import (
	"errors"

	"multilingual-chat/internal/chat"
)

// mapError translates domain errors into caller-facing ones; internal
// details never leak through.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptySessionID):
		return chat.ErrEmptySessionID
	default:
		return errors.New("internal server error")
	}
}
