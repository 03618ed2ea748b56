package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptySessionID = errors.New("session id is empty")
)
