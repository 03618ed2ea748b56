package repository

import "errors"

var (
	ErrEmptySessionID = errors.New("session id is required")
)
