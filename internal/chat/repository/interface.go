package repository

import (
	"context"

	"multilingual-chat/internal/model"
)

// HistoryRepository is the append-only audit log of chat turns, keyed by
// session. Records are never mutated after append; a session's log is only
// ever cleared wholesale.
type HistoryRepository interface {
	Append(ctx context.Context, record model.HistoryRecord) error
	Get(ctx context.Context, sessionID string) ([]model.HistoryRecord, error)
	Clear(ctx context.Context, sessionID string) error
}
