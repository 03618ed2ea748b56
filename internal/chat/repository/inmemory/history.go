package inmemory

import (
	"context"
	"sync"

	"multilingual-chat/internal/chat/repository"
	"multilingual-chat/internal/model"
)

// HistoryStore is a volatile HistoryRepository keeping records in a process
// local map. State lives from process start to shutdown; nothing survives a
// restart.
type HistoryStore struct {
	mu    sync.RWMutex
	store map[string][]model.HistoryRecord
}

var _ repository.HistoryRepository = (*HistoryStore)(nil)

// New constructs an empty history store.
func New() *HistoryStore {
	return &HistoryStore{store: make(map[string][]model.HistoryRecord)}
}

// Append adds one record to the session's ordered log.
func (s *HistoryStore) Append(ctx context.Context, record model.HistoryRecord) error {
	if record.SessionID == "" {
		return repository.ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[record.SessionID] = append(s.store[record.SessionID], record)
	return nil
}

// Get returns a copy of the session's records in insertion order. Unknown
// sessions yield an empty slice.
func (s *HistoryStore) Get(ctx context.Context, sessionID string) ([]model.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.HistoryRecord, len(s.store[sessionID]))
	copy(records, s.store[sessionID])
	return records, nil
}

// Clear removes the session's entire log. Idempotent on unknown sessions.
func (s *HistoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.store, sessionID)
	return nil
}
