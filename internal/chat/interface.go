package chat

import (
	"context"

	"multilingual-chat/internal/model"
	"multilingual-chat/pkg/speech"
)

// UseCase is the chat domain's application-facing contract.
type UseCase interface {
	// Chat runs one conversational turn and records it in the history log.
	Chat(ctx context.Context, ip ChatInput) (ChatOutput, error)

	// GetHistory returns the session's history records in insertion order.
	GetHistory(ctx context.Context, sessionID string) ([]model.HistoryRecord, error)

	// ResetSession discards the session's orchestrator and history log.
	ResetSession(ctx context.Context, sessionID string) (ResetOutput, error)

	// Synthesize converts text to an audio payload.
	Synthesize(ctx context.Context, text string) (speech.Audio, error)
}
