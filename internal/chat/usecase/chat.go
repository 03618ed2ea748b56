package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"multilingual-chat/internal/chat"
	"multilingual-chat/internal/model"
	"multilingual-chat/internal/orchestrator"
	"multilingual-chat/pkg/speech"
)

// Chat runs one conversational turn through the session's orchestrator and
// records the completed interaction in the history log.
func (uc *implUseCase) Chat(ctx context.Context, ip chat.ChatInput) (chat.ChatOutput, error) {
	targetLanguage := ip.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = orchestrator.DefaultTargetLanguage
	}

	sourceLanguage := ip.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = SourceLanguageAuto
	}
	if strings.EqualFold(sourceLanguage, SourceLanguageAuto) {
		resolved, err := uc.detector.Detect(ctx, ip.Message)
		if err != nil {
			uc.l.Warnf(ctx, "%s: language detection failed, defaulting to %s: %v",
				LogPrefixChat, orchestrator.DefaultTargetLanguage, err)
			resolved = orchestrator.DefaultTargetLanguage
		}
		sourceLanguage = resolved
	}

	sessionID := ip.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	response, err := uc.registry.Get(sessionID).Run(ctx, ip.Message, targetLanguage)
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("orchestrator run: %w", err)
	}

	record := model.HistoryRecord{
		SessionID:      sessionID,
		UserInput:      ip.Message,
		BotResponse:    response,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}
	if err := uc.historyRepo.Append(ctx, record); err != nil {
		return chat.ChatOutput{}, fmt.Errorf("history append: %w", err)
	}

	return chat.ChatOutput{
		Response:       response,
		SessionID:      sessionID,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}, nil
}

// GetHistory returns the session's records in insertion order.
func (uc *implUseCase) GetHistory(ctx context.Context, sessionID string) ([]model.HistoryRecord, error) {
	if sessionID == "" {
		return nil, chat.ErrEmptySessionID
	}
	return uc.historyRepo.Get(ctx, sessionID)
}

// ResetSession discards the session's orchestrator (the next chat turn gets
// a brand-new one) and clears its history log.
func (uc *implUseCase) ResetSession(ctx context.Context, sessionID string) (chat.ResetOutput, error) {
	if sessionID == "" {
		return chat.ResetOutput{}, chat.ErrEmptySessionID
	}

	lock := uc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	uc.registry.Reset(sessionID)
	if err := uc.historyRepo.Clear(ctx, sessionID); err != nil {
		return chat.ResetOutput{}, fmt.Errorf("history clear: %w", err)
	}

	uc.l.Infof(ctx, "%s: session %s cleared", LogPrefixResetSession, sessionID)
	return chat.ResetOutput{SessionID: sessionID, Cleared: true}, nil
}

// Synthesize converts text to an audio payload.
func (uc *implUseCase) Synthesize(ctx context.Context, text string) (speech.Audio, error) {
	audio, err := uc.synthesizer.Synthesize(ctx, text)
	if err != nil {
		return speech.Audio{}, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}
