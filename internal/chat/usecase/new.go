package usecase

import (
	"sync"

	"multilingual-chat/internal/chat/repository"
	"multilingual-chat/internal/orchestrator"
	pkgLog "multilingual-chat/pkg/log"
	"multilingual-chat/pkg/speech"
	"multilingual-chat/pkg/translate"
)

type implUseCase struct {
	l           pkgLog.Logger
	registry    *orchestrator.Registry
	historyRepo repository.HistoryRepository
	synthesizer speech.Synthesizer
	detector    translate.Detector

	// Serializes all operations per session id. Operations on different
	// sessions proceed concurrently.
	locksMu      sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

// New creates the chat UseCase instance.
func New(
	l pkgLog.Logger,
	registry *orchestrator.Registry,
	historyRepo repository.HistoryRepository,
	synthesizer speech.Synthesizer,
	detector translate.Detector,
) *implUseCase {
	return &implUseCase{
		l:            l,
		registry:     registry,
		historyRepo:  historyRepo,
		synthesizer:  synthesizer,
		detector:     detector,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex guarding sessionID, creating it on first
// use. Lock entries live for the process lifetime, like the stores they
// guard.
func (uc *implUseCase) sessionLock(sessionID string) *sync.Mutex {
	uc.locksMu.Lock()
	defer uc.locksMu.Unlock()
	lock, ok := uc.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		uc.sessionLocks[sessionID] = lock
	}
	return lock
}
