package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"multilingual-chat/internal/model"
)

// Orchestrator coordinates memory, prompt formatting and the response
// backend for one session.
type Orchestrator struct {
	responder Responder
	memory    *Memory
}

// New creates an orchestrator with empty memory.
func New(responder Responder) *Orchestrator {
	return &Orchestrator{
		responder: responder,
		memory:    NewMemory(),
	}
}

// Run executes one conversational turn. Empty or whitespace-only input
// returns the greeting fallback immediately without touching memory or the
// backend. On backend failure the error propagates and memory stays
// unmodified; a turn is appended whole or not at all.
func (o *Orchestrator) Run(ctx context.Context, userInput, targetLanguage string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return GreetingFallback, nil
	}
	if targetLanguage == "" {
		targetLanguage = DefaultTargetLanguage
	}

	prompt := FormatPrompt(o.memory.Render(), userInput, targetLanguage)

	response, err := o.responder.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("responder generate: %w", err)
	}
	response = strings.TrimSpace(response)

	o.memory.Append(model.RoleUser, userInput)
	o.memory.Append(model.RoleAssistant, response)

	return response, nil
}

// Reset clears the session memory only; the history repository is cleared
// separately by the caller.
func (o *Orchestrator) Reset() {
	o.memory.Clear()
}

// Memory exposes the session memory for inspection.
func (o *Orchestrator) Memory() *Memory {
	return o.memory
}
