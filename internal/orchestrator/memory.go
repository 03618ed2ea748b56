package orchestrator

import (
	"strings"
	"sync"

	"multilingual-chat/internal/model"
)

// Memory holds the ordered, append-only log of turns for one session.
// Safe for concurrent access; cleared (not destroyed) on reset.
type Memory struct {
	mu    sync.RWMutex
	turns []model.Turn
}

// NewMemory constructs an empty memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Append adds one turn. Turns are never reordered or deduplicated.
func (m *Memory) Append(role model.Role, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, model.Turn{Role: role, Text: text})
}

// Render concatenates all turns as history text, one line per turn, in
// insertion order. Empty memory renders as "".
func (m *Memory) Render() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]string, len(m.turns))
	for i, turn := range m.turns {
		label := userLinePrefix
		if turn.Role == model.RoleAssistant {
			label = assistantLinePrefix
		}
		lines[i] = label + " " + turn.Text
	}
	return strings.Join(lines, "\n")
}

// Clear empties the log. Idempotent.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
}

// Len returns the number of stored turns.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}
