package model

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of a session's conversational memory.
// Immutable once appended.
type Turn struct {
	Role Role
	Text string
}

// HistoryRecord is an audit-log entry for one completed chat turn.
// It is kept independently of the orchestrator's memory and surfaced
// verbatim on retrieval.
type HistoryRecord struct {
	SessionID      string `json:"session_id"`
	UserInput      string `json:"user_input"`
	BotResponse    string `json:"bot_response"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}
