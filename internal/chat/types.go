package chat

// ChatInput carries one inbound chat turn.
type ChatInput struct {
	Message        string
	TargetLanguage string
	SourceLanguage string
	SessionID      string
}

// ChatOutput is the result of one chat turn. SessionID echoes the caller's
// id or carries the freshly generated one.
type ChatOutput struct {
	Response       string
	SessionID      string
	SourceLanguage string
	TargetLanguage string
}

// ResetOutput confirms a session reset.
type ResetOutput struct {
	SessionID string
	Cleared   bool
}
