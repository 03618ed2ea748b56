package usecase

// SourceLanguageAuto asks the service to resolve the source language itself.
const SourceLanguageAuto = "auto"

// Log prefixes
const (
	LogPrefixChat         = "internal.chat.usecase.Chat"
	LogPrefixResetSession = "internal.chat.usecase.ResetSession"
)
