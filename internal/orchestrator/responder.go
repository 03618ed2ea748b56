package orchestrator

import (
	"context"
	"fmt"
	"strings"
)

// Responder turns a formatted prompt into response text.
type Responder interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TemplateResponder is the deterministic fallback backend. It parses the
// rendered prompt to recover the declared target language and the latest
// user message, so the system stays fully operable without a trained model.
type TemplateResponder struct{}

// NewTemplateResponder creates the deterministic responder.
func NewTemplateResponder() *TemplateResponder {
	return &TemplateResponder{}
}

// Generate echoes the recovered message, tagged with the target language
// when it differs from the default.
func (r *TemplateResponder) Generate(ctx context.Context, prompt string) (string, error) {
	language := extractTargetLanguage(prompt)
	message := extractUserMessage(prompt)
	if message == "" {
		return GreetingFallback, nil
	}

	prefix := ""
	if language != "" && language != DefaultTargetLanguage {
		prefix = "[" + language + "] "
	}
	return fmt.Sprintf("%sYou said: %s. Let me know if you need more help.", prefix, message), nil
}

// extractTargetLanguage returns the value of the last "Target language:"
// line, defaulting to DefaultTargetLanguage when absent or empty.
func extractTargetLanguage(prompt string) string {
	lines := strings.Split(prompt, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		lowered := strings.ToLower(lines[i])
		if strings.HasPrefix(lowered, targetLanguagePrefix) {
			value := strings.TrimSpace(lines[i][len(targetLanguagePrefix):])
			if value == "" {
				return DefaultTargetLanguage
			}
			return value
		}
	}
	return DefaultTargetLanguage
}

// extractUserMessage returns the text of the last "User:" line, or "".
func extractUserMessage(prompt string) string {
	lines := strings.Split(prompt, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], userLinePrefix) {
			return strings.TrimSpace(lines[i][len(userLinePrefix):])
		}
	}
	return ""
}
