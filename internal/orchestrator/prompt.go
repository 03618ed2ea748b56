package orchestrator

import "fmt"

// FormatPrompt renders conversation history, the new user input and the
// target language into the fixed prompt template.
func FormatPrompt(history, userInput, targetLanguage string) string {
	return fmt.Sprintf(promptTemplate, targetLanguage, history, userInput)
}
