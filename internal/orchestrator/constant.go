package orchestrator

// DefaultTargetLanguage is used when a request does not name one.
const DefaultTargetLanguage = "en"

// GreetingFallback is returned for empty input and by the template responder
// when it cannot recover a user message from the prompt.
const GreetingFallback = "I'm ready whenever you want to chat."

// promptTemplate is the fixed prompt layout. The structural ordering
// (instruction, target language, history, user input, assistant cue) is a
// contract: the template responder recovers values from the
// "Target language:" and "User:" line prefixes.
const promptTemplate = "You are a multilingual assistant. Always answer using the target language.\n" +
	"Target language: %s\n" +
	"Conversation history:\n%s\n" +
	"User: %s\n" +
	"Assistant:"

// Line prefixes of the prompt micro-format.
const (
	targetLanguagePrefix = "target language:"
	userLinePrefix       = "User:"
	assistantLinePrefix  = "Assistant:"
)

// Log prefixes
const (
	LogPrefixNewResponder = "internal.orchestrator.NewResponder"
)
