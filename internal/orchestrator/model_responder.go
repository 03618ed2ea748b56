package orchestrator

import (
	"context"

	"multilingual-chat/pkg/textgen"
)

// ModelResponder generates continuation text via a text-generation
// inference server.
type ModelResponder struct {
	client     *textgen.Client
	parameters map[string]any
}

// NewModelResponder wraps client with the default generation parameters
// merged with any caller-supplied overrides.
func NewModelResponder(client *textgen.Client, overrides map[string]any) *ModelResponder {
	parameters := map[string]any{
		"max_new_tokens": 128,
		"do_sample":      false,
		"temperature":    0.7,
	}
	for k, v := range overrides {
		parameters[k] = v
	}
	return &ModelResponder{client: client, parameters: parameters}
}

// Generate requests a continuation of prompt from the inference server.
func (r *ModelResponder) Generate(ctx context.Context, prompt string) (string, error) {
	return r.client.Generate(ctx, prompt, r.parameters)
}
