package orchestrator

import (
	"context"

	pkgLog "multilingual-chat/pkg/log"
	"multilingual-chat/pkg/textgen"
)

// NewResponder selects the response backend for the process. When modelURL
// is set and the inference server answers its health probe, the model-backed
// responder is used; any initialization failure is logged and downgraded to
// the deterministic template responder. Absence of a trained model never
// breaks the chat path.
func NewResponder(ctx context.Context, modelURL string, generationConfig map[string]any, l pkgLog.Logger) Responder {
	if modelURL == "" {
		l.Infof(ctx, "%s: no model URL configured, using template responder", LogPrefixNewResponder)
		return NewTemplateResponder()
	}

	client := textgen.NewClient(modelURL)
	if err := client.Ping(ctx); err != nil {
		l.Warnf(ctx, "%s: falling back to template responder: %v", LogPrefixNewResponder, err)
		return NewTemplateResponder()
	}

	l.Infof(ctx, "%s: model backend ready at %s", LogPrefixNewResponder, modelURL)
	return NewModelResponder(client, generationConfig)
}
