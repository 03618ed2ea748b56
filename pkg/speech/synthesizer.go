package speech

import "context"

// Audio is a synthesized payload plus its content type.
type Audio struct {
	Data        []byte
	ContentType string
}

// Synthesizer converts text to an audio payload.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (Audio, error)
}
