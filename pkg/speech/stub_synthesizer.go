package speech

import "context"

// mp3Magic makes the payload look like an MP3 file to naive sniffer code.
const mp3Magic = "ID3"

// StubSynthesizer returns deterministic bytes that simulate a text-to-speech
// payload. It exists to exercise the binary-response path of the transport
// layer, not to produce playable audio.
type StubSynthesizer struct{}

// NewStubSynthesizer creates the stub synthesizer.
func NewStubSynthesizer() *StubSynthesizer {
	return &StubSynthesizer{}
}

// Synthesize returns the magic header followed by the UTF-8 text.
func (s *StubSynthesizer) Synthesize(ctx context.Context, text string) (Audio, error) {
	return Audio{
		Data:        append([]byte(mp3Magic), []byte(text)...),
		ContentType: "audio/mpeg",
	}, nil
}
