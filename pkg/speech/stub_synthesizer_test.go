package speech_test

import (
	"bytes"
	"context"
	"testing"

	"multilingual-chat/pkg/speech"
)

func TestStubSynthesizer(t *testing.T) {
	s := speech.NewStubSynthesizer()

	t.Run("Deterministic Payload", func(t *testing.T) {
		a, err := s.Synthesize(context.Background(), "hola")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(a.Data, []byte("ID3hola")) {
			t.Errorf("unexpected payload: %q", a.Data)
		}
		if a.ContentType != "audio/mpeg" {
			t.Errorf("unexpected content type: %q", a.ContentType)
		}

		b, _ := s.Synthesize(context.Background(), "hola")
		if !bytes.Equal(a.Data, b.Data) {
			t.Error("payload should be deterministic for identical text")
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		a, err := s.Synthesize(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(a.Data, []byte("ID3")) {
			t.Errorf("expected bare magic header, got %q", a.Data)
		}
	})
}
