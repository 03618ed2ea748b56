package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"multilingual-chat/internal/orchestrator"
)

// recordingResponder captures every prompt it receives.
type recordingResponder struct {
	inner   orchestrator.Responder
	prompts []string
}

func (r *recordingResponder) Generate(ctx context.Context, prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	return r.inner.Generate(ctx, prompt)
}

type failingResponder struct{}

func (failingResponder) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("backend exploded")
}

func TestOrchestrator_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Input Short Circuit", func(t *testing.T) {
		rec := &recordingResponder{inner: orchestrator.NewTemplateResponder()}
		o := orchestrator.New(rec)

		for _, input := range []string{"", "   ", "\n\t "} {
			got, err := o.Run(ctx, input, "es")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != orchestrator.GreetingFallback {
				t.Errorf("expected greeting fallback for %q, got %q", input, got)
			}
		}
		if len(rec.prompts) != 0 {
			t.Errorf("backend must not be invoked on empty input, got %d calls", len(rec.prompts))
		}
		if o.Memory().Len() != 0 {
			t.Errorf("memory must stay untouched on empty input, got %d turns", o.Memory().Len())
		}
	})

	t.Run("Successful Turn Appends Two Turns", func(t *testing.T) {
		o := orchestrator.New(orchestrator.NewTemplateResponder())

		got, err := o.Run(ctx, "Hello", "es")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "Hello") {
			t.Errorf("response should echo the message, got %q", got)
		}
		if o.Memory().Len() != 2 {
			t.Fatalf("expected 2 turns after one run, got %d", o.Memory().Len())
		}

		rendered := o.Memory().Render()
		want := "User: Hello\nAssistant: " + got
		if rendered != want {
			t.Errorf("unexpected render:\n got: %q\nwant: %q", rendered, want)
		}
	})

	t.Run("Second Turn Prompt Contains First Turn Verbatim", func(t *testing.T) {
		rec := &recordingResponder{inner: orchestrator.NewTemplateResponder()}
		o := orchestrator.New(rec)

		first, err := o.Run(ctx, "Hello", "es")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := o.Run(ctx, "How are you?", "es"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(rec.prompts) != 2 {
			t.Fatalf("expected 2 backend calls, got %d", len(rec.prompts))
		}
		second := rec.prompts[1]
		if !strings.Contains(second, "User: Hello") {
			t.Errorf("second prompt missing first user line:\n%s", second)
		}
		if !strings.Contains(second, "Assistant: "+first) {
			t.Errorf("second prompt missing first assistant line:\n%s", second)
		}
	})

	t.Run("Backend Failure Leaves Memory Unmodified", func(t *testing.T) {
		o := orchestrator.New(failingResponder{})

		if _, err := o.Run(ctx, "Hello", "en"); err == nil {
			t.Fatal("expected error from failing backend")
		}
		if o.Memory().Len() != 0 {
			t.Errorf("memory must stay empty after a failed turn, got %d turns", o.Memory().Len())
		}
	})

	t.Run("Response Is Trimmed", func(t *testing.T) {
		o := orchestrator.New(paddedResponder{})
		got, err := o.Run(ctx, "hi", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "padded" {
			t.Errorf("expected trimmed response, got %q", got)
		}
	})

	t.Run("Reset Empties Memory", func(t *testing.T) {
		o := orchestrator.New(orchestrator.NewTemplateResponder())
		if _, err := o.Run(ctx, "Hello", "en"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o.Reset()
		if got := o.Memory().Render(); got != "" {
			t.Errorf("expected empty render after reset, got %q", got)
		}
	})
}

type paddedResponder struct{}

func (paddedResponder) Generate(ctx context.Context, prompt string) (string, error) {
	return "\n  padded \t\n", nil
}
