package usecase_test

import (
	"context"
	"errors"

	"multilingual-chat/pkg/speech"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock language detector
type mockDetector struct {
	lang string
	err  error
}

func (m *mockDetector) Detect(ctx context.Context, text string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.lang, nil
}

// Mock synthesizer
type mockSynthesizer struct {
	fail bool
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text string) (speech.Audio, error) {
	if m.fail {
		return speech.Audio{}, errors.New("synthesis unavailable")
	}
	return speech.Audio{Data: []byte("ID3" + text), ContentType: "audio/mpeg"}, nil
}

// Recording responder captures prompts passed to the backend.
type recordingResponder struct {
	prompts []string
	fail    bool
}

func (r *recordingResponder) Generate(ctx context.Context, prompt string) (string, error) {
	if r.fail {
		return "", errors.New("backend exploded")
	}
	r.prompts = append(r.prompts, prompt)
	return "canned reply", nil
}
