package config_test

import (
	"testing"

	"multilingual-chat/config"
)

func TestParseGenerationConfig(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		got, err := config.ParseGenerationConfig("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil for empty input, got %v", got)
		}
	})

	t.Run("Valid Object", func(t *testing.T) {
		got, err := config.ParseGenerationConfig(`{"max_new_tokens": 64, "do_sample": true}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["max_new_tokens"] != float64(64) {
			t.Errorf("unexpected max_new_tokens: %v", got["max_new_tokens"])
		}
		if got["do_sample"] != true {
			t.Errorf("unexpected do_sample: %v", got["do_sample"])
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := config.ParseGenerationConfig(`{not json`); err == nil {
			t.Fatal("expected error for malformed JSON")
		}
	})

	t.Run("Non Object", func(t *testing.T) {
		if _, err := config.ParseGenerationConfig(`[1, 2, 3]`); err == nil {
			t.Fatal("expected error for JSON array")
		}
	})
}
