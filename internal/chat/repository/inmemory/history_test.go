package inmemory_test

import (
	"context"
	"errors"
	"testing"

	"multilingual-chat/internal/chat/repository"
	"multilingual-chat/internal/chat/repository/inmemory"
	"multilingual-chat/internal/model"
)

func record(session, input, reply string) model.HistoryRecord {
	return model.HistoryRecord{
		SessionID:      session,
		UserInput:      input,
		BotResponse:    reply,
		SourceLanguage: "en",
		TargetLanguage: "es",
	}
}

func TestHistoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Append Then Get Preserves Order", func(t *testing.T) {
		store := inmemory.New()
		store.Append(ctx, record("s1", "one", "uno"))
		store.Append(ctx, record("s1", "two", "dos"))

		got, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 records, got %d", len(got))
		}
		if got[0].UserInput != "one" || got[1].UserInput != "two" {
			t.Errorf("records out of order: %+v", got)
		}
	})

	t.Run("Unknown Session Yields Empty Slice", func(t *testing.T) {
		store := inmemory.New()
		got, err := store.Get(ctx, "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty slice, got %+v", got)
		}
	})

	t.Run("Get Returns A Copy", func(t *testing.T) {
		store := inmemory.New()
		store.Append(ctx, record("s1", "one", "uno"))

		got, _ := store.Get(ctx, "s1")
		got[0].UserInput = "mutated"

		again, _ := store.Get(ctx, "s1")
		if again[0].UserInput != "one" {
			t.Errorf("store leaked internal state: %+v", again[0])
		}
	})

	t.Run("Clear Then Get Is Empty", func(t *testing.T) {
		store := inmemory.New()
		store.Append(ctx, record("s1", "one", "uno"))

		if err := store.Clear(ctx, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := store.Get(ctx, "s1")
		if len(got) != 0 {
			t.Errorf("expected empty log after clear, got %+v", got)
		}

		// Clearing an unknown session is a no-op.
		if err := store.Clear(ctx, "ghost"); err != nil {
			t.Errorf("unexpected error clearing unknown session: %v", err)
		}
	})

	t.Run("Sessions Are Independent", func(t *testing.T) {
		store := inmemory.New()
		store.Append(ctx, record("a", "hello", "hola"))
		store.Append(ctx, record("b", "bye", "adios"))

		store.Clear(ctx, "a")
		got, _ := store.Get(ctx, "b")
		if len(got) != 1 || got[0].UserInput != "bye" {
			t.Errorf("session b affected by clearing a: %+v", got)
		}
	})

	t.Run("Empty Session Id Rejected", func(t *testing.T) {
		store := inmemory.New()
		err := store.Append(ctx, model.HistoryRecord{})
		if !errors.Is(err, repository.ErrEmptySessionID) {
			t.Errorf("expected ErrEmptySessionID, got %v", err)
		}
	})
}
