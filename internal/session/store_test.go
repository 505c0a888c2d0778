package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
	"github.com/HIBA-BEG/Warehouse-Management/internal/session"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	t.Run("empty store reports no session", func(t *testing.T) {
		if _, err := store.Get(ctx); !errors.Is(err, session.ErrNoSession) {
			t.Errorf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("save then get round-trips the warehouseman", func(t *testing.T) {
		w := models.Warehouseman{ID: 7, Name: "Eytch Hiba", SecretKey: "ABC1234", City: "Marrakech"}
		if err := store.Save(ctx, w); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if *got != w {
			t.Errorf("expected %+v, got %+v", w, *got)
		}
	})

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		got.Name = "mutated"

		again, err := store.Get(ctx)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if again.Name != "Eytch Hiba" {
			t.Errorf("stored value must not be affected by caller mutation, got %q", again.Name)
		}
	})

	t.Run("clear drops the session", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if _, err := store.Get(ctx); !errors.Is(err, session.ErrNoSession) {
			t.Errorf("expected ErrNoSession after clear, got %v", err)
		}
	})
}
