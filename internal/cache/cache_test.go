package cache

import (
	"testing"

	"github.com/AnanyaVY/code-reviewer/internal/review"
)

func TestSlot(t *testing.T) {
	var s Slot

	if _, ok := s.Load(); ok {
		t.Error("fresh slot should be empty")
	}

	first := &review.Result{RunID: "1"}
	s.Store(first)
	got, ok := s.Load()
	if !ok || got.RunID != "1" {
		t.Fatalf("Load after Store = %+v, %v", got, ok)
	}

	// A new write overwrites, never accumulates.
	s.Store(&review.Result{RunID: "2"})
	got, _ = s.Load()
	if got.RunID != "2" {
		t.Errorf("slot should hold only the latest result, got %s", got.RunID)
	}

	s.Clear()
	if _, ok := s.Load(); ok {
		t.Error("slot should be empty after Clear")
	}
}
