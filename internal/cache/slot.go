package cache

import (
	"sync"

	"github.com/AnanyaVY/code-reviewer/internal/review"
)

// Slot holds at most the last computed review result. Writes overwrite, Clear
// empties; there is no other eviction and nothing is persisted.
type Slot struct {
	mu  sync.Mutex
	res *review.Result
}

// Store replaces the slot's content with res.
func (s *Slot) Store(res *review.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res = res
}

// Load returns the current content. ok is false when the slot is empty.
func (s *Slot) Load() (*review.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res, s.res != nil
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res = nil
}
