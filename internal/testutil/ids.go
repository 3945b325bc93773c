// Package testutil provides deterministic identity and time sources for
// tests, so repository behavior (ID assignment, log timestamps) can be
// asserted exactly instead of pattern-matched.
package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDs is a thread-safe deterministic identity.Source: it yields
// "id-0001", "id-0002", ... and can be reset for test reuse.
type SequenceIDs struct {
	mu  sync.Mutex
	seq int64
}

// NewSequenceIDs creates a source whose first NewID() returns "id-0001".
func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{}
}

func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("id-%04d", s.seq)
}

// Reset restarts the sequence. After Reset(), the next NewID() returns
// "id-0001" again.
func (s *SequenceIDs) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
}
