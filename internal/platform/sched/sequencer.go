// internal/platform/sched/sequencer.go
package sched

import "sync"

// Sequencer guards against stale responses overwriting newer ones when
// requests resolve out of order. Each request takes a ticket via Issue; a
// response may only be applied when its ticket is newer than the last applied
// one, so a slow early request resolving after a faster later one is
// discarded.
type Sequencer struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Issue hands out the next ticket.
func (s *Sequencer) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// TryApply reports whether the response for ticket seq may be applied, and
// records it as applied when so. Tickets at or below the last applied one are
// rejected.
func (s *Sequencer) TryApply(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	return true
}

// Latest returns the most recently issued ticket.
func (s *Sequencer) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}
