package deadletter

import (
	"context"
	"sync"
)

// MemorySink keeps the most recent entries in a fixed-size ring.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// NewMemorySink creates a ring holding at most capacity entries.
func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = 1000
	}
	return &MemorySink{entries: make([]Entry, capacity)}
}

func (s *MemorySink) Put(_ context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.next] = e
	s.next = (s.next + 1) % len(s.entries)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

func (s *MemorySink) List(_ context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	if s.full {
		n = len(s.entries)
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.entries)) % len(s.entries)
		out = append(out, s.entries[idx])
	}
	return out, nil
}

// Len returns the number of stored entries.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return len(s.entries)
	}
	return s.next
}

func (s *MemorySink) Close() error { return nil }
