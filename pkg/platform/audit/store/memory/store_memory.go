// Package memory is the process-local audit store.
package memory

import (
	"context"
	"slices"
	"sync"

	audit "doccheck/pkg/platform/audit"
)

// DefaultCapacity bounds the store when no capacity is configured.
const DefaultCapacity = 10000

// InMemoryStore keeps at most capacity events, evicting the oldest first.
// Events are indexed per subject. Safe for concurrent use.
type InMemoryStore struct {
	mu       sync.Mutex
	capacity int
	// order is a ring of subject IDs in append order; head is the oldest.
	order     []string
	head      int
	size      int
	bySubject map[string][]audit.Event
}

type Option func(*InMemoryStore)

// WithCapacity caps the number of retained events. n <= 0 keeps the default.
func WithCapacity(n int) Option {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		capacity:  DefaultCapacity,
		bySubject: make(map[string][]audit.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.order = make([]string, s.capacity)
	return s
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.size == s.capacity {
		s.evictOldest()
	}
	s.order[(s.head+s.size)%s.capacity] = event.SubjectID
	s.size++
	s.bySubject[event.SubjectID] = append(s.bySubject[event.SubjectID], event)
	return nil
}

// evictOldest drops the oldest event. The oldest event overall is always the
// first one of its subject.
func (s *InMemoryStore) evictOldest() {
	subject := s.order[s.head]
	s.order[s.head] = ""
	s.head = (s.head + 1) % s.capacity
	s.size--

	events := s.bySubject[subject]
	if len(events) <= 1 {
		delete(s.bySubject, subject)
		return
	}
	s.bySubject[subject] = slices.Clone(events[1:])
}

// ListBySubject returns one application's retained events in append order.
func (s *InMemoryStore) ListBySubject(_ context.Context, subjectID string) ([]audit.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bySubject[subjectID]), nil
}
