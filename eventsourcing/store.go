package eventsourcing

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Store appends and replays event streams keyed by aggregate id. PersistMany is
// all-or-nothing.
type Store interface {
	Retrieve(ctx context.Context, aggregateID string) ([]Envelope, error)
	PersistMany(ctx context.Context, events []Envelope) error
}

// InMemoryStore keeps streams in a map.
type InMemoryStore struct {
	mu      sync.RWMutex
	streams map[string][]Envelope
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{streams: make(map[string][]Envelope)}
}

func (s *InMemoryStore) Retrieve(_ context.Context, aggregateID string) ([]Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stream := s.streams[aggregateID]
	out := make([]Envelope, len(stream))
	copy(out, stream)
	return out, nil
}

func (s *InMemoryStore) Persist(ctx context.Context, e Envelope) error {
	return s.PersistMany(ctx, []Envelope{e})
}

// PersistMany appends when every envelope continues its stream; otherwise
// nothing is written.
func (s *InMemoryStore) PersistMany(_ context.Context, events []Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]int)
	for _, e := range events {
		expected, ok := next[e.AggregateID]
		if !ok {
			expected = len(s.streams[e.AggregateID]) + 1
		}
		if e.Version != expected {
			return fmt.Errorf("%s version %d, expected %d: %w", e.AggregateID, e.Version, expected, ErrConcurrencyConflict)
		}
		next[e.AggregateID] = expected + 1
	}
	for _, e := range events {
		s.streams[e.AggregateID] = append(s.streams[e.AggregateID], e)
	}
	return nil
}

// RetrieveAll returns every stream, ordered by aggregate id.
func (s *InMemoryStore) RetrieveAll(_ context.Context) ([]Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.streams))
	for id := range s.streams {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []Envelope
	for _, id := range ids {
		out = append(out, s.streams[id]...)
	}
	return out, nil
}
