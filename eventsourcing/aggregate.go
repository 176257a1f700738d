package eventsourcing

import (
	"context"
	"fmt"
	"time"
)

// Root is embedded by aggregates. Replayed and freshly recorded events both go
// through the same apply function.
type Root struct {
	id       string
	version  int
	recorded []Envelope
	apply    func(Event)
	now      func() time.Time
}

// NewRoot starts an empty stream for id. apply mutates the owning aggregate.
func NewRoot(id string, apply func(Event), now func() time.Time) Root {
	if now == nil {
		now = time.Now
	}
	return Root{id: id, apply: apply, now: now}
}

func (r *Root) ID() string { return r.id }

// Version is the number of events applied, replayed or recorded.
func (r *Root) Version() int { return r.version }

// Replay applies stored events in order.
func (r *Root) Replay(history []Envelope) {
	for _, env := range history {
		r.apply(env.Event)
		r.version = env.Version
	}
}

// Record queues an event for persistence without applying it.
func (r *Root) Record(e Event) {
	r.version++
	r.recorded = append(r.recorded, Envelope{
		AggregateID: r.id,
		Version:     r.version,
		Name:        e.EventName(),
		RecordedAt:  r.now(),
		Event:       e,
	})
}

// RecordAndApply records e and applies it to the aggregate.
func (r *Root) RecordAndApply(e Event) {
	r.Record(e)
	r.apply(e)
}

// RecordedEvents returns the events recorded since the last persist.
func (r *Root) RecordedEvents() []Envelope {
	out := make([]Envelope, len(r.recorded))
	copy(out, r.recorded)
	return out
}

// Persist hands the recorded events to store and clears them on success.
func (r *Root) Persist(ctx context.Context, store Store) error {
	if len(r.recorded) == 0 {
		return nil
	}
	if err := store.PersistMany(ctx, r.recorded); err != nil {
		return fmt.Errorf("persist %s: %w", r.id, err)
	}
	r.recorded = nil
	return nil
}
