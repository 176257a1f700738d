// Package eventsourcing holds the building blocks shared by event-sourced
// aggregates: envelopes, the aggregate root, stores, specifications and projections.
package eventsourcing

import (
	"errors"
	"time"
)

var (
	// ErrConcurrencyConflict is returned when an append does not continue the
	// stored stream of the aggregate.
	ErrConcurrencyConflict = errors.New("event stream was modified concurrently")
	// ErrUnknownEvent is returned when a stored event name has no decoder.
	ErrUnknownEvent = errors.New("unknown event")
)

// Event is a fact recorded by an aggregate.
type Event interface {
	EventName() string
	AggregateID() string
}

// Envelope carries an event with its position in the aggregate stream.
type Envelope struct {
	AggregateID string
	Version     int
	Name        string
	RecordedAt  time.Time
	Event       Event
}
