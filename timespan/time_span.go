// File: timespan/time_span.go
package timespan

import (
	"fmt"
	"strings"
)

// TimeSpan is a closed interval of wall-clock time within one day.
type TimeSpan struct {
	start TimeOfDay
	end   TimeOfDay
}

// New validates that end is not before start. Equal bounds are only accepted for
// the 00:00-00:00 marker.
func New(start, end TimeOfDay) (TimeSpan, error) {
	if end.Before(start) {
		return TimeSpan{}, fmt.Errorf("end %s before start %s: %w", end, start, ErrInvalidRange)
	}
	if start.Equal(end) && !start.Equal(Midnight) {
		return TimeSpan{}, fmt.Errorf("empty range %s-%s: %w", start, end, ErrInvalidRange)
	}
	return TimeSpan{start: start, end: end}, nil
}

// Parse reads "HH:MM-HH:MM".
func Parse(s string) (TimeSpan, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return TimeSpan{}, fmt.Errorf("parse range %q: %w", s, ErrInvalidFormat)
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeSpan{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeSpan{}, err
	}
	return New(start, end)
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) TimeSpan {
	ts, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (s TimeSpan) Start() TimeOfDay { return s.start }
func (s TimeSpan) End() TimeOfDay   { return s.end }

// Length is end minus start.
func (s TimeSpan) Length() TimeOfDay {
	return s.end.Sub(s.start)
}

// Contains reports whether t lies in the span, both ends included.
func (s TimeSpan) Contains(t TimeOfDay) bool {
	return t.AfterOrEqual(s.start) && t.BeforeOrEqual(s.end)
}

// Overlaps is true when any boundary of one span lies inside the other. Touching
// spans overlap.
func (s TimeSpan) Overlaps(other TimeSpan) bool {
	return s.Contains(other.start) ||
		s.Contains(other.end) ||
		other.Contains(s.start) ||
		other.Contains(s.end)
}

// Combine returns the union of two overlapping spans.
func (s TimeSpan) Combine(other TimeSpan) (TimeSpan, error) {
	if !s.Overlaps(other) {
		return TimeSpan{}, fmt.Errorf("combine %s with %s: %w", s, other, ErrNotOverlapping)
	}
	return s.union(other), nil
}

func (s TimeSpan) union(other TimeSpan) TimeSpan {
	out := s
	if other.start.Before(out.start) {
		out.start = other.start
	}
	if other.end.After(out.end) {
		out.end = other.end
	}
	return out
}

func (s TimeSpan) Equal(other TimeSpan) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}

func (s TimeSpan) String() string {
	return s.start.String() + "-" + s.end.String()
}
