package timespan

import "errors"

var (
	// ErrInvalidRange is returned for spans whose end precedes their start, or for
	// negative time components.
	ErrInvalidRange = errors.New("invalid time range")
	// ErrNotOverlapping is returned when combining spans that share no instant.
	ErrNotOverlapping = errors.New("time ranges do not overlap")
	// ErrInvalidFormat is returned when a textual time, span or date cannot be parsed.
	ErrInvalidFormat = errors.New("invalid time format")
)
