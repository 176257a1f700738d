package timespan

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar date form used in every textual span.
const DateLayout = "2006-01-02"

// DateTimeSpan is a TimeSpan on one calendar date.
type DateTimeSpan struct {
	date time.Time
	span TimeSpan
}

// NewDateTimeSpan pins span to the calendar day of date.
func NewDateTimeSpan(date time.Time, span TimeSpan) DateTimeSpan {
	y, m, d := date.Date()
	return DateTimeSpan{date: time.Date(y, m, d, 0, 0, 0, 0, date.Location()), span: span}
}

// ParseDateTimeSpan reads "YYYY-MM-DD HH:MM-HH:MM" as a UTC date.
func ParseDateTimeSpan(s string) (DateTimeSpan, error) {
	return ParseDateTimeSpanIn(s, time.UTC)
}

// ParseDateTimeSpanIn reads "YYYY-MM-DD HH:MM-HH:MM" in loc.
func ParseDateTimeSpanIn(s string, loc *time.Location) (DateTimeSpan, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return DateTimeSpan{}, fmt.Errorf("parse date time range %q: %w", s, ErrInvalidFormat)
	}
	date, err := time.ParseInLocation(DateLayout, fields[0], loc)
	if err != nil {
		return DateTimeSpan{}, fmt.Errorf("parse date of %q: %w", s, ErrInvalidFormat)
	}
	span, err := Parse(fields[1])
	if err != nil {
		return DateTimeSpan{}, err
	}
	return DateTimeSpan{date: date, span: span}, nil
}

// MustParseDateTimeSpan is ParseDateTimeSpan for literals; it panics on error.
func MustParseDateTimeSpan(s string) DateTimeSpan {
	dts, err := ParseDateTimeSpan(s)
	if err != nil {
		panic(err)
	}
	return dts
}

// FromTimes builds a span from two instants on the same calendar day.
func FromTimes(start, end time.Time) (DateTimeSpan, error) {
	end = end.In(start.Location())
	if start.Format(DateLayout) != end.Format(DateLayout) {
		return DateTimeSpan{}, fmt.Errorf("%s and %s are on different days: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), ErrInvalidRange)
	}
	span, err := New(FromTime(start), FromTime(end))
	if err != nil {
		return DateTimeSpan{}, err
	}
	return NewDateTimeSpan(start, span), nil
}

func (s DateTimeSpan) Date() time.Time    { return s.date }
func (s DateTimeSpan) TimeSpan() TimeSpan { return s.span }

// StartsAt and EndsAt are instants in the span's own location.
func (s DateTimeSpan) StartsAt() time.Time { return s.span.start.On(s.date) }
func (s DateTimeSpan) EndsAt() time.Time   { return s.span.end.On(s.date) }

// startIn reads the wall-clock start in loc, so comparisons with instants from
// another zone use the same wall-clock reading.
func (s DateTimeSpan) startIn(loc *time.Location) time.Time {
	y, m, d := s.date.Date()
	return s.span.start.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

func (s DateTimeSpan) endIn(loc *time.Location) time.Time {
	y, m, d := s.date.Date()
	return s.span.end.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// IsAfter reports whether the span starts strictly after t.
func (s DateTimeSpan) IsAfter(t time.Time) bool {
	return s.startIn(t.Location()).After(t)
}

func (s DateTimeSpan) IsBefore(t time.Time) bool {
	return !s.IsAfter(t)
}

// IsBeforeWithTolerance is true when the span started more than tolerance minutes
// before now.
func (s DateTimeSpan) IsBeforeWithTolerance(tolerance int, now time.Time) (bool, error) {
	if tolerance < 0 {
		return false, fmt.Errorf("tolerance %d minutes: %w", tolerance, ErrInvalidRange)
	}
	if s.IsAfter(now) {
		return false, nil
	}
	diff := int(math.Floor(s.startIn(now.Location()).Sub(now).Minutes()))
	return -tolerance >= diff, nil
}

func (s DateTimeSpan) IsAfterWithTolerance(tolerance int, now time.Time) (bool, error) {
	before, err := s.IsBeforeWithTolerance(tolerance, now)
	if err != nil {
		return false, err
	}
	return !before, nil
}

// EndsBefore reports whether the span has ended at t.
func (s DateTimeSpan) EndsBefore(t time.Time) bool {
	return !s.endIn(t.Location()).After(t)
}

func (s DateTimeSpan) IsSameDayAs(t time.Time) bool {
	return s.date.Format(DateLayout) == t.Format(DateLayout)
}

func (s DateTimeSpan) TotalMinutes() int {
	return s.span.Length().Minutes()
}

// Overlaps is TimeSpan.Overlaps restricted to the same calendar date.
func (s DateTimeSpan) Overlaps(other DateTimeSpan) bool {
	return s.date.Format(DateLayout) == other.date.Format(DateLayout) && s.span.Overlaps(other.span)
}

func (s DateTimeSpan) Equal(other DateTimeSpan) bool {
	return s.String() == other.String()
}

func (s DateTimeSpan) String() string {
	return s.date.Format(DateLayout) + " " + s.span.String()
}
