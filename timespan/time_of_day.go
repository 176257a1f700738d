// File: timespan/time_of_day.go
package timespan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time kept as minutes since midnight. Values past
// 24:00 are allowed; only negative components are rejected.
type TimeOfDay struct {
	minutes int
}

// Midnight is 00:00.
var Midnight = TimeOfDay{}

// NewTimeOfDay builds a time from an hour and a minute component.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 {
		return TimeOfDay{}, fmt.Errorf("hour and minute must not be negative (%d, %d): %w", hour, minute, ErrInvalidRange)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay is NewTimeOfDay for constant values; it panics on error.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMinutes converts minutes since midnight. Negative input is clamped to 00:00.
func FromMinutes(m int) TimeOfDay {
	if m < 0 {
		m = 0
	}
	return TimeOfDay{minutes: m}
}

// ParseTimeOfDay reads "H:MM" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, ErrInvalidFormat)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse hour of %q: %w", s, ErrInvalidFormat)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse minute of %q: %w", s, ErrInvalidFormat)
	}
	return NewTimeOfDay(hour, minute)
}

// FromInteger reads the compact HHMM form, e.g. 830 is 08:30.
func FromInteger(v int) (TimeOfDay, error) {
	if v < 0 {
		return TimeOfDay{}, fmt.Errorf("time %d: %w", v, ErrInvalidRange)
	}
	return NewTimeOfDay(v/100, v%100)
}

// FromFloat reads fractional hours, e.g. 8.5 is 08:30.
func FromFloat(v float64) (TimeOfDay, error) {
	hour := int(v)
	minute := int(math.Round((v - float64(hour)) * 60))
	return NewTimeOfDay(hour, minute)
}

// FromTime takes the wall-clock hour and minute of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int { return t.minutes }

// AsInteger returns the HHMM form, e.g. 08:30 is 830.
func (t TimeOfDay) AsInteger() int {
	return t.Hour()*100 + t.Minute()
}

// String formats as zero-padded HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add has no upper cap.
func (t TimeOfDay) Add(other TimeOfDay) TimeOfDay {
	return TimeOfDay{minutes: t.minutes + other.minutes}
}

// Sub never goes below 00:00.
func (t TimeOfDay) Sub(other TimeOfDay) TimeOfDay {
	return FromMinutes(t.minutes - other.minutes)
}

func (t TimeOfDay) Before(other TimeOfDay) bool        { return t.minutes < other.minutes }
func (t TimeOfDay) BeforeOrEqual(other TimeOfDay) bool { return t.minutes <= other.minutes }
func (t TimeOfDay) After(other TimeOfDay) bool         { return t.minutes > other.minutes }
func (t TimeOfDay) AfterOrEqual(other TimeOfDay) bool  { return t.minutes >= other.minutes }
func (t TimeOfDay) Equal(other TimeOfDay) bool         { return t.minutes == other.minutes }

// On places the time on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(t.minutes) * time.Minute)
}
