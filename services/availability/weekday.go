package availability

import (
	"fmt"
	"time"

	"resourcecal/timespan"
)

// DayName is an ISO weekday, Monday = 1 through Sunday = 7.
type DayName int

const (
	Monday DayName = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayNames lists the weekdays in week order.
var DayNames = []DayName{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNameStrings = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func ParseDayName(s string) (DayName, error) {
	for i := 1; i < len(dayNameStrings); i++ {
		if dayNameStrings[i] == s {
			return DayName(i), nil
		}
	}
	return 0, fmt.Errorf("weekday %q: %w", s, ErrInvalidArgument)
}

// DayNameFromNumber maps 1..7 to Monday..Sunday.
func DayNameFromNumber(n int) (DayName, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("weekday number %d: %w", n, ErrInvalidArgument)
	}
	return DayName(n), nil
}

// DayOf returns the weekday of date.
func DayOf(date time.Time) DayName {
	if date.Weekday() == time.Sunday {
		return Sunday
	}
	return DayName(date.Weekday())
}

func (d DayName) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayName(%d)", int(d))
	}
	return dayNameStrings[d]
}

func (d DayName) IsWeekend() bool { return d == Saturday || d == Sunday }

// Weekday is a day of the week with optional opening hours; no span means closed.
type Weekday struct {
	day  DayName
	span timespan.TimeSpan
	open bool
}

func OpenWeekday(day DayName, span timespan.TimeSpan) Weekday {
	return Weekday{day: day, span: span, open: true}
}

func ClosedWeekday(day DayName) Weekday {
	return Weekday{day: day}
}

// ParseWeekday reads a weekday name and "HH:MM-HH:MM", or "" for closed.
func ParseWeekday(name, span string) (Weekday, error) {
	day, err := ParseDayName(name)
	if err != nil {
		return Weekday{}, err
	}
	if span == "" {
		return ClosedWeekday(day), nil
	}
	ts, err := timespan.Parse(span)
	if err != nil {
		return Weekday{}, fmt.Errorf("%s: %w", name, err)
	}
	return OpenWeekday(day, ts), nil
}

func (w Weekday) Day() DayName { return w.day }
func (w Weekday) Closed() bool { return !w.open }
func (w Weekday) Name() string { return w.day.String() }

// TimeSpan returns the opening hours and whether the day is open at all.
func (w Weekday) TimeSpan() (timespan.TimeSpan, bool) {
	return w.span, w.open
}

// SpanString is "HH:MM-HH:MM", or "" when closed.
func (w Weekday) SpanString() string {
	if !w.open {
		return ""
	}
	return w.span.String()
}

func (w Weekday) Equal(other Weekday) bool {
	return w.day == other.day && w.SpanString() == other.SpanString()
}

// FitIn reports whether w's hours lie within other's. Both must be the same day.
func (w Weekday) FitIn(other Weekday) (bool, error) {
	if w.day != other.day {
		return false, fmt.Errorf("%s cannot fit in %s: %w", w.day, other.day, ErrInvalidArgument)
	}
	if !w.open || !other.open {
		return false, nil
	}
	c, o := w.span, other.span
	switch {
	case c.Start().Before(o.Start()),
		c.End().After(o.End()),
		c.Start().AfterOrEqual(o.End()),
		c.End().BeforeOrEqual(o.Start()):
		return false, nil
	}
	return true, nil
}
