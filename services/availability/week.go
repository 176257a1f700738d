package availability

import (
	"fmt"
	"time"

	"resourcecal/collection"
	"resourcecal/timespan"
)

// OpeningHoursWeek always holds exactly seven weekdays.
type OpeningHoursWeek struct {
	days collection.Collection[Weekday]
}

// OpensCloses is the opening window of one day; empty strings when closed.
type OpensCloses struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

func weekdayKey(w Weekday) string { return w.Name() }

// ClosedWeek has every day closed.
func ClosedWeek() OpeningHoursWeek {
	days := make([]Weekday, 0, len(DayNames))
	for _, d := range DayNames {
		days = append(days, ClosedWeekday(d))
	}
	return OpeningHoursWeek{days: collection.New(weekdayKey, days...)}
}

// NewWeek starts closed and sets each given weekday.
func NewWeek(weekdays ...Weekday) OpeningHoursWeek {
	w := ClosedWeek()
	for _, wd := range weekdays {
		w = w.Replace(wd)
	}
	return w
}

// WeekFromStrings reads name -> "HH:MM-HH:MM"; omitted or empty days are closed.
func WeekFromStrings(days map[string]string) (OpeningHoursWeek, error) {
	w := ClosedWeek()
	for name, span := range days {
		wd, err := ParseWeekday(name, span)
		if err != nil {
			return OpeningHoursWeek{}, err
		}
		w = w.Replace(wd)
	}
	return w, nil
}

// Replace swaps the hours of an existing day; the set of days never changes.
func (w OpeningHoursWeek) Replace(wd Weekday) OpeningHoursWeek {
	if w.days.IsEmpty() {
		w = ClosedWeek()
	}
	if !w.days.Has(weekdayKey(wd)) {
		return w
	}
	days, err := w.days.Replace(wd)
	if err != nil {
		return w
	}
	return OpeningHoursWeek{days: days}
}

// Day returns the weekday for d; a zero week reads as closed.
func (w OpeningHoursWeek) Day(d DayName) Weekday {
	wd, err := w.days.Get(d.String())
	if err != nil {
		return ClosedWeekday(d)
	}
	return wd
}

func (w OpeningHoursWeek) WeekdayFor(date time.Time) Weekday {
	return w.Day(DayOf(date))
}

// IsTimeSpanAvailable reports whether span fits the hours of date's weekday.
func (w OpeningHoursWeek) IsTimeSpanAvailable(date time.Time, span timespan.TimeSpan) bool {
	configured := w.WeekdayFor(date)
	fits, err := OpenWeekday(configured.Day(), span).FitIn(configured)
	return err == nil && fits
}

func (w OpeningHoursWeek) HasWeekendAvailable() bool {
	return !w.Day(Saturday).Closed() || !w.Day(Sunday).Closed()
}

// Strings returns all seven days as name -> span string.
func (w OpeningHoursWeek) Strings() map[string]string {
	out := make(map[string]string, len(DayNames))
	for _, d := range DayNames {
		out[d.String()] = w.Day(d).SpanString()
	}
	return out
}

func (w OpeningHoursWeek) Times() map[string]OpensCloses {
	out := make(map[string]OpensCloses, len(DayNames))
	for _, d := range DayNames {
		span, open := w.Day(d).TimeSpan()
		if !open {
			out[d.String()] = OpensCloses{}
			continue
		}
		out[d.String()] = OpensCloses{Opens: span.Start().String(), Closes: span.End().String()}
	}
	return out
}

func (w OpeningHoursWeek) Equal(other OpeningHoursWeek) bool {
	for _, d := range DayNames {
		if !w.Day(d).Equal(other.Day(d)) {
			return false
		}
	}
	return true
}

func (w OpeningHoursWeek) String() string {
	return fmt.Sprint(w.Strings())
}
