package availability

import (
	"time"

	"resourcecal/collection"
	"resourcecal/timespan"
)

// OpeningHours is a week of opening hours published from a date onward.
type OpeningHours struct {
	publishDate PublishDate
	week        OpeningHoursWeek
}

func NewOpeningHours(publishDate PublishDate, week OpeningHoursWeek) OpeningHours {
	return OpeningHours{publishDate: publishDate, week: week}
}

func (o OpeningHours) PublishDate() PublishDate { return o.publishDate }
func (o OpeningHours) Week() OpeningHoursWeek   { return o.week }

func (o OpeningHours) Change(week OpeningHoursWeek) OpeningHours {
	return OpeningHours{publishDate: o.publishDate, week: week}
}

func (o OpeningHours) IsTimeSpanAvailable(date time.Time, span timespan.TimeSpan) bool {
	return o.week.IsTimeSpanAvailable(date, span)
}

// WeeklyOpeningHoursSchedule keeps at most one week per publish date.
type WeeklyOpeningHoursSchedule struct {
	entries collection.Collection[OpeningHours]
}

func openingHoursKey(o OpeningHours) string { return o.publishDate.String() }

func NewSchedule(entries ...OpeningHours) WeeklyOpeningHoursSchedule {
	s := WeeklyOpeningHoursSchedule{entries: collection.New(openingHoursKey)}
	for _, e := range entries {
		s = s.Plan(e.publishDate, e.week)
	}
	return s
}

// Plan replaces the week already published on publishDate, or adds a new entry.
func (s WeeklyOpeningHoursSchedule) Plan(publishDate PublishDate, week OpeningHoursWeek) WeeklyOpeningHoursSchedule {
	entries := s.collection()
	if existing, err := entries.Get(publishDate.String()); err == nil {
		entries, _ = entries.Replace(existing.Change(week))
		return WeeklyOpeningHoursSchedule{entries: entries}
	}
	return WeeklyOpeningHoursSchedule{entries: entries.Add(NewOpeningHours(publishDate, week))}
}

// collection lets the zero schedule be used as an empty one.
func (s WeeklyOpeningHoursSchedule) collection() collection.Collection[OpeningHours] {
	if s.entries.IsEmpty() {
		return collection.New(openingHoursKey)
	}
	return s.entries
}

func (s WeeklyOpeningHoursSchedule) Len() int { return s.entries.Len() }

func (s WeeklyOpeningHoursSchedule) IsEmpty() bool { return s.entries.IsEmpty() }

// Entries returns the planned weeks in planning order.
func (s WeeklyOpeningHoursSchedule) Entries() []OpeningHours { return s.entries.Values() }

// For resolves the week whose publish date is the latest one not after date.
// A date before every publish date reads as a closed week.
func (s WeeklyOpeningHoursSchedule) For(date time.Time) OpeningHoursWeek {
	target := PublishDateOf(date)
	var (
		best  OpeningHours
		found bool
	)
	s.entries.Each(func(_ string, o OpeningHours) bool {
		if o.publishDate.After(target) {
			return true
		}
		if !found || o.publishDate.After(best.publishDate) {
			best, found = o, true
		}
		return true
	})
	if !found {
		return ClosedWeek()
	}
	return best.week
}
