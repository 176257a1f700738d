package availability

import (
	"time"

	"resourcecal/timespan"
)

// MinimumBookingMinutes is the shortest slot worth offering.
const MinimumBookingMinutes = 30

// MinimumBookingTime reports whether span is long enough to book.
func MinimumBookingTime(span timespan.TimeSpan) bool {
	return span.Length().Minutes() >= MinimumBookingMinutes
}

// Availability is computed per resource and date and never stored.
type Availability struct {
	resourceID  ResourceID
	date        time.Time
	opensCloses timespan.TimeSpan
	open        bool
	blockades   BlockadeSet
}

// NewAvailability resolves the opening window of date from week and keeps the
// blockades of that day. When date is today and the window has started, the
// elapsed part is covered by a buffer blockade.
func NewAvailability(resourceID ResourceID, date time.Time, week OpeningHoursWeek, blockades BlockadeSet, clock Clock) Availability {
	a := Availability{resourceID: resourceID, date: date}
	a.opensCloses, a.open = week.WeekdayFor(date).TimeSpan()
	a.blockades = a.withElapsedBuffer(blockades.OnDate(date), clock.Now())
	return a
}

func (a Availability) withElapsedBuffer(blockades BlockadeSet, now time.Time) BlockadeSet {
	if !a.open || !isSameDay(a.date, now) {
		return blockades
	}
	opens, current := a.opensCloses.Start(), timespan.FromTime(now.In(a.date.Location()))
	if !opens.Before(current) {
		return blockades
	}
	span, err := timespan.New(opens, current)
	if err != nil {
		return blockades
	}
	buffer := NewBlockade(
		elapsedBufferID(a.resourceID),
		timespan.NewDateTimeSpan(a.date, span),
		Buffer,
		BatchID(a.resourceID),
	)
	return blockades.Add(buffer)
}

// elapsedBufferID is not a UUID, so it never collides with a stored blockade.
func elapsedBufferID(resourceID ResourceID) BlockadeID {
	return BlockadeID("elapsed:" + resourceID.String())
}

func (a Availability) ResourceID() ResourceID { return a.resourceID }
func (a Availability) Date() time.Time        { return a.date }
func (a Availability) Blockades() BlockadeSet { return a.blockades }

// OpensCloses returns the opening window and whether the day is open.
func (a Availability) OpensCloses() (timespan.TimeSpan, bool) {
	return a.opensCloses, a.open
}

// Slots returns the free spans of the day that are long enough to book.
func (a Availability) Slots() timespan.Set {
	if !a.open {
		return timespan.Set{}
	}
	out := timespan.Set{}
	for _, slot := range a.blockades.ComputeAvailableSlots(a.opensCloses) {
		if MinimumBookingTime(slot) {
			out = append(out, slot)
		}
	}
	return out
}

func (a Availability) HasAvailableTime() bool {
	return len(a.Slots()) > 0
}
