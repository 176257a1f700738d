package timespan

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const icalLocalLayout = "20060102T150405"

// DefaultCalendarZone is written as TZID when no zone is given.
const DefaultCalendarZone = "Europe/Oslo"

// AddToCalendar appends the span to cal as a VEVENT with wall-clock DTSTART and
// DTEND tagged with the zone of loc.
func (s DateTimeSpan) AddToCalendar(cal *ics.Calendar, uid, summary string, loc *time.Location) *ics.VEvent {
	tzid := DefaultCalendarZone
	if loc != nil && loc.String() != "Local" {
		tzid = loc.String()
	}
	tz := &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{tzid}}

	evt := cal.AddEvent(uid)
	evt.SetProperty(ics.ComponentPropertyDtStart, s.StartsAt().Format(icalLocalLayout), tz)
	evt.SetProperty(ics.ComponentPropertyDtEnd, s.EndsAt().Format(icalLocalLayout), tz)
	if summary != "" {
		evt.SetSummary(summary)
	}
	return evt
}

// ICalString renders the span as a single-event calendar.
func (s DateTimeSpan) ICalString(uid string, loc *time.Location) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	s.AddToCalendar(cal, uid, "", loc)
	return cal.Serialize()
}

// FromVEvent reads DTSTART and DTEND of evt. Both must exist and fall on the
// same day once converted to loc.
func FromVEvent(evt *ics.VEvent, loc *time.Location) (DateTimeSpan, error) {
	start, err := icalTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return DateTimeSpan{}, err
	}
	end, err := icalTime(evt, ics.ComponentPropertyDtEnd, loc)
	if err != nil {
		return DateTimeSpan{}, err
	}
	return FromTimes(start, end)
}

// ParseICal reads every VEVENT of an iCalendar document.
func ParseICal(doc string, loc *time.Location) ([]DateTimeSpan, error) {
	cal, err := ics.ParseCalendar(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}
	var spans []DateTimeSpan
	for _, evt := range cal.Events() {
		span, err := FromVEvent(evt, loc)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}
	return spans, nil
}

func icalTime(evt *ics.VEvent, prop ics.ComponentProperty, loc *time.Location) (time.Time, error) {
	p := evt.GetProperty(prop)
	if p == nil {
		return time.Time{}, fmt.Errorf("missing %s: %w", prop, ErrInvalidFormat)
	}
	if loc == nil {
		loc = time.UTC
	}
	zone := loc
	for k, v := range p.ICalParameters {
		if strings.EqualFold(k, string(ics.ParameterTzid)) && len(v) > 0 {
			if tz, err := time.LoadLocation(v[0]); err == nil {
				zone = tz
			}
		}
	}
	if t, err := time.Parse(icalLocalLayout+"Z", p.Value); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(icalLocalLayout, p.Value, zone); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("%s value %q: %w", prop, p.Value, ErrInvalidFormat)
}
