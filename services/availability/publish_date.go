package availability

import (
	"fmt"
	"strings"
	"time"

	"resourcecal/timespan"
)

// PublishDate is the calendar day from which a week of opening hours applies.
type PublishDate struct {
	date time.Time
}

// ParsePublishDate reads "YYYY-MM-DD"; a trailing time, as in
// "YYYY-MM-DD HH:MM:SS", is ignored.
func ParsePublishDate(s string) (PublishDate, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return PublishDate{}, fmt.Errorf("publish date %q: %w", s, ErrInvalidArgument)
	}
	d, err := time.Parse(timespan.DateLayout, fields[0])
	if err != nil {
		return PublishDate{}, fmt.Errorf("publish date %q: %w", s, ErrInvalidArgument)
	}
	return PublishDate{date: d}, nil
}

// PublishDateOf takes the calendar day of t in t's location.
func PublishDateOf(t time.Time) PublishDate {
	y, m, d := t.Date()
	return PublishDate{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (p PublishDate) Equal(other PublishDate) bool  { return p.date.Equal(other.date) }
func (p PublishDate) Before(other PublishDate) bool { return p.date.Before(other.date) }
func (p PublishDate) After(other PublishDate) bool  { return p.date.After(other.date) }
func (p PublishDate) String() string                { return p.date.Format(timespan.DateLayout) }
