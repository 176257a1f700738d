package availability

import (
	"testing"
	"time"

	"resourcecal/timespan"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		t.Fatalf("parse instant %q: %v", s, err)
	}
	return v
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(timespan.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return v
}

func blockadeOf(id, span string, kind BlockadeType) Blockade {
	return NewBlockade(BlockadeID(id), timespan.MustParseDateTimeSpan(span), kind, BatchID("batch-"+id))
}

func blockades(date string, spans ...string) BlockadeSet {
	set := NewBlockadeSet()
	for i, s := range spans {
		set = set.Add(blockadeOf(string(rune('a'+i)), date+" "+s, Booking))
	}
	return set
}

func spans(in ...string) timespan.Set {
	out := timespan.Set{}
	for _, s := range in {
		out = append(out, timespan.MustParse(s))
	}
	return out
}

func everyDay(span string) OpeningHoursWeek {
	days := make(map[string]string, len(DayNames))
	for _, d := range DayNames {
		days[d.String()] = span
	}
	w, err := WeekFromStrings(days)
	if err != nil {
		panic(err)
	}
	return w
}

func workweek(span string) OpeningHoursWeek {
	w, err := WeekFromStrings(map[string]string{
		"monday": span, "tuesday": span, "wednesday": span, "thursday": span, "friday": span,
	})
	if err != nil {
		panic(err)
	}
	return w
}
