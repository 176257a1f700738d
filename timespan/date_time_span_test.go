package timespan

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDateTimeSpan_ParseAndString(t *testing.T) {
	got, err := ParseDateTimeSpan("2021-11-01 8:00-9:30")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got.String() != "2021-11-01 08:00-09:30" {
		t.Errorf("String = %s", got)
	}
	if _, err := ParseDateTimeSpan("2021-11-01"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing span err = %v", err)
	}
	if _, err := ParseDateTimeSpan("2021-13-01 08:00-09:00"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad date err = %v", err)
	}
}

func TestDateTimeSpan_FromTimes(t *testing.T) {
	start := time.Date(2021, 11, 1, 10, 0, 0, 0, time.UTC)
	got, err := FromTimes(start, start.Add(95*time.Minute))
	if err != nil {
		t.Fatalf("FromTimes error: %v", err)
	}
	if got.TotalMinutes() != 95 {
		t.Errorf("TotalMinutes = %d, want 95", got.TotalMinutes())
	}
	if _, err := FromTimes(start, start.Add(24*time.Hour)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("cross-day err = %v, want ErrInvalidRange", err)
	}
}

func TestDateTimeSpan_Tolerance(t *testing.T) {
	now := time.Date(2021, 11, 1, 14, 0, 0, 0, time.UTC)
	span := MustParseDateTimeSpan("2021-11-01 13:55-15:00")

	if !span.IsBefore(now) {
		t.Error("IsBefore(now) = false")
	}
	if before, _ := span.IsBeforeWithTolerance(10, now); before {
		t.Error("within 10 minute tolerance should not count as before")
	}
	if before, _ := span.IsBeforeWithTolerance(3, now); !before {
		t.Error("outside 3 minute tolerance should count as before")
	}
	if after, _ := span.IsAfterWithTolerance(10, now); !after {
		t.Error("IsAfterWithTolerance(10) = false")
	}
	if _, err := span.IsBeforeWithTolerance(-1, now); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("negative tolerance err = %v", err)
	}

	future := MustParseDateTimeSpan("2021-11-01 14:30-15:00")
	if !future.IsAfter(now) {
		t.Error("future span IsAfter = false")
	}
	if before, _ := future.IsBeforeWithTolerance(0, now); before {
		t.Error("future span counted as before")
	}
}

func TestDateTimeSpan_EndsBeforeAndSameDay(t *testing.T) {
	span := MustParseDateTimeSpan("2021-11-01 10:00-11:00")
	if !span.EndsBefore(time.Date(2021, 11, 1, 11, 0, 0, 0, time.UTC)) {
		t.Error("EndsBefore at end instant = false")
	}
	if span.EndsBefore(time.Date(2021, 11, 1, 10, 30, 0, 0, time.UTC)) {
		t.Error("EndsBefore mid-span = true")
	}
	if !span.IsSameDayAs(time.Date(2021, 11, 1, 23, 0, 0, 0, time.UTC)) {
		t.Error("IsSameDayAs = false")
	}
}

func TestDateTimeSpan_Overlaps(t *testing.T) {
	a := MustParseDateTimeSpan("2021-11-01 08:00-10:00")
	if !a.Overlaps(MustParseDateTimeSpan("2021-11-01 10:00-12:00")) {
		t.Error("touching spans on the same day should overlap")
	}
	if a.Overlaps(MustParseDateTimeSpan("2021-11-02 08:00-10:00")) {
		t.Error("spans on different days should not overlap")
	}
}

func TestDateTimeSpan_ICalRoundTrip(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Skipf("zoneinfo unavailable: %v", err)
	}
	span, _ := ParseDateTimeSpanIn("2021-11-01 08:00-09:30", oslo)

	doc := span.ICalString("b1", oslo)
	if !strings.Contains(doc, "DTSTART;TZID=Europe/Oslo:20211101T080000") {
		t.Fatalf("unexpected calendar:\n%s", doc)
	}

	spans, err := ParseICal(doc, oslo)
	if err != nil {
		t.Fatalf("ParseICal error: %v", err)
	}
	if len(spans) != 1 || !spans[0].Equal(span) {
		t.Errorf("round trip = %v, want %s", spans, span)
	}
}

func TestDateTimeSpan_ICalMissingEnd(t *testing.T) {
	doc := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:test\r\nBEGIN:VEVENT\r\nUID:x\r\nDTSTART:20211101T080000Z\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	if _, err := ParseICal(doc, time.UTC); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing DTEND err = %v, want ErrInvalidFormat", err)
	}
}
