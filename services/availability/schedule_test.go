package availability

import (
	"testing"

	"resourcecal/timespan"
)

func mustPublish(t *testing.T, s string) PublishDate {
	t.Helper()
	p, err := ParsePublishDate(s)
	if err != nil {
		t.Fatalf("ParsePublishDate(%q): %v", s, err)
	}
	return p
}

func TestSchedule_For(t *testing.T) {
	schedule := NewSchedule().
		Plan(mustPublish(t, "2020-01-01"), workweek("08:00-16:00")).
		Plan(mustPublish(t, "2020-01-05"), workweek("10:00-16:00")).
		Plan(mustPublish(t, "2020-01-10"), workweek("10:00-20:00"))

	cases := []struct {
		date, span string
		want       bool
	}{
		{"2020-01-01", "08:00-10:00", true},
		{"2020-01-03", "08:00-10:00", true},
		{"2020-01-09", "10:00-11:00", true},
		{"2020-01-09", "10:00-16:00", true},
		{"2020-01-09", "08:00-10:00", false},
		{"2020-01-10", "18:00-20:00", true},
		{"2020-01-04", "10:00-12:00", false},
		{"2019-12-31", "10:00-12:00", false},
	}
	for _, tc := range cases {
		date := day(t, tc.date)
		if got := schedule.For(date).IsTimeSpanAvailable(date, timespan.MustParse(tc.span)); got != tc.want {
			t.Errorf("%s %s available = %v, want %v", tc.date, tc.span, got, tc.want)
		}
	}
}

func TestSchedule_ForWithUnorderedPlans(t *testing.T) {
	schedule := NewSchedule().
		Plan(mustPublish(t, "2020-01-02"), workweek("15:00-20:00")).
		Plan(mustPublish(t, "2020-01-01"), workweek("08:00-09:00")).
		Plan(mustPublish(t, "2020-01-10"), workweek("09:00-10:00")).
		Plan(mustPublish(t, "2020-01-05"), workweek("11:00-12:00"))

	date := day(t, "2020-01-03")
	if !schedule.For(date).IsTimeSpanAvailable(date, timespan.MustParse("18:00-20:00")) {
		t.Error("2020-01-03 should resolve to the week published on 2020-01-02")
	}
}

func TestSchedule_PlanReplacesSameDate(t *testing.T) {
	schedule := NewSchedule().
		Plan(mustPublish(t, "2020-01-01"), workweek("08:00-16:00")).
		Plan(mustPublish(t, "2020-01-01"), workweek("10:00-12:00"))

	if schedule.Len() != 1 {
		t.Fatalf("schedule has %d entries, want 1", schedule.Len())
	}
	if got := schedule.For(day(t, "2020-01-01")).Day(Wednesday).SpanString(); got != "10:00-12:00" {
		t.Errorf("wednesday = %s, want 10:00-12:00", got)
	}
}

func TestSchedule_EmptyIsClosed(t *testing.T) {
	var schedule WeeklyOpeningHoursSchedule
	if !schedule.For(day(t, "2020-01-01")).Equal(ClosedWeek()) {
		t.Error("empty schedule should resolve to a closed week")
	}
	if schedule.Plan(mustPublish(t, "2020-01-01"), workweek("08:00-16:00")).Len() != 1 {
		t.Error("zero schedule should accept plans")
	}
}

func TestOpeningHours_Change(t *testing.T) {
	oh := NewOpeningHours(mustPublish(t, "2020-01-01"), workweek("08:00-16:00"))
	changed := oh.Change(workweek("10:00-12:00"))
	date := day(t, "2020-01-01")
	if !oh.IsTimeSpanAvailable(date, timespan.MustParse("08:00-09:00")) {
		t.Error("original hours changed")
	}
	if changed.IsTimeSpanAvailable(date, timespan.MustParse("08:00-09:00")) {
		t.Error("changed hours still allow 08:00")
	}
	if !changed.PublishDate().Equal(oh.PublishDate()) {
		t.Error("Change moved the publish date")
	}
}

func TestMinimumBookingTime(t *testing.T) {
	cases := []struct {
		span string
		want bool
	}{
		{"00:00-00:01", false},
		{"00:00-00:29", false},
		{"00:00-00:30", true},
		{"00:00-00:31", true},
		{"00:00-11:00", true},
	}
	for _, tc := range cases {
		if got := MinimumBookingTime(timespan.MustParse(tc.span)); got != tc.want {
			t.Errorf("MinimumBookingTime(%s) = %v, want %v", tc.span, got, tc.want)
		}
	}
}
