package availability

import "testing"

const monday = "2021-11-01"

func TestAvailability_SameDay(t *testing.T) {
	cases := []struct {
		name      string
		now       string
		blockades BlockadeSet
		want      bool
	}{
		{"blocked before and after now", "2021-11-01 11:30:00", blockades(monday, "08:00-12:00", "12:00-16:00"), false},
		{"free afternoon", "2021-11-01 11:30:00", blockades(monday, "08:00-12:00"), true},
		{"rest of the day blocked", "2021-11-01 11:30:00", blockades(monday, "11:00-16:00"), false},
		{"before opening", "2021-11-01 06:00:00", NewBlockadeSet(), true},
		{"last hour left", "2021-11-01 15:00:00", NewBlockadeSet(), true},
		{"after closing", "2021-11-01 16:10:00", NewBlockadeSet(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvailability("r1", day(t, monday), everyDay("08:00-16:00"), tc.blockades, FixedClock(at(t, tc.now)))
			if got := a.HasAvailableTime(); got != tc.want {
				t.Errorf("HasAvailableTime = %v, want %v (slots %s)", got, tc.want, a.Slots())
			}
		})
	}
}

func TestAvailability_Tomorrow(t *testing.T) {
	now := FixedClock(at(t, "2021-10-31 11:30:00"))
	cases := []struct {
		name      string
		week      OpeningHoursWeek
		blockades BlockadeSet
		want      bool
	}{
		{"no blockades", everyDay("08:00-16:00"), NewBlockadeSet(), true},
		{"closed", ClosedWeek(), NewBlockadeSet(), false},
		{"one blockade covers the day", everyDay("08:00-16:00"), blockades(monday, "08:00-16:00"), false},
		{"back to back blockades", everyDay("08:00-16:00"), blockades(monday, "08:00-10:00", "10:00-13:00", "13:00-16:00"), false},
		{"gaps shorter than minimum", everyDay("08:00-16:00"), blockades(monday, "08:00-10:00", "10:10-13:00", "13:20-16:00"), false},
		{"gap of exactly the minimum", everyDay("08:00-16:00"), blockades(monday, "08:00-10:00", "10:30-16:00"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAvailability("r1", day(t, monday), tc.week, tc.blockades, now)
			if got := a.HasAvailableTime(); got != tc.want {
				t.Errorf("HasAvailableTime = %v, want %v (slots %s)", got, tc.want, a.Slots())
			}
		})
	}
}

func TestAvailability_ElapsedBuffer(t *testing.T) {
	a := NewAvailability("r1", day(t, monday), everyDay("08:00-16:00"), NewBlockadeSet(), FixedClock(at(t, "2021-11-01 12:00:00")))
	values := a.Blockades().Values()
	if len(values) != 1 {
		t.Fatalf("got %d blockades, want the buffer only", len(values))
	}
	buffer := values[0]
	if buffer.Type() != Buffer || buffer.TimeSpan().String() != "08:00-12:00" {
		t.Errorf("buffer = %s %s, want buffer 08:00-12:00", buffer.Type(), buffer.TimeSpan())
	}
	if got := a.Slots(); !got.Equal(spans("12:00-16:00")) {
		t.Errorf("Slots = %s", got)
	}

	early := NewAvailability("r1", day(t, monday), everyDay("08:00-16:00"), NewBlockadeSet(), FixedClock(at(t, "2021-11-01 08:00:20")))
	if !early.Blockades().IsEmpty() {
		t.Errorf("no buffer expected within the opening minute, got %d blockades", early.Blockades().Len())
	}
}

func TestAvailability_ElapsedBufferKeepsBlockadeWithResourceID(t *testing.T) {
	const resource = "ffffffff-0000-0000-0000-000000000001"
	booked := NewBlockadeSet().Add(blockadeOf(resource, monday+" 12:00-16:00", Booking))
	a := NewAvailability(resource, day(t, monday), everyDay("08:00-16:00"), booked, FixedClock(at(t, "2021-11-01 10:00:00")))

	if got := a.Blockades().Len(); got != 2 {
		t.Errorf("blockades = %d, want booking plus buffer", got)
	}
	if got := a.Slots(); !got.Equal(spans("10:00-12:00")) {
		t.Errorf("Slots = %s, want [10:00-12:00]", got)
	}
}

func TestAvailability_IgnoresOtherDates(t *testing.T) {
	other := blockades("2021-11-02", "08:00-16:00")
	a := NewAvailability("r1", day(t, monday), everyDay("08:00-16:00"), other, FixedClock(at(t, "2021-10-30 09:00:00")))
	if !a.Slots().Equal(spans("08:00-16:00")) {
		t.Errorf("Slots = %s", a.Slots())
	}
	span, open := a.OpensCloses()
	if !open || span.String() != "08:00-16:00" {
		t.Errorf("OpensCloses = %s, %v", span, open)
	}
}

func TestAvailability_ClosedDayHasNoWindow(t *testing.T) {
	a := NewAvailability("r1", day(t, monday), workweek("08:00-16:00").Replace(ClosedWeekday(Monday)), NewBlockadeSet(), FixedClock(at(t, "2021-11-01 12:00:00")))
	if _, open := a.OpensCloses(); open {
		t.Error("monday should be closed")
	}
	if len(a.Slots()) != 0 || !a.Blockades().IsEmpty() {
		t.Errorf("closed day: slots %s, %d blockades", a.Slots(), a.Blockades().Len())
	}
}
