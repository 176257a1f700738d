package timespan

import (
	"errors"
	"testing"
)

func TestTimeSpan_New(t *testing.T) {
	if _, err := Parse("10:00-10:00"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("equal bounds err = %v, want ErrInvalidRange", err)
	}
	if _, err := Parse("12:00-10:00"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("reversed bounds err = %v, want ErrInvalidRange", err)
	}
	if _, err := Parse("00:00-00:00"); err != nil {
		t.Errorf("midnight marker rejected: %v", err)
	}
	if _, err := Parse("10:00"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("missing end err = %v, want ErrInvalidFormat", err)
	}
}

func TestTimeSpan_LengthAndContains(t *testing.T) {
	span := MustParse("10:00-16:00")
	if span.Length().String() != "06:00" {
		t.Errorf("Length = %s, want 06:00", span.Length())
	}

	for _, in := range []string{"10:00", "16:00", "13:00"} {
		if !span.Contains(mustTime(t, in)) {
			t.Errorf("Contains(%s) = false", in)
		}
	}
	if span.Contains(mustTime(t, "20:00")) {
		t.Error("Contains(20:00) = true")
	}
}

func TestTimeSpan_Equal(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"10:00-12:00", "10:00-12:00", true},
		{"05:01-12:12", "05:01-12:12", true},
		{"10:00-12:00", "10:00-11:59", false},
		{"10:00-12:00", "14:00-16:00", false},
	}
	for _, tc := range cases {
		if got := MustParse(tc.a).Equal(MustParse(tc.b)); got != tc.want {
			t.Errorf("%s == %s: got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTimeSpan_Overlaps(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"10:00-12:00", "12:00-17:00", true},
		{"05:01-12:12", "03:01-05:01", true},
		{"04:01-12:12", "03:01-05:01", true},
		{"04:01-12:12", "05:01-09:01", true},
		{"05:01-09:01", "04:01-12:12", true},
		{"12:00-13:00", "10:00-11:59", false},
		{"10:00-12:00", "14:00-16:00", false},
	}
	for _, tc := range cases {
		a, b := MustParse(tc.a), MustParse(tc.b)
		if got := a.Overlaps(b); got != tc.want {
			t.Errorf("%s overlaps %s: got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Errorf("overlap of %s and %s is not symmetric", tc.a, tc.b)
		}
	}
}

func TestTimeSpan_Combine(t *testing.T) {
	cases := [][3]string{
		{"10:00-12:00", "12:00-17:00", "10:00-17:00"},
		{"05:01-12:12", "03:01-05:01", "03:01-12:12"},
		{"04:01-12:12", "03:01-05:01", "03:01-12:12"},
	}
	for _, tc := range cases {
		got, err := MustParse(tc[0]).Combine(MustParse(tc[1]))
		if err != nil {
			t.Fatalf("Combine(%s, %s) error: %v", tc[0], tc[1], err)
		}
		if got.String() != tc[2] {
			t.Errorf("Combine(%s, %s) = %s, want %s", tc[0], tc[1], got, tc[2])
		}
	}

	if _, err := MustParse("08:00-12:00").Combine(MustParse("02:00-04:00")); !errors.Is(err, ErrNotOverlapping) {
		t.Errorf("disjoint combine err = %v, want ErrNotOverlapping", err)
	}
}

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}
