package period

import (
	"testing"
	"time"
)

func TestCurrentMonthBounds(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	r := CurrentMonth(now)

	if got := r.Start; !got.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", got)
	}
	if got := r.End; !got.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", got)
	}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start inclusive", r.Start, true},
		{"mid month", time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC), true},
		{"end exclusive", r.End, false},
		{"before start", r.Start.Add(-time.Second), false},
		{"zero time", time.Time{}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.at); got != tc.want {
			t.Errorf("%s: Contains = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRangeFor(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)

	if r := RangeFor(WindowAll, now); r != nil {
		t.Fatalf("all window should have no range, got %+v", r)
	}
	r := RangeFor(WindowMonth, now)
	if r == nil {
		t.Fatal("month window should have a range")
	}
	if !r.End.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("year rollover end = %v", r.End)
	}
}

func TestParseWindow(t *testing.T) {
	if w, ok := ParseWindow(""); !ok || w != WindowMonth {
		t.Fatalf("empty = %q, %v", w, ok)
	}
	if w, ok := ParseWindow("all"); !ok || w != WindowAll {
		t.Fatalf("all = %q, %v", w, ok)
	}
	if _, ok := ParseWindow("yearly"); ok {
		t.Fatal("yearly should be rejected")
	}
}
