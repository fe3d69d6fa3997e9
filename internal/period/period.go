package period

import "time"

// Window selects the reporting horizon for a financial report.
type Window string

const (
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

// ParseWindow validates and normalizes a window string. Empty input
// defaults to the current-month window.
func ParseWindow(value string) (Window, bool) {
	switch Window(value) {
	case WindowMonth, WindowAll:
		return Window(value), true
	case "":
		return WindowMonth, true
	default:
		return "", false
	}
}

// Range is a half-open time interval: Start inclusive, End exclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(r.Start) && t.Before(r.End)
}

// MonthOf truncates t to the first instant of its calendar month in UTC.
func MonthOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CurrentMonth returns the range covering the calendar month of now.
func CurrentMonth(now time.Time) Range {
	start := MonthOf(now)
	return Range{Start: start, End: start.AddDate(0, 1, 0)}
}

// RangeFor resolves the fetch range for a window. The all-time window
// has no range and returns nil, which repositories treat as "no date
// filter".
func RangeFor(window Window, now time.Time) *Range {
	if window != WindowMonth {
		return nil
	}
	r := CurrentMonth(now)
	return &r
}
