package campaign

import (
	"sort"
	"time"
)

var DefaultWindowDays = []int{30, 60, 90, 180, 365}

// Window is a lookback window: the calendar day (UTC) exactly Days before the run.
type Window struct {
	Days int
	Date time.Time
}

// ComputeWindows maps each day count to its UTC calendar date relative to now.
// The result is ordered by ascending day count and ignores duplicates.
func ComputeWindows(now time.Time, days []int) []Window {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	sorted := append([]int(nil), days...)
	sort.Ints(sorted)

	windows := make([]Window, 0, len(sorted))
	for i, d := range sorted {
		if i > 0 && sorted[i-1] == d {
			continue
		}
		windows = append(windows, Window{Days: d, Date: today.AddDate(0, 0, -d)})
	}
	return windows
}

// DateString is the window day as YYYY-MM-DD.
func (w Window) DateString() string {
	return w.Date.Format(time.DateOnly)
}

// Start is the first instant of the window day.
func (w Window) Start() time.Time {
	return w.Date
}

// End is the last whole second of the window day.
func (w Window) End() time.Time {
	return w.Date.Add(24*time.Hour - time.Second)
}
