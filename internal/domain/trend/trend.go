// Package trend reshapes a reading set into time-windowed chart series.
// It is pure computation: no I/O, no clock access, no state between calls.
package trend

import (
	"fmt"
	"sort"
	"time"

	"github.com/bptrack/bptrack/internal/domain"
)

// Fixed per-series chart colors, matching the category palette where the
// series overlaps it (systolic shares the "high" red).
const (
	SystolicColor  = "#ef4444"
	DiastolicColor = "#f59e0b"
	HeartRateColor = "#0284c7"
)

// Window is a trailing time span used to filter readings for trend display.
type Window struct {
	Days int
}

// LastNDays returns a trailing window of n days.
func LastNDays(n int) Window {
	return Window{Days: n}
}

// Canned windows offered by the trend view.
var (
	Last3Days = LastNDays(3)
	LastWeek  = LastNDays(7)
)

// Cutoff computes the inclusive lower bound of the window relative to the
// given reference instant. There is no upper bound; future-dated readings
// fall inside every window.
func (w Window) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(w.Days) * 24 * time.Hour)
}

// Series holds three positionally-aligned numeric series plus their x-axis
// labels, ordered ascending by reading timestamp. All slices always have
// equal length. An empty window yields empty, non-nil slices.
type Series struct {
	Labels    []string `json:"labels"`
	Systolic  []int    `json:"systolic"`
	Diastolic []int    `json:"diastolic"`
	HeartRate []int    `json:"heart_rate"`
}

// Len returns the number of charted readings.
func (s Series) Len() int {
	return len(s.Labels)
}

// Legend describes one charted series for display.
type Legend struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Legends returns the fixed legend entries in series order.
func Legends() []Legend {
	return []Legend{
		{Name: "Systolic", Color: SystolicColor},
		{Name: "Diastolic", Color: DiastolicColor},
		{Name: "Heart Rate", Color: HeartRateColor},
	}
}

// Aggregate filters readings to the trailing window ending at now and
// reshapes them into parallel chart series.
//
// Readings with timestamp >= cutoff are kept (inclusive bound). The result
// is ordered ascending by timestamp regardless of input order. A reading
// missing any of the three vitals is excluded from all three series, never
// partially charted. Callers distinguish "no readings at all" from "no
// readings in window" by checking the unfiltered input size.
func Aggregate(readings []domain.Reading, window Window, now time.Time) Series {
	cutoff := window.Cutoff(now)

	filtered := make([]domain.Reading, 0, len(readings))
	for _, r := range readings {
		if r.Timestamp.Before(cutoff) {
			continue
		}
		if !hasAllVitals(r) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})

	series := Series{
		Labels:    make([]string, 0, len(filtered)),
		Systolic:  make([]int, 0, len(filtered)),
		Diastolic: make([]int, 0, len(filtered)),
		HeartRate: make([]int, 0, len(filtered)),
	}

	for _, r := range filtered {
		series.Labels = append(series.Labels, label(r.Timestamp))
		series.Systolic = append(series.Systolic, r.Systolic)
		series.Diastolic = append(series.Diastolic, r.Diastolic)
		series.HeartRate = append(series.HeartRate, r.HeartRate)
	}

	return series
}

// hasAllVitals reports whether all three numeric fields are present.
// Canonical readings always carry all three, but blobs written by older
// clients may not; a zero or negative vital counts as missing.
func hasAllVitals(r domain.Reading) bool {
	return r.Systolic > 0 && r.Diastolic > 0 && r.HeartRate > 0
}

// label formats a timestamp as the short month/day x-axis label.
func label(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
