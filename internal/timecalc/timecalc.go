package timecalc

import (
	"fmt"
	"math"
	"time"

	"github.com/chronos-cli/chronos/internal/model"
)

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS formats non-negative seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatSignedHHMMSS formats a signed second count as +HH:MM:SS or
// -HH:MM:SS. Used for balances; plain durations omit the sign.
func FormatSignedHHMMSS(seconds int64) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return sign + FormatDurationHHMMSS(seconds)
}

// HoursFromIntervals sums the planned intervals and returns total hours
// rounded to 2 decimal places. Any interval that fails to parse as
// HH:MM makes the whole schedule count as 0.0; callers treat that as
// "no obligation" rather than an error.
func HoursFromIntervals(intervals []model.Interval) float64 {
	var totalMinutes float64
	for _, iv := range intervals {
		start, err := time.Parse("15:04", iv.Start)
		if err != nil {
			return 0.0
		}
		end, err := time.Parse("15:04", iv.End)
		if err != nil {
			return 0.0
		}
		totalMinutes += end.Sub(start).Minutes()
	}
	return math.Round(totalMinutes/60*100) / 100
}

// DateKey returns the ISO date key used in the data file.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
