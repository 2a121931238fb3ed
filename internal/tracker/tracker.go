// Package tracker implements the day-state engine: stamp pairing,
// balance arithmetic, day-type transitions and period batch edits.
package tracker

import (
	"time"

	"github.com/chronos-cli/chronos/internal/model"
)

// DebounceInterval is the minimum gap between two recorded stamps.
// A stamp arriving sooner than this after the previous one is dropped
// as a duplicate tap.
const DebounceInterval = time.Second

// IsClockedIn reports whether the last stamp of the day was a clock-in
// with no matching clock-out, i.e. the stamp count is odd.
func IsClockedIn(rec *model.DayRecord) bool {
	return len(rec.Stamps)%2 != 0
}

// WorkedSeconds computes the total worked duration from the day's
// stamps, interpreted as alternating clock-in/clock-out events. When
// the day is currently clocked in and asOf is non-zero, asOf acts as a
// virtual clock-out for the open pair. The function is pure; callers
// decide whether to cache the result on the record.
func WorkedSeconds(rec *model.DayRecord, asOf time.Time) int64 {
	stamps := rec.Stamps
	if IsClockedIn(rec) && !asOf.IsZero() {
		stamps = append(append([]time.Time{}, stamps...), asOf)
	}
	var total int64
	for i := 0; i+1 < len(stamps); i += 2 {
		total += int64(stamps[i+1].Sub(stamps[i]).Seconds())
	}
	return total
}

// Balance returns the signed credit (positive) or debit (negative) for
// a workday: worked plus hourly permits, minus the target. Only
// meaningful for Workday records; non-workdays report their day type
// instead of a numeric balance.
func Balance(rec *model.DayRecord, workedSeconds int64) int64 {
	return workedSeconds + rec.PermitSeconds() - rec.TargetSeconds()
}
