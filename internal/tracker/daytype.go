package tracker

import (
	"time"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

// ApplyDayType transitions a record to the given day type and rederives
// the dependent fields:
//
//   - Workday: target comes from the supplied schedule, permit is reset.
//   - Permit / special leave: the obligation is cleared and the
//     user-supplied permit hours are stored; the schedule is untouched.
//   - Vacation / sickness / holiday: obligation and permit are cleared;
//     the schedule is untouched.
//
// Reapplying the same type with the same inputs is a no-op in effect.
func ApplyDayType(rec *model.DayRecord, typ model.DayType, intervals []model.Interval, permitHours float64) {
	rec.Type = typ
	switch {
	case typ == model.Workday:
		sorted := make([]model.Interval, len(intervals))
		copy(sorted, intervals)
		model.SortIntervals(sorted)
		rec.Intervals = sorted
		rec.TargetHours = timecalc.HoursFromIntervals(sorted)
		rec.PermitHours = 0
	case typ.HourlyAbsence():
		rec.TargetHours = 0
		rec.PermitHours = permitHours
	default:
		rec.TargetHours = 0
		rec.PermitHours = 0
	}
}

// AddInterval inserts a planned block keeping the schedule sorted by
// start time. On a workday the target is rederived immediately; the
// schedule is the only source of a workday's obligation.
func AddInterval(rec *model.DayRecord, iv model.Interval) {
	rec.Intervals = append(rec.Intervals, iv)
	model.SortIntervals(rec.Intervals)
	if rec.Type == model.Workday {
		rec.TargetHours = timecalc.HoursFromIntervals(rec.Intervals)
	}
}

// RemoveInterval removes the first block matching iv and rederives the
// target on a workday. It reports whether a block was removed.
func RemoveInterval(rec *model.DayRecord, iv model.Interval) bool {
	for i, have := range rec.Intervals {
		if have == iv {
			rec.Intervals = append(rec.Intervals[:i], rec.Intervals[i+1:]...)
			if rec.Type == model.Workday {
				rec.TargetHours = timecalc.HoursFromIntervals(rec.Intervals)
			}
			return true
		}
	}
	return false
}

// ClearIntervals drops the whole schedule and, on a workday, rederives
// the (now zero) target.
func ClearIntervals(rec *model.DayRecord) {
	rec.Intervals = []model.Interval{}
	if rec.Type == model.Workday {
		rec.TargetHours = timecalc.HoursFromIntervals(rec.Intervals)
	}
}

// ApplyPeriod applies a full-day absence type to every weekday in
// [from, to] inclusive, creating records as needed and forcing the
// obligation and permit hours to zero. Weekend dates are left
// untouched. An inverted range is a no-op. Returns the number of days
// updated.
func ApplyPeriod(data storage.Data, from, to time.Time, typ model.DayType, def model.DayRecord) int {
	from = timecalc.StartOfDay(from)
	to = timecalc.StartOfDay(to)
	updated := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !timecalc.IsWeekday(d) {
			continue
		}
		rec := data.GetOrCreate(timecalc.DateKey(d), def)
		rec.Type = typ
		rec.TargetHours = 0
		rec.PermitHours = 0
		updated++
	}
	return updated
}
