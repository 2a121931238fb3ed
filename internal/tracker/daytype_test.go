package tracker_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/tracker"
)

func TestApplyDayTypeWorkday(t *testing.T) {
	rec := model.DefaultDay()
	intervals := []model.Interval{
		{Start: "14:00", End: "18:30"},
		{Start: "08:30", End: "13:00"},
	}

	tracker.ApplyDayType(&rec, model.Workday, intervals, 2)

	if rec.Type != model.Workday {
		t.Fatalf("Type = %v, want Workday", rec.Type)
	}
	if rec.TargetHours != 9.0 {
		t.Errorf("TargetHours = %v, want 9.0", rec.TargetHours)
	}
	if rec.PermitHours != 0 {
		t.Errorf("PermitHours = %v, want 0 (reset on workday)", rec.PermitHours)
	}
	want := []model.Interval{{Start: "08:30", End: "13:00"}, {Start: "14:00", End: "18:30"}}
	if !reflect.DeepEqual(rec.Intervals, want) {
		t.Errorf("Intervals = %v, want sorted %v", rec.Intervals, want)
	}
}

func TestApplyDayTypeHourlyAbsence(t *testing.T) {
	for _, typ := range []model.DayType{model.Permit, model.SpecialLeave} {
		rec := model.DefaultDay()
		before := append([]model.Interval{}, rec.Intervals...)

		tracker.ApplyDayType(&rec, typ, rec.Intervals, 2.5)

		if rec.TargetHours != 0 {
			t.Errorf("%s: TargetHours = %v, want 0", typ.Name(), rec.TargetHours)
		}
		if rec.PermitHours != 2.5 {
			t.Errorf("%s: PermitHours = %v, want 2.5", typ.Name(), rec.PermitHours)
		}
		if rec.PermitSeconds() != 9000 {
			t.Errorf("%s: PermitSeconds = %d, want 9000", typ.Name(), rec.PermitSeconds())
		}
		if !reflect.DeepEqual(rec.Intervals, before) {
			t.Errorf("%s: schedule changed on absence transition", typ.Name())
		}
	}
}

func TestApplyDayTypeFullDayAbsence(t *testing.T) {
	for _, typ := range []model.DayType{model.Vacation, model.Sickness, model.Holiday} {
		rec := model.DefaultDay()
		rec.PermitHours = 2

		tracker.ApplyDayType(&rec, typ, nil, 4)

		if rec.TargetHours != 0 || rec.PermitHours != 0 {
			t.Errorf("%s: target=%v permit=%v, want both 0", typ.Name(), rec.TargetHours, rec.PermitHours)
		}
		if len(rec.Intervals) == 0 {
			t.Errorf("%s: schedule should stay untouched", typ.Name())
		}
	}
}

func TestApplyDayTypeIdempotent(t *testing.T) {
	rec := model.DefaultDay()
	intervals := []model.Interval{{Start: "09:00", End: "17:00"}}

	tracker.ApplyDayType(&rec, model.Workday, intervals, 0)
	first := rec
	firstIntervals := append([]model.Interval{}, rec.Intervals...)

	tracker.ApplyDayType(&rec, model.Workday, intervals, 0)
	if rec.TargetHours != first.TargetHours || rec.PermitHours != first.PermitHours ||
		!reflect.DeepEqual(rec.Intervals, firstIntervals) {
		t.Errorf("reapplying workday changed derived fields: %+v vs %+v", rec, first)
	}

	tracker.ApplyDayType(&rec, model.Permit, nil, 3)
	second := rec
	tracker.ApplyDayType(&rec, model.Permit, nil, 3)
	if rec.TargetHours != second.TargetHours || rec.PermitHours != second.PermitHours {
		t.Errorf("reapplying permit changed derived fields: %+v vs %+v", rec, second)
	}
}

func TestAddRemoveIntervalRederivesTarget(t *testing.T) {
	rec := model.DefaultDay()
	tracker.ApplyDayType(&rec, model.Workday, rec.Intervals, 0)
	if rec.TargetHours != 9.0 {
		t.Fatalf("TargetHours = %v, want 9.0", rec.TargetHours)
	}

	tracker.AddInterval(&rec, model.Interval{Start: "19:00", End: "20:00"})
	if rec.TargetHours != 10.0 {
		t.Errorf("after add: TargetHours = %v, want 10.0", rec.TargetHours)
	}
	if rec.Intervals[2].Start != "19:00" {
		t.Errorf("added block not kept sorted: %v", rec.Intervals)
	}

	if !tracker.RemoveInterval(&rec, model.Interval{Start: "08:30", End: "13:00"}) {
		t.Fatal("RemoveInterval did not find the block")
	}
	if rec.TargetHours != 5.5 {
		t.Errorf("after remove: TargetHours = %v, want 5.5", rec.TargetHours)
	}

	if tracker.RemoveInterval(&rec, model.Interval{Start: "00:00", End: "00:01"}) {
		t.Error("RemoveInterval reported success for a missing block")
	}

	tracker.ClearIntervals(&rec)
	if len(rec.Intervals) != 0 || rec.TargetHours != 0 {
		t.Errorf("after clear: intervals=%v target=%v, want empty/0", rec.Intervals, rec.TargetHours)
	}
}

func TestApplyPeriodSkipsWeekends(t *testing.T) {
	data := storage.Data{}
	// 2026-03-02 is a Monday; one full week through Sunday.
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	updated := tracker.ApplyPeriod(data, from, to, model.Vacation, model.DefaultDay())

	if updated != 5 {
		t.Errorf("updated = %d, want 5 weekdays", updated)
	}
	for _, key := range []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06"} {
		rec, ok := data[key]
		if !ok {
			t.Errorf("weekday %s not updated", key)
			continue
		}
		if rec.Type != model.Vacation {
			t.Errorf("%s: Type = %v, want Vacation", key, rec.Type)
		}
		if rec.TargetHours != 0 || rec.PermitHours != 0 {
			t.Errorf("%s: target=%v permit=%v, want both 0", key, rec.TargetHours, rec.PermitHours)
		}
	}
	for _, key := range []string{"2026-03-07", "2026-03-08"} {
		if _, ok := data[key]; ok {
			t.Errorf("weekend %s should be untouched", key)
		}
	}
}

func TestApplyPeriodEndDateInclusive(t *testing.T) {
	data := storage.Data{}
	// Friday through the following Monday: both weekdays counted.
	from := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	if updated := tracker.ApplyPeriod(data, from, to, model.Sickness, model.DefaultDay()); updated != 2 {
		t.Errorf("updated = %d, want 2 (Fri and Mon)", updated)
	}
	if _, ok := data["2026-03-09"]; !ok {
		t.Error("inclusive end date not updated")
	}
}

func TestApplyPeriodInvertedRange(t *testing.T) {
	data := storage.Data{}
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if updated := tracker.ApplyPeriod(data, from, to, model.Sickness, model.DefaultDay()); updated != 0 {
		t.Errorf("inverted range updated %d day(s), want 0", updated)
	}
	if len(data) != 0 {
		t.Errorf("inverted range created %d record(s)", len(data))
	}
}

func TestApplyPeriodPreservesExistingStamps(t *testing.T) {
	data := storage.Data{}
	rec := data.GetOrCreate("2026-03-03", model.DefaultDay())
	rec.Stamps = stampsAt("08:00:00", "12:00:00")
	rec.WorkedSeconds = 14400

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	tracker.ApplyPeriod(data, from, to, model.Sickness, model.DefaultDay())

	got := data["2026-03-03"]
	if got.Type != model.Sickness {
		t.Errorf("Type = %v, want Sickness", got.Type)
	}
	if len(got.Stamps) != 2 {
		t.Errorf("stamps dropped by period edit: %d, want 2", len(got.Stamps))
	}
}
