package outlook

import (
	"fmt"
	"time"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
	"github.com/chronos-cli/chronos/internal/tracker"
)

// PlanResult holds counters for a planning run.
type PlanResult struct {
	Days    int
	Blocks  int
	Skipped int
}

// parseGraphTime parses a Graph API dateTime string in the given timezone.
// Graph returns times like "2026-02-27T09:00:00.0000000" without a zone suffix
// when a Prefer: outlook.timezone header is set.
func parseGraphTime(dt, tz string) (time.Time, error) {
	// Try RFC3339 first (includes timezone offset).
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	// Graph returns fractional seconds: "2026-02-27T09:00:00.0000000"
	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}

// shouldSkip returns true if the event should not become a work block.
func shouldSkip(event Event) bool {
	if event.IsCancelled {
		return true
	}
	if event.IsAllDay {
		return true
	}
	if event.Sensitivity == "private" {
		return true
	}
	if event.ShowAs == "free" {
		return true
	}
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return true
	}
	return false
}

// BlocksByDate converts events into per-date planned work blocks.
// Events crossing midnight are clipped to their start day; unusable
// events are counted in skipped.
func BlocksByDate(events []Event, timezone string) (map[string][]model.Interval, int) {
	blocks := map[string][]model.Interval{}
	skipped := 0
	for _, event := range events {
		if shouldSkip(event) {
			skipped++
			continue
		}
		start, err := parseGraphTime(event.Start.DateTime, timezone)
		if err != nil {
			fmt.Printf("  ! Error parsing event %q: %v\n", event.Subject, err)
			skipped++
			continue
		}
		end, err := parseGraphTime(event.End.DateTime, timezone)
		if err != nil {
			fmt.Printf("  ! Error parsing event %q: %v\n", event.Subject, err)
			skipped++
			continue
		}
		if !timecalc.SameDay(start, end) {
			end = timecalc.EndOfDay(start)
		}
		key := timecalc.DateKey(start)
		blocks[key] = append(blocks[key], model.Interval{
			Start: start.Format("15:04"),
			End:   end.Format("15:04"),
		})
	}
	return blocks, skipped
}

// PlanDays routes each date's blocks through the workday transition,
// replacing the schedule and rederiving the target. It prints progress
// to stdout and returns a PlanResult; the caller saves the data set.
func PlanDays(data storage.Data, def model.DayRecord, blocks map[string][]model.Interval, skipped int) PlanResult {
	result := PlanResult{Skipped: skipped}
	for key, ivs := range blocks {
		rec := data.GetOrCreate(key, def)
		tracker.ApplyDayType(rec, model.Workday, ivs, 0)
		fmt.Printf("  ✓ Planned:  %s (%d blocks, %.2fh)\n", key, len(ivs), rec.TargetHours)
		result.Days++
		result.Blocks += len(ivs)
	}
	return result
}
