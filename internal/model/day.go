package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DayType classifies a calendar day. The string value is the label
// written to the data file and to exported reports.
type DayType string

const (
	Workday      DayType = "Lavorativo"
	Vacation     DayType = "Ferie"
	Permit       DayType = "Permesso"
	Sickness     DayType = "Malattia"
	Holiday      DayType = "Festività"
	SpecialLeave DayType = "Art. 104"
)

// dayTypeNames maps CLI-facing names to day types.
var dayTypeNames = map[string]DayType{
	"workday":       Workday,
	"vacation":      Vacation,
	"permit":        Permit,
	"sickness":      Sickness,
	"holiday":       Holiday,
	"special-leave": SpecialLeave,
}

// ParseDayType resolves a CLI name (e.g. "vacation") or a stored label
// (e.g. "Ferie") into a DayType.
func ParseDayType(s string) (DayType, error) {
	if t, ok := dayTypeNames[strings.ToLower(s)]; ok {
		return t, nil
	}
	t := DayType(s)
	if t.IsValid() {
		return t, nil
	}
	return "", fmt.Errorf("unknown day type %q", s)
}

// Name returns the CLI-facing name for t.
func (t DayType) Name() string {
	for name, typ := range dayTypeNames {
		if typ == t {
			return name
		}
	}
	return string(t)
}

// IsValid reports whether t is one of the known day types.
func (t DayType) IsValid() bool {
	switch t {
	case Workday, Vacation, Permit, Sickness, Holiday, SpecialLeave:
		return true
	}
	return false
}

// HourlyAbsence reports whether t is an absence measured in hours
// (credited to the balance) rather than a full-day classification.
func (t DayType) HourlyAbsence() bool {
	return t == Permit || t == SpecialLeave
}

// Interval is a planned work block on a single day, wall-clock "HH:MM".
// End is expected to be after Start; this is not validated.
type Interval struct {
	Start string
	End   string
}

// MarshalJSON encodes the interval as a ["start","end"] pair, the shape
// used in the data file.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{iv.Start, iv.End})
}

// UnmarshalJSON decodes a ["start","end"] pair.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("interval must be a [start,end] pair: %w", err)
	}
	iv.Start, iv.End = pair[0], pair[1]
	return nil
}

// ParseInterval parses a CLI argument of the form "HH:MM-HH:MM".
func ParseInterval(s string) (Interval, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, fmt.Errorf("interval %q must be HH:MM-HH:MM", s)
	}
	for _, part := range []string{start, end} {
		if _, err := time.Parse("15:04", part); err != nil {
			return Interval{}, fmt.Errorf("invalid time %q in interval: %w", part, err)
		}
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) String() string {
	return iv.Start + "-" + iv.End
}

// SortIntervals orders intervals by start time (then end time) in place.
// Zero-padded HH:MM strings sort chronologically as plain strings.
func SortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		if ivs[i].Start != ivs[j].Start {
			return ivs[i].Start < ivs[j].Start
		}
		return ivs[i].End < ivs[j].End
	})
}

// DayRecord is the work record for one calendar day. Records are keyed
// by ISO date string in the data file; field names match the on-disk
// document format.
type DayRecord struct {
	Type          DayType     `json:"tipo_giornata"`
	Intervals     []Interval  `json:"eventi_programmati"`
	TargetHours   float64     `json:"obiettivo_ore"`
	PermitHours   float64     `json:"ore_permesso"`
	Stamps        []time.Time `json:"timbrature"`
	WorkedSeconds int64       `json:"ore_lavorate_sec"`
}

// Default workday schedule: two blocks with a lunch break.
var DefaultSchedule = []Interval{
	{Start: "08:30", End: "13:00"},
	{Start: "14:00", End: "18:30"},
}

// DefaultTargetHours is the stored target of a freshly created workday.
// Intentionally not derived from DefaultSchedule; the schedule-derived
// value takes over as soon as the schedule is edited.
const DefaultTargetHours = 8.5

// DefaultDay returns a fresh workday record with the default schedule.
func DefaultDay() DayRecord {
	intervals := make([]Interval, len(DefaultSchedule))
	copy(intervals, DefaultSchedule)
	return DayRecord{
		Type:        Workday,
		Intervals:   intervals,
		TargetHours: DefaultTargetHours,
		PermitHours: 0,
		Stamps:      []time.Time{},
	}
}

// TargetSeconds converts the stored target hours to whole seconds.
func (d *DayRecord) TargetSeconds() int64 {
	return int64(d.TargetHours*3600 + 0.5)
}

// PermitSeconds converts the stored permit hours to whole seconds.
func (d *DayRecord) PermitSeconds() int64 {
	return int64(d.PermitHours*3600 + 0.5)
}
