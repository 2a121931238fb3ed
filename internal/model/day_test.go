package model_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/chronos-cli/chronos/internal/model"
)

func TestParseDayType(t *testing.T) {
	tests := []struct {
		input string
		want  model.DayType
	}{
		{"workday", model.Workday},
		{"Workday", model.Workday},
		{"vacation", model.Vacation},
		{"permit", model.Permit},
		{"sickness", model.Sickness},
		{"holiday", model.Holiday},
		{"special-leave", model.SpecialLeave},
		// Stored labels resolve too.
		{"Lavorativo", model.Workday},
		{"Ferie", model.Vacation},
		{"Art. 104", model.SpecialLeave},
	}
	for _, tt := range tests {
		got, err := model.ParseDayType(tt.input)
		if err != nil {
			t.Errorf("ParseDayType(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDayType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := model.ParseDayType("weekend"); err == nil {
		t.Error("ParseDayType(\"weekend\") should fail")
	}
}

func TestDayTypeHourlyAbsence(t *testing.T) {
	for _, typ := range []model.DayType{model.Permit, model.SpecialLeave} {
		if !typ.HourlyAbsence() {
			t.Errorf("%v should be an hourly absence", typ)
		}
	}
	for _, typ := range []model.DayType{model.Workday, model.Vacation, model.Sickness, model.Holiday} {
		if typ.HourlyAbsence() {
			t.Errorf("%v should not be an hourly absence", typ)
		}
	}
}

func TestIntervalJSONRoundTrip(t *testing.T) {
	iv := model.Interval{Start: "08:30", End: "13:00"}

	data, err := json.Marshal(iv)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["08:30","13:00"]` {
		t.Errorf("Marshal = %s, want [\"08:30\",\"13:00\"]", data)
	}

	var back model.Interval
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != iv {
		t.Errorf("round trip = %v, want %v", back, iv)
	}

	if err := json.Unmarshal([]byte(`"08:30-13:00"`), &back); err == nil {
		t.Error("Unmarshal of a non-pair should fail")
	}
}

func TestParseInterval(t *testing.T) {
	iv, err := model.ParseInterval("08:30-13:00")
	if err != nil {
		t.Fatalf("ParseInterval: %v", err)
	}
	if iv.Start != "08:30" || iv.End != "13:00" {
		t.Errorf("ParseInterval = %v", iv)
	}

	for _, bad := range []string{"08:30", "8h-13h", "08:30/13:00", "25:00-26:00"} {
		if _, err := model.ParseInterval(bad); err == nil {
			t.Errorf("ParseInterval(%q) should fail", bad)
		}
	}
}

func TestSortIntervals(t *testing.T) {
	ivs := []model.Interval{
		{Start: "14:00", End: "18:30"},
		{Start: "08:30", End: "13:00"},
		{Start: "08:30", End: "10:00"},
	}
	model.SortIntervals(ivs)
	want := []model.Interval{
		{Start: "08:30", End: "10:00"},
		{Start: "08:30", End: "13:00"},
		{Start: "14:00", End: "18:30"},
	}
	if !reflect.DeepEqual(ivs, want) {
		t.Errorf("SortIntervals = %v, want %v", ivs, want)
	}
}

func TestDefaultDay(t *testing.T) {
	day := model.DefaultDay()
	if day.Type != model.Workday {
		t.Errorf("Type = %v, want Workday", day.Type)
	}
	if day.TargetHours != 8.5 {
		t.Errorf("TargetHours = %v, want 8.5", day.TargetHours)
	}
	if day.TargetSeconds() != 30600 {
		t.Errorf("TargetSeconds = %d, want 30600", day.TargetSeconds())
	}
	if len(day.Intervals) != 2 {
		t.Fatalf("Intervals = %v, want the two default blocks", day.Intervals)
	}
	if day.PermitHours != 0 || len(day.Stamps) != 0 {
		t.Errorf("fresh day should carry no permit hours or stamps")
	}
}

func TestDayRecordJSONFieldNames(t *testing.T) {
	day := model.DefaultDay()
	data, err := json.Marshal(&day)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, field := range []string{
		"tipo_giornata", "eventi_programmati", "obiettivo_ore",
		"ore_permesso", "timbrature", "ore_lavorate_sec",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("serialized record missing field %q", field)
		}
	}
	if string(raw["tipo_giornata"]) != `"Lavorativo"` {
		t.Errorf("tipo_giornata = %s, want \"Lavorativo\"", raw["tipo_giornata"])
	}
	if string(raw["eventi_programmati"]) != `[["08:30","13:00"],["14:00","18:30"]]` {
		t.Errorf("eventi_programmati = %s", raw["eventi_programmati"])
	}
}
