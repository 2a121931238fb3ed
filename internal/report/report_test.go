package report_test

import (
	"testing"
	"time"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/report"
	"github.com/chronos-cli/chronos/internal/storage"
)

func TestBuildRows(t *testing.T) {
	data := storage.Data{}

	workday := data.GetOrCreate("2026-03-02", model.DefaultDay())
	workday.Stamps = []time.Time{
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
	}
	workday.WorkedSeconds = 28800

	vacation := data.GetOrCreate("2026-03-03", model.DefaultDay())
	vacation.Type = model.Vacation
	vacation.TargetHours = 0

	permit := data.GetOrCreate("2026-03-01", model.DefaultDay())
	permit.Type = model.Permit
	permit.TargetHours = 0
	permit.PermitHours = 2.5

	rows := report.BuildRows(data)
	if len(rows) != 3 {
		t.Fatalf("BuildRows returned %d rows, want 3", len(rows))
	}

	// Dates ascending.
	if rows[0].Date != "2026-03-01" || rows[1].Date != "2026-03-02" || rows[2].Date != "2026-03-03" {
		t.Errorf("rows out of order: %s, %s, %s", rows[0].Date, rows[1].Date, rows[2].Date)
	}

	wd := rows[1]
	if wd.DayType != "Lavorativo" {
		t.Errorf("DayType = %q, want %q", wd.DayType, "Lavorativo")
	}
	if wd.TargetHours != "8.50" {
		t.Errorf("TargetHours = %q, want %q", wd.TargetHours, "8.50")
	}
	if wd.Worked != "08:00:00" {
		t.Errorf("Worked = %q, want %q", wd.Worked, "08:00:00")
	}
	// 28800 worked against a 30600 target.
	if wd.Balance != "-00:30:00" {
		t.Errorf("Balance = %q, want %q", wd.Balance, "-00:30:00")
	}
	if wd.Stamps != "08:00 | 12:00 | 13:00 | 17:00" {
		t.Errorf("Stamps = %q", wd.Stamps)
	}

	pm := rows[0]
	if pm.PermitHours != "2.50" {
		t.Errorf("PermitHours = %q, want %q", pm.PermitHours, "2.50")
	}
	// Permit hours count as credit even with nothing worked.
	if pm.Balance != "+02:30:00" {
		t.Errorf("permit Balance = %q, want %q", pm.Balance, "+02:30:00")
	}

	vc := rows[2]
	if vc.Balance != "+00:00:00" {
		t.Errorf("vacation Balance = %q, want %q", vc.Balance, "+00:00:00")
	}
	if vc.Stamps != "" {
		t.Errorf("vacation Stamps = %q, want empty", vc.Stamps)
	}
}

func TestRowFieldsOrder(t *testing.T) {
	row := report.Row{
		Date: "2026-03-02", DayType: "Lavorativo", TargetHours: "8.50",
		PermitHours: "0.00", Worked: "08:00:00", Balance: "-00:30:00",
		Stamps: "08:00 | 17:00",
	}
	fields := row.Fields()
	if len(fields) != len(report.Headers) {
		t.Fatalf("Fields returned %d cells, headers have %d", len(fields), len(report.Headers))
	}
	if fields[0] != row.Date || fields[6] != row.Stamps {
		t.Errorf("Fields order wrong: %v", fields)
	}
}
