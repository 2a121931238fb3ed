// Package report renders the tracked day records for export.
package report

import (
	"fmt"

	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

// Headers are the export columns, in order.
var Headers = []string{
	"Date", "Day Type", "Target Hours", "Permit Hours",
	"Worked", "Balance", "Stamps",
}

// Row is one exported line, fully formatted.
type Row struct {
	Date        string
	DayType     string
	TargetHours string
	PermitHours string
	Worked      string
	Balance     string
	Stamps      string
}

// BuildRows flattens the data set into one row per date, dates
// ascending. Worked time is the cached per-day total; the balance is
// worked plus permit credit minus the target, rendered with an
// explicit sign.
func BuildRows(data storage.Data) []Row {
	rows := make([]Row, 0, len(data))
	for _, key := range data.SortedKeys() {
		rec := data[key]

		stamps := ""
		for i, ts := range rec.Stamps {
			if i > 0 {
				stamps += " | "
			}
			stamps += ts.Format("15:04")
		}

		balance := rec.WorkedSeconds + rec.PermitSeconds() - rec.TargetSeconds()
		rows = append(rows, Row{
			Date:        key,
			DayType:     string(rec.Type),
			TargetHours: fmt.Sprintf("%.2f", rec.TargetHours),
			PermitHours: fmt.Sprintf("%.2f", rec.PermitHours),
			Worked:      timecalc.FormatDurationHHMMSS(rec.WorkedSeconds),
			Balance:     timecalc.FormatSignedHHMMSS(balance),
			Stamps:      stamps,
		})
	}
	return rows
}

// Fields returns the row's cells in header order.
func (r Row) Fields() []string {
	return []string{r.Date, r.DayType, r.TargetHours, r.PermitHours, r.Worked, r.Balance, r.Stamps}
}
