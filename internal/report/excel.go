package report

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/chronos-cli/chronos/internal/storage"
)

const sheetName = "Hours Summary"

// WriteXLSX renders the full data set as a styled workbook at path.
// The file is written to a temporary path and renamed on success, so a
// failed export never leaves a partial file behind.
func WriteXLSX(data storage.Data, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export error naming sheet: %w", err)
	}

	headerRow := make([]interface{}, len(Headers))
	for i, h := range Headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("export error writing header: %w", err)
	}

	rows := BuildRows(data)
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		widths[i] = len(h)
	}
	for i, row := range rows {
		cells := row.Fields()
		values := make([]interface{}, len(cells))
		for j, cell := range cells {
			values[j] = cell
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export error addressing row: %w", err)
		}
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return fmt.Errorf("export error writing row %s: %w", row.Date, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("export error creating style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Headers))
	if err != nil {
		return fmt.Errorf("export error naming column: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("export error styling header: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("export error naming column: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width+2)); err != nil {
			return fmt.Errorf("export error sizing column: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := f.SaveAs(tmpPath); err != nil {
		return fmt.Errorf("export error writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("export error renaming temp file: %w", err)
	}
	return nil
}
