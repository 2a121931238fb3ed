package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/report"
	"github.com/chronos-cli/chronos/internal/storage"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tracked days as a spreadsheet",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: xlsx, csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path for xlsx (default chronos-report-YYYY-MM.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	data, err := storage.Load(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(data) == 0 {
		fmt.Println("No data to export.")
		return nil
	}

	switch exportFormat {
	case "csv":
		printCSV(data)
	default: // xlsx
		path := exportOut
		if path == "" {
			path = fmt.Sprintf("chronos-report-%s.xlsx", time.Now().Format("2006-01"))
		}
		if err := report.WriteXLSX(data, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("Report saved to %s\n", path)
	}
	return nil
}

func printCSV(data storage.Data) {
	fmt.Println("date,day_type,target_hours,permit_hours,worked,balance,stamps")
	for _, row := range report.BuildRows(data) {
		fields := row.Fields()
		for i, f := range fields {
			fields[i] = csvEscape(f)
		}
		fmt.Printf("%s,%s,%s,%s,%s,%s,%s\n",
			fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
