package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

var reportMonth string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show an aggregated monthly report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Month to report (YYYY-MM, default current)")
}

func runReport(cmd *cobra.Command, args []string) error {
	month, err := monthPrefix(reportMonth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

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

	var (
		workedSec  int64
		targetSec  int64
		permitSec  int64
		balanceSec int64
	)
	byType := map[model.DayType]int{}
	days := 0

	for _, key := range data.SortedKeys() {
		if !strings.HasPrefix(key, month+"-") {
			continue
		}
		rec := data[key]
		days++
		byType[rec.Type]++
		workedSec += rec.WorkedSeconds
		targetSec += rec.TargetSeconds()
		permitSec += rec.PermitSeconds()
		balanceSec += rec.WorkedSeconds + rec.PermitSeconds() - rec.TargetSeconds()
	}

	if days == 0 {
		fmt.Printf("No tracked days in %s.\n", month)
		return nil
	}

	fmt.Printf("Month %s\n", month)
	fmt.Println("--------------------------------")
	for _, typ := range []model.DayType{
		model.Workday, model.Vacation, model.Permit,
		model.Sickness, model.Holiday, model.SpecialLeave,
	} {
		if n := byType[typ]; n > 0 {
			fmt.Printf("%-16s%d day(s)\n", typ.Name(), n)
		}
	}
	fmt.Println("--------------------------------")
	fmt.Printf("%-16s%s\n", "Worked", timecalc.FormatDuration(workedSec))
	fmt.Printf("%-16s%s\n", "Target", timecalc.FormatDuration(targetSec))
	if permitSec > 0 {
		fmt.Printf("%-16s%s\n", "Permit credit", timecalc.FormatDuration(permitSec))
	}
	fmt.Printf("%-16s%s\n", "Balance", timecalc.FormatSignedHHMMSS(balanceSec))
	return nil
}
