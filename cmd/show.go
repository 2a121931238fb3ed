package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

var showMonth string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the tracked days of a month",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showMonth, "month", "", "Month to show (YYYY-MM, default current)")
}

// monthPrefix resolves the --month flag into a "YYYY-MM" key prefix.
func monthPrefix(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format("2006-01"), nil
	}
	t, err := time.Parse("2006-01", flag)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", flag, err)
	}
	return t.Format("2006-01"), nil
}

func runShow(cmd *cobra.Command, args []string) error {
	month, err := monthPrefix(showMonth)
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

	found := false
	for _, key := range data.SortedKeys() {
		if !strings.HasPrefix(key, month+"-") {
			continue
		}
		found = true
		rec := data[key]
		if rec.Type == model.Workday {
			balance := rec.WorkedSeconds + rec.PermitSeconds() - rec.TargetSeconds()
			fmt.Printf("%s  %-13s  target %5.2fh  worked %s  balance %s  (%d stamps)\n",
				key, rec.Type.Name(), rec.TargetHours,
				timecalc.FormatDurationHHMMSS(rec.WorkedSeconds),
				timecalc.FormatSignedHHMMSS(balance),
				len(rec.Stamps))
			continue
		}
		extra := ""
		if rec.Type.HourlyAbsence() {
			extra = fmt.Sprintf("  permit %.2fh", rec.PermitHours)
		}
		fmt.Printf("%s  %-13s%s\n", key, rec.Type.Name(), extra)
	}
	if !found {
		fmt.Printf("No tracked days in %s.\n", month)
	}
	return nil
}
