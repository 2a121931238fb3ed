package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/config"
	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/tracker"
)

var periodType string

var periodCmd = &cobra.Command{
	Use:   "period <from> <to>",
	Short: "Apply an absence type to every weekday in a date range",
	Long: `period marks every Monday–Friday date in the inclusive range with the
given absence type (vacation or sickness). Weekend dates are left
untouched. Dates are YYYY-MM-DD.`,
	Args: cobra.ExactArgs(2),
	RunE: runPeriod,
}

func init() {
	periodCmd.Flags().StringVar(&periodType, "type", "vacation", "Absence type: vacation or sickness")
}

func runPeriod(cmd *cobra.Command, args []string) error {
	from, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid from date %q: %v\n", args[0], err)
		os.Exit(1)
	}
	to, err := time.Parse("2006-01-02", args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid to date %q: %v\n", args[1], err)
		os.Exit(1)
	}

	typ, err := model.ParseDayType(periodType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if typ != model.Vacation && typ != model.Sickness {
		fmt.Fprintf(os.Stderr, "period edits support vacation and sickness, not %s\n", typ.Name())
		os.Exit(1)
	}

	// An inverted range is a no-op, not an error.
	if to.Before(from) {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
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

	updated := tracker.ApplyPeriod(data, from, to, typ, cfg.DefaultDay())

	if err := storage.Save(base, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Marked %d weekday(s) as %s (%s → %s).\n",
		updated, typ.Name(), args[0], args[1])
	return nil
}
