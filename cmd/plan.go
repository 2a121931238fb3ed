package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/config"
	"github.com/chronos-cli/chronos/internal/model"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
	"github.com/chronos-cli/chronos/internal/tracker"
)

var (
	planType           string
	planPermitHours    float64
	planAddIntervals   []string
	planRemoveInterval []string
	planClearIntervals bool
)

var planCmd = &cobra.Command{
	Use:   "plan [date]",
	Short: "Edit a single day: type, permit hours, schedule",
	Long: `plan edits one calendar day (default: today). The day type governs
which fields matter: a workday's target is always derived from its
schedule blocks, hourly absences (permit, special-leave) carry permit
hours, and full-day absences carry neither.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planType, "type", "", "Day type: workday, vacation, permit, sickness, holiday, special-leave")
	planCmd.Flags().Float64Var(&planPermitHours, "permit-hours", 0, "Permit hours (permit/special-leave days)")
	planCmd.Flags().StringArrayVar(&planAddIntervals, "add-interval", nil, "Add a schedule block HH:MM-HH:MM (repeatable)")
	planCmd.Flags().StringArrayVar(&planRemoveInterval, "remove-interval", nil, "Remove a schedule block HH:MM-HH:MM (repeatable)")
	planCmd.Flags().BoolVar(&planClearIntervals, "clear-intervals", false, "Drop all schedule blocks first")
}

func runPlan(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if len(args) == 1 {
		var err error
		day, err = time.Parse("2006-01-02", args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid date %q: %v\n", args[0], err)
			os.Exit(1)
		}
	}
	key := timecalc.DateKey(day)

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

	rec := data.GetOrCreate(key, cfg.DefaultDay())

	if planType != "" {
		typ, err := model.ParseDayType(planType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		permit := planPermitHours
		if !cmd.Flags().Changed("permit-hours") {
			permit = rec.PermitHours
		}
		tracker.ApplyDayType(rec, typ, rec.Intervals, permit)
	} else if cmd.Flags().Changed("permit-hours") {
		if !rec.Type.HourlyAbsence() {
			fmt.Fprintf(os.Stderr, "permit hours only apply to permit/special-leave days (this day is %s)\n", rec.Type.Name())
			os.Exit(1)
		}
		rec.PermitHours = planPermitHours
	}

	if planClearIntervals {
		tracker.ClearIntervals(rec)
	}
	for _, s := range planRemoveInterval {
		iv, err := model.ParseInterval(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !tracker.RemoveInterval(rec, iv) {
			fmt.Fprintf(os.Stderr, "Warning: no block %s on %s\n", iv, key)
		}
	}
	for _, s := range planAddIntervals {
		iv, err := model.ParseInterval(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		tracker.AddInterval(rec, iv)
	}

	if err := storage.Save(base, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("%s: %s\n", key, rec.Type.Name())
	switch {
	case rec.Type == model.Workday:
		for _, iv := range rec.Intervals {
			fmt.Printf("  %s\n", iv)
		}
		fmt.Printf("Target: %.2fh\n", rec.TargetHours)
	case rec.Type.HourlyAbsence():
		fmt.Printf("Permit: %.2fh\n", rec.PermitHours)
	}
	return nil
}
