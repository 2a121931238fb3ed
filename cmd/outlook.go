package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-cli/chronos/internal/config"
	"github.com/chronos-cli/chronos/internal/outlook"
	"github.com/chronos-cli/chronos/internal/storage"
	"github.com/chronos-cli/chronos/internal/timecalc"
)

var (
	outlookPlanFrom   string
	outlookPlanTo     string
	outlookPlanDate   string
	outlookPlanDryRun bool
	outlookPlanTZ     string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan workday schedules from Outlook calendar events",
	Long: `outlook plan fetches calendar events and turns each covered date into
a workday whose schedule blocks are the events, rederiving the target
from them.`,
	Args: cobra.NoArgs,
	RunE: runOutlookPlan,
}

func init() {
	outlookPlanCmd.Flags().StringVar(&outlookPlanFrom, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	outlookPlanCmd.Flags().StringVar(&outlookPlanTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookPlanCmd.Flags().StringVar(&outlookPlanDate, "date", "", "Plan a specific date (YYYY-MM-DD)")
	outlookPlanCmd.Flags().BoolVar(&outlookPlanDryRun, "dry-run", false, "Print planned blocks without writing")
	outlookPlanCmd.Flags().StringVar(&outlookPlanTZ, "timezone", "", "IANA timezone for event times (overrides config)")
	outlookCmd.AddCommand(outlookPlanCmd)
}

func runOutlookPlan(cmd *cobra.Command, args []string) error {
	now := time.Now()
	var from, to time.Time

	switch {
	case outlookPlanDate != "":
		d, err := time.Parse("2006-01-02", outlookPlanDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date value %q: %v\n", outlookPlanDate, err)
			os.Exit(1)
		}
		from = timecalc.StartOfDay(d)
		to = timecalc.EndOfDay(d)

	case outlookPlanFrom != "" || outlookPlanTo != "":
		if outlookPlanTo != "" && outlookPlanFrom == "" {
			fmt.Fprintln(os.Stderr, "--from is required when --to is specified")
			os.Exit(1)
		}
		var err error
		from, err = time.Parse("2006-01-02", outlookPlanFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", outlookPlanFrom, err)
			os.Exit(1)
		}
		from = timecalc.StartOfDay(from)

		if outlookPlanTo != "" {
			t, err := time.Parse("2006-01-02", outlookPlanTo)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", outlookPlanTo, err)
				os.Exit(1)
			}
			to = timecalc.EndOfDay(t)
		} else {
			to = timecalc.EndOfDay(now)
		}

	default:
		// Default: today.
		from = timecalc.StartOfDay(now)
		to = timecalc.EndOfDay(now)
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

	timezone := outlookPlanTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

	dryTag := ""
	if outlookPlanDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Planning from Outlook events (%s → %s)%s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), dryTag)
	fmt.Println()

	ctx := context.Background()

	tok, oc, err := outlook.Authenticate(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	client := outlook.NewClient(ctx, tok, oc)

	events, err := client.CalendarView(ctx, from, to, timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	blocks, skipped := outlook.BlocksByDate(events, timezone)

	if outlookPlanDryRun {
		for date, ivs := range blocks {
			fmt.Printf("  would plan %s with %d block(s)\n", date, len(ivs))
		}
		fmt.Printf("\nSummary: %d day(s), %d event(s) skipped.\n", len(blocks), skipped)
		return nil
	}

	data, err := storage.Load(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	result := outlook.PlanDays(data, cfg.DefaultDay(), blocks, skipped)

	if err := storage.Save(base, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d day(s) planned\n", result.Days)
	fmt.Printf("  %d block(s) added\n", result.Blocks)
	fmt.Printf("  %d event(s) skipped\n", result.Skipped)
	return nil
}
