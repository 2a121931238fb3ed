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

var statusWatch bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's stamps, worked time and balance",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "Re-render every second")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	s, err := tracker.NewSession(base, time.Now(), cfg.DefaultDay())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if !statusWatch {
		printStatus(s, time.Now())
		return nil
	}

	// Cooperative 1-second refresh; one goroutine, no shared state.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		now := time.Now()
		if timecalc.DateKey(now) != s.Today {
			// Day rollover: resolve the new date's record.
			s, err = tracker.NewSession(base, now, cfg.DefaultDay())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
		fmt.Print("\033[2J\033[H")
		fmt.Println(now.Format("15:04:05"))
		printStatus(s, now)
		<-ticker.C
	}
}

func printStatus(s *tracker.Session, now time.Time) {
	rec := s.Record
	fmt.Printf("Date: %s\n", s.Today)

	if rec.Type != model.Workday {
		fmt.Printf("Day type: %s\n", rec.Type.Name())
		fmt.Println("No stamps for a non-workday.")
		return
	}

	worked := tracker.WorkedSeconds(rec, now)
	fmt.Printf("Worked today: %s\n", timecalc.FormatDurationHHMMSS(worked))
	fmt.Printf("Balance: %s\n", timecalc.FormatSignedHHMMSS(tracker.Balance(rec, worked)))
	if tracker.IsClockedIn(rec) {
		fmt.Println("Currently clocked in.")
	}

	if len(rec.Stamps) == 0 {
		fmt.Println("No stamps yet.")
		return
	}
	for i, ts := range rec.Stamps {
		label := "in: "
		if i%2 != 0 {
			label = "out:"
		}
		fmt.Printf("  %s %s\n", label, ts.Format("15:04:05"))
	}
}
