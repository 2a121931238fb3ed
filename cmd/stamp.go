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

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Record a clock-in/clock-out stamp for today",
	Args:  cobra.NoArgs,
	RunE:  runStamp,
}

func runStamp(cmd *cobra.Command, args []string) error {
	now := time.Now()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	s, err := tracker.NewSession(base, now, cfg.DefaultDay())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if s.Record.Type != model.Workday {
		fmt.Fprintf(os.Stderr, "Today is marked %s; no stamps recorded.\n", s.Record.Type.Name())
		os.Exit(1)
	}

	recorded, err := s.RecordStamp(now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !recorded {
		fmt.Println("Ignored: stamp within 1 second of the previous one.")
		return nil
	}

	if tracker.IsClockedIn(s.Record) {
		fmt.Printf("Clocked in at %s\n", now.Format("15:04:05"))
	} else {
		fmt.Printf("Clocked out at %s\n", now.Format("15:04:05"))
	}

	worked := tracker.WorkedSeconds(s.Record, now)
	fmt.Printf("Worked today: %s\n", timecalc.FormatDurationHHMMSS(worked))
	fmt.Printf("Balance: %s\n", timecalc.FormatSignedHHMMSS(tracker.Balance(s.Record, worked)))
	return nil
}
