// Package app contains the Cobra command tree for fingerfit.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "fingerfit",
	Short: "Hand exercise trainer with progress tracking",
	Long: `fingerfit runs guided hand exercise sessions: it classifies hand poses
from finger joint angles, times each hold, and logs every completed pose.
The accumulated log becomes a per-day progress report with trend feedback.

Run 'fingerfit' with no arguments for a quick summary of today's progress.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagNoColor {
			output.SetNoColor(true)
		}

		fmt.Println("fingerfit", appVersion)
		fmt.Println()

		lines, err := history.ReadLines(cfg.LogPath)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		printTodaySummary(history.Aggregate(lines))

		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  run      Run a guided exercise session")
		fmt.Println("  report   Show per-day progress with trend feedback")
		fmt.Println("  track    Snapshot progress and compare over time")
		fmt.Println("  log      Record a pose success manually")
		fmt.Println("  seed     Generate synthetic history for testing")
		return nil
	},
}

// printTodaySummary shows the last aggregated day when it is today,
// otherwise a hint to get started.
func printTodaySummary(entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Println("No exercise history yet. Start with 'fingerfit run'.")
		return
	}
	last := entries[len(entries)-1]
	i := len(entries) - 1
	trend := history.TrendOf(entries, i)

	var prev *float64
	if i > 0 {
		prev = &entries[i-1].ProgressPct
	}

	fmt.Printf(" %s  %s  %s\n",
		last.Date.Format("2006-01-02"),
		output.ProgressBar(last.ProgressPct, trend, 20),
		output.TrendIndicator(trend))
	fmt.Printf(" %d events, %d sets  %s\n",
		last.EventCount, last.SetsDone, history.Feedback(last.ProgressPct, prev))
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/fingerfit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
