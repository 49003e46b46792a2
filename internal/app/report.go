package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/output"
	"github.com/kanit-labs/fingerfit/internal/watcher"
)

var (
	reportWatch    bool
	reportInterval string
	reportTail     int
	reportJSON     bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-day progress with trend feedback",
	Long: `Aggregate the history log into one row per calendar day: event count,
completed sets, progress percentage, and a day-over-day trend indicator.
Days with no activity inside the covered range appear with a zero count.

Examples:
  fingerfit report             # one row per day
  fingerfit report --watch     # live view, refreshes as the log grows
  fingerfit report --tail 20   # last 20 raw log lines
  fingerfit report --json      # machine-readable output`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportWatch, "watch", false, "Refresh the report whenever the log changes")
	reportCmd.Flags().StringVar(&reportInterval, "interval", "5s", "Fallback refresh interval for --watch")
	reportCmd.Flags().IntVar(&reportTail, "tail", 0, "Show the last N raw log lines instead of the report")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor {
		output.SetNoColor(true)
	}

	if reportTail > 0 {
		lines, err := history.ReadLines(cfg.LogPath)
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		for _, line := range history.Tail(lines, reportTail) {
			fmt.Println(line)
		}
		return nil
	}

	if reportWatch {
		return runReportWatch(cfg)
	}

	lines, err := history.ReadLines(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	entries := history.Aggregate(lines)

	if reportJSON || flagJSON {
		return outputReportJSON(entries)
	}
	renderReport(entries)
	return nil
}

// runReportWatch re-renders the report whenever the log file changes.
func runReportWatch(cfg *config.Config) error {
	interval, err := time.ParseDuration(reportInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", reportInterval, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	w := watcher.New(cfg.LogPath, interval, func(u watcher.Update) {
		fmt.Print("\033[H\033[2J")
		renderReport(u.Entries)
		fmt.Printf("\n Watching %s  (updated %s, ctrl-c to stop)\n",
			cfg.LogPath, u.Time.Format("15:04:05"))
	})

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	fmt.Println("\nStopped.")
	return nil
}

func renderReport(entries []history.Entry) {
	fmt.Println(output.Section("Exercise Progress"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(" No exercise history yet. Start with 'fingerfit run'.")
		return
	}

	tbl := output.NewTable("Date", "Day", "Events", "Sets", "Progress", "", "Feedback")
	for i, e := range entries {
		trend := history.TrendOf(entries, i)
		var prev *float64
		if i > 0 {
			prev = &entries[i-1].ProgressPct
		}
		tbl.AddRow(
			e.Date.Format("2006-01-02"),
			humanize.Time(e.Date),
			fmt.Sprintf("%d", e.EventCount),
			fmt.Sprintf("%d", e.SetsDone),
			output.ProgressBar(e.ProgressPct, trend, 20),
			output.TrendIndicator(trend),
			history.Feedback(e.ProgressPct, prev),
		)
	}
	tbl.Print()
}

// reportDay is the JSON shape of one aggregated day.
type reportDay struct {
	Date        string  `json:"date"`
	EventCount  int     `json:"event_count"`
	SetsDone    int     `json:"sets_done"`
	ProgressPct float64 `json:"progress_pct"`
	Trend       string  `json:"trend"`
	Feedback    string  `json:"feedback"`
}

func outputReportJSON(entries []history.Entry) error {
	days := make([]reportDay, 0, len(entries))
	for i, e := range entries {
		var prev *float64
		if i > 0 {
			prev = &entries[i-1].ProgressPct
		}
		days = append(days, reportDay{
			Date:        e.Date.Format("2006-01-02"),
			EventCount:  e.EventCount,
			SetsDone:    e.SetsDone,
			ProgressPct: e.ProgressPct,
			Trend:       history.TrendOf(entries, i).String(),
			Feedback:    history.Feedback(e.ProgressPct, prev),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"days": days})
}
