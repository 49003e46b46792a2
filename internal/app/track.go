package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/output"
	"github.com/kanit-labs/fingerfit/internal/store"
)

var (
	trackCompare int
	trackJSON    bool
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot progress and compare over time",
	Long: `Aggregate the history log, store the result as a new snapshot in the
local database, and compare summary metrics against a previous snapshot
to show deltas with trend arrows.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().BoolVar(&trackJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor {
		output.SetNoColor(true)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	lines, err := history.ReadLines(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	entries := history.Aggregate(lines)

	snapshotID, err := db.CreateSnapshot(appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	for i, e := range entries {
		if err := db.InsertDailyProgress(snapshotID, e, history.TrendOf(entries, i)); err != nil {
			return fmt.Errorf("inserting day %s: %w", e.Date.Format("2006-01-02"), err)
		}
	}

	for name, value := range buildSummaryMetrics(entries) {
		if err := db.InsertMetric(snapshotID, name, value); err != nil {
			return fmt.Errorf("inserting metric %s: %w", name, err)
		}
	}

	currentSnapshot, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	// trackCompare=1 means the immediate predecessor (offset 2 from newest).
	prevSnapshot, err := db.GetSnapshotN(trackCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prevSnapshot != nil {
		prevMetrics, err := db.GetMetrics(prevSnapshot.ID)
		if err != nil {
			return fmt.Errorf("loading previous metrics: %w", err)
		}
		currMetrics, err := db.GetMetrics(snapshotID)
		if err != nil {
			return fmt.Errorf("loading current metrics: %w", err)
		}
		diff = &store.SnapshotDiff{
			Previous: prevSnapshot,
			Current:  currentSnapshot,
			Deltas:   computeDeltas(prevMetrics, currMetrics),
		}
	}

	if trackJSON || flagJSON {
		return outputTrackJSON(currentSnapshot, diff)
	}
	renderTrackOutput(currentSnapshot, diff)
	return nil
}

// buildSummaryMetrics produces the flat metrics stored with a snapshot.
func buildSummaryMetrics(entries []history.Entry) map[string]float64 {
	var totalEvents, totalSets, activeDays int
	var progressSum, bestDay float64
	for _, e := range entries {
		totalEvents += e.EventCount
		totalSets += e.SetsDone
		if e.EventCount > 0 {
			activeDays++
		}
		progressSum += e.ProgressPct
		if e.ProgressPct > bestDay {
			bestDay = e.ProgressPct
		}
	}

	avgProgress := 0.0
	if len(entries) > 0 {
		avgProgress = progressSum / float64(len(entries))
	}

	return map[string]float64{
		"total_events":     float64(totalEvents),
		"total_sets":       float64(totalSets),
		"active_days":      float64(activeDays),
		"avg_progress_pct": avgProgress,
		"best_day_pct":     bestDay,
	}
}

// computeDeltas compares two sets of summary metrics. Every fingerfit
// metric improves upward, so direction follows the sign of the delta.
func computeDeltas(prev, curr []store.Metric) []store.MetricDelta {
	prevMap := make(map[string]float64, len(prev))
	for _, m := range prev {
		prevMap[m.Name] = m.Value
	}

	var deltas []store.MetricDelta
	for _, m := range curr {
		prevVal := prevMap[m.Name]
		delta := m.Value - prevVal

		direction := "unchanged"
		if delta > 0 {
			direction = "improved"
		} else if delta < 0 {
			direction = "regressed"
		}

		deltas = append(deltas, store.MetricDelta{
			Name:      m.Name,
			Previous:  prevVal,
			Current:   m.Value,
			Delta:     delta,
			Direction: direction,
		})
	}
	return deltas
}

func outputTrackJSON(current *store.Snapshot, diff *store.SnapshotDiff) error {
	result := map[string]any{
		"snapshot": current,
	}
	if diff != nil {
		result["diff"] = diff
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderTrackOutput(current *store.Snapshot, diff *store.SnapshotDiff) {
	fmt.Println(output.Section("Track: Snapshot Comparison"))
	fmt.Println()
	fmt.Printf(" Snapshot #%d taken at %s\n\n", current.ID, current.TakenAt.Local().Format("2006-01-02 15:04:05"))

	if diff == nil {
		fmt.Println(" First snapshot recorded. Run 'fingerfit track' again later to see trends.")
		return
	}

	fmt.Printf(" Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Local().Format("2006-01-02 15:04:05"))

	tbl := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend")
	for _, d := range diff.Deltas {
		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%.1f", d.Previous),
			fmt.Sprintf("%.1f", d.Current),
			fmt.Sprintf("%+.1f", d.Delta),
			output.TrendArrow(d.Delta, true),
		)
	}
	tbl.Print()
}
