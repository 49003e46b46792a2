package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/pose"
)

var (
	logSet   int
	logRound int
	logAt    string
)

var logCmd = &cobra.Command{
	Use:   "log <pose-index>",
	Short: "Record a pose success manually",
	Long: `Append a pose success event to the history log without running a
session, e.g. for exercises done away from the detector.

Examples:
  fingerfit log 3                        # log a success for pose 3 (กำมือ)
  fingerfit log 1 --set 2 --round 4      # with explicit counters
  fingerfit log 5 --at "2025-10-01 09:30:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runLogEvent,
}

func init() {
	logCmd.Flags().IntVar(&logSet, "set", 0, "Set counter to record")
	logCmd.Flags().IntVar(&logRound, "round", 0, "Round counter to record")
	logCmd.Flags().StringVar(&logAt, "at", "", "Event timestamp (default: now)")
	rootCmd.AddCommand(logCmd)
}

func runLogEvent(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > pose.PoseCount {
		return fmt.Errorf("pose index must be 1-%d, got %q", pose.PoseCount, args[0])
	}
	def := pose.ByIndex(idx)

	at := time.Now()
	if logAt != "" {
		at, err = time.ParseInLocation(history.TimestampLayout, logAt, time.Local)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q (want %s): %w", logAt, history.TimestampLayout, err)
		}
	}

	logger := history.NewLogger(cfg.LogPath)
	if err := logger.Append(at, logSet, logRound, def.Name); err != nil {
		return fmt.Errorf("appending event: %w", err)
	}

	fmt.Printf("Logged ท่า%s at %s (เซ็ตที่ %d ครั้งที่ %d)\n",
		def.Name, at.Format(history.TimestampLayout), logSet, logRound)
	return nil
}
