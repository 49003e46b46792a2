package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/pose"
)

var (
	seedDays int
	seedRand int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic history for testing",
	Long: `Append synthetic success events to the history log: for each of the
last N days, 2-3 sets of 10 events spaced 7 seconds apart, cycling
through the pose catalog. Useful for trying out 'report' and 'track'
before any real sessions exist.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 7, "Number of days of history to generate")
	seedCmd.Flags().Int64Var(&seedRand, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if seedDays < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", seedDays)
	}

	src := seedRand
	if src == 0 {
		src = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(src))

	logger := history.NewLogger(cfg.LogPath)
	now := time.Now()
	total := 0

	for d := seedDays - 1; d >= 0; d-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.Local).AddDate(0, 0, -d)
		sets := 2 + rng.Intn(2)

		at := day
		for s := 0; s < sets; s++ {
			for r := 0; r < history.EventsPerSet; r++ {
				def := pose.ByIndex(1 + r%pose.PoseCount)
				if err := logger.Append(at, s, r, def.Name); err != nil {
					return fmt.Errorf("appending event: %w", err)
				}
				at = at.Add(7 * time.Second)
				total++
			}
		}
	}

	fmt.Printf("Seeded %d events across %d days into %s\n", total, seedDays, cfg.LogPath)
	return nil
}
