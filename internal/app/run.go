package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kanit-labs/fingerfit/internal/config"
	"github.com/kanit-labs/fingerfit/internal/history"
	"github.com/kanit-labs/fingerfit/internal/output"
	"github.com/kanit-labs/fingerfit/internal/pose"
	"github.com/kanit-labs/fingerfit/internal/session"
)

var (
	runPoses    int
	runSamples  string
	runInterval string
	runQuiet    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a guided exercise session",
	Long: `Start an exercise session: the trainer announces the active pose, waits
for a stable match, counts down, then times the hold. Every completed hold
is appended to the history log.

Without --samples the session is driven by a scripted source that always
holds the requested pose, useful for demos and end-to-end checks. With
--samples it replays a JSON-lines recording of finger angle samples.

Examples:
  fingerfit run                      # scripted session, ctrl-c to stop
  fingerfit run --poses 5            # stop after one full round
  fingerfit run --samples rec.jsonl  # replay a recorded session`,
	RunE: runSession,
}

func init() {
	runCmd.Flags().IntVar(&runPoses, "poses", 0, "Stop after N completed poses (0 = run until interrupted)")
	runCmd.Flags().StringVar(&runSamples, "samples", "", "Replay a JSON-lines angle recording instead of the scripted source")
	runCmd.Flags().StringVar(&runInterval, "interval", "20ms", "Sample interval as a duration string")
	runCmd.Flags().BoolVar(&runQuiet, "quiet", false, "Suppress terminal output")
	rootCmd.AddCommand(runCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor {
		output.SetNoColor(true)
	}

	interval, err := time.ParseDuration(runInterval)
	if err != nil {
		return fmt.Errorf("invalid interval %q: %w", runInterval, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sink := newTerminalSink(runQuiet)
	if runPoses > 0 {
		remaining := runPoses
		var mu sync.Mutex
		sink.onSuccess = func() {
			mu.Lock()
			remaining--
			done := remaining <= 0
			mu.Unlock()
			if done {
				cancel()
			}
		}
	}

	logger := history.NewLogger(cfg.LogPath)
	eng := session.NewEngine(cfg.SessionConfig(), sink, logger)
	eng.OnLogError = func(err error) {
		fmt.Fprintln(os.Stderr, "history write failed:", err)
	}

	src, closeSrc, err := buildSource(eng, interval)
	if err != nil {
		return err
	}
	defer closeSrc()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(gctx)
	})
	g.Go(func() error {
		err := eng.RunSampler(gctx, src)
		if err == nil && runSamples != "" {
			// Recording exhausted: let a trailing hold settle, then stop.
			select {
			case <-gctx.Done():
			case <-time.After(2 * time.Second):
			}
			cancel()
		}
		return err
	})

	if !runQuiet {
		fmt.Printf("fingerfit session  (hold %ds, ctrl-c to stop)\n\n", cfg.Session.HoldSeconds)
	}
	eng.Start()

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	sink.finish()
	if !runQuiet {
		s := eng.Snapshot()
		fmt.Printf("\nStopped at เซ็ตที่ %d ครั้งที่ %d.\n", s.Set, s.Round)
	}
	return nil
}

// buildSource returns the sample source for the session: a replay of a
// recorded file, or the scripted always-matching source.
func buildSource(eng *session.Engine, interval time.Duration) (session.Source, func(), error) {
	if runSamples == "" {
		src := &session.ScriptedSource{Active: eng.ActivePose, Interval: interval}
		return src, func() {}, nil
	}
	f, err := os.Open(runSamples)
	if err != nil {
		return nil, nil, fmt.Errorf("opening samples: %w", err)
	}
	return session.NewReplaySource(f, interval), func() { _ = f.Close() }, nil
}

// terminalSink renders session progress to stdout. Live timer frames are
// drawn in place and only when stdout is a terminal; pose changes and
// successes always print a line.
type terminalSink struct {
	quiet  bool
	frames bool

	mu        sync.Mutex
	inline    bool // an in-place frame is on the current line
	onSuccess func()
}

func newTerminalSink(quiet bool) *terminalSink {
	return &terminalSink{
		quiet:  quiet,
		frames: !quiet && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())),
	}
}

func (s *terminalSink) TimerFrame(seconds int, fraction float64) {
	if !s.frames {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// The ring fills as the hold elapses.
	fmt.Printf("\r   %s ", output.TimerRing(seconds, fraction, 12))
	s.inline = true
}

func (s *terminalSink) CountdownFrame(seconds int, fraction float64) {
	if !s.frames {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Printf("\r   เตรียมตัว... %ds ", seconds)
	s.inline = true
}

func (s *terminalSink) PoseChanged(def pose.Definition, round, set int) {
	if s.quiet {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLine()
	fmt.Printf(" ท่าที่ %d: %s  (เซ็ตที่ %d ครั้งที่ %d)\n", def.Index, output.StyleBold.Render(def.Name), set, round)
}

func (s *terminalSink) Success(def pose.Definition, round, set int) {
	if !s.quiet {
		s.mu.Lock()
		s.clearLine()
		fmt.Printf(" %s ท่า%sสำเร็จ!\n", output.StyleGood.Render("✓"), def.Name)
		s.mu.Unlock()
	}
	if s.onSuccess != nil {
		s.onSuccess()
	}
}

// finish terminates a dangling in-place frame line.
func (s *terminalSink) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inline {
		fmt.Println()
		s.inline = false
	}
}

// clearLine erases the current in-place frame before printing a full line.
func (s *terminalSink) clearLine() {
	if s.inline {
		fmt.Print("\r\033[K")
		s.inline = false
	}
}
