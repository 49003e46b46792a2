// Package watcher provides background monitoring of the fingerfit history
// log, re-aggregating daily progress whenever the file changes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kanit-labs/fingerfit/internal/history"
)

// DefaultInterval is the fallback polling interval used when filesystem
// notifications are unavailable or events are missed.
const DefaultInterval = 5 * time.Second

// debounceWindow batches rapid successive writes into one refresh.
const debounceWindow = 250 * time.Millisecond

// Update carries a freshly aggregated view of the history log.
type Update struct {
	Entries []history.Entry
	Time    time.Time
}

// Watcher monitors the history log file and emits an Update whenever the
// aggregated view changes.
type Watcher struct {
	logPath  string
	interval time.Duration
	updateFn func(Update)

	lastCount int // line count at the previous refresh
}

// New creates a Watcher for the given history log path. updateFn is called
// from the watch goroutine, once for the initial state and again after each
// change.
func New(logPath string, interval time.Duration, updateFn func(Update)) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		logPath:   logPath,
		interval:  interval,
		updateFn:  updateFn,
		lastCount: -1,
	}
}

// Run starts the watch loop. It emits an initial update, then refreshes on
// filesystem events (debounced) and on the fallback interval. Blocks until
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.refresh(true); err != nil {
		return fmt.Errorf("initial read: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fs watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	// Watch the parent directory: the log file itself may not exist yet,
	// and editors often replace files rather than writing in place.
	if err := os.MkdirAll(filepath.Dir(w.logPath), 0o755); err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.logPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.logPath), err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.logPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceWindow)
				debounceC = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceWindow)
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			if err := w.refresh(false); err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			// Notification errors are non-fatal; the ticker still covers us.
			_ = err

		case <-ticker.C:
			if err := w.refresh(false); err != nil {
				return err
			}
		}
	}
}

// refresh re-reads the log and emits an update when the content changed.
// force emits even when nothing changed, used for the initial state.
func (w *Watcher) refresh(force bool) error {
	lines, err := history.ReadLines(w.logPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", w.logPath, err)
	}
	if !force && len(lines) == w.lastCount {
		return nil
	}
	w.lastCount = len(lines)

	if w.updateFn != nil {
		w.updateFn(Update{
			Entries: history.Aggregate(lines),
			Time:    time.Now(),
		})
	}
	return nil
}
