// Package history owns the exercise event log: the append-only line
// format written on every pose success, and the aggregation that turns
// the raw log into per-day completion metrics with trend indicators.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimestampLayout is the bracketed timestamp at the head of every log
// line. Consumers only require this prefix to parse; the rest of the
// line is free-form.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatEvent renders one success event as a log line (without the
// trailing newline). Set and round are the counters at success time,
// before they advance for the next pose.
func FormatEvent(at time.Time, set, round int, poseName string) string {
	return fmt.Sprintf("[%s] เซ็ตที่ %d ครั้งที่ %d : ท่า%sสำเร็จ!",
		at.Format(TimestampLayout), set, round, poseName)
}

// ParseTimestamp extracts the leading bracketed timestamp from a log
// line. Returns false for lines that do not carry one.
func ParseTimestamp(line string) (time.Time, bool) {
	if len(line) < len(TimestampLayout)+2 || line[0] != '[' {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(TimestampLayout, line[1:len(TimestampLayout)+1], time.Local)
	if err != nil || line[len(TimestampLayout)+1] != ']' {
		return time.Time{}, false
	}
	return ts, true
}

// Logger appends success events to a flat log file. Writes are
// best-effort: an I/O error is returned to the caller but the session
// state machine advances regardless.
type Logger struct {
	path string
}

// NewLogger creates a Logger writing to the given path. The parent
// directory is created on first append.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes one event line to the log.
func (l *Logger) Append(at time.Time, set, round int, poseName string) error {
	return l.AppendLine(FormatEvent(at, set, round, poseName))
}

// AppendLine writes a raw line to the log.
func (l *Logger) AppendLine(line string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("appending to log: %w", err)
	}
	return nil
}

// ReadLines returns all lines from the log file. A missing file is not
// an error; it reads as an empty history.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return lines, nil
}

// Tail returns the last n lines, mirroring the recent-history view.
func Tail(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
