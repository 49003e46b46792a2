package session

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/kanit-labs/fingerfit/internal/pose"
)

// Source produces hand samples at roughly sensor rate. A source that
// stops producing is silence, not an error: the session stalls safely
// without match progress.
type Source interface {
	// Next blocks until the next sample is available. It returns
	// ok=false when the source is exhausted or ctx is cancelled.
	Next(ctx context.Context) (pose.Sample, bool)
}

// DefaultSampleInterval approximates a 50 Hz detector.
const DefaultSampleInterval = 20 * time.Millisecond

// ScriptedSource simulates a user who always holds the requested pose:
// each sample sits at the midpoint of the active pose's ranges. The
// active pose is read through the provided func, typically the
// engine's atomically-published current pose.
type ScriptedSource struct {
	Active   func() pose.Definition
	Interval time.Duration
}

// Next emits one midpoint sample per interval.
func (s *ScriptedSource) Next(ctx context.Context) (pose.Sample, bool) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	select {
	case <-ctx.Done():
		return pose.Sample{}, false
	case <-time.After(interval):
	}

	def := s.Active()
	var sample pose.Sample
	for f, r := range def.Ranges {
		sample.Angles[f] = (r.Min + r.Max) / 2
	}
	sample.Valid = true
	return sample, true
}

// replayRecord is one line of a JSON-lines angle recording.
type replayRecord struct {
	Angles []float64 `json:"angles"`
	Valid  *bool     `json:"valid,omitempty"`
}

// ReplaySource plays back a JSON-lines recording of angle samples, one
// record per line, paced at a fixed interval. Malformed lines replay
// as invalid samples (non-matches), mirroring the detector contract.
type ReplaySource struct {
	Interval time.Duration

	scanner *bufio.Scanner
}

// NewReplaySource creates a ReplaySource reading records from r.
func NewReplaySource(r io.Reader, interval time.Duration) *ReplaySource {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	return &ReplaySource{
		Interval: interval,
		scanner:  bufio.NewScanner(r),
	}
}

// Next returns the next recorded sample, or ok=false at end of input.
func (s *ReplaySource) Next(ctx context.Context) (pose.Sample, bool) {
	if !s.scanner.Scan() {
		return pose.Sample{}, false
	}

	select {
	case <-ctx.Done():
		return pose.Sample{}, false
	case <-time.After(s.Interval):
	}

	var rec replayRecord
	if err := json.Unmarshal(s.scanner.Bytes(), &rec); err != nil || len(rec.Angles) < pose.FingerCount {
		return pose.Sample{}, true
	}

	var sample pose.Sample
	copy(sample.Angles[:], rec.Angles)
	sample.Valid = rec.Valid == nil || *rec.Valid
	return sample, true
}
