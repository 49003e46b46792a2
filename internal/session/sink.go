package session

import "github.com/kanit-labs/fingerfit/internal/pose"

// Sink receives presentation updates from the scheduling loop. Calls
// are one-way and fire-and-forget; implementations must not block the
// loop for long.
type Sink interface {
	// TimerFrame reports an interpolated hold-timer frame.
	TimerFrame(seconds int, fraction float64)

	// CountdownFrame reports an interpolated warmup-countdown frame.
	CountdownFrame(seconds int, fraction float64)

	// PoseChanged reports the newly active pose and counters.
	PoseChanged(def pose.Definition, round, set int)

	// Success reports a completed hold, with the counters at success
	// time.
	Success(def pose.Definition, round, set int)
}

// NopSink discards all updates.
type NopSink struct{}

func (NopSink) TimerFrame(int, float64)               {}
func (NopSink) CountdownFrame(int, float64)           {}
func (NopSink) PoseChanged(pose.Definition, int, int) {}
func (NopSink) Success(pose.Definition, int, int)     {}
