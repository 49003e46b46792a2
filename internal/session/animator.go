package session

import (
	"math"
	"time"
)

// AnimationCycle is the duration of one hold-timer decrement animation.
const AnimationCycle = time.Second

// FrameInterval is the refresh cadence for timer interpolation (~20 Hz).
const FrameInterval = 50 * time.Millisecond

// Frame is one interpolated presentation sample: the seconds value to
// display and the angular progress fraction in [0,1].
type Frame struct {
	Seconds  int
	Fraction float64
	Done     bool
}

// Animation interpolates the timer display between two progress
// fractions over a fixed wall-clock duration. It is a presentation
// derivative of the session state, never a source of truth. Starting a
// new interpolation cancels any in-flight one; Cancel is idempotent.
type Animation struct {
	fromFrac float64
	toFrac   float64
	fromSec  int
	toSec    int
	start    time.Time
	duration time.Duration
	active   bool
}

// Start begins a new interpolation, replacing any in-flight one.
func (a *Animation) Start(now time.Time, fromFrac, toFrac float64, fromSec, toSec int, d time.Duration) {
	a.fromFrac = clamp01(fromFrac)
	a.toFrac = clamp01(toFrac)
	a.fromSec = fromSec
	a.toSec = toSec
	a.start = now
	a.duration = d
	a.active = true
}

// Cancel stops the interpolation. Cancelling an inactive animation is
// a no-op.
func (a *Animation) Cancel() {
	a.active = false
}

// Active reports whether an interpolation is in flight.
func (a *Animation) Active() bool {
	return a.active
}

// Frame returns the interpolated frame for the given instant. The
// second return value is false when no animation is in flight. At
// t >= duration the frame carries the exact target fraction and the
// exact terminal seconds value, Done is set, and the animation ends.
func (a *Animation) Frame(now time.Time) (Frame, bool) {
	if !a.active {
		return Frame{}, false
	}

	t := 1.0
	if a.duration > 0 {
		t = clamp01(float64(now.Sub(a.start)) / float64(a.duration))
	}

	if t >= 1.0 {
		a.active = false
		return Frame{Seconds: a.toSec, Fraction: a.toFrac, Done: true}, true
	}

	frac := a.fromFrac + (a.toFrac-a.fromFrac)*t
	secs := interpSeconds(a.fromSec, a.toSec, t)
	return Frame{Seconds: secs, Fraction: clamp01(frac)}, true
}

// interpSeconds interpolates the displayed integer, rounding up so the
// display holds the old value for most of the transition and never
// overshoots either endpoint.
func interpSeconds(from, to int, t float64) int {
	v := float64(from) + (float64(to)-float64(from))*t
	s := int(math.Ceil(v))
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	if s < lo {
		s = lo
	}
	if s > hi {
		s = hi
	}
	return s
}

// holdFraction maps remaining seconds onto the elapsed-progress
// fraction of the hold arc.
func holdFraction(remaining, max int) float64 {
	if max <= 0 {
		return 0
	}
	return clamp01(float64(max-remaining) / float64(max))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
