// Package pose defines the exercise pose catalog and the angle-based
// classifier that decides whether a hand sample matches a target pose.
package pose

// FingerCount is the number of tracked fingers per hand.
const FingerCount = 5

// Finger indexes into per-finger angle arrays. The order is fixed and
// shared by pose definitions, samples, and the classifier.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
)

// Range is an inclusive angle interval in degrees.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether the angle lies within the range, inclusive
// on both ends.
func (r Range) Contains(angle float64) bool {
	return angle >= r.Min && angle <= r.Max
}

// Definition describes one target pose: a display name and one angle
// range per finger. Definitions are immutable after catalog load.
type Definition struct {
	Index  int
	Name   string
	Ranges [FingerCount]Range
}

// Sample holds one frame of per-finger angles from the detector.
// Valid is false when no hand was detected in the frame; an invalid
// sample never matches any pose.
type Sample struct {
	Angles [FingerCount]float64
	Valid  bool
}
