package pose

import "math"

// Point is a 2-D landmark position in image coordinates.
type Point struct {
	X float64
	Y float64
}

// Landmark indexes into a 21-point hand landmark set, as produced by
// common hand detectors. Only the wrist, the knuckles (MCP joints) and
// the fingertips are used here.
const (
	LandmarkWrist     = 0
	LandmarkThumbMCP  = 2
	LandmarkThumbTip  = 4
	LandmarkIndexMCP  = 5
	LandmarkIndexTip  = 8
	LandmarkMiddleMCP = 9
	LandmarkMiddleTip = 12
	LandmarkRingMCP   = 13
	LandmarkRingTip   = 16
	LandmarkPinkyMCP  = 17
	LandmarkPinkyTip  = 20

	// LandmarkCount is the full landmark set size.
	LandmarkCount = 21
)

// fingerJoints pairs each finger with its knuckle and tip landmarks,
// in the fixed finger order.
var fingerJoints = [FingerCount]struct{ mcp, tip int }{
	{LandmarkThumbMCP, LandmarkThumbTip},
	{LandmarkIndexMCP, LandmarkIndexTip},
	{LandmarkMiddleMCP, LandmarkMiddleTip},
	{LandmarkRingMCP, LandmarkRingTip},
	{LandmarkPinkyMCP, LandmarkPinkyTip},
}

// Angle returns the angle in degrees between two vectors. A zero-length
// vector yields 0.0 rather than an error: the geometry is degenerate
// (overlapping landmarks), not invalid input.
func Angle(ax, ay, bx, by float64) float64 {
	na := math.Hypot(ax, ay)
	nb := math.Hypot(bx, by)
	if na == 0 || nb == 0 {
		return 0.0
	}
	cos := (ax*bx + ay*by) / (na * nb)
	cos = math.Max(-1.0, math.Min(1.0, cos))
	return cos2deg(cos)
}

func cos2deg(cos float64) float64 {
	return math.Acos(cos) * 180.0 / math.Pi
}

// FingerAngle measures how far a finger is bent: the angle at the
// knuckle between the knuckle→tip vector and the knuckle→wrist vector.
// A straight finger reads near 180°, a fully curled one near 0°.
func FingerAngle(knuckle, tip, wrist Point) float64 {
	return Angle(tip.X-knuckle.X, tip.Y-knuckle.Y, wrist.X-knuckle.X, wrist.Y-knuckle.Y)
}

// SampleFromLandmarks builds a Sample from a full hand landmark set.
// A short or nil landmark slice yields an invalid sample.
func SampleFromLandmarks(pts []Point) Sample {
	if len(pts) < LandmarkCount {
		return Sample{}
	}
	var s Sample
	wrist := pts[LandmarkWrist]
	for f, j := range fingerJoints {
		s.Angles[f] = FingerAngle(pts[j.mcp], pts[j.tip], wrist)
	}
	s.Valid = true
	return s
}
