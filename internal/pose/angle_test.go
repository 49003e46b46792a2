package pose

import (
	"math"
	"testing"
)

func TestAngle_KnownValues(t *testing.T) {
	cases := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"perpendicular", 1, 0, 0, 1, 90},
		{"opposite", 1, 0, -1, 0, 180},
		{"parallel", 2, 2, 5, 5, 0},
		{"45 degrees", 1, 0, 1, 1, 45},
	}
	for _, tc := range cases {
		got := Angle(tc.ax, tc.ay, tc.bx, tc.by)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: Angle = %.6f, want %.6f", tc.name, got, tc.want)
		}
	}
}

func TestAngle_DegenerateVectorsYieldZero(t *testing.T) {
	cases := [][4]float64{
		{0, 0, 1, 1},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		got := Angle(c[0], c[1], c[2], c[3])
		if got != 0.0 {
			t.Errorf("Angle(%v) = %v, want 0.0", c, got)
		}
		if math.IsNaN(got) {
			t.Errorf("Angle(%v) returned NaN", c)
		}
	}
}

func TestFingerAngle_StraightFinger(t *testing.T) {
	// Knuckle between wrist and tip on one line: tip and wrist vectors
	// point in opposite directions, so a straight finger reads 180°.
	wrist := Point{0, 0}
	knuckle := Point{0, 1}
	tip := Point{0, 2}
	got := FingerAngle(knuckle, tip, wrist)
	if math.Abs(got-180) > 1e-9 {
		t.Errorf("straight finger angle = %.4f, want 180", got)
	}
}

func TestFingerAngle_OverlappingLandmarks(t *testing.T) {
	p := Point{3, 4}
	if got := FingerAngle(p, p, Point{0, 0}); got != 0.0 {
		t.Errorf("overlapping knuckle/tip: angle = %v, want 0.0", got)
	}
}

func TestSampleFromLandmarks(t *testing.T) {
	pts := make([]Point, LandmarkCount)
	// Lay each finger out straight above its knuckle, wrist at origin.
	for f, j := range fingerJoints {
		x := float64(f)
		pts[j.mcp] = Point{x, 1}
		pts[j.tip] = Point{x, 2}
	}
	s := SampleFromLandmarks(pts)
	if !s.Valid {
		t.Fatal("full landmark set should yield a valid sample")
	}
	// Wrist at origin is not directly under the outer fingers, so only
	// the thumb column (x=0) is exactly straight.
	if math.Abs(s.Angles[Thumb]-180) > 1e-9 {
		t.Errorf("thumb angle = %.4f, want 180", s.Angles[Thumb])
	}
}

func TestSampleFromLandmarks_ShortSlice(t *testing.T) {
	if s := SampleFromLandmarks(make([]Point, 5)); s.Valid {
		t.Error("short landmark slice should yield an invalid sample")
	}
	if s := SampleFromLandmarks(nil); s.Valid {
		t.Error("nil landmarks should yield an invalid sample")
	}
}
