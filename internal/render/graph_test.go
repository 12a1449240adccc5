package render

import (
	"math"
	"testing"
)

func TestSampleXEdges(t *testing.T) {
	// Panel interior runs from column 1 to width-3; first and last window
	// positions must land there regardless of the panel content.
	if got := sampleX(0, 39); got != 1 {
		t.Errorf("sampleX(0) = %d, want 1", got)
	}
	if got := sampleX(GraphSamples-1, 39); got != 37 {
		t.Errorf("sampleX(last) = %d, want 37", got)
	}
}

func TestSampleXMonotonic(t *testing.T) {
	prev := -1
	for s := 0; s < GraphSamples; s++ {
		x := sampleX(s, 39)
		if x < prev {
			t.Fatalf("sampleX not monotonic at s=%d: %d < %d", s, x, prev)
		}
		prev = x
	}
}

func TestValueYCenter(t *testing.T) {
	// A value at the setpoint maps to the vertical center.
	if got := valueY(20.0, 20.0, GraphRange, 84); got != 42 {
		t.Errorf("valueY(setpoint) = %d, want 42", got)
	}
	// Top of the band maps to row zero, bottom to the panel height.
	if got := valueY(26.0, 20.0, GraphRange, 84); got != 0 {
		t.Errorf("valueY(top of band) = %d, want 0", got)
	}
	if got := valueY(14.0, 20.0, GraphRange, 84); got != 84 {
		t.Errorf("valueY(bottom of band) = %d, want 84", got)
	}
}

func TestClampYPinsToInterior(t *testing.T) {
	cases := []struct {
		name string
		y    int
		want int
	}{
		{"far above", -700, 1},
		{"just above", 0, 1},
		{"inside", 40, 40},
		{"just below", 83, 82},
		{"far below", 900, 82},
	}
	for _, tc := range cases {
		if got := clampY(tc.y, 84); got != tc.want {
			t.Errorf("%s: clampY(%d) = %d, want %d", tc.name, tc.y, got, tc.want)
		}
	}
}

func TestTracePointsGapBridgedByOneSegment(t *testing.T) {
	th := DefaultThresholds()
	history := []float64{20.0, math.NaN(), 20.2}

	pts := tracePoints(history, 20.0, th, 39, 84)
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2 (gap sample dropped)", len(pts))
	}
	if pts[0].X != sampleX(0, 39) {
		t.Errorf("first point x = %d, want %d", pts[0].X, sampleX(0, 39))
	}
	if pts[1].X != sampleX(2, 39) {
		t.Errorf("second point x = %d, want %d (third sample position)", pts[1].X, sampleX(2, 39))
	}
}

func TestTracePointsSanityBounds(t *testing.T) {
	th := DefaultThresholds()
	// Out-of-bound samples are skipped, never clamped; boundary values stay.
	history := []float64{-0.1, 0.0, 100.0, 100.1}

	pts := tracePoints(history, 20.0, th, 39, 84)
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2 (only 0 and 100 are sane)", len(pts))
	}
	if pts[0].X != sampleX(1, 39) || pts[1].X != sampleX(2, 39) {
		t.Errorf("points at x %d,%d; want positions of samples 1 and 2", pts[0].X, pts[1].X)
	}
}

func TestTracePointsDisplayClamp(t *testing.T) {
	th := DefaultThresholds()
	// 30C is a sane sample but far above the setpoint+6 band: it must pin
	// to the top interior row, not vanish or leave the panel.
	pts := tracePoints([]float64{30.0, 30.0}, 20.0, th, 39, 84)
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	for _, p := range pts {
		if p.Y != 1 {
			t.Errorf("overshoot plotted at y=%d, want top edge 1", p.Y)
		}
	}
}

func TestTracePointsFewerThanTwo(t *testing.T) {
	th := DefaultThresholds()
	pts := tracePoints([]float64{20.0, math.NaN(), 300.0}, 20.0, th, 39, 84)
	if len(pts) >= 2 {
		t.Fatalf("got %d points, want fewer than 2", len(pts))
	}
}

func TestTracePointsWindowsLastForty(t *testing.T) {
	th := DefaultThresholds()
	history := make([]float64, 50)
	for i := range history {
		history[i] = 20.0
	}
	pts := tracePoints(history, 20.0, th, 39, 84)
	if len(pts) != GraphSamples {
		t.Fatalf("got %d points, want %d", len(pts), GraphSamples)
	}
	if pts[0].X != 1 || pts[len(pts)-1].X != 37 {
		t.Errorf("window spans x %d..%d, want 1..37", pts[0].X, pts[len(pts)-1].X)
	}
}

func TestLastNShorterThanWindow(t *testing.T) {
	s := []bool{true, false, true}
	if got := lastN(s, 40); len(got) != 3 {
		t.Errorf("lastN shortened a small slice to %d", len(got))
	}
}
