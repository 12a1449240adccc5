package render

import (
	"image"
	"math"

	"github.com/heatwell/zonedisplay/internal/state"
)

// GraphSamples is the sample window every graph renders.
const GraphSamples = state.HistorySamples

// sampleX maps sample index s within the last-40 window onto a panel of
// width w: the first sample lands one pixel in from the left edge, the
// last near the right edge. The divisor is fixed at the window size, so a
// short history still stretches across the full width.
func sampleX(s, w int) int {
	return 1 + s*(w-3)/(GraphSamples-1)
}

// valueY maps value v onto a panel of height h whose vertical range is
// [setpoint-rangeC, setpoint+rangeC], y growing downward. The result may
// lie outside [0, h); callers clamp or clip as their element requires.
func valueY(v, setpoint, rangeC float64, h int) int {
	return int((setpoint + rangeC - v) / (2 * rangeC) * float64(h))
}

// clampY pulls a plotted row into the panel interior, one pixel inside
// the outline. Out-of-band values pin to the nearest edge rather than
// disappearing, preserving trace continuity.
func clampY(y, h int) int {
	if y < 1 {
		return 1
	}
	if y > h-2 {
		return h - 2
	}
	return y
}

// lastN returns at most the n most recent samples.
func lastN[T any](s []T, n int) []T {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// tracePoints builds the history polyline for a w-by-h panel, in
// panel-relative coordinates. Samples that are NaN or outside the sanity
// bounds are dropped entirely; their valid neighbors connect directly, so
// a bad sample shows as a gap bridged by one segment, never as a zero.
func tracePoints(history []float64, setpoint float64, th Thresholds, w, h int) []image.Point {
	pts := make([]image.Point, 0, GraphSamples)
	for s, v := range lastN(history, GraphSamples) {
		if math.IsNaN(v) || v < th.HistoryMin || v > th.HistoryMax {
			continue
		}
		pts = append(pts, image.Point{
			X: sampleX(s, w),
			Y: clampY(valueY(v, setpoint, GraphRange, h), h),
		})
	}
	return pts
}
