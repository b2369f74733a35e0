package keyfit

import "math"

// Source supplies samples of an animation curve. It is the producer side of
// [Reduce]: implementations typically wrap a scene's animation curve node.
type Source interface {
	// Frames returns the times of the curve's existing keys in ascending
	// order.
	Frames() []float64
	// ValueAt evaluates the curve at the given time.
	ValueAt(frame float64) float64
}

// FloatRange returns start, start+step, ... up to but excluding end. Values
// are computed from the index rather than accumulated, so the step does not
// drift over long ranges.
func FloatRange(start, end, step float64) []float64 {
	if step <= 0 || end <= start {
		return nil
	}
	var values []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= end {
			return values
		}
		values = append(values, v)
	}
}

// SamplePoints samples src on [start, end) at the given step, pairing each
// frame with the curve value at that frame.
func SamplePoints(src Source, start, end, step float64) []Point {
	frames := FloatRange(start, end, step)
	points := make([]Point, len(frames))
	for i, frame := range frames {
		points[i] = Pt(frame, src.ValueAt(frame))
	}
	return points
}

// SampleAngles returns the turning angle in degrees at interior samples:
// 180° minus the angle between the edges to a sample's two neighbors.
// Colinear samples measure 0 and a hard corner approaches 180. The angle at
// points[i] lands at index i-1, which is the indexing the tangent-split
// heuristics expect.
func SampleAngles(points []Point) []float64 {
	var angles []float64
	for i := 1; i < len(points)-2; i++ {
		v1 := points[i-1].Sub(points[i])
		v2 := points[i+1].Sub(points[i])
		angles = append(angles, (math.Pi-v1.AngleBetween(v2))*180/math.Pi)
	}
	return angles
}
