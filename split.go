package keyfit

import (
	"math"
	"slices"
)

// AngleThreshold is the tolerance in degrees when comparing a key's in and
// out tangent angles in [FindTangentSplitExisting]. Keys whose tangents
// disagree by more than this are treated as broken and become split points.
const AngleThreshold = 12e-5

// KeyTangent describes the tangent state of one existing key, as reported
// by a [TangentSource].
type KeyTangent struct {
	Frame    float64
	InAngle  float64 // degrees
	OutAngle float64 // degrees
	// Stepped tangents hold the previous or next value flat and always
	// force a split.
	InStepped  bool
	OutStepped bool
}

// FindTangentSplitAuto predicts split indices from the sampled turning
// angles alone. It remaps the midrange and half-mean of the angles on a
// logarithmic scale to derive a threshold, and splits wherever an angle
// exceeds it. Relatively smooth curves, where the half-mean is within a
// tenth of the midrange, produce no splits.
func FindTangentSplitAuto(angles []float64) []int {
	if len(angles) == 0 {
		return nil
	}

	minAngle := math.Inf(1)
	maxAngle := math.Inf(-1)
	var sum float64
	for _, angle := range angles {
		minAngle = min(minAngle, angle)
		maxAngle = max(maxAngle, angle)
		sum += angle
	}
	if minAngle == 0 {
		minAngle = 0.00001
	}
	average := (minAngle + maxAngle) * 0.5
	mean := sum / float64(len(angles)) * 0.5

	// If the curve is relatively smooth don't split. This also guards the
	// threshold below against a zero log range when all angles are equal.
	if mean*10 > average {
		return nil
	}

	threshold := (math.Log(average) - math.Log(mean)) /
		(math.Log(maxAngle) - math.Log(minAngle)) * average

	var splits []int
	for i, angle := range angles {
		if angle > threshold {
			splits = append(splits, i+1)
		}
	}
	return splits
}

// FindTangentSplitThreshold returns a split index for every sampled turning
// angle that exceeds the given threshold in degrees.
func FindTangentSplitThreshold(angles []float64, threshold float64) []int {
	var splits []int
	for i, angle := range angles {
		if angle > threshold {
			splits = append(splits, i+1)
		}
	}
	return splits
}

// FindTangentSplitExisting returns a split at every existing key whose
// tangents are not unified: stepped on either side, or with in and out
// angles that differ by more than [AngleThreshold]. Each key is mapped to
// the index of the closest sample in a range sampled from start at the
// given step.
func FindTangentSplitExisting(tangents []KeyTangent, start, step float64) []int {
	var splits []int
	for _, kt := range tangents {
		index := int((kt.Frame - start) / step)
		switch {
		case math.Abs(kt.InAngle-kt.OutAngle) > AngleThreshold:
			splits = append(splits, index)
		case kt.InStepped || kt.OutStepped:
			splits = append(splits, index)
		}
	}
	return splits
}

// SplitPoints splits points into contiguous segments at the given indices.
// Neighboring segments share their boundary point, so each segment can be
// fit independently while the reassembled keyframes still join up. Indices
// outside the valid range are ignored; without any valid split index the
// input is returned as a single segment.
func SplitPoints(points []Point, splits []int) [][]Point {
	bounds := []int{0, len(points)}
	for _, s := range splits {
		if s > 0 && s < len(points) {
			bounds = append(bounds, s)
		}
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	segments := make([][]Point, 0, len(bounds)-1)
	for k := 0; k+1 < len(bounds); k++ {
		a, b := bounds[k], bounds[k+1]
		segments = append(segments, points[a:min(b+1, len(points))])
	}
	return segments
}
