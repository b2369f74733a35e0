package keyfit

import (
	"errors"
	"math"
)

// epsilon is the near-zero threshold for the fitter's numerical
// comparisons. When comparing handle lengths it is scaled by the chord
// length of the region being fit.
const epsilon = 12e-11

// ErrDegenerateInput is returned by [FitBezier] when the input contains
// consecutive duplicate points. Endpoint tangents are normalized
// differences of neighboring samples, so duplicates would silently turn
// into NaN geometry; sampling at a fixed step, or splitting with
// [SplitPoints], never produces them.
var ErrDegenerateInput = errors.New("keyfit: consecutive duplicate points in input")

// FitBezier fits piecewise cubic Béziers to an ordered sequence of points,
// keeping the maximum euclidean deviation of every sample from the fitted
// curve below maxError. It returns one keyframe per curve boundary, in
// input order; consecutive keyframes are linked by their out and in
// handles. With weightedTangents the two handle lengths of each cubic are
// solved independently by least squares and refined over several
// iterations; without it they are fixed at one third of the chord length.
//
// An empty input produces an empty result and a single point produces a
// single handle-less keyframe. maxError must be positive.
func FitBezier(points []Point, maxError float64, weightedTangents bool) ([]Keyframe, error) {
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			return nil, ErrDegenerateInput
		}
	}
	f := &fitter{
		points:   points,
		maxError: maxError,
		weighted: weightedTangents,
	}
	return f.fit(), nil
}

// fitter holds the state of one fit: the immutable input, the tolerance,
// and the growing keyframe list. A fitter is used for a single call and
// never shared.
type fitter struct {
	points    []Point
	maxError  float64
	weighted  bool
	keyframes []Keyframe
}

func (f *fitter) fit() []Keyframe {
	n := len(f.points)
	if n == 0 {
		return nil
	}

	f.keyframes = append(f.keyframes, Keyframe{Point: f.points[0]})
	if n == 1 {
		return f.keyframes
	}

	// Endpoint tangents point inward along the first and last chords.
	tan1 := f.points[1].Sub(f.points[0]).Normalize()
	tan2 := f.points[n-2].Sub(f.points[n-1]).Normalize()
	f.fitCubic(0, n-1, tan1, tan2)
	return f.keyframes
}

// fitCubic fits the inclusive index range [first, last]. tan1 is the unit
// tangent at first pointing along the curve, tan2 the unit tangent at last
// pointing backward toward first.
func (f *fitter) fitCubic(first, last int, tan1, tan2 Vec2) {
	// Two-point region: place the handles at one third of the chord
	// (Wu/Barsky), no iteration needed.
	if last-first == 1 {
		pt1 := f.points[first]
		pt2 := f.points[last]
		dist := pt1.Distance(pt2) / 3
		f.addCurve(CubicBez{
			pt1,
			pt1.Translate(tan1.Mul(dist)),
			pt2.Translate(tan2.Mul(dist)),
			pt2,
		})
		return
	}

	u := f.chordLengthParameterize(first, last)
	errorThreshold := max(f.maxError, f.maxError*4)

	// Without weighted tangents generateBezier always uses the geometric
	// heuristic, so iterating cannot improve the fit.
	iterations := 1
	if f.weighted {
		iterations = 4
	}

	var maxIndex int
	for iter := 0; iter < iterations; iter++ {
		curve := f.generateBezier(first, last, u, tan1, tan2)

		var maxDist float64
		maxDist, maxIndex = f.findMaxError(first, last, curve, u)
		if maxDist < f.maxError {
			f.addCurve(curve)
			return
		}

		// Too far off for reparameterization to rescue.
		if maxDist >= errorThreshold {
			break
		}

		f.reparameterize(first, last, u, curve)
		errorThreshold = maxDist
	}

	// Fitting failed. Split at the point of maximum deviation, estimate the
	// tangent there by central difference, and fit both halves. maxIndex is
	// strictly interior, so both halves shrink and recursion terminates.
	tanCenter := f.points[maxIndex-1].Sub(f.points[maxIndex+1]).Normalize()
	f.fitCubic(first, maxIndex, tan1, tanCenter)
	f.fitCubic(maxIndex, last, tanCenter.Negate(), tan2)
}

// addCurve appends the end of curve as a new keyframe and wires the
// previous keyframe's out handle together with the new keyframe's in
// handle.
func (f *fitter) addCurve(curve CubicBez) {
	prev := &f.keyframes[len(f.keyframes)-1]
	out := curve.P1.Sub(curve.P0)
	prev.OutHandle = &out

	in := curve.P2.Sub(curve.P3)
	f.keyframes = append(f.keyframes, Keyframe{Point: curve.P3, InHandle: &in})
}

// generateBezier produces a candidate cubic for [first, last]. The
// endpoints are fixed at the region's first and last points; the interior
// control points lie along tan1 and tan2 at distances alpha1 and alpha2,
// solved by least squares in weighted mode and fixed at a third of the
// chord otherwise.
func (f *fitter) generateBezier(first, last int, u []float64, tan1, tan2 Vec2) CubicBez {
	pt1 := f.points[first]
	pt2 := f.points[last]

	var alpha1, alpha2 float64
	if f.weighted {
		// Build the 2×2 normal equations from the cubic Bernstein basis
		// and solve with Cramer's rule.
		var c00, c01, c11 float64
		var x0, x1 float64
		for i := 0; i < last-first+1; i++ {
			t := 1 - u[i]
			b := 3 * u[i] * t
			b0 := t * t * t
			b1 := b * t
			b2 := b * u[i]
			b3 := u[i] * u[i] * u[i]
			a1 := tan1.Mul(b1)
			a2 := tan2.Mul(b2)
			tmp := Vec2(f.points[first+i]).
				Sub(Vec2(pt1).Mul(b0 + b1)).
				Sub(Vec2(pt2).Mul(b2 + b3))
			c00 += a1.Dot(a1)
			c01 += a1.Dot(a2)
			c11 += a2.Dot(a2)
			x0 += a1.Dot(tmp)
			x1 += a2.Dot(tmp)
		}

		if det := c00*c11 - c01*c01; math.Abs(det) > epsilon {
			alpha1 = (x0*c11 - x1*c01) / det
			alpha2 = (c00*x1 - c01*x0) / det
		} else {
			// The system is under-determined; assume alpha1 == alpha2 and
			// solve whichever row is not degenerate.
			c0 := c00 + c01
			c1 := c01 + c11
			switch {
			case math.Abs(c0) > epsilon:
				alpha1 = x0 / c0
				alpha2 = alpha1
			case math.Abs(c1) > epsilon:
				alpha1 = x1 / c1
				alpha2 = alpha1
			}
		}
	}

	// Near-zero or negative alphas would place coincident control points,
	// which divide by zero in the Newton-Raphson step. Fall back to the
	// Wu/Barsky heuristic and let subdivision pick up the slack.
	segLength := pt2.Distance(pt1)
	fallback := alpha1 < epsilon*segLength || alpha2 < epsilon*segLength
	if !fallback {
		// The solved control points must be in the right order when
		// projected onto the chord through pt1 and pt2.
		line := pt2.Sub(pt1)
		if tan1.Mul(alpha1).Dot(line)-tan2.Mul(alpha2).Dot(line) > segLength*segLength {
			fallback = true
		}
	}
	if fallback {
		alpha1 = segLength / 3
		alpha2 = alpha1
	}

	return CubicBez{
		pt1,
		pt1.Translate(tan1.Mul(alpha1)),
		pt2.Translate(tan2.Mul(alpha2)),
		pt2,
	}
}

// reparameterize refines the parameterization of [first, last] against the
// candidate curve with one Newton-Raphson step per point.
func (f *fitter) reparameterize(first, last int, u []float64, curve CubicBez) {
	for i := first; i <= last; i++ {
		u[i-first] = findRoot(curve, f.points[i], u[i-first])
	}
}

// findRoot improves the parameter u of point on curve by a single
// Newton-Raphson step on the squared-distance function. If the denominator
// is nearly zero the stale parameter is kept.
func findRoot(curve CubicBez, point Point, u float64) float64 {
	d := curve.Differentiate()
	dd := d.Differentiate()

	pt := curve.Eval(u)
	pt1 := Vec2(d.Eval(u))
	pt2 := Vec2(dd.Eval(u))
	diff := pt.Sub(point)

	df := pt1.Dot(pt1) + diff.Dot(pt2)
	if math.Abs(df) < epsilon {
		return u
	}
	return u - diff.Dot(pt1)/df
}

// chordLengthParameterize assigns each point of [first, last] a parameter
// in [0, 1] proportional to its cumulative distance along the polyline.
func (f *fitter) chordLengthParameterize(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.points[i].Distance(f.points[i-1])
	}
	m := last - first
	for i := 1; i <= m; i++ {
		u[i] /= u[m]
	}
	return u
}

// findMaxError returns the maximum distance from the interior points of
// [first, last] to the curve at their current parameters, and the index at
// which it occurs. The index defaults to the midpoint of the range.
func (f *fitter) findMaxError(first, last int, curve CubicBez, u []float64) (float64, int) {
	var maxDist float64
	maxIndex := first + (last-first)/2
	for i := first + 1; i < last; i++ {
		p := curve.Eval(u[i-first])
		if dist := p.Sub(f.points[i]).Hypot(); dist >= maxDist {
			maxDist = dist
			maxIndex = i
		}
	}
	return maxDist, maxIndex
}
