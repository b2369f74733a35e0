package keyfit

// CubicBez is a cubic Bézier segment defined by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative curve, a quadratic Bézier whose
// control points are 3·(P[i+1]−P[i]).
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// QuadBez is a quadratic Bézier segment. The fitter uses it as the first
// derivative of a cubic during Newton-Raphson refinement.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at parameter t.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2)
	v := a.Add(b.Add(c.Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative curve, a line whose control points
// are 2·(P[i+1]−P[i]).
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Line is a line segment, the degree-1 Bézier.
type Line struct {
	P0 Point
	P1 Point
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Segments reconstructs the fitted piecewise curve from a keyframe
// sequence. Each pair of consecutive keyframes contributes one cubic whose
// interior control points are the anchors displaced by the out and in
// handles. Keyframes lacking the connecting handles (only possible at the
// outer boundary of a fit) contribute no segment.
func Segments(keyframes []Keyframe) []CubicBez {
	var segments []CubicBez
	for i := 1; i < len(keyframes); i++ {
		prev, next := keyframes[i-1], keyframes[i]
		if prev.OutHandle == nil || next.InHandle == nil {
			continue
		}
		segments = append(segments, CubicBez{
			prev.Point,
			prev.Point.Translate(*prev.OutHandle),
			next.Point.Translate(*next.InHandle),
			next.Point,
		})
	}
	return segments
}
