package keyfit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezEval(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))

	const n = 10
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		if got := math.Abs(p.Y - p.X*p.X); got > 1e-15 {
			t.Errorf("at t=%g: point %v deviates from y=x² by %g", ts, p, got)
		}
	}
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestQuadBezDeriv(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(0.5, 1), Pt(1, 0)}
	deriv := q.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p := q.Eval(ts)
		p1 := q.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*4 {
			t.Errorf("got difference of %g, want at most %g", l, delta*4)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	c0, c1 := c.Subdivide()

	diff(t, c.P0, c0.P0)
	diff(t, c.P3, c1.P3)
	diff(t, c0.P3, c1.P0)
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, c.Eval(0.25), c0.Eval(0.5), approx)
	diff(t, c.Eval(0.75), c1.Eval(0.5), approx)
}

func TestSegments(t *testing.T) {
	out0 := Vec(1, 1)
	in1 := Vec(-1, 1)
	out1 := Vec(1, -1)
	in2 := Vec(-1, -1)
	keyframes := []Keyframe{
		{Point: Pt(0, 0), OutHandle: &out0},
		{Point: Pt(3, 0), InHandle: &in1, OutHandle: &out1},
		{Point: Pt(6, 0), InHandle: &in2},
	}

	want := []CubicBez{
		{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)},
		{Pt(3, 0), Pt(4, -1), Pt(5, -1), Pt(6, 0)},
	}
	diff(t, want, Segments(keyframes))
}

func TestSegmentsMissingHandles(t *testing.T) {
	if got := Segments([]Keyframe{{Point: Pt(0, 0)}, {Point: Pt(1, 1)}}); got != nil {
		t.Errorf("got %v segments for unlinked keyframes, want none", got)
	}
	if got := Segments([]Keyframe{{Point: Pt(0, 0)}}); got != nil {
		t.Errorf("got %v segments for a single keyframe, want none", got)
	}
}
