package keyfit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFloatRange(t *testing.T) {
	diff(t, []float64{0, 1, 2, 3, 4}, FloatRange(0, 5, 1))
	diff(t, []float64{0, 0.25, 0.5, 0.75}, FloatRange(0, 1, 0.25))
	diff(t, []float64{10, 12.5}, FloatRange(10, 15, 2.5))

	if got := FloatRange(2, 2, 1); got != nil {
		t.Errorf("got %v for an empty range, want nil", got)
	}
	if got := FloatRange(0, 5, 0); got != nil {
		t.Errorf("got %v for a zero step, want nil", got)
	}
}

func TestFloatRangeNoDrift(t *testing.T) {
	// 0.1 is not representable in binary; accumulating it would
	// eventually overshoot the end and drop the last value.
	got := FloatRange(0, 10, 0.1)
	if len(got) != 100 {
		t.Fatalf("got %d values, want 100", len(got))
	}
	if math.Abs(got[99]-9.9) > 1e-12 {
		t.Errorf("got final value %g, want 9.9", got[99])
	}
}

func TestSamplePoints(t *testing.T) {
	src := &testCurve{
		frames: []float64{0, 4},
		fn:     func(f float64) float64 { return f * f },
	}
	want := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 4), Pt(3, 9), Pt(4, 16)}
	diff(t, want, SamplePoints(src, 0, 5, 1))
}

func TestSampleAngles(t *testing.T) {
	// Colinear samples have no turning angle.
	line := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3), Pt(4, 4)}
	diff(t, []float64{0, 0}, SampleAngles(line), cmpopts.EquateApprox(0, 1e-5))

	// Two right-angle corners measure 90° each.
	corners := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(2, 1), Pt(3, 1)}
	diff(t, []float64{90, 90}, SampleAngles(corners), cmpopts.EquateApprox(0, 1e-12))
}

func TestSampleAnglesShortInput(t *testing.T) {
	if got := SampleAngles([]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}); got != nil {
		t.Errorf("got %v for a 3-point input, want nil", got)
	}
}
