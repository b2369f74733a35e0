package keyfit

import (
	"math"
	"testing"
)

func TestKeyframeTangents(t *testing.T) {
	in := Vec(-1, 1)
	out := Vec(1, 1)
	k := Keyframe{Point: Pt(0, 0), InHandle: &in, OutHandle: &out}

	angle, weight, ok := k.InTangent()
	if !ok {
		t.Fatal("expected an in tangent")
	}
	if math.Abs(angle-(-45)) > 1e-12 {
		t.Errorf("got in angle %g, want -45", angle)
	}
	if math.Abs(weight-math.Sqrt2) > 1e-12 {
		t.Errorf("got in weight %g, want √2", weight)
	}

	angle, weight, ok = k.OutTangent()
	if !ok {
		t.Fatal("expected an out tangent")
	}
	if math.Abs(angle-45) > 1e-12 {
		t.Errorf("got out angle %g, want 45", angle)
	}
	if math.Abs(weight-math.Sqrt2) > 1e-12 {
		t.Errorf("got out weight %g, want √2", weight)
	}
}

func TestKeyframeTangentsAbsent(t *testing.T) {
	k := Keyframe{Point: Pt(5, 5)}
	if _, _, ok := k.InTangent(); ok {
		t.Error("expected no in tangent")
	}
	if _, _, ok := k.OutTangent(); ok {
		t.Error("expected no out tangent")
	}
}

func TestKeyframeFlatTangents(t *testing.T) {
	// Flat handles on both sides read as 0° in either convention.
	in := Vec(-2, 0)
	out := Vec(2, 0)
	k := Keyframe{Point: Pt(0, 0), InHandle: &in, OutHandle: &out}

	if angle, weight, _ := k.InTangent(); angle != 0 || weight != 2 {
		t.Errorf("got in tangent (%g, %g), want (0, 2)", angle, weight)
	}
	if angle, weight, _ := k.OutTangent(); angle != 0 || weight != 2 {
		t.Errorf("got out tangent (%g, %g), want (0, 2)", angle, weight)
	}
}
