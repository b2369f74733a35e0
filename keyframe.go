package keyfit

import (
	"fmt"
	"math"
)

// Keyframe is a fitted anchor point with optional tangent handles. The
// handles are offsets from the anchor: anchor + handle is the position of
// the corresponding Bézier control point. A nil handle means the tangent is
// absent, which is distinct from a zero-length handle; the first keyframe
// of a fit never has an InHandle and the last never has an OutHandle.
type Keyframe struct {
	Point     Point
	InHandle  *Vec2
	OutHandle *Vec2
}

func (k Keyframe) String() string {
	format := func(h *Vec2) string {
		if h == nil {
			return "<nil>"
		}
		return h.String()
	}
	return fmt.Sprintf("Keyframe{%s in: %s out: %s}", k.Point, format(k.InHandle), format(k.OutHandle))
}

// InTangent returns the incoming tangent as an angle in degrees and a
// weight (the handle length), the form in which animation packages store
// weighted tangents. The angle is measured from ⟨-1, 0⟩, so a flat incoming
// tangent is 0°. Reports false if the keyframe has no in handle.
func (k Keyframe) InTangent() (angle, weight float64, ok bool) {
	if k.InHandle == nil {
		return 0, 0, false
	}
	angle = Vec(-1, 0).SignedAngle(*k.InHandle) * 180 / math.Pi
	return angle, k.InHandle.Hypot(), true
}

// OutTangent returns the outgoing tangent as an angle in degrees, measured
// from ⟨1, 0⟩, and a weight. Reports false if the keyframe has no out
// handle.
func (k Keyframe) OutTangent() (angle, weight float64, ok bool) {
	if k.OutHandle == nil {
		return 0, 0, false
	}
	angle = Vec(1, 0).SignedAngle(*k.OutHandle) * 180 / math.Pi
	return angle, k.OutHandle.Hypot(), true
}
