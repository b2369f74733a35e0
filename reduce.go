package keyfit

import (
	"errors"
	"math"
	"time"
)

// Sink consumes the fitted keyframes of a reduction, typically by writing
// them back to the scene's animation curve: the anchor becomes a key at
// (time, value) and the handles translate to tangent angles and weights via
// [Keyframe.InTangent] and [Keyframe.OutTangent].
type Sink interface {
	Apply(keyframes []Keyframe, weightedTangents bool) error
}

// TangentSource is implemented by sources that can report the tangent state
// of their existing keys. [Reduce] uses it for Options.SplitExisting; a
// plain [Source] simply skips that heuristic.
type TangentSource interface {
	KeyTangents(start, end float64) []KeyTangent
}

// Options controls a reduction. The zero values of Error, Step, and
// SplitThresholdValue mean "use the default"; use [DefaultOptions] for a
// fully populated baseline.
type Options struct {
	// Error is the maximum fitting error. Default 1.
	Error float64
	// Step is the sampling step in frames. Default 1.
	Step float64
	// WeightedTangents lets the fitter solve the two handle lengths of
	// each cubic independently.
	WeightedTangents bool

	// SplitAuto splits the samples with the automatic log-scale angle
	// heuristic before fitting.
	SplitAuto bool
	// SplitExisting splits at existing keys with broken or stepped
	// tangents. Requires the source to implement [TangentSource].
	SplitExisting bool
	// SplitThreshold splits wherever the sampled turning angle exceeds
	// SplitThresholdValue degrees. Default threshold 15.
	SplitThreshold      bool
	SplitThresholdValue float64
}

// DefaultOptions returns the baseline reduction options: error 1, step 1,
// weighted tangents, no pre-splitting.
func DefaultOptions() Options {
	return Options{
		Error:               1,
		Step:                1,
		WeightedTangents:    true,
		SplitThresholdValue: 15,
	}
}

// ErrNoKeys is returned by [Reduce] when the source reports no keys.
var ErrNoKeys = errors.New("keyfit: source has no keys")

// Reduce samples the source curve, fits it with [FitBezier], and applies
// the fitted keyframes through the sink. The sample range runs from the
// floor of the first key to one past the ceiling of the last, so the curve
// is always sampled on whole frames regardless of where its keys sit.
//
// Before fitting, the samples are split into contiguous segments at the
// indices produced by the heuristics enabled in opts; segments share their
// boundary points and are fit independently, which preserves hard corners
// that a single smooth cubic would round off.
//
// The sink is only invoked when fitting actually reduced the key count.
// Reduce returns the reduction rate as a percentage of the original keys,
// or 0 if the curve could not be reduced.
func Reduce(src Source, sink Sink, opts Options) (float64, error) {
	begin := time.Now()
	if opts.Error <= 0 {
		opts.Error = 1
	}
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.SplitThresholdValue <= 0 {
		opts.SplitThresholdValue = 15
	}

	original := src.Frames()
	if len(original) == 0 {
		return 0, ErrNoKeys
	}

	start := math.Floor(original[0])
	end := math.Ceil(original[len(original)-1]) + 1

	points := SamplePoints(src, start, end, opts.Step)
	angles := SampleAngles(points)

	var splits []int
	if opts.SplitAuto {
		splits = append(splits, FindTangentSplitAuto(angles)...)
	}
	if opts.SplitExisting {
		if ts, ok := src.(TangentSource); ok {
			splits = append(splits, FindTangentSplitExisting(ts.KeyTangents(start, end), start, opts.Step)...)
		}
	}
	if opts.SplitThreshold {
		splits = append(splits, FindTangentSplitThreshold(angles, opts.SplitThresholdValue)...)
	}

	var keyframes []Keyframe
	for _, segment := range SplitPoints(points, splits) {
		fitted, err := FitBezier(segment, opts.Error, opts.WeightedTangents)
		if err != nil {
			return 0, err
		}
		keyframes = append(keyframes, fitted...)
	}

	if len(keyframes) >= len(original) {
		logger().Info("unable to reduce curve",
			"keys", len(original),
			"fitted", len(keyframes),
			"elapsed", time.Since(begin))
		return 0, nil
	}

	if err := sink.Apply(keyframes, opts.WeightedTangents); err != nil {
		return 0, err
	}

	rate := 100 - float64(len(keyframes))/float64(len(original))*100
	logger().Info("reduced curve",
		"keys", len(original),
		"fitted", len(keyframes),
		"rate", rate,
		"elapsed", time.Since(begin))
	return rate, nil
}
