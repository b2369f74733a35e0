// Package keyfit reduces densely sampled 2D animation curves to a minimal
// sequence of cubic Bézier keyframes.
//
// # Fitting
//
// The core of the package is [FitBezier], an iterative least-squares cubic
// Bézier fitter. Given an ordered sequence of samples and a maximum error, it
// produces piecewise cubic keyframes (anchor points with tangent handles)
// that stay within tolerance, recursively subdividing at the point of
// maximum deviation where a single cubic cannot. The algorithm is Philip J.
// Schneider's from Graphics Gems, ["An Algorithm for Automatically Fitting
// Digitized Curves"], by way of the curve-fitting code in [Paper.js]: a
// least-squares solve for the two control-point distances, Newton-Raphson
// reparameterization between iterations, chord-length parameterization, and
// the Wu/Barsky one-third-chord heuristic as the degenerate fallback.
//
// [Keyframe] is the unit of output: an anchor [Point] plus optional in/out
// handle vectors (offsets from the anchor). [Segments] reconstructs the
// fitted piecewise curve as [CubicBez] values.
//
// # Reduction
//
// On top of the fitter sits [Reduce], which implements the full keyframe
// reduction workflow: sample an animation curve through a [Source] at a
// fixed step, optionally pre-split the samples where tangents break (see
// [FindTangentSplitAuto], [FindTangentSplitThreshold], and
// [FindTangentSplitExisting]), fit each contiguous segment independently,
// and hand the result to a [Sink] when it actually reduces the key count.
//
// Fitting is purely sequential; separate curves can be fit concurrently, as
// each call to [FitBezier] is independent.
//
// ["An Algorithm for Automatically Fitting Digitized Curves"]: https://dl.acm.org/doi/10.5555/90767.90941
// [Paper.js]: http://paperjs.org/
package keyfit
