// Package fastrsqrt provides the fast inverse square root approximation and
// fast normalization of 3D vectors built on it.
//
// The kernel reinterprets the bits of a float32 as a uint32, subtracts half of
// it from the magic constant 0x5f3759df and refines the resulting estimate with
// Newton-Raphson steps.
//
// # Raw and Checked Entry Points
//
// Approximate is the raw kernel. It accepts any bit pattern and never panics,
// but only sign-positive normal inputs produce meaningful results.
//
// PositiveFloat carries that precondition in its type. The only validating
// constructor is NewPositiveFloat, so FastRsqrt never has to check again:
//
//	x, ok := fastrsqrt.NewPositiveFloat(0.15625)
//	if !ok {
//	    // negative, zero, subnormal, NaN or infinite
//	}
//	approx := x.FastRsqrt(1).Inner() // ~2.5255
//	exact := x.Rsqrt().Inner()       // ~2.5298
//
// FastRsqrt always runs at least one Newton iteration, even when 0 is requested.
//
// # Vector Normalization
//
//	v, ok := fastrsqrt.NormalizeVec3(1, 2, 3)
//
// NormalizeVec3 rejects vectors with a zero, subnormal, NaN or infinite
// component. When the components are already typed as Float, use
// NormalizeVec3Unchecked, which skips the per-component check.
//
// # Batches
//
// Normalizer applies the same normalization to slices of vectors concurrently,
// with structured logging and metrics:
//
//	n := fastrsqrt.NewNormalizer(fastrsqrt.WithSkipInvalid(true))
//	out, res, err := n.NormalizeAll(ctx, vectors)
//
// All kernels are pure functions on values and are safe for concurrent use.
package fastrsqrt
