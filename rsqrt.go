package fastrsqrt

import (
	"github.com/hupe1980/fastrsqrt/internal/math32"
)

// Approximate approximates the inverse square root of number with a single
// Newton-Raphson iteration.
//
// This is the unchecked kernel. Calling it with a negative number, zero, a
// subnormal, NaN or infinity returns a meaningless value; it never panics.
// Use NewPositiveFloat and PositiveFloat.FastRsqrt for the checked path.
func Approximate(number float32) float32 {
	half := float32(number * 0.5)
	y := math32.Seed(number)

	return math32.NewtonStep(y, half)
}
