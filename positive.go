package fastrsqrt

import (
	"strconv"

	"github.com/hupe1980/fastrsqrt/internal/math32"
)

// PositiveFloat is a float32 that is sign-positive and normal: not zero,
// subnormal, NaN or infinite.
//
// The zero value is not a valid PositiveFloat. Values are obtained from
// NewPositiveFloat, ParsePositiveFloat, FromSquare or Float.Square and are
// immutable.
type PositiveFloat struct {
	v float32
}

// NewPositiveFloat returns v as a PositiveFloat if v is sign-positive and
// normal. Otherwise it returns false.
func NewPositiveFloat(v float32) (PositiveFloat, bool) {
	if !math32.IsPositiveNormal(v) {
		return PositiveFloat{}, false
	}

	return PositiveFloat{v: v}, true
}

// FromSquare returns x*x without validation.
//
// The square of a normal float is sign-positive. It is only normal while
// |x| lies roughly in [1.1e-19, 1.8e19]; outside that range the product
// underflows to a subnormal or zero, or overflows to infinity. Callers are
// responsible for staying inside it, or for checking Valid afterwards.
func FromSquare(x float32) PositiveFloat {
	return PositiveFloat{v: x * x}
}

// Inner returns the wrapped float32.
func (p PositiveFloat) Inner() float32 {
	return p.v
}

// Valid reports whether p still satisfies the PositiveFloat invariant.
//
// Values from NewPositiveFloat are always valid. Values produced by FromSquare,
// Add or Mul are not re-checked and may have left the normal range.
func (p PositiveFloat) Valid() bool {
	return math32.IsPositiveNormal(p.v)
}

// Add returns p + q. The sum is not re-validated.
func (p PositiveFloat) Add(q PositiveFloat) PositiveFloat {
	return PositiveFloat{v: p.v + q.v}
}

// Mul returns p * q. The product is not re-validated.
func (p PositiveFloat) Mul(q PositiveFloat) PositiveFloat {
	return PositiveFloat{v: p.v * q.v}
}

// Rsqrt computes 1/sqrt(p) exactly, using the correctly rounded square root.
//
// It is the reference for FastRsqrt. The result is positive because
// x -> 1/sqrt(x) maps positive reals to positive reals.
func (p PositiveFloat) Rsqrt() PositiveFloat {
	return PositiveFloat{v: math32.InvSqrt(p.v)}
}

// FastRsqrt approximates 1/sqrt(p) with max(iterations, 1) Newton-Raphson
// iterations. At least one iteration always runs.
//
// p is positive and normal by construction, so nothing is checked here.
func (p PositiveFloat) FastRsqrt(iterations int) PositiveFloat {
	return PositiveFloat{v: math32.FastInvSqrt(p.v, iterations)}
}

// String implements fmt.Stringer.
func (p PositiveFloat) String() string {
	return strconv.FormatFloat(float64(p.v), 'g', -1, 32)
}
