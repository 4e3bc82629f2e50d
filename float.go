package fastrsqrt

import (
	"strconv"

	"github.com/hupe1980/fastrsqrt/internal/math32"
)

// Float is a normal float32 of either sign: not zero, subnormal, NaN or
// infinite.
type Float struct {
	v float32
}

// NewFloat returns v as a Float if v is normal. Otherwise it returns false.
func NewFloat(v float32) (Float, bool) {
	if !math32.IsNormal(v) {
		return Float{}, false
	}

	return Float{v: v}, true
}

// Inner returns the wrapped float32.
func (f Float) Inner() float32 {
	return f.v
}

// Square returns f*f as a PositiveFloat.
func (f Float) Square() PositiveFloat {
	return FromSquare(f.v)
}

// String implements fmt.Stringer.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f.v), 'g', -1, 32)
}
