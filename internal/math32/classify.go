package math32

import (
	m32 "github.com/chewxy/math32"
)

const (
	signMask     uint32 = 1 << 31
	exponentMask uint32 = 0xff << 23
)

// IsNormal reports whether x is a normal float: not zero, subnormal, infinite or NaN.
func IsNormal(x float32) bool {
	e := m32.Float32bits(x) & exponentMask
	return e != 0 && e != exponentMask
}

// IsSignPositive reports whether the sign bit of x is clear.
// It is true for +0 and for NaNs without the sign bit.
func IsSignPositive(x float32) bool {
	return m32.Float32bits(x)&signMask == 0
}

// IsPositiveNormal reports whether x is sign-positive and normal.
func IsPositiveNormal(x float32) bool {
	return IsSignPositive(x) && IsNormal(x)
}
