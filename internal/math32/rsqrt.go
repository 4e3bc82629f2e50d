package math32

import (
	m32 "github.com/chewxy/math32"
)

const (
	// Magic is the bit-level initial guess constant for 1/sqrt(x).
	Magic uint32 = 0x5f3759df

	// ThreeHalves is the constant term of the Newton-Raphson update.
	ThreeHalves float32 = 1.5
)

// Seed returns the bit-hack estimate of 1/sqrt(number) before any refinement.
//
// The subtraction wraps modulo 2^32 for inputs with the sign bit set.
func Seed(number float32) float32 {
	i := m32.Float32bits(number)
	return m32.Float32frombits(Magic - (i >> 1))
}

// NewtonStep applies one Newton-Raphson refinement y*(1.5 - half*y*y).
//
// Every intermediate is rounded to float32 explicitly so the compiler cannot
// contract the expression into fused multiply-adds; results are bit-identical
// on every GOARCH.
func NewtonStep(y, half float32) float32 {
	t := float32(half * y)
	t = float32(t * y)
	t = float32(ThreeHalves - t)
	return float32(y * t)
}

// FastInvSqrt approximates 1/sqrt(number) with max(iterations, 1) Newton passes.
//
// No validation is performed. Negative, zero, subnormal, NaN and infinite
// inputs produce meaningless values but never panic.
func FastInvSqrt(number float32, iterations int) float32 {
	half := float32(number * 0.5)
	y := Seed(number)

	// at least one pass
	n := max(iterations, 1)
	for range n {
		y = NewtonStep(y, half)
	}

	return y
}

// InvSqrt computes 1/sqrt(x) with the correctly rounded square root.
func InvSqrt(x float32) float32 {
	return 1 / m32.Sqrt(x)
}
