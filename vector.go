package fastrsqrt

import (
	m32 "github.com/chewxy/math32"
)

// Vec3 is a 3D vector of float32 components.
type Vec3 struct {
	X, Y, Z float32
}

// Norm returns the Euclidean length of v using the exact square root.
func (v Vec3) Norm() float32 {
	return m32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to approximately unit length.
//
// It returns false if any component is zero, subnormal, NaN or infinite. The
// same range limit as NormalizeVec3 applies.
func (v Vec3) Normalize() (Vec3, bool) {
	n, ok := NewNormalVec3(v)
	if !ok {
		return Vec3{}, false
	}

	return NormalizeVec3Unchecked(n.X, n.Y, n.Z), true
}

// NormalizeVec3 scales (x, y, z) to approximately unit length using a single
// iteration of the fast inverse square root.
//
// It returns false if any component is zero, subnormal, NaN or infinite.
// The sum of squares is not re-checked (see FromSquare): it is only normal
// while every |component| stays below roughly 1.8e19 and at least one is
// above roughly 1.1e-19. Outside that range the result is meaningless even
// though ok is true. Normalizer.Normalize rejects such vectors with
// ErrNormOutOfRange.
func NormalizeVec3(x, y, z float32) (Vec3, bool) {
	return Vec3{X: x, Y: y, Z: z}.Normalize()
}

// NormalizeVec3Unchecked is NormalizeVec3 for components already known to be
// normal. No component is checked.
func NormalizeVec3Unchecked(x, y, z Float) Vec3 {
	r := reciprocalNorm(x, y, z, 1)

	return Vec3{X: x.v * r, Y: y.v * r, Z: z.v * r}
}

func reciprocalNorm(x, y, z Float, iterations int) float32 {
	return x.Square().Add(y.Square()).Add(z.Square()).FastRsqrt(iterations).Inner()
}

// NormalVec3 is a 3D vector whose components are all normal floats.
type NormalVec3 struct {
	X, Y, Z Float
}

// NewNormalVec3 checks every component of v. It returns false if any of them
// is not normal.
func NewNormalVec3(v Vec3) (NormalVec3, bool) {
	x, ok := NewFloat(v.X)
	if !ok {
		return NormalVec3{}, false
	}
	y, ok := NewFloat(v.Y)
	if !ok {
		return NormalVec3{}, false
	}
	z, ok := NewFloat(v.Z)
	if !ok {
		return NormalVec3{}, false
	}

	return NormalVec3{X: x, Y: y, Z: z}, true
}

// Vec3 returns the plain float32 components of n.
func (n NormalVec3) Vec3() Vec3 {
	return Vec3{X: n.X.v, Y: n.Y.v, Z: n.Z.v}
}

// Normalize returns n scaled to approximately unit length without checking
// any component.
//
// The scaled components keep the Float type. For inputs whose squares stay in
// the normal range (see FromSquare) they remain normal.
func (n NormalVec3) Normalize() NormalVec3 {
	r := reciprocalNorm(n.X, n.Y, n.Z, 1)

	return NormalVec3{
		X: Float{v: n.X.v * r},
		Y: Float{v: n.Y.v * r},
		Z: Float{v: n.Z.v * r},
	}
}
