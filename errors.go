package fastrsqrt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hupe1980/fastrsqrt/internal/math32"
)

var (
	// ErrNotPositive is returned when a value has its sign bit set.
	ErrNotPositive = errors.New("value is not sign-positive")

	// ErrNotNormal is returned when a value is zero, subnormal, NaN or infinite.
	ErrNotNormal = errors.New("value is not a normal float")

	// ErrNormOutOfRange is returned when every component of a vector is normal
	// but the sum of their squares is not. It wraps ErrNotNormal.
	ErrNormOutOfRange = fmt.Errorf("squared norm out of range: %w", ErrNotNormal)
)

// ErrInvalidComponent indicates a vector component that cannot be normalized.
//
// The rejecting sentinel (ErrNotNormal) can be accessed via errors.Unwrap.
type ErrInvalidComponent struct {
	Axis  string
	Value float32
	cause error
}

func (e *ErrInvalidComponent) Error() string {
	return fmt.Sprintf("invalid %s component %v: %v", e.Axis, e.Value, e.cause)
}

func (e *ErrInvalidComponent) Unwrap() error { return e.cause }

// ErrInvalidVector indicates the position of a rejected vector in a batch.
type ErrInvalidVector struct {
	Index int
	cause error
}

func (e *ErrInvalidVector) Error() string {
	return fmt.Sprintf("vector %d: %v", e.Index, e.cause)
}

func (e *ErrInvalidVector) Unwrap() error { return e.cause }

// ParsePositiveFloat parses s as a float32 and validates it like
// NewPositiveFloat, reporting why the value was rejected.
func ParsePositiveFloat(s string) (PositiveFloat, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return PositiveFloat{}, fmt.Errorf("parse positive float: %w", err)
	}

	v := float32(f)
	if err := checkPositiveNormal(v); err != nil {
		return PositiveFloat{}, fmt.Errorf("%v: %w", v, err)
	}

	return PositiveFloat{v: v}, nil
}

// CheckVec3 returns an *ErrInvalidComponent for the first component of v that
// is not normal, or nil if v can be normalized.
func CheckVec3(v Vec3) error {
	for _, c := range []struct {
		axis  string
		value float32
	}{{"x", v.X}, {"y", v.Y}, {"z", v.Z}} {
		if !math32.IsNormal(c.value) {
			return &ErrInvalidComponent{Axis: c.axis, Value: c.value, cause: ErrNotNormal}
		}
	}

	return nil
}

func checkPositiveNormal(v float32) error {
	if !math32.IsSignPositive(v) {
		return ErrNotPositive
	}
	if !math32.IsNormal(v) {
		return ErrNotNormal
	}

	return nil
}
