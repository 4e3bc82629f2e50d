// Package accuracy measures the error of the fast inverse square root against
// the exact reference.
package accuracy

import (
	"math"

	"github.com/hupe1980/fastrsqrt"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// DefaultEpsilon is the tolerance used by Within when comparing an
// approximation against its reference.
const DefaultEpsilon = 0.005

// Report summarizes the error of FastRsqrt over a set of samples.
type Report struct {
	Iterations int
	// Count is the number of samples that were measured.
	Count int
	// Skipped is the number of samples that were not positive normal floats.
	Skipped int

	MaxAbs    float64
	MaxRel    float64
	MeanRel   float64
	StdDevRel float64
	// WorstInput is the sample with the largest relative error.
	WorstInput float32
}

// Within reports whether a and b differ by at most eps, either absolutely or
// relative to the larger magnitude.
func Within(a, b, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
}

// Sweep measures FastRsqrt(iterations) against Rsqrt for every sample.
// Samples that are not positive normal floats are counted as skipped.
func Sweep(samples []float32, iterations int) Report {
	r := Report{Iterations: max(iterations, 1)}

	abs := make([]float64, 0, len(samples))
	rel := make([]float64, 0, len(samples))
	inputs := make([]float32, 0, len(samples))

	for _, s := range samples {
		p, ok := fastrsqrt.NewPositiveFloat(s)
		if !ok {
			r.Skipped++
			continue
		}

		approx := float64(p.FastRsqrt(iterations).Inner())
		exact := float64(p.Rsqrt().Inner())

		d := math.Abs(approx - exact)
		abs = append(abs, d)
		rel = append(rel, d/exact)
		inputs = append(inputs, s)
	}

	r.Count = len(rel)
	if r.Count == 0 {
		return r
	}

	r.MaxAbs = floats.Max(abs)
	worst := floats.MaxIdx(rel)
	r.MaxRel = rel[worst]
	r.WorstInput = inputs[worst]
	r.MeanRel, r.StdDevRel = stat.MeanStdDev(rel, nil)

	return r
}

// LogSpace returns n samples spaced evenly in log space over [minVal, maxVal].
// Both bounds must be positive.
func LogSpace(minVal, maxVal float32, n int) []float32 {
	if n <= 0 {
		return nil
	}

	pts := make([]float64, n)
	if n == 1 {
		pts[0] = float64(minVal)
	} else {
		floats.LogSpan(pts, float64(minVal), float64(maxVal))
	}

	out := make([]float32, n)
	for i, p := range pts {
		out[i] = float32(p)
	}

	return out
}
