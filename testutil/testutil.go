package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// LogUniform returns n values whose logarithm is uniform in [log(minVal), log(maxVal)).
// Both bounds must be positive. Samples cover many binades evenly, which
// uniform sampling does not.
func (r *RNG) LogUniform(n int, minVal, maxVal float32) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	lo := math.Log(float64(minVal))
	hi := math.Log(float64(maxVal))

	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Exp(lo + r.rand.Float64()*(hi-lo)))
	}

	return out
}

// RawFloats returns n floats with uniformly random bit patterns, including
// negatives, subnormals, infinities and NaNs.
func (r *RNG) RawFloats(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(r.rand.Uint32())
	}

	return out
}

// Triples generates num 3-component samples with values in [minVal, maxVal).
func (r *RNG) Triples(num int, minVal, maxVal float32) [][3]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([][3]float32, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = minVal + r.rand.Float32()*span
		}
	}

	return out
}
