// Package testutil provides testing utilities for fastrsqrt.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that generates float32 samples
// for property-style tests.
//
// # Sample Generation
//
//	rng := testutil.NewRNG(seed)
//	xs := rng.LogUniform(1000, 1e-30, 1e30) // positive normal floats
//	raw := rng.RawFloats(1000)              // arbitrary bit patterns
//	vs := rng.Triples(100, -10, 10)         // 3D components
package testutil
