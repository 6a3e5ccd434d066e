// Package testutil provides testing utilities for sparsevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random sparse
// vectors with unique, ascending ids.
//
//	rng := testutil.NewRNG(seed)
//	elems := testutil.SparseElems[float32](rng, 20, 1000)
package testutil
