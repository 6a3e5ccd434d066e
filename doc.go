// Package sparsevec provides sparse-vector similarity primitives for
// nearest-neighbor search engines.
//
// A sparse vector is a sequence of (id, weight) pairs with unique,
// strictly increasing ids — the usual shape of bag-of-words, TF-IDF, or
// SPLADE-style embeddings. Sparsevec packs such vectors into a compact,
// lossless binary format and computes the merge-based overlap statistics
// that distance functions are built from.
//
// # Quick Start
//
//	space := sparsevec.New[float32]()
//
//	a, _ := space.CreateObjectFromVector(1, 0, []model.Elem[float32]{
//	    {ID: 1, Weight: 2.0}, {ID: 3, Weight: 1.0},
//	})
//	b, _ := space.CreateObjectFromVector(2, 0, []model.Elem[float32]{
//	    {ID: 2, Weight: 1.0}, {ID: 3, Weight: 4.0},
//	})
//
//	n, _ := space.PairwiseOverlapCount(a, b) // 1 (only id 3 is shared)
//	info, _ := space.ComputeOverlapInfo(a, b)
//	cos, _ := space.CosineSimilarity(a, b)
//
// # Operations
//
//   - CreateObjectFromVector / VectorFromObject: pack and unpack vectors
//   - CreateDenseVector: hashing-trick projection into a fixed dimension
//   - PairwiseOverlapCount / ThreewiseOverlapCount / ElementCount:
//     set-intersection cardinalities over id sets
//   - ComputeOverlapInfo: L2-normalized dot-product and sum statistics
//     over the union of two vectors' ids
//   - CosineSimilarity / JaccardSimilarity: derived similarity measures
//   - BatchOverlapInfo: bulk pairwise statistics with bounded parallelism
//
// # Concurrency
//
// Objects are immutable after construction and no operation mutates its
// inputs, so every method is safe for concurrent use, including on the
// same object.
//
// The precision type parameter (float32 or float64) selects the weight
// width of the wire format; everything else is identical across widths.
package sparsevec
