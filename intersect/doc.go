// Package intersect provides set-intersection cardinality kernels over
// sorted uint32 id slices.
//
// # Operations
//
//   - Size / Size3: pairwise and three-way intersection counts via
//     two- and three-pointer merges, with adaptive galloping search when
//     the input lengths are heavily skewed
//   - Bitmap / SizeBitmap / SizeBitmap3: roaring-bitmap variants for
//     callers that intersect one id set against many others
//
// Inputs are trusted to be sorted ascending with unique ids (the sparse
// codec's invariant). Violating that yields an unspecified count, never
// a panic.
package intersect
