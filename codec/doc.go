// Package codec implements the binary wire format for sparse vectors.
//
// # Format
//
// A little-endian uint32 element count, followed by that many fixed-width
// (uint32 id, IEEE-754 weight) pairs in strictly increasing id order:
//
//	┌──────────┬──────────┬────────────┬─────┬──────────┬────────────┐
//	│ count u32│ id[0] u32│ weight[0]  │ ... │ id[n-1]  │ weight[n-1]│
//	└──────────┴──────────┴────────────┴─────┴──────────┴────────────┘
//
// Weights occupy 4 bytes (float32) or 8 bytes (float64) depending on the
// codec's type parameter. No compression, no variable-length encoding:
// the buffer size is a pure function of the element count, which is what
// makes malformed input detectable by a single length comparison.
//
// Changing this format is a breaking-change boundary: buffers created by
// older versions must keep decoding bit-exactly.
package codec
