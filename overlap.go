package sparsevec

import (
	"math"

	"github.com/hupe1980/sparsevec/codec"
	"github.com/hupe1980/sparsevec/model"
)

// OverlapInfo aggregates the weighted overlap statistics of one
// left/right vector pair. All sums are scaled by the inverse L2 norm of
// their own side; the dot product is scaled by both. A side whose norm is
// exactly zero skips its scaling and contributes raw sums instead, so an
// all-zero vector never causes a division fault.
//
// With both norms positive, DotProdNorm is the cosine similarity of the
// two vectors.
type OverlapInfo[T model.Float] struct {
	// Qty is the number of ids present in both vectors.
	Qty int

	// DotProdNorm is the sum of weight products over shared ids,
	// normalized by both norms.
	DotProdNorm T

	// OverlapSumLeftNorm and OverlapSumRightNorm are the per-side
	// normalized weight sums over shared ids.
	OverlapSumLeftNorm  T
	OverlapSumRightNorm T

	// DiffSumLeftNorm and DiffSumRightNorm are the per-side normalized
	// weight sums over ids present on that side only.
	DiffSumLeftNorm  T
	DiffSumRightNorm T
}

// ComputeOverlapInfo decodes both objects and merge-walks their elements
// by increasing id, accumulating the six OverlapInfo statistics in a
// single pass over the union of the two id sets.
//
// Every matched and unmatched element accumulates into its running sum;
// both cursors are bounded by their own side's length.
func (s *Space[T]) ComputeOverlapInfo(a, b *model.Object) (OverlapInfo[T], error) {
	var info OverlapInfo[T]

	left, err := codec.Unpack[T](a.Data())
	if err != nil {
		return info, err
	}
	right, err := codec.Unpack[T](b.Data())
	if err != nil {
		return info, err
	}

	normLeft := l2Norm(left)
	normRight := l2Norm(right)

	var i, j int
	for i < len(left) && j < len(right) {
		switch {
		case left[i].ID < right[j].ID:
			info.DiffSumLeftNorm += left[i].Weight
			i++
		case left[i].ID > right[j].ID:
			info.DiffSumRightNorm += right[j].Weight
			j++
		default:
			info.DotProdNorm += left[i].Weight * right[j].Weight
			info.OverlapSumLeftNorm += left[i].Weight
			info.OverlapSumRightNorm += right[j].Weight
			info.Qty++
			i++
			j++
		}
	}
	for ; i < len(left); i++ {
		info.DiffSumLeftNorm += left[i].Weight
	}
	for ; j < len(right); j++ {
		info.DiffSumRightNorm += right[j].Weight
	}

	// Each side's norm independently gates its own scaling; the dot
	// product picks up one factor per positive norm.
	if normLeft > 0 {
		inv := 1 / normLeft
		info.OverlapSumLeftNorm *= inv
		info.DiffSumLeftNorm *= inv
		info.DotProdNorm *= inv
	}
	if normRight > 0 {
		inv := 1 / normRight
		info.OverlapSumRightNorm *= inv
		info.DiffSumRightNorm *= inv
		info.DotProdNorm *= inv
	}

	return info, nil
}

// l2Norm returns the L2 norm of a vector's weights.
func l2Norm[T model.Float](elems []model.Elem[T]) T {
	var sum T
	for _, e := range elems {
		sum += e.Weight * e.Weight
	}
	return T(math.Sqrt(float64(sum)))
}
