package sparsevec

import (
	"github.com/hupe1980/sparsevec/codec"
	"github.com/hupe1980/sparsevec/model"
)

// CosineSimilarity returns the cosine similarity of two objects: the dot
// product over shared ids divided by both L2 norms. A zero-norm side has
// only zero weights, so the result degrades to 0 rather than NaN.
func (s *Space[T]) CosineSimilarity(a, b *model.Object) (T, error) {
	info, err := s.ComputeOverlapInfo(a, b)
	if err != nil {
		return 0, err
	}
	return info.DotProdNorm, nil
}

// JaccardSimilarity returns |ids(a) ∩ ids(b)| / |ids(a) ∪ ids(b)|,
// ignoring weights. Two empty vectors yield 0.
func (s *Space[T]) JaccardSimilarity(a, b *model.Object) (float64, error) {
	idsA, err := codec.UnpackIDs[T](a.Data())
	if err != nil {
		return 0, err
	}
	idsB, err := codec.UnpackIDs[T](b.Data())
	if err != nil {
		return 0, err
	}

	inter := s.intersector.Size(idsA, idsB)
	union := len(idsA) + len(idsB) - inter
	if union == 0 {
		return 0, nil
	}
	return float64(inter) / float64(union), nil
}
