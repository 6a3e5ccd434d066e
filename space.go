package sparsevec

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sparsevec/codec"
	"github.com/hupe1980/sparsevec/intersect"
	"github.com/hupe1980/sparsevec/model"
)

// Intersector computes intersection cardinalities over sorted uint32 id
// slices. Implementations must be safe for concurrent use and must not
// retain or modify the slices.
//
// The default is the in-repo kernels from the intersect package; callers
// with a faster backend (SIMD, GPU) plug it in via WithIntersector.
type Intersector interface {
	// Size returns |a ∩ b| for sorted ascending id slices.
	Size(a, b []uint32) int
	// Size3 returns |a ∩ b ∩ c| for sorted ascending id slices.
	Size3(a, b, c []uint32) int
}

// kernelIntersector is the built-in backend.
type kernelIntersector struct{}

func (kernelIntersector) Size(a, b []uint32) int     { return intersect.Size(a, b) }
func (kernelIntersector) Size3(a, b, c []uint32) int { return intersect.Size3(a, b, c) }

// Space compares sparse vectors of weight precision T. It is stateless
// apart from configuration and safe for concurrent use.
type Space[T model.Float] struct {
	logger      *Logger
	intersector Intersector
}

// New creates a Space for the given weight precision.
func New[T model.Float](opts ...Option) *Space[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Space[T]{
		logger:      o.logger,
		intersector: o.intersector,
	}
}

// CreateObjectFromVector packs elems and wraps the encoded buffer in a
// new Object carrying the caller-assigned id and label. On pack failure
// no object is constructed.
func (s *Space[T]) CreateObjectFromVector(id model.ID, label model.Label, elems []model.Elem[T]) (*model.Object, error) {
	data, err := codec.Pack(elems)
	if err != nil {
		return nil, err
	}
	return model.NewObject(id, label, data), nil
}

// VectorFromObject decodes an object back into its id-ordered elements.
func (s *Space[T]) VectorFromObject(obj *model.Object) ([]model.Elem[T], error) {
	return codec.Unpack[T](obj.Data())
}

// ElementCount returns the number of elements the object was constructed
// with, validating the buffer without decoding it.
func (s *Space[T]) ElementCount(obj *model.Object) (int, error) {
	return codec.Count[T](obj.Data())
}

// PairwiseOverlapCount returns the number of ids present in both objects.
func (s *Space[T]) PairwiseOverlapCount(a, b *model.Object) (int, error) {
	idsA, err := codec.UnpackIDs[T](a.Data())
	if err != nil {
		return 0, err
	}
	idsB, err := codec.UnpackIDs[T](b.Data())
	if err != nil {
		return 0, err
	}
	return s.intersector.Size(idsA, idsB), nil
}

// ThreewiseOverlapCount returns the number of ids present in all three
// objects.
func (s *Space[T]) ThreewiseOverlapCount(a, b, c *model.Object) (int, error) {
	idsA, err := codec.UnpackIDs[T](a.Data())
	if err != nil {
		return 0, err
	}
	idsB, err := codec.UnpackIDs[T](b.Data())
	if err != nil {
		return 0, err
	}
	idsC, err := codec.UnpackIDs[T](c.Data())
	if err != nil {
		return 0, err
	}
	return s.intersector.Size3(idsA, idsB, idsC), nil
}

// IDBitmap materializes an object's id set as a roaring bitmap, for
// callers that intersect one probe object against many others.
func (s *Space[T]) IDBitmap(obj *model.Object) (*roaring.Bitmap, error) {
	ids, err := codec.UnpackIDs[T](obj.Data())
	if err != nil {
		return nil, err
	}
	return intersect.Bitmap(ids), nil
}

// OverlapCountBitmap counts the ids shared between a prebuilt probe
// bitmap (see IDBitmap) and an object. Equivalent to PairwiseOverlapCount
// with the probe side's decode amortized away.
func (s *Space[T]) OverlapCountBitmap(probe *roaring.Bitmap, obj *model.Object) (int, error) {
	ids, err := codec.UnpackIDs[T](obj.Data())
	if err != nil {
		return 0, err
	}
	return intersect.SizeSorted(probe, ids), nil
}
