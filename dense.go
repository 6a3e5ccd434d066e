package sparsevec

import (
	"github.com/hupe1980/sparsevec/codec"
	"github.com/hupe1980/sparsevec/model"
)

// 64-bit FNV-1a parameters. The projection hash is pinned to FNV-1a so
// dense vectors are reproducible across processes and platforms;
// hash/maphash and map iteration seeds are per-process and unusable here.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// hashID is 64-bit FNV-1a over the four little-endian bytes of id.
func hashID(id uint32) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 4; i++ {
		h ^= uint64(id & 0xFF)
		h *= fnvPrime64
		id >>= 8
	}
	return h
}

// CreateDenseVector projects an object into a dense vector of length dim
// using the hashing trick: each element's weight is added to the slot at
// hashID(id) % dim. Ids that collide on a slot sum their weights; the
// projection is lossy by design but deterministic for a given object and
// dimension.
//
// dim must be at least 1, otherwise *ErrInvalidDimension is returned.
func (s *Space[T]) CreateDenseVector(obj *model.Object, dim int) ([]T, error) {
	if dim < 1 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	elems, err := codec.Unpack[T](obj.Data())
	if err != nil {
		return nil, err
	}

	dense := make([]T, dim)
	for _, e := range elems {
		dense[hashID(e.ID)%uint64(dim)] += e.Weight
	}
	return dense, nil
}
