package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/sparsevec/model"
)

var (
	// ErrMalformedEncoding indicates a buffer whose length is inconsistent
	// with the element count it declares (short header, truncated elements,
	// or trailing bytes). Malformed input is never silently truncated.
	ErrMalformedEncoding = errors.New("malformed sparse encoding")

	// ErrInvalidElements indicates an input sequence that violates the
	// strictly-increasing-id invariant during Pack.
	ErrInvalidElements = errors.New("invalid sparse elements")
)

// headerSize is the fixed prefix: a little-endian uint32 element count.
const headerSize = 4

// weightSize returns the serialized width of T in bytes.
func weightSize[T model.Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 4
	}
	return 8
}

// EncodedSize returns the exact buffer size Pack produces for n elements.
func EncodedSize[T model.Float](n int) int {
	return headerSize + n*(4+weightSize[T]())
}

// Pack encodes elems into a newly allocated buffer of exactly
// EncodedSize(len(elems)) bytes: a little-endian uint32 count followed by
// one (uint32 id, IEEE-754 weight bits) pair per element, ids strictly
// increasing. The buffer round-trips losslessly through Unpack.
//
// Pack validates the id invariant and returns ErrInvalidElements if ids
// are unsorted or duplicated; nothing is retained on the error path.
func Pack[T model.Float](elems []model.Elem[T]) ([]byte, error) {
	for i := 1; i < len(elems); i++ {
		if elems[i].ID <= elems[i-1].ID {
			return nil, fmt.Errorf("%w: id %d at position %d not strictly increasing",
				ErrInvalidElements, elems[i].ID, i)
		}
	}

	buf := make([]byte, 0, EncodedSize[T](len(elems)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(elems)))
	for _, e := range elems {
		buf = binary.LittleEndian.AppendUint32(buf, e.ID)
		buf = appendWeight(buf, e.Weight)
	}
	return buf, nil
}

// Unpack decodes a buffer produced by Pack into an id-ordered element
// slice. The buffer length must match the declared element count exactly;
// any inconsistency returns ErrMalformedEncoding. The length check runs
// before any element allocation, so a corrupt count cannot trigger a
// huge allocation.
//
// Unpack does not re-verify the id ordering invariant: a buffer that was
// packed from out-of-order input decodes to out-of-order elements.
func Unpack[T model.Float](data []byte) ([]model.Elem[T], error) {
	n, err := Count[T](data)
	if err != nil {
		return nil, err
	}

	ws := weightSize[T]()
	elems := make([]model.Elem[T], n)
	off := headerSize
	for i := range elems {
		elems[i].ID = binary.LittleEndian.Uint32(data[off:])
		elems[i].Weight = weightAt[T](data[off+4:], ws)
		off += 4 + ws
	}
	return elems, nil
}

// Count returns the element count a buffer declares, after validating the
// buffer length against it. It never decodes elements.
func Count[T model.Float](data []byte) (int, error) {
	if len(data) < headerSize {
		return 0, fmt.Errorf("%w: %d bytes, need at least %d for the header",
			ErrMalformedEncoding, len(data), headerSize)
	}
	n := int(binary.LittleEndian.Uint32(data))
	if want := EncodedSize[T](n); len(data) != want {
		return 0, fmt.Errorf("%w: %d bytes for %d elements, want %d",
			ErrMalformedEncoding, len(data), n, want)
	}
	return n, nil
}

// UnpackIDs decodes only the id column of an encoded buffer. Same
// validation as Unpack, roughly half the memory traffic. Used by the
// overlap counters, which never look at weights.
func UnpackIDs[T model.Float](data []byte) ([]uint32, error) {
	n, err := Count[T](data)
	if err != nil {
		return nil, err
	}

	stride := 4 + weightSize[T]()
	ids := make([]uint32, n)
	off := headerSize
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint32(data[off:])
		off += stride
	}
	return ids, nil
}

func appendWeight[T model.Float](buf []byte, w T) []byte {
	switch v := any(w).(type) {
	case float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	case float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	panic("codec: unreachable weight type")
}

func weightAt[T model.Float](data []byte, ws int) T {
	if ws == 4 {
		return T(math.Float32frombits(binary.LittleEndian.Uint32(data)))
	}
	return T(math.Float64frombits(binary.LittleEndian.Uint64(data)))
}
