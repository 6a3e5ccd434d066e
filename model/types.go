package model

import "fmt"

// Float constrains the weight precision of a sparse vector.
// The codec serializes float32 weights in 4 bytes and float64 weights
// in 8 bytes; everything else in the wire format is identical.
type Float interface {
	float32 | float64
}

// ID is the user-facing stable identifier of an object.
// It is assigned by the caller at construction and never interpreted here.
type ID uint64

// Label is an opaque caller-assigned tag (e.g. a class label for
// supervised evaluation). Never interpreted by this library.
type Label int64

// Elem is a single (id, weight) pair of a sparse vector.
// Within one vector, ids are unique and strictly increasing.
type Elem[T Float] struct {
	ID     uint32
	Weight T
}

// String returns a string representation of the element.
func (e Elem[T]) String() string {
	return fmt.Sprintf("(%d:%v)", e.ID, e.Weight)
}
