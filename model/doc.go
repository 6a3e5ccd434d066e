// Package model defines core types used throughout sparsevec.
//
// # Identity Types
//
//   - ID: Caller-assigned stable identifier of an object (uint64)
//   - Label: Opaque caller-assigned tag (int64)
//
// # Data Types
//
//   - Elem: A single (id, weight) pair of a sparse vector
//   - Object: An immutable identity + encoded-vector record
//
// The Float constraint parameterizes weight precision: the same code
// paths serve float32 and float64 vectors.
package model
