package sparsevec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sparsevec/model"
)

// countingIntersector returns canned cardinalities and records its calls,
// standing in for an external fast-intersection backend.
type countingIntersector struct {
	size2Calls int
	size3Calls int
}

func (c *countingIntersector) Size(a, b []uint32) int {
	c.size2Calls++
	return 1000
}

func (c *countingIntersector) Size3(a, b, cc []uint32) int {
	c.size3Calls++
	return 2000
}

func TestWithIntersector(t *testing.T) {
	backend := &countingIntersector{}
	s := New[float32](WithIntersector(backend))

	a := mustObject(t, s, 1, []model.Elem[float32]{{ID: 1, Weight: 1}, {ID: 2, Weight: 1}})
	b := mustObject(t, s, 2, []model.Elem[float32]{{ID: 2, Weight: 1}})

	n, err := s.PairwiseOverlapCount(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)
	assert.Equal(t, 1, backend.size2Calls)

	n, err = s.ThreewiseOverlapCount(a, b, b)
	require.NoError(t, err)
	assert.Equal(t, 2000, n)
	assert.Equal(t, 1, backend.size3Calls)

	// JaccardSimilarity counts overlaps through the same backend.
	_, err = s.JaccardSimilarity(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.size2Calls)
}

func TestWithIntersectorNilKeepsDefault(t *testing.T) {
	s := New[float32](WithIntersector(nil))

	a := mustObject(t, s, 1, []model.Elem[float32]{{ID: 1, Weight: 1}, {ID: 3, Weight: 1}})
	b := mustObject(t, s, 2, []model.Elem[float32]{{ID: 3, Weight: 1}})

	n, err := s.PairwiseOverlapCount(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestErrInvalidDimensionUnwrap(t *testing.T) {
	err := &ErrInvalidDimension{Dimension: -3}
	assert.Equal(t, "invalid dimension: -3", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
