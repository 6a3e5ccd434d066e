package sparsevec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sparsevec/codec"
	"github.com/hupe1980/sparsevec/model"
	"github.com/hupe1980/sparsevec/testutil"
)

func TestBatchOverlapInfo(t *testing.T) {
	ctx := context.Background()
	s := New[float64]()
	rng := testutil.NewRNG(17)

	objs := make([]*model.Object, 16)
	for i := range objs {
		objs[i] = mustObject(t, s, model.ID(i), testutil.SparseElems[float64](rng, 20, 100))
	}

	var pairs []Pair
	for i := range objs {
		for j := range objs {
			pairs = append(pairs, Pair{Left: objs[i], Right: objs[j]})
		}
	}

	infos, err := s.BatchOverlapInfo(ctx, pairs)
	require.NoError(t, err)
	require.Len(t, infos, len(pairs))

	// Results must be in input order and identical to sequential calls.
	for i, p := range pairs {
		want, err := s.ComputeOverlapInfo(p.Left, p.Right)
		require.NoError(t, err)
		assert.Equal(t, want, infos[i])
	}
}

func TestBatchOverlapInfoEmpty(t *testing.T) {
	s := New[float64]()
	infos, err := s.BatchOverlapInfo(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestBatchOverlapInfoError(t *testing.T) {
	s := New[float64]()
	ok := mustObject(t, s, 1, []model.Elem[float64]{{ID: 1, Weight: 1}})
	bad := model.NewObject(2, 0, []byte{1, 2, 3})

	infos, err := s.BatchOverlapInfo(context.Background(), []Pair{
		{Left: ok, Right: ok},
		{Left: ok, Right: bad},
	})
	assert.ErrorIs(t, err, codec.ErrMalformedEncoding)
	assert.Nil(t, infos)
}

func TestBatchOverlapInfoCanceled(t *testing.T) {
	s := New[float64]()
	ok := mustObject(t, s, 1, []model.Elem[float64]{{ID: 1, Weight: 1}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := make([]Pair, 1000)
	for i := range pairs {
		pairs[i] = Pair{Left: ok, Right: ok}
	}

	_, err := s.BatchOverlapInfo(ctx, pairs)
	assert.ErrorIs(t, err, context.Canceled)
}
