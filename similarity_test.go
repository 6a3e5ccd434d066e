package sparsevec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sparsevec/model"
	"github.com/hupe1980/sparsevec/testutil"
)

func TestCosineSimilarity(t *testing.T) {
	s := New[float64]()

	t.Run("Self", func(t *testing.T) {
		rng := testutil.NewRNG(8)
		a := mustObject(t, s, 1, testutil.PositiveSparseElems[float64](rng, 25, 300))

		cos, err := s.CosineSimilarity(a, a)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, cos, 1e-12)
	})

	t.Run("Disjoint", func(t *testing.T) {
		a := mustObject(t, s, 1, []model.Elem[float64]{{ID: 1, Weight: 1}})
		b := mustObject(t, s, 2, []model.Elem[float64]{{ID: 2, Weight: 1}})

		cos, err := s.CosineSimilarity(a, b)
		require.NoError(t, err)
		assert.Zero(t, cos)
	})

	t.Run("WorkedExample", func(t *testing.T) {
		a := mustObject(t, s, 1, []model.Elem[float64]{{ID: 1, Weight: 2}, {ID: 3, Weight: 1}})
		b := mustObject(t, s, 2, []model.Elem[float64]{{ID: 2, Weight: 1}, {ID: 3, Weight: 4}})

		cos, err := s.CosineSimilarity(a, b)
		require.NoError(t, err)
		assert.InDelta(t, 4.0/(math.Sqrt(5)*math.Sqrt(17)), cos, 1e-12)
	})
}

func TestJaccardSimilarity(t *testing.T) {
	s := New[float32]()

	tests := []struct {
		name     string
		a, b     []model.Elem[float32]
		expected float64
	}{
		{"BothEmpty", nil, nil, 0},
		{"OneEmpty", []model.Elem[float32]{{ID: 1, Weight: 1}}, nil, 0},
		{"Identical", []model.Elem[float32]{{ID: 1, Weight: 1}, {ID: 2, Weight: 5}},
			[]model.Elem[float32]{{ID: 1, Weight: 9}, {ID: 2, Weight: 2}}, 1},
		{"Half", []model.Elem[float32]{{ID: 1, Weight: 1}, {ID: 2, Weight: 1}},
			[]model.Elem[float32]{{ID: 2, Weight: 1}, {ID: 3, Weight: 1}}, 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustObject(t, s, 1, tt.a)
			b := mustObject(t, s, 2, tt.b)

			got, err := s.JaccardSimilarity(a, b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}
