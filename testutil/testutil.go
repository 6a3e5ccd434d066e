package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/sparsevec/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// SparseElems generates n random sparse elements with unique ids drawn
// from [0, maxID) and weights in [-1, 1), sorted by increasing id.
// n must not exceed maxID.
func SparseElems[T model.Float](r *RNG, n, maxID int) []model.Elem[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint32]struct{}, n)
	for len(seen) < n {
		seen[uint32(r.rand.Intn(maxID))] = struct{}{}
	}

	elems := make([]model.Elem[T], 0, n)
	for id := range seen {
		elems = append(elems, model.Elem[T]{
			ID:     id,
			Weight: T(r.rand.Float64()*2 - 1),
		})
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i].ID < elems[j].ID })
	return elems
}

// PositiveSparseElems is SparseElems with weights in (0, 1]; useful where
// a positive L2 norm is required.
func PositiveSparseElems[T model.Float](r *RNG, n, maxID int) []model.Elem[T] {
	elems := SparseElems[T](r, n, maxID)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range elems {
		elems[i].Weight = T(1 - r.rand.Float64())
	}
	return elems
}

// IDs extracts the id column of an element slice.
func IDs[T model.Float](elems []model.Elem[T]) []uint32 {
	ids := make([]uint32, len(elems))
	for i, e := range elems {
		ids[i] = e.ID
	}
	return ids
}
