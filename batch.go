package sparsevec

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sparsevec/model"
)

// Pair is one (left, right) comparison in a batch.
type Pair struct {
	Left  *model.Object
	Right *model.Object
}

// BatchOverlapInfo computes ComputeOverlapInfo for every pair using up to
// GOMAXPROCS goroutines. Results are returned in input order. The first
// error cancels the remaining work and is returned wrapped with the
// offending pair's index.
func (s *Space[T]) BatchOverlapInfo(ctx context.Context, pairs []Pair) ([]OverlapInfo[T], error) {
	infos := make([]OverlapInfo[T], len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := s.ComputeOverlapInfo(p.Left, p.Right)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			infos[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithPairs(len(pairs)).ErrorContext(ctx, "batch overlap failed", "error", err)
		return nil, err
	}

	s.logger.WithPairs(len(pairs)).DebugContext(ctx, "batch overlap completed")
	return infos, nil
}
