package motif

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"
)

// errAccepted stops sibling chains once one chain accepts.
var errAccepted = errors.New("accepted")

// SearchParallel runs one independent chain per seed, all sharing the
// sampler's profiles. The first chain to accept wins and cancels the rest;
// Result.Chain is the index of its seed. When no chain accepts, the first
// chain's outcome and error are returned.
func (s *Sampler) SearchParallel(ctx context.Context, seeds []int64) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, fmt.Errorf("%w: no chains to run", ErrInvalidConfiguration)
	}

	var (
		once    sync.Once
		won     Result
		results = make([]Result, len(seeds))
		errs    = make([]error, len(seeds))
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			res, err := s.run(gctx, rand.New(rand.NewSource(seed)), i)
			if err == nil && res.Accepted {
				once.Do(func() { won = res })
				return errAccepted
			}
			results[i], errs[i] = res, err
			return nil
		})
	}
	err := g.Wait()
	if errors.Is(err, errAccepted) {
		return won, nil
	}
	if err != nil {
		return Result{}, err
	}
	if cerr := ctx.Err(); cerr != nil {
		return results[0], cerr
	}
	return results[0], errs[0]
}
