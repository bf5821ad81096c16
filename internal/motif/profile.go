// internal/motif/profile.go
package motif

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProbabilityFloor is used for symbols a profile has never seen.
const ProbabilityFloor = 0.01

// Profile maps a symbol to its background probability.
type Profile map[byte]float64

// Prob returns the probability of sym, or ProbabilityFloor when sym is absent.
func (p Profile) Prob(sym byte) float64 {
	if v, ok := p[sym]; ok {
		return v
	}
	return ProbabilityFloor
}

// BuildProfile returns the symbol distribution of every sequence except
// seqs[exclude]. With no other sequences the result is empty.
func BuildProfile(seqs []string, exclude int) Profile {
	counts := make(map[byte]int)
	total := 0
	for i, s := range seqs {
		if i == exclude {
			continue
		}
		for sym, n := range symbolCounts(s) {
			counts[sym] += n
		}
		total += len(s)
	}
	return normalize(counts, total)
}

// BuildProfiles returns one leave-one-out profile per sequence. Per-sequence
// counting runs concurrently; profile i is then derived from the global
// counts minus the counts of sequence i.
func BuildProfiles(ctx context.Context, seqs []string) ([]Profile, error) {
	per := make([]map[byte]int, len(seqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range seqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			per[i] = symbolCounts(seqs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	global := make(map[byte]int)
	globalLen := 0
	for i, c := range per {
		for sym, n := range c {
			global[sym] += n
		}
		globalLen += len(seqs[i])
	}

	out := make([]Profile, len(seqs))
	for i, c := range per {
		rest := make(map[byte]int, len(global))
		for sym, n := range global {
			if m := n - c[sym]; m > 0 {
				rest[sym] = m
			}
		}
		out[i] = normalize(rest, globalLen-len(seqs[i]))
	}
	return out, nil
}

func normalize(counts map[byte]int, total int) Profile {
	p := make(Profile, len(counts))
	if total <= 0 {
		return p
	}
	for sym, n := range counts {
		p[sym] = float64(n) / float64(total)
	}
	return p
}
