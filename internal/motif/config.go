// internal/motif/config.go
package motif

import (
	"fmt"
	"time"
)

// Fixed schedule constants of the sampler.
const (
	CycleLength          = 500  // iterations over which the cooling factor decays
	MaxCoolingFactor     = 0.15 // cooling factor at the start of a cycle
	InitCoolingFactor    = 0.05 // cooling factor used while seeding candidates
	ConvergenceThreshold = 0.01 // churn average below which convergence is checked
	SmoothingWeight      = 20   // history weight of the moving averages
	ProgressInterval     = 32   // in-cycle iterations between progress snapshots
)

// Config holds the search parameters.
type Config struct {
	MotifLength  int
	MaxMutations int

	// Stopping policy. Zero values mean unbounded.
	MaxIterations int           // total iterations across restarts
	MaxDuration   time.Duration // wall clock per Search call

	// Observer, if set, receives a Progress snapshot every ProgressInterval
	// in-cycle iterations. With SearchParallel it is called from several
	// goroutines.
	Observer func(Progress)
}

// Progress is a periodic diagnostic snapshot of one chain.
type Progress struct {
	Chain       int
	Iteration   int // in-cycle, reset on restart
	Total       int // across restarts
	Restarts    int
	AvgDistance float64 // smoothed distance of the resampled candidate to candidate 0
	AvgChurn    float64 // smoothed distance between old and new candidate
	ChurnScore  float64 // AvgDistance*AvgChurn*100/l²
	Consensus   string
	MaxDistance int // consensus to farthest candidate
	SumDistance int // consensus to all candidates
}

// Result is the outcome of a search.
type Result struct {
	Motif       string
	Candidates  []string
	Positions   []int // start of each candidate within its sequence
	MaxDistance int
	Iterations  int
	Restarts    int
	Chain       int
	Accepted    bool
}

// Validate rejects inputs the sampler cannot run on.
func Validate(seqs []string, cfg Config) error {
	if len(seqs) < 2 {
		return fmt.Errorf("%w: need at least 2 sequences, got %d", ErrInvalidConfiguration, len(seqs))
	}
	if cfg.MotifLength <= 0 {
		return fmt.Errorf("%w: motif length must be > 0, got %d", ErrInvalidConfiguration, cfg.MotifLength)
	}
	if cfg.MaxMutations < 0 {
		return fmt.Errorf("%w: max mutations must be ≥ 0, got %d", ErrInvalidConfiguration, cfg.MaxMutations)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must be ≥ 0, got %d", ErrInvalidConfiguration, cfg.MaxIterations)
	}
	if cfg.MaxDuration < 0 {
		return fmt.Errorf("%w: max duration must be ≥ 0, got %s", ErrInvalidConfiguration, cfg.MaxDuration)
	}
	for i, s := range seqs {
		if len(s) < cfg.MotifLength {
			return fmt.Errorf("%w: motif length %d exceeds sequence %d length %d",
				ErrInvalidConfiguration, cfg.MotifLength, i, len(s))
		}
	}
	return nil
}
