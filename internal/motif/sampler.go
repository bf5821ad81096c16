// internal/motif/sampler.go
package motif

import (
	"context"
	"fmt"
	"time"
)

// Sampler holds a validated sequence set and its background profiles.
// It is immutable after New; concurrent Search calls are safe as each call
// owns its candidate set.
type Sampler struct {
	seqs     []string
	cfg      Config
	profiles []Profile
}

// New validates seqs and cfg and builds the leave-one-out profiles.
func New(ctx context.Context, seqs []string, cfg Config) (*Sampler, error) {
	if err := Validate(seqs, cfg); err != nil {
		return nil, err
	}
	profiles, err := BuildProfiles(ctx, seqs)
	if err != nil {
		return nil, err
	}
	return &Sampler{seqs: append([]string(nil), seqs...), cfg: cfg, profiles: profiles}, nil
}

// Search runs New followed by a single chain.
func Search(ctx context.Context, seqs []string, cfg Config, rng Rand) (Result, error) {
	s, err := New(ctx, seqs, cfg)
	if err != nil {
		return Result{}, err
	}
	return s.Search(ctx, rng)
}

// Profile returns the background profile of sequence i.
func (s *Sampler) Profile(i int) Profile { return s.profiles[i] }

// Config returns the configuration the sampler was built with.
func (s *Sampler) Config() Config { return s.cfg }

// Search runs one chain until a consensus within MaxMutations of every
// candidate is found. Without a budget in Config it only returns on success
// or when ctx is done. An exhausted budget returns the latest consensus with
// Accepted=false and an error wrapping ErrNotConverged.
func (s *Sampler) Search(ctx context.Context, rng Rand) (Result, error) {
	return s.run(ctx, rng, 0)
}

// chain is the mutable state of one search.
type chain struct {
	s     *Sampler
	rng   Rand
	id    int
	l     int
	mers  []string
	pos   []int
	seed  int
	it    int
	total int
	rst   int
	ad    float64
	ad2   float64
}

func (s *Sampler) run(ctx context.Context, rng Rand, id int) (Result, error) {
	c := &chain{
		s:    s,
		rng:  rng,
		id:   id,
		l:    s.cfg.MotifLength,
		mers: make([]string, len(s.seqs)),
		pos:  make([]int, len(s.seqs)),
	}
	var deadline time.Time
	if s.cfg.MaxDuration > 0 {
		deadline = time.Now().Add(s.cfg.MaxDuration)
	}

	c.seed = rng.Intn(len(s.seqs[0]))
	c.seedCandidates()

	n := len(s.seqs)
	for {
		if c.total%ProgressInterval == 0 {
			if err := ctx.Err(); err != nil {
				return c.result(false), err
			}
			if !deadline.IsZero() && time.Now().After(deadline) {
				return c.result(false), fmt.Errorf("%w: time budget %s exhausted after %d iterations",
					ErrNotConverged, s.cfg.MaxDuration, c.total)
			}
		}
		if s.cfg.MaxIterations > 0 && c.total >= s.cfg.MaxIterations {
			return c.result(false), fmt.Errorf("%w: iteration budget %d exhausted",
				ErrNotConverged, s.cfg.MaxIterations)
		}

		c.it++
		c.total++
		r := rng.Intn(n)
		old := c.mers[r]
		cf := MaxCoolingFactor * float64(max(0, CycleLength-c.it)) / CycleLength
		c.resample(r, n, cf)

		d := Hamming(old, c.mers[r])
		d2 := Hamming(c.mers[0], c.mers[r])
		c.ad = (c.ad*SmoothingWeight + float64(d2)) / (SmoothingWeight + 1)
		c.ad2 = (c.ad2*SmoothingWeight + float64(d)) / (SmoothingWeight + 1)

		settled := c.ad2 < ConvergenceThreshold
		if settled {
			cons := Consensus(c.mers, c.l)
			if MaxDistance(cons, c.mers) <= s.cfg.MaxMutations {
				return c.result(true), nil
			}
		}
		if settled || c.it > 2*CycleLength {
			c.restart()
		}
		if c.it%ProgressInterval == 0 && s.cfg.Observer != nil {
			s.cfg.Observer(c.progress())
		}
	}
}

// seedCandidates takes the seed window of sequence 0 and grows the candidate
// set one sequence at a time, each refinement seeing only the prefix already
// seeded.
func (c *chain) seedCandidates() {
	seqs := c.s.seqs
	start := c.seed % (len(seqs[0]) - c.l + 1)
	w := seqs[0][start : start+c.l]
	for i := range c.mers {
		c.mers[i] = w
		c.pos[i] = start
	}
	for h := 1; h < len(seqs); h++ {
		if !c.resample(h, h+1, InitCoolingFactor) {
			// keep mers[h] a window of its own sequence
			st := start % (len(seqs[h]) - c.l + 1)
			c.mers[h] = seqs[h][st : st+c.l]
			c.pos[h] = st
		}
	}
}

func (c *chain) resample(h, count int, cf float64) bool {
	seq := c.s.seqs[h]
	st, ok := Step(c.rng, seq, c.mers, h, count, cf, c.s.profiles[h])
	if !ok {
		return false
	}
	c.mers[h] = seq[st : st+c.l]
	c.pos[h] = st
	return true
}

func (c *chain) restart() {
	c.it = 0
	c.rst++
	c.ad = float64(c.l)
	c.ad2 = float64(c.l)
	c.seed = (c.seed + c.rng.Intn(len(c.s.seqs[0]))) % (len(c.s.seqs[0]) - c.l + 1)
	c.seedCandidates()
}

func (c *chain) progress() Progress {
	cons := Consensus(c.mers, c.l)
	all := append([]string{cons}, c.mers...)
	return Progress{
		Chain:       c.id,
		Iteration:   c.it,
		Total:       c.total,
		Restarts:    c.rst,
		AvgDistance: c.ad,
		AvgChurn:    c.ad2,
		ChurnScore:  c.ad * c.ad2 * 100 / float64(c.l*c.l),
		Consensus:   cons,
		MaxDistance: MaxDistance(cons, c.mers),
		SumDistance: SumDistance(all),
	}
}

func (c *chain) result(accepted bool) Result {
	cons := Consensus(c.mers, c.l)
	return Result{
		Motif:       cons,
		Candidates:  append([]string(nil), c.mers...),
		Positions:   append([]int(nil), c.pos...),
		MaxDistance: MaxDistance(cons, c.mers),
		Iterations:  c.total,
		Restarts:    c.rst,
		Chain:       c.id,
		Accepted:    accepted,
	}
}
