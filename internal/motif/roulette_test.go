package motif

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoulette_UniformWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 40000
	counts := make([]int, 4)
	for i := 0; i < n; i++ {
		idx := Roulette(rng, []float64{1, 1, 1, 1})
		require.GreaterOrEqual(t, idx, 0)
		counts[idx]++
	}
	for i, c := range counts {
		assert.InDeltaf(t, 0.25, float64(c)/n, 0.015, "index %d", i)
	}
}

func TestRoulette_Proportional(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 40000
	counts := make([]int, 3)
	for i := 0; i < n; i++ {
		counts[Roulette(rng, []float64{1, 0, 3})]++
	}
	assert.Zero(t, counts[1], "zero weight must never be drawn")
	assert.InDelta(t, 0.25, float64(counts[0])/n, 0.015)
	assert.InDelta(t, 0.75, float64(counts[2])/n, 0.015)
}

func TestRoulette_NoSelection(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	assert.Equal(t, NoSelection, Roulette(rng, nil))
	assert.Equal(t, NoSelection, Roulette(rng, []float64{}))
	assert.Equal(t, NoSelection, Roulette(rng, []float64{0, 0, 0}))
	assert.Equal(t, NoSelection, Roulette(rng, []float64{-1, math.NaN()}))
}

func TestRoulette_IgnoresUnusableWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		idx := Roulette(rng, []float64{math.Inf(1), -2, math.NaN(), 0.5})
		require.Equal(t, 3, idx)
	}
}

// zeroRand always draws the lower bound.
type zeroRand struct{}

func (zeroRand) Intn(int) int     { return 0 }
func (zeroRand) Float64() float64  { return 0 }

func TestRoulette_ZeroDrawSkipsLeadingZeroWeights(t *testing.T) {
	assert.Equal(t, 2, Roulette(zeroRand{}, []float64{0, 0, 5, 1}))
}

func TestStep_KeepsCandidateOnDegenerateWeights(t *testing.T) {
	// cf=0 and no column agreement: every window weighs zero
	mers := []string{"AAAA", "CCCC"}
	_, ok := Step(zeroRand{}, "CCCCCC", mers, 1, 2, 0, Profile{'A': 1})
	assert.False(t, ok)
}

func TestStep_EnumeratesLastWindow(t *testing.T) {
	// only the final window matches the peer candidate
	mers := []string{"GGGG", "AAAA"}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		st, ok := Step(rng, "AAAAGGGG", mers, 1, 2, 0, Profile{'A': 0.5, 'G': 0.5})
		require.True(t, ok)
		require.Equal(t, 4, st)
	}
}
