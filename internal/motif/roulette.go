package motif

import "math"

// NoSelection is returned by Roulette when nothing can be drawn.
const NoSelection = -1

// Rand is the random source threaded through the sampler.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Roulette draws an index with probability proportional to its weight.
// Negative, NaN and infinite weights count as zero. An empty list or a zero
// total yields NoSelection.
func Roulette(rng Rand, weights []float64) int {
	total := 0.0
	last := NoSelection
	for i, w := range weights {
		if usable(w) {
			total += w
			last = i
		}
	}
	if total <= 0 || math.IsInf(total, 0) {
		return NoSelection
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if !usable(w) {
			continue
		}
		acc += w
		if acc >= r {
			return i
		}
	}
	// rounding can leave acc a hair below r
	return last
}

func usable(w float64) bool {
	return w > 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
