package motif

// Step resamples the candidate for sequence h. Every length-l window of seq
// (l = len(mers[h])) is weighted against the first count candidates and
// the background profile, and one window start is drawn by roulette.
// ok is false when no window carries weight; the caller then keeps mers[h].
func Step(rng Rand, seq string, mers []string, h, count int, cf float64, p Profile) (start int, ok bool) {
	l := len(mers[h])
	if l == 0 || l > len(seq) {
		return 0, false
	}
	weights := make([]float64, len(seq)-l+1)
	for i := range weights {
		weights[i] = Weight(seq[i:i+l], mers, h, count, cf, p)
	}
	idx := Roulette(rng, weights)
	if idx == NoSelection {
		return 0, false
	}
	return idx, true
}
