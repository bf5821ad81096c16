package motif

// Likelihood is the probability of s under the background profile p.
// Lower values mean a more distinctive window.
func Likelihood(s string, p Profile) float64 {
	v := 1.0
	for i := 0; i < len(s); i++ {
		v *= p.Prob(s[i])
	}
	return v
}

// Similarity scores how well s agrees, column by column, with the first
// count candidates of mers other than mers[exclude]. Each column's agreement
// fraction is clamped below by cf before the columns are multiplied.
func Similarity(s string, mers []string, exclude, count int, cf float64) float64 {
	if count > len(mers) {
		count = len(mers)
	}
	others := count - 1
	if exclude < 0 || exclude >= count {
		others = count
	}
	if others <= 0 {
		return 0
	}
	v := 1.0
	for x := 0; x < len(s); x++ {
		match := 0
		for y := 0; y < count; y++ {
			if y == exclude || x >= len(mers[y]) {
				continue
			}
			if mers[y][x] == s[x] {
				match++
			}
		}
		f := float64(match) / float64(others)
		if f < cf {
			f = cf
		}
		v *= f
	}
	return v
}

// Weight is the resampling weight of s: peer agreement over background
// likelihood.
func Weight(s string, mers []string, exclude, count int, cf float64, p Profile) float64 {
	lik := Likelihood(s, p)
	if lik <= 0 {
		return 0
	}
	return Similarity(s, mers, exclude, count, cf) / lik
}
