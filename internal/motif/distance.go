package motif

// Hamming counts mismatched positions of a and b. Any length difference is
// counted as mismatches.
func Hamming(a, b string) int {
	n, d := len(a), 0
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	if len(a) > len(b) {
		d += len(a) - len(b)
	} else {
		d += len(b) - len(a)
	}
	return d
}

// MaxDistance is the largest Hamming distance from ref to any of mers.
func MaxDistance(ref string, mers []string) int {
	md := 0
	for _, m := range mers {
		if d := Hamming(ref, m); d > md {
			md = d
		}
	}
	return md
}

// SumDistance sums the distances from list[0] to every element of list.
func SumDistance(list []string) int {
	if len(list) == 0 {
		return 0
	}
	s := 0
	for _, m := range list {
		s += Hamming(list[0], m)
	}
	return s
}
