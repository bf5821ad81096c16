package cmdutil

import "sort"

// NonNucleotide returns the distinct symbols of seq outside A, C, G, T,
// sorted.
func NonNucleotide(seq string) []byte {
	var seen [256]bool
	var out []byte
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		switch b {
		case 'A', 'C', 'G', 'T':
			continue
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
