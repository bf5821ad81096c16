package motif

// Frequencies counts every length-k window of s (overlapping).
// k <= 0 or k > len(s) yields an empty map.
func Frequencies(s string, k int) map[string]int {
	out := make(map[string]int)
	if k <= 0 || k > len(s) {
		return out
	}
	for i := 0; i+k <= len(s); i++ {
		out[s[i:i+k]]++
	}
	return out
}

// symbolCounts is Frequencies(s, 1) keyed by byte.
func symbolCounts(s string) map[byte]int {
	out := make(map[byte]int, 4)
	for w, n := range Frequencies(s, 1) {
		out[w[0]] = n
	}
	return out
}
