package motif

// Consensus returns the per-column majority symbol of the first l columns of
// mers. Equal counts resolve to the smallest symbol.
func Consensus(mers []string, l int) string {
	out := make([]byte, l)
	col := make([]byte, 0, len(mers))
	for x := 0; x < l; x++ {
		col = col[:0]
		for _, m := range mers {
			if x < len(m) {
				col = append(col, m[x])
			}
		}
		var (
			best string
			most int
		)
		for sym, n := range Frequencies(string(col), 1) {
			if n > most || (n == most && sym < best) {
				best, most = sym, n
			}
		}
		if most == 0 {
			out[x] = 'N'
			continue
		}
		out[x] = best[0]
	}
	return string(out)
}
