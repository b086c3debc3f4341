package fullsort

import "cmp"

// Stats tallies the comparisons and swaps a sort performs, mirroring how
// package quickselect's Counters instruments Select. A nil *Stats is
// always safe: every helper below treats it as "don't bother counting".
type Stats struct {
	Comparisons uint64
	Swaps       uint64
}

func less[T cmp.Ordered](st *Stats, a, b T) bool {
	if st != nil {
		st.Comparisons++
	}
	return cmp.Less(a, b)
}

func swap[T cmp.Ordered](st *Stats, s []T, i, j int) {
	if st != nil {
		st.Swaps++
	}
	s[i], s[j] = s[j], s[i]
}
