package quickselect

import "cmp"

// Counters accumulates observational instrumentation for a single Select
// call: the number of element comparisons, the number of swaps performed,
// and the number of those swaps that exchanged two equal elements (and so
// did no useful work). Counters never affects control flow; it must be
// reset by the caller between runs.
type Counters struct {
	Comparisons uint64
	Swaps       uint64
	WastedSwaps uint64
}

// less reports whether a < b, optionally tallying the comparison.
func less[T cmp.Ordered](c *Counters, a, b T) bool {
	if c != nil {
		c.Comparisons++
	}
	return cmp.Less(a, b)
}

// swap exchanges s[i] and s[j], optionally tallying the swap (and whether
// it exchanged two equal values, which is wasted work a smarter pivot
// choice would have avoided).
func swap[T cmp.Ordered](c *Counters, s []T, i, j int) {
	if c != nil {
		c.Swaps++
		if !cmp.Less(s[i], s[j]) && !cmp.Less(s[j], s[i]) {
			c.WastedSwaps++
		}
	}
	s[i], s[j] = s[j], s[i]
}
