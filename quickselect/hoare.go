package quickselect

import "cmp"

// pivotPartition moves s[k] to s[0] and runs a two-pointer Hoare partition
// around it. The left cursor advances while elements are less than the
// pivot (stopping on >=); the right cursor retreats while elements are
// greater than the pivot (stopping on <=). Because both cursors stop on
// elements equal to the pivot, equal-pivot elements can land on either side, which is what keeps the algorithm linear
// on inputs with many duplicates. Returns the pivot's final index.
func pivotPartition[T cmp.Ordered](cnt *Counters, s []T, k int) int {
	swap(cnt, s, 0, k)
	lo, hi := 1, len(s)-1
outer:
	for {
		for {
			if lo > hi {
				break outer
			}
			if !less(cnt, s[lo], s[0]) {
				break
			}
			lo++
		}
		// found the left bound: s[lo] >= s[0]
		for less(cnt, s[0], s[hi]) {
			hi--
		}
		if lo >= hi {
			break
		}
		// found the right bound: s[hi] <= s[0]
		swap(cnt, s, lo, hi)
		lo++
		hi--
	}
	lo--
	swap(cnt, s, lo, 0)
	return lo
}
