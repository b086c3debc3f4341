package fullsort

import "cmp"

// shellGaps precomputes the Gonnet & Baeza-Yates gap sequence (roughly
// gap/2.2 each step) for a slice of length n, narrowing to a final gap
// of 1.
func shellGaps(n int) []int {
	var gaps []int
	for gap := n; gap > 1; {
		gap = int(max(1, (uint64(gap)*5-1)/11))
		gaps = append(gaps, gap)
	}
	return gaps
}

// ShellSort sorts s by gapped insertion passes over the sequence from
// shellGaps. It shares no partitioning logic with QuickSort or HeapSort,
// which is why cmd/quickselect recruits all three as mutually
// independent checks on Select's result. st may be nil.
func ShellSort[T cmp.Ordered](s []T, st *Stats) {
	for _, gap := range shellGaps(len(s)) {
		shellPass(st, s, gap)
	}
}

// shellPass runs one gapped insertion pass: every element at or past
// index gap is walked back through its gap-spaced sublist until it
// finds a predecessor no greater than itself.
func shellPass[T cmp.Ordered](st *Stats, s []T, gap int) {
	for i := gap; i < len(s); i++ {
		for j := i; j >= gap && less(st, s[j], s[j-gap]); j -= gap {
			swap(st, s, j, j-gap)
		}
	}
}
