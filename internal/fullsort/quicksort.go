// Package fullsort provides independent, general-purpose sort
// implementations used to verify the adaptive quickselect engine against
// a ground truth that shares none of its partitioning code.
package fullsort

import "cmp"

const (
	quickMinLen    = 32 // below this, insertion sort is faster.
	quickMinMed3   = 32 // below this, skip the median-of-3 pivot pick.
	quickMinRatio  = 16 // fraction of the range a pivot may miss by.
	quickMinMedMed = 128
)

// QuickSort sorts s using Hoare's quicksort, falling back to
// median-of-medians when a chosen pivot turns out to produce a lopsided
// partition. It uses O(n log n) expected time and O(log n) space. st may
// be nil.
func QuickSort[T cmp.Ordered](s []T, st *Stats) {
	for len(s) > quickMinLen {
		p := quickPartition(st, s)
		// Recursing into the smaller side conserves stack space.
		if p > len(s)/2 {
			QuickSort(s[p:], st)
			s = s[:p]
		} else {
			QuickSort(s[:p], st)
			s = s[p:]
		}
	}
	quickInsertion(st, s)
}

// quickPartition picks a pivot (the middle element for small slices, the
// median of three for bigger ones) and partitions s around it, falling
// back to median-of-medians if that pivot turns out to be a poor choice.
func quickPartition[T cmp.Ordered](st *Stats, s []T) int {
	last := len(s) - 1

	if last >= quickMinMed3 {
		mid := last / 2
		if less(st, s[last], s[0]) {
			swap(st, s, 0, last)
		}
		if less(st, s[mid], s[0]) {
			swap(st, s, 0, mid)
		}
		if less(st, s[last], s[mid]) {
			swap(st, s, last, mid)
		}
	}

	pivot := s[last/2]
	at := quickHoarePartition(st, s, pivot)

	if last >= quickMinMedMed {
		slack := last / quickMinRatio
		if !(slack < at && at < last-slack) {
			pivot = quickMedianOfMedians(st, s)
			at = quickHoarePartition(st, s, pivot)
		}
	}
	return at
}

// quickHoarePartition implements Hoare's partition scheme (not Lomuto).
func quickHoarePartition[T cmp.Ordered](st *Stats, s []T, pivot T) int {
	last := len(s) - 1
	lo, hi := 0, last
	for {
		for lo < last && less(st, s[lo], pivot) {
			lo++
		}
		for hi > 0 && less(st, pivot, s[hi]) {
			hi--
		}
		if lo > hi {
			return lo
		}
		swap(st, s, lo, hi)
		lo++
		hi--
	}
}

// quickInsertion is the base case for QuickSort: O(n^2) time, O(1) space,
// fast for small n.
func quickInsertion[T cmp.Ordered](st *Stats, s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(st, s[j], s[j-1]); j-- {
			swap(st, s, j, j-1)
		}
	}
}

// quickMedianOfMedians selects a good pivot for quickPartition: a value
// that lies within the middle 40% of s. It uses O(n) time and O(log n)
// space.
func quickMedianOfMedians[T cmp.Ordered](st *Stats, s []T) T {
	groups := 0
	for i := 0; i+5 < len(s); i += 5 {
		quickInsertion(st, s[i:i+5])
		swap(st, s, groups, i+2)
		groups++
	}
	if groups < 2 {
		return s[0]
	}
	return quickSelectMedian(st, s[:groups], groups/2)
}

// quickSelectMedian is a minimal quickselect used only to locate the
// median of the group medians above; the module's general-purpose
// order-statistic engine lives in package quickselect and is deliberately
// not reused here, so that fullsort stays an independent check.
func quickSelectMedian[T cmp.Ordered](st *Stats, s []T, k int) T {
	for k >= 4 {
		p := quickPartition(st, s)
		if p > k {
			s = s[:p]
		} else {
			s = s[p:]
			k -= p
		}
	}
	quickSelection(st, s, k+1)
	return s[k]
}

// quickSelection is selection sort, used as the base case above.
func quickSelection[T cmp.Ordered](st *Stats, s []T, k int) {
	for i := 0; i < k; i++ {
		smallest := i
		for j := i + 1; j < len(s); j++ {
			if less(st, s[j], s[smallest]) {
				smallest = j
			}
		}
		swap(st, s, i, smallest)
	}
}
