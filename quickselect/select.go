package quickselect

import "cmp"

// Select uses the adaptive quickselect algorithm to find the k-th smallest
// element of s, partially rearranging s around it, and returning s[k]. It
// uses O(len(s)) time, worst case, and O(log(log(len(s)))) space.
func Select[T cmp.Ordered](s []T, k int) T {
	return SelectCounted(s, k, nil)
}

// SelectCounted behaves exactly like Select, but tallies comparisons and
// swaps into cnt (which may be nil, in which case no tallying happens).
// The caller is responsible for resetting cnt between calls.
func SelectCounted[T cmp.Ordered](s []T, k int, cnt *Counters) T {
	// This does a bounds check before making any changes to the slice.
	_ = s[k]

	if len(s) > 1 {
		adaptiveQuickselect(cnt, s, k)
	}
	return s[k]
}

// adaptiveQuickselect is the non-recursive driver: at each iteration it
// picks a pivot strategy based on where n falls within [0, len(s)),
// partitions around the chosen pivot, and tail-eliminates the side of the
// partition that doesn't contain n.
func adaptiveQuickselect[T cmp.Ordered](cnt *Counters, s []T, n int) {
	for {
		length := len(s)

		if n == 0 {
			pivot := 0
			for i := 1; i < length; i++ {
				if less(cnt, s[i], s[pivot]) {
					pivot = i
				}
			}
			swap(cnt, s, 0, pivot)
			return
		}
		if n+1 == length {
			pivot := 0
			for i := 1; i < length; i++ {
				if less(cnt, s[pivot], s[i]) {
					pivot = i
				}
			}
			swap(cnt, s, pivot, length-1)
			return
		}

		var pivot int
		switch {
		case length <= 16:
			pivot = pivotPartition(cnt, s, n)
		case 6*n <= length:
			pivot = medianOfMinima(cnt, s, n)
		case 6*n >= 5*length:
			pivot = medianOfMaxima(cnt, s, n)
		default:
			pivot = medianOfNinthers(cnt, s)
		}

		switch {
		case pivot == n:
			return
		case pivot > n:
			s = s[:pivot]
		default:
			s = s[pivot+1:]
			n -= pivot + 1
		}
	}
}
