package quickselect

import "cmp"

// median3Index returns which of a, b, c indexes the median value of
// s[a], s[b], s[c]. It does not mutate s.
func median3Index[T cmp.Ordered](cnt *Counters, s []T, a, b, c int) int {
	if less(cnt, s[b], s[a]) { // b < a
		if less(cnt, s[b], s[c]) { // b < a, b < c
			if less(cnt, s[c], s[a]) {
				return c
			}
			return a
		}
	} else if less(cnt, s[c], s[b]) { // a <= b, c < b
		if less(cnt, s[c], s[a]) {
			return a
		}
		return c
	}
	return b
}

// nintherIndex returns the index, among i1..i9, of the median of the
// medians of the triples (i1,i2,i3), (i4,i5,i6), (i7,i8,i9).
func nintherIndex[T cmp.Ordered](cnt *Counters, s []T, i1, i2, i3, i4, i5, i6, i7, i8, i9 int) int {
	return median3Index(cnt, s,
		median3Index(cnt, s, i1, i2, i3),
		median3Index(cnt, s, i4, i5, i6),
		median3Index(cnt, s, i7, i8, i9),
	)
}

// ninther computes Tukey's ninther: the median of the medians of the
// triples (i1,i2,i3), (i4,i5,i6), (i7,i8,i9), and swaps it into s[i5].
func ninther[T cmp.Ordered](cnt *Counters, s []T, i1, i2, i3, i4, i5, i6, i7, i8, i9 int) {
	swap(cnt, s, i5, nintherIndex(cnt, s, i1, i2, i3, i4, i5, i6, i7, i8, i9))
}
