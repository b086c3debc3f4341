package quickselect

import "cmp"

// sort3 fully sorts s[a], s[b], s[c] in place using at most three
// comparisons.
func sort3[T cmp.Ordered](cnt *Counters, s []T, a, b, c int) {
	if less(cnt, s[b], s[a]) { // b < a
		if less(cnt, s[c], s[b]) { // c < b < a
			swap(cnt, s, a, c) // a < b < c
		} else { // b < a, b <= c
			t := s[a]
			s[a] = s[b]
			if less(cnt, s[c], t) { // b <= c < a
				s[b] = s[c]
				s[c] = t
			} else { // b < a <= c
				s[b] = t
			}
		}
	} else if less(cnt, s[c], s[b]) { // a <= b, c < b
		t := s[c]
		s[c] = s[b]
		if less(cnt, t, s[a]) { // c < a < b
			s[b] = s[a]
			s[a] = t
		} else { // a <= c < b
			s[b] = t
		}
	}
}

// partition4 handles four distinct slots as the median-of-5 building
// block, treating a fifth, virtual element as +/- infinity.
//
// If leanRight is false, it swaps the lower median of s[a..d] into s[b],
// with s[a] <= s[b]. If leanRight is true, it swaps the upper median into
// s[c], with s[d] >= s[c].
func partition4[T cmp.Ordered](cnt *Counters, s []T, a, b, c, d int, leanRight bool) {
	if leanRight {
		// Consider a virtual fifth element, infinite.
		if less(cnt, s[c], s[a]) {
			swap(cnt, s, a, c)
		} // a <= c
		if less(cnt, s[d], s[b]) {
			swap(cnt, s, b, d)
		} // a <= c, b <= d
		if less(cnt, s[d], s[c]) {
			swap(cnt, s, c, d) // a <= d, b <= c < d
			swap(cnt, s, a, b) // b <= d, a <= c < d
		} // a <= c <= d, b <= d
		if less(cnt, s[c], s[b]) { // a <= c <= d, c < b <= d
			swap(cnt, s, b, c) // a <= b <= c <= d
		}
		return
	}

	// Consider a virtual fifth element, infinitely small.
	if less(cnt, s[c], s[a]) {
		swap(cnt, s, a, c)
	}
	if less(cnt, s[c], s[b]) {
		swap(cnt, s, b, c)
	}
	if less(cnt, s[d], s[a]) {
		swap(cnt, s, a, d)
	}
	if less(cnt, s[d], s[b]) {
		swap(cnt, s, b, d)
	} else if less(cnt, s[b], s[a]) {
		swap(cnt, s, a, b)
	}
}

// partition5 places the median of five distinct slots s[a..e] in s[c],
// with s[a], s[b] <= s[c] <= s[d], s[e]. Uses at most 6 comparisons.
func partition5[T cmp.Ordered](cnt *Counters, s []T, a, b, c, d, e int) {
	if less(cnt, s[c], s[a]) {
		swap(cnt, s, a, c)
	}
	if less(cnt, s[d], s[b]) {
		swap(cnt, s, b, d)
	}
	if less(cnt, s[d], s[c]) {
		swap(cnt, s, c, d)
		swap(cnt, s, a, b)
	}
	if less(cnt, s[e], s[b]) {
		swap(cnt, s, b, e)
	}
	if less(cnt, s[e], s[c]) {
		swap(cnt, s, c, e)
		if less(cnt, s[c], s[a]) {
			swap(cnt, s, a, c)
		}
	} else if less(cnt, s[c], s[b]) {
		swap(cnt, s, b, c)
	}
}
