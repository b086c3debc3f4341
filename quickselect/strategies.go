package quickselect

import "cmp"

// medianOfNinthers builds a sample of Tukey ninthers spanning the whole
// range, recursively selects the sample's median, and expands the
// resulting partition to the whole range. Used when n falls roughly in
// the central two thirds of [0, len(s)).
func medianOfNinthers[T cmp.Ordered](cnt *Counters, s []T) int {
	length := len(s)

	var frac int
	switch {
	case length <= 1024:
		frac = length / 12
	case length <= 128*1024:
		frac = length / 64
	default:
		frac = length / 1024
	}

	pivot := frac / 2
	lo := length/2 - pivot
	hi := lo + frac
	gap := (length - 9*frac) / 4

	a := lo - 4*frac - gap
	b := hi + gap
	for i := lo; i < hi; i++ {
		ninther(cnt, s, a, i-frac, b, a+1, i, b+1, a+2, i+frac, b+2)
		a += 3
		b += 3
	}

	adaptiveQuickselect(cnt, s[lo:hi], pivot)
	return expandPartition(cnt, s, lo, lo+pivot, hi)
}

// medianOfMinima builds its sample from the minima of disjoint blocks
// drawn from the tail of the range, biasing the sample toward small
// values. Used when n is small relative to len(s) (6n <= len(s)),
// requiring 4n <= len(s).
func medianOfMinima[T cmp.Ordered](cnt *Counters, s []T, n int) int {
	length := len(s)
	subset := 2 * n
	computeMinOver := (length - subset) / subset

	for i := 0; i < subset; i++ {
		base := subset + i*computeMinOver
		min := base
		for j := base + 1; j < base+computeMinOver; j++ {
			if less(cnt, s[j], s[min]) {
				min = j
			}
		}
		if less(cnt, s[min], s[i]) {
			swap(cnt, s, i, min)
		}
	}

	adaptiveQuickselect(cnt, s[:subset], n)
	return expandPartition(cnt, s, 0, n, subset)
}

// medianOfMaxima is the mirror image of medianOfMinima: its sample is
// drawn from the maxima of disjoint blocks preceding the tail of the
// range, biasing the sample toward large values. Used when n is large
// relative to len(s) (6n >= 5*len(s)).
func medianOfMaxima[T cmp.Ordered](cnt *Counters, s []T, n int) int {
	length := len(s)
	subset := 2 * (length - n)
	subsetStart := length - subset
	computeMaxOver := subsetStart / subset

	for i := subsetStart; i < length; i++ {
		base := (i - subsetStart) * computeMaxOver
		max := base
		for j := base + 1; j < base+computeMaxOver; j++ {
			if less(cnt, s[max], s[j]) {
				max = j
			}
		}
		if less(cnt, s[i], s[max]) {
			swap(cnt, s, i, max)
		}
	}

	adaptiveQuickselect(cnt, s[subsetStart:], n-subsetStart)
	return expandPartition(cnt, s, subsetStart, n, length)
}
