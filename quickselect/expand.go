package quickselect

import "cmp"

// expandPartitionRight completes a Hoare partition around s[0] given that
// s[0..hi] already contains no elements smaller than s[0], by absorbing
// the tail range s[hi..rite] into the partition. Returns the pivot's new
// index within s.
func expandPartitionRight[T cmp.Ordered](cnt *Counters, s []T, hi, rite int) int {
	pivot := 0
	for ; pivot < hi; rite-- {
		if rite == hi {
			goto done
		}
		if !less(cnt, s[rite], s[0]) {
			continue
		}
		pivot++
		swap(cnt, s, rite, pivot)
	}
	// Second loop: make rite and pivot meet.
	for ; rite > pivot; rite-- {
		if !less(cnt, s[rite], s[0]) {
			continue
		}
		for rite > pivot {
			pivot++
			if less(cnt, s[0], s[pivot]) {
				swap(cnt, s, rite, pivot)
				break
			}
		}
	}
done:
	swap(cnt, s, 0, pivot)
	return pivot
}

// expandPartitionLeft completes a Hoare partition around s[pivot] given
// that s[lo..pivot] already contains no elements greater than s[pivot], by
// absorbing the head range s[0..lo] into the partition. Returns the
// pivot's new index within s.
func expandPartitionLeft[T cmp.Ordered](cnt *Counters, s []T, lo, pivot int) int {
	left := 0
	oldPivot := pivot
	for ; lo < pivot; left++ {
		if left == lo {
			goto done
		}
		if !less(cnt, s[oldPivot], s[left]) {
			continue
		}
		pivot--
		swap(cnt, s, left, pivot)
	}
	// Second loop: make left and pivot meet.
	for ; ; left++ {
		if left == pivot {
			break
		}
		if !less(cnt, s[oldPivot], s[left]) {
			continue
		}
		for {
			if left == pivot {
				goto done
			}
			pivot--
			if less(cnt, s[pivot], s[oldPivot]) {
				swap(cnt, s, left, pivot)
				break
			}
		}
	}
done:
	swap(cnt, s, oldPivot, pivot)
	return pivot
}

// expandPartition extends a Hoare partition from an already-partitioned
// central window s[lo..hi) (known to contain no elements greater than
// s[pivot] in s[lo..pivot] and none smaller than s[pivot] in s[pivot..hi))
// to the entire range s[0..len(s)). Returns the pivot's final index.
func expandPartition[T cmp.Ordered](cnt *Counters, s []T, lo, pivot, hi int) int {
	hiIdx := hi - 1
	right := len(s) - 1
	left := 0
	for {
		for {
			if left == lo {
				return pivot + expandPartitionRight(cnt, s[pivot:], hiIdx-pivot, right-pivot)
			}
			if less(cnt, s[pivot], s[left]) { // s[left] > s[pivot]
				break
			}
			left++
		}
		for {
			if right == hiIdx {
				return left + expandPartitionLeft(cnt, s[left:], lo-left, pivot-left)
			}
			if !less(cnt, s[pivot], s[right]) { // s[pivot] >= s[right]
				break
			}
			right--
		}
		swap(cnt, s, left, right)
		left++
		right--
	}
}
