package fullsort

import "cmp"

// HeapSort sorts s by building a max-heap and repeatedly moving its root
// to the back. It uses O(n log n) time and O(1) space, and shares no
// code with QuickSort or ShellSort, which makes it a useful independent
// cross-check for them. st may be nil.
func HeapSort[T cmp.Ordered](s []T, st *Stats) {
	heapBuild(st, s)
	for end := len(s) - 1; end > 0; end-- {
		swap(st, s, 0, end)
		heapSink(st, s[:end], 0)
	}
}

// heapBuild arranges s into a binary max-heap bottom-up: every subtree
// rooted at or past len(s)/2 is already a trivial one-element heap, so
// sinking only needs to start above that.
func heapBuild[T cmp.Ordered](st *Stats, s []T) {
	for root := len(s)/2 - 1; root >= 0; root-- {
		heapSink(st, s, root)
	}
}

// heapSink pushes the element at root down into its children until both
// the max-heap property holds or root is a leaf.
func heapSink[T cmp.Ordered](st *Stats, s []T, root int) {
	for {
		child := heapLargerChild(st, s, root)
		if child < 0 || !less(st, s[root], s[child]) {
			return
		}
		swap(st, s, root, child)
		root = child
	}
}

// heapLargerChild returns the index of root's larger child, or -1 if
// root has no children.
func heapLargerChild[T cmp.Ordered](st *Stats, s []T, root int) int {
	l, r := 2*root+1, 2*root+2
	switch {
	case l >= len(s):
		return -1
	case r >= len(s):
		return l
	case less(st, s[l], s[r]):
		return r
	default:
		return l
	}
}
