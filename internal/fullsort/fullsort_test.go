package fullsort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zeros(n int) []int {
	return make([]int, n)
}

func sorted(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func reversed(n int) []int {
	s := sorted(n)
	slices.Reverse(s)
	return s
}

func permutation(n int) []int {
	return rand.New(rand.NewSource(int64(n))).Perm(n)
}

func bits(n int) []int {
	s := permutation(n)
	for i := range s {
		s[i] &= 1
	}
	return s
}

func pipeorgan(n int) []int {
	return append(sorted(n/2), reversed(n/2)...)
}

func families(n int) map[string][]int {
	return map[string][]int{
		"zeros":       zeros(n),
		"sorted":      sorted(n),
		"reversed":    reversed(n),
		"bits":        bits(n),
		"pipeorgan":   pipeorgan(n),
		"permutation": permutation(n),
	}
}

func TestQuickSort(t *testing.T) {
	for name, list := range families(20_000) {
		t.Run(name, func(t *testing.T) {
			s := append([]int(nil), list...)
			var st Stats
			QuickSort(s, &st)
			assert.True(t, slices.IsSorted(s))
			assert.Positive(t, st.Comparisons)
		})
	}
}

func TestHeapSort(t *testing.T) {
	for name, list := range families(20_000) {
		t.Run(name, func(t *testing.T) {
			s := append([]int(nil), list...)
			var st Stats
			HeapSort(s, &st)
			assert.True(t, slices.IsSorted(s))
			assert.Positive(t, st.Comparisons)
		})
	}
}

func TestShellSort(t *testing.T) {
	for name, list := range families(20_000) {
		t.Run(name, func(t *testing.T) {
			s := append([]int(nil), list...)
			var st Stats
			ShellSort(s, &st)
			assert.True(t, slices.IsSorted(s))
			assert.Positive(t, st.Comparisons)
		})
	}
}

// TestSortsAcceptNilStats confirms every sort tolerates a nil *Stats,
// which is how cmd/quickselect calls them: it only cares about the
// resulting order, not the operation counts.
func TestSortsAcceptNilStats(t *testing.T) {
	for name, list := range families(2_000) {
		t.Run(name, func(t *testing.T) {
			q := append([]int(nil), list...)
			QuickSort(q, nil)
			assert.True(t, slices.IsSorted(q))

			h := append([]int(nil), list...)
			HeapSort(h, nil)
			assert.True(t, slices.IsSorted(h))

			sh := append([]int(nil), list...)
			ShellSort(sh, nil)
			assert.True(t, slices.IsSorted(sh))
		})
	}
}

// TestSortsAgree cross-verifies all three independent sorts against each
// other and against the standard library. cmd/quickselect relies on
// exactly this property: it runs all three over an independent copy of
// its input and treats any disagreement, or any disagreement with
// Select's own result, as a verification failure.
func TestSortsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(5000)
		base := make([]int, n)
		for i := range base {
			base[i] = rng.Intn(1000)
		}

		want := append([]int(nil), base...)
		slices.Sort(want)

		q := append([]int(nil), base...)
		QuickSort(q, nil)
		h := append([]int(nil), base...)
		HeapSort(h, nil)
		sh := append([]int(nil), base...)
		ShellSort(sh, nil)

		assert.Equal(t, want, q)
		assert.Equal(t, want, h)
		assert.Equal(t, want, sh)
	}
}
