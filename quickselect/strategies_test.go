package quickselect

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkFullPartition(t *testing.T, before, s []int, pivot int) {
	t.Helper()
	n := len(s)
	require.GreaterOrEqual(t, pivot, 0)
	require.Less(t, pivot, n)
	for i := 0; i < pivot; i++ {
		assert.LessOrEqual(t, s[i], s[pivot])
	}
	for i := pivot + 1; i < n; i++ {
		assert.GreaterOrEqual(t, s[i], s[pivot])
	}
	assertSameMultiset(t, before, s)
}

func randSlice(rng *rand.Rand, n, mod int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(mod)
	}
	return s
}

func TestMedianOfMinima(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		length := 60 + rng.Intn(200)
		n := 1 + rng.Intn(length/6) // satisfies 6n <= length
		s := randSlice(rng, length, 50)
		before := append([]int(nil), s...)
		pivot := medianOfMinima(nil, s, n)
		checkFullPartition(t, before, s, pivot)
	}
}

func TestMedianOfMaxima(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 100; trial++ {
		length := 60 + rng.Intn(200)
		// Choose n so that 6n >= 5*length, i.e. n >= ceil(5*length/6).
		n := (5*length + 5) / 6
		if n >= length {
			n = length - 1
		}
		s := randSlice(rng, length, 50)
		before := append([]int(nil), s...)
		pivot := medianOfMaxima(nil, s, n)
		checkFullPartition(t, before, s, pivot)
	}
}

func TestMedianOfNinthers(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		length := 17 + rng.Intn(500)
		s := randSlice(rng, length, 50)
		before := append([]int(nil), s...)
		pivot := medianOfNinthers(nil, s)
		checkFullPartition(t, before, s, pivot)
	}
}
