// Command quickselect reads a binary file of little-endian float64s,
// selects its median in place, and reports the result. It is the thin,
// process-level front end around package quickselect; none of its
// behavior is part of that package's contract (see spec.md §6).
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/andralex/MedianOfNinthers/internal/epoch"
	"github.com/andralex/MedianOfNinthers/internal/fullsort"
	"github.com/andralex/MedianOfNinthers/quickselect"
)

// epochs matches the original harness's 21-run timing loop: enough
// repetitions to drop the two slowest as cold-cache/scheduler noise.
const epochs = 21

// Exit codes, as specified: argc (1), stat (2), bad file size (3), open
// (4), short read (5), close (6), median mismatch across epochs (7),
// verification failure against a full sort (8).
const (
	exitArgc           = 1
	exitStat           = 2
	exitBadSize        = 3
	exitOpen           = 4
	exitShortRead      = 5
	exitClose          = 6
	exitMedianMismatch = 7
	exitVerifyFailed   = 8
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) != 2 {
		return exitArgc
	}
	path := args[1]
	reshuffle := strings.Contains(path, "random")

	info, err := os.Stat(path)
	if err != nil {
		return exitStat
	}
	size := info.Size()
	if size == 0 || size%8 != 0 {
		return exitBadSize
	}

	f, err := os.Open(path)
	if err != nil {
		return exitOpen
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return exitShortRead
	}
	if err := f.Close(); err != nil {
		return exitClose
	}

	data := decodeFloat64s(buf)
	k := len(data) / 2
	rng := rand.New(rand.NewSource(1))

	var (
		median     float64
		haveMedian bool
		mismatch   bool
	)
	durations := epoch.Run(epochs, func() {
		v := append([]float64(nil), data...)
		quickselect.Select(v, k)
		switch {
		case !haveMedian:
			median, haveMedian = v[k], true
		case v[k] != median:
			mismatch = true
		}
		if reshuffle {
			rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
		}
	})
	if mismatch {
		return exitMedianMismatch
	}

	fmt.Fprintf(out, "size: %d\n", len(data))
	fmt.Fprintf(out, "median: %g\n", median)
	if reshuffle {
		fmt.Fprintln(out, "shuffled: 1")
	}
	fmt.Fprintf(out, "mean: %s\n", epoch.TrimmedMean(durations, epochDropSlowest))

	if !agreesWithFullSorts(data, k, median) {
		return exitVerifyFailed
	}
	return 0
}

// epochDropSlowest is how many of the slowest epoch timings TrimmedMean
// discards before averaging, matching the original harness's drop-2 rule
// out of 21 runs.
const epochDropSlowest = 2

// agreesWithFullSorts sorts three independent copies of data, one with
// each full sort in package fullsort, and checks that every one agrees
// with median at index k. Using three sorts that share no partitioning
// code with each other or with quickselect is a stronger check than
// trusting any single oracle.
func agreesWithFullSorts(data []float64, k int, median float64) bool {
	q := append([]float64(nil), data...)
	fullsort.QuickSort(q, nil)

	h := append([]float64(nil), data...)
	fullsort.HeapSort(h, nil)

	sh := append([]float64(nil), data...)
	fullsort.ShellSort(sh, nil)

	return q[k] == median && h[k] == median && sh[k] == median
}

// decodeFloat64s reinterprets buf (whose length is a multiple of 8) as a
// slice of little-endian float64s.
func decodeFloat64s(buf []byte) []float64 {
	data := make([]float64, len(buf)/8)
	for i := range data {
		bits := binary.LittleEndian.Uint64(buf[i*8 : i*8+8])
		data[i] = math.Float64frombits(bits)
	}
	return data
}
