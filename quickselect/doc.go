// Package quickselect implements deterministic, worst-case-linear
// order-statistic selection: rearranging a slice in place so that the
// element at index k is the one that would occupy position k after a full
// sort, with every earlier element no greater and every later element no
// smaller.
//
// The engine is adaptive: depending on where k falls relative to the
// length of the slice, it samples the slice one of three ways (a "ninther"
// sample near the center, a block-minima sample near the start, a
// block-maxima sample near the end) to build a high-quality pivot in
// linear time, then finishes the partition by expanding outward from the
// already-partitioned sample instead of redoing that work. See
// Alexandrescu, "Fast Deterministic Selection" (2017).
package quickselect
