// Copyright 2023 The go-quicker Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorts implements fast in-place sorting for slices.
//
// The main entry points, Sort and SortFunc, run a hybrid introsort:
// a dual-pivot quicksort that switches to a three-way fat partition on
// duplicate-heavy ranges, insertion sort below a small cutoff, and
// heapsort once the recursion budget of ⌈log₂ n⌉·3/2 partitions is
// spent. The sort is not stable; SortStable and SortStableFunc are
// provided for callers that need stability.
//
// SortFloat64s and SortFloat32s order floating-point slices under the
// IEEE-754 total order, which the generic entry points cannot do: NaN
// compares false against everything, so a comparator built from < is
// not a weak ordering. See those functions for the NaN and signed-zero
// policy.
package sorts

import "golang.org/x/exp/constraints"

// Sort sorts a slice of any ordered type in ascending order.
// Elements are reordered in place; no auxiliary storage proportional
// to len(x) is allocated.
//
// For floating-point slices containing NaN values the resulting order
// is unspecified (NaN is unordered under <); use SortFloat64s or
// SortFloat32s instead.
func Sort[E constraints.Ordered](x []E) {
	sortFast(x)
}

// SortFunc sorts the slice x in the order determined by the cmp
// function: cmp(a, b) must return a negative number when a is less
// than b, zero when equal, and a positive number when greater.
//
// cmp is assumed to be a consistent weak ordering; it is not verified.
// An inconsistent cmp leaves x in an unspecified permutation of its
// original contents, but SortFunc still terminates and never indexes
// out of range.
func SortFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).sortFast(x)
}

// SortStable sorts a slice of any ordered type in ascending order,
// keeping the original order of equal elements.
func SortStable[E constraints.Ordered](x []E) {
	sortStable(x)
}

// SortStableFunc sorts the slice x as SortFunc does, keeping the
// original order of elements that cmp reports as equal.
func SortStableFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).sortStable(x)
}

// InsertionSort sorts x in place with a shift-based insertion sort.
// It is quadratic in len(x) and only sensible for short slices, where
// its low overhead beats the hybrid sort.
func InsertionSort[E constraints.Ordered](x []E) {
	simpleSort(x)
}

// InsertionSortFunc is the comparator form of InsertionSort.
func InsertionSortFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).simpleSort(x)
}

// HeapSort sorts x in place in O(n log n) worst-case time and O(1)
// auxiliary space. It is the fallback the hybrid sort degrades to, and
// is exported for callers that want the guaranteed bound regardless of
// input shape.
func HeapSort[E constraints.Ordered](x []E) {
	heapSort(x)
}

// HeapSortFunc is the comparator form of HeapSort.
func HeapSortFunc[E any](x []E, cmp func(a, b E) int) {
	cmpFunc[E](cmp).heapSort(x)
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	for i := len(x) - 1; i > 0; i-- {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether x is sorted in the order determined by
// cmp.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}
