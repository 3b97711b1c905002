// Copyright 2023 The go-quicker Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "golang.org/x/exp/constraints"

// Keep this file and sort_func.go in sync: sort_func.go mirrors the
// functions below with operator comparisons replaced by cmpFunc calls.

const (
	// Ranges at or below this length are insertion sorted. Correctness
	// does not depend on the exact value, only the crossover point does.
	maxInsertion = 24

	// Partition budget multiplier, in halves: a slice of length n gets
	// log2Ceil(n)*3/2 partitions before the sort falls back to heapsort.
	budgetNum, budgetDen = 3, 2
)

func less[E constraints.Ordered](a, b E) bool {
	return a < b
}

func sortFast[E constraints.Ordered](list []E) {
	size := len(list)
	if size <= maxInsertion {
		simpleSort(list)
		return
	}
	chance := log2Ceil(uint(size)) * budgetNum / budgetDen
	if size > 50 {
		// Probe three spaced triples. If all medians agree the input
		// looks sorted or reversed, verify with one linear scan and
		// skip (or just reverse) the whole sort.
		a, b, c := size/4, size/2, size*3/4
		a, ha := median(list, a-1, a, a+1)
		b, hb := median(list, b-1, b, b+1)
		c, hc := median(list, c-1, c, c+1)
		_, hint := median(list, a, b, c)
		hint &= ha & hb & hc

		if hint == hintReversed {
			reverse(list)
			hint = hintSorted
		}
		if hint == hintSorted {
			for i := 1; i < size; i++ {
				if less(list[i], list[i-1]) {
					hint = 0
					break
				}
			}
			if hint == hintSorted {
				return
			}
		}
	}
	introSort(list, chance)
}

// median returns the index holding the median of list[a], list[b],
// list[c], plus a hint when the triple itself is already ascending or
// descending.
func median[E constraints.Ordered](list []E, a, b, c int) (int, uint8) {
	if less(list[b], list[a]) {
		if less(list[c], list[b]) {
			return b, hintReversed
		} else if less(list[c], list[a]) {
			return c, 0
		} else {
			return a, 0
		}
	} else {
		if less(list[c], list[a]) {
			return a, 0
		} else if less(list[c], list[b]) {
			return c, 0
		} else {
			return b, hintSorted
		}
	}
}

// introSort is the quicksort driver. Each pass selects five pivot
// candidates, partitions around one or two of them, recurses into the
// smaller sub-ranges and loops on the largest, so the call stack stays
// logarithmic however skewed the splits are. When chance runs out the
// remaining range is heapsorted instead.
func introSort[E constraints.Ordered](list []E, chance int) {
	for len(list) > maxInsertion {
		if chance--; chance < 0 {
			heapSort(list)
			return
		}

		size := len(list)
		m, s := size/2, size/4
		i1, i2, i3, i4, i5 := sortIndex5(list, m-s, m-1, m, m+1, m+s)

		if less(list[i1], list[i2]) && less(list[i2], list[i3]) &&
			less(list[i3], list[i4]) && less(list[i4], list[i5]) {
			// All candidates distinct: the range has variation, so a
			// dual-pivot pass splits it three ways.
			l, r := triPartition(list, i1, i2, i3, i4, i5)
			left, mid, right := list[:l], list[l+1:r], list[r+1:]
			if len(left) < len(right) {
				left, right = right, left
			}
			if len(left) < len(mid) {
				left, mid = mid, left
			}
			introSort(mid, chance)
			introSort(right, chance)
			list = left
		} else {
			// Equal candidates suggest many duplicates: a fat partition
			// collapses the run equal to the pivot in one pass.
			lo, hi := fatPartition(list, i3)
			left, right := list[:lo], list[hi:]
			if len(left) < len(right) {
				left, right = right, left
			}
			introSort(right, chance)
			list = left
		}
	}
	simpleSort(list)
}

// sortIndex5 orders five positions of list by value with a fixed
// comparison network, returning them from smallest to largest value.
func sortIndex5[E constraints.Ordered](list []E,
	a, b, c, d, e int) (int, int, int, int, int) {
	if less(list[b], list[a]) {
		a, b = b, a
	}
	if less(list[d], list[c]) {
		c, d = d, c
	}
	if less(list[c], list[a]) {
		a, c = c, a
		b, d = d, b
	}
	if less(list[c], list[e]) {
		if less(list[d], list[e]) {
			if less(list[b], list[d]) {
				if less(list[c], list[b]) {
					return a, c, b, d, e
				} else {
					return a, b, c, d, e
				}
			} else if less(list[b], list[e]) {
				return a, c, d, b, e
			} else {
				return a, c, d, e, b
			}
		} else {
			if less(list[b], list[e]) {
				if less(list[c], list[b]) {
					return a, c, b, e, d
				} else {
					return a, b, c, e, d
				}
			} else if less(list[b], list[d]) {
				return a, c, e, b, d
			} else {
				return a, c, e, d, b
			}
		}
	} else {
		if less(list[b], list[c]) {
			if less(list[e], list[a]) {
				return e, a, b, c, d
			} else if less(list[e], list[b]) {
				return a, e, b, c, d
			} else {
				return a, b, e, c, d
			}
		} else {
			if less(list[a], list[e]) {
				a, e = e, a
			}
			if less(list[d], list[b]) {
				b, d = d, b
			}
			return e, a, c, b, d
		}
	}
}

// triPartition splits list three ways around the pivot values at i2 and
// i4 (the five index arguments are ordered by value, all interior
// positions). On return the pivots sit at l and r with
// list[:l] ≤ pivotL, pivotL ≤ list[l+1:r] ≤ pivotR and pivotR ≤
// list[r+1:].
//
// The extreme candidates are parked at positions 1 and size-2 so that,
// with a consistent comparator, every value scan stops at one of them.
// The index guards only matter for inconsistent comparators: they turn
// a would-be overrun into an unspecified but in-bounds permutation.
func triPartition[E constraints.Ordered](list []E, i1, i2, i3, i4, i5 int) (l, r int) {
	s := len(list) - 1
	pivotL, pivotR := list[i2], list[i4]
	list[i2], list[i4] = list[0], list[s]
	list[1], list[i1] = list[i1], list[1]
	list[s-1], list[i5] = list[i5], list[s-1]

	l, r = 2, s-2
	for {
		for l < s-1 && less(list[l], pivotL) {
			l++
		}
		for r > 1 && less(pivotR, list[r]) {
			r--
		}
		if l < r && less(pivotR, list[l]) {
			list[l], list[r] = list[r], list[l]
			r--
			if less(list[l], pivotL) {
				l++
				continue
			}
		}
		break
	}

	for k := l + 1; k <= r; k++ {
		if less(pivotR, list[k]) {
			for r > 1 && less(pivotR, list[r]) {
				r--
			}
			if k >= r {
				break
			}
			if less(list[r], pivotL) {
				list[l], list[k], list[r] = list[r], list[l], list[k]
				l++
			} else {
				list[k], list[r] = list[r], list[k]
			}
			r--
		} else if less(list[k], pivotL) {
			list[k], list[l] = list[l], list[k]
			l++
		}
	}

	l--
	r++
	if r <= l {
		// Only reachable with an inconsistent comparator; keep the
		// zone boundaries legal so the caller's sub-slices stay valid.
		r = l + 1
	}
	list[0], list[l] = list[l], pivotL
	list[s], list[r] = list[r], pivotR
	return l, r
}

// fatPartition permutes list around the value at index pivot and
// returns the bounds of the equal zone: list[:lo] is less than the
// pivot, list[lo:hi] equal to it and list[hi:] greater. Elements equal
// to the pivot are parked at both ends during the scan and block-swapped
// into the middle afterwards, so duplicate-heavy ranges cost one pass.
func fatPartition[E constraints.Ordered](list []E, pivot int) (lo, hi int) {
	n := len(list)
	list[0], list[pivot] = list[pivot], list[0]
	a, b, c, d := 0, 0, n-1, n-1
	for {
		for b <= c {
			if less(list[0], list[b]) {
				break
			}
			if !less(list[b], list[0]) {
				list[a], list[b] = list[b], list[a]
				a++
			}
			b++
		}
		for c >= b {
			if less(list[c], list[0]) {
				break
			}
			if !less(list[0], list[c]) {
				list[c], list[d] = list[d], list[c]
				d--
			}
			c--
		}
		if b > c {
			break
		}
		list[b], list[c] = list[c], list[b]
		b++
		c--
	}

	// Swap the equal runs from the ends into the middle.
	span := a
	if b-a < span {
		span = b - a
	}
	swapRange(list, 0, b-span, span)
	span = d - c
	if n-1-d < span {
		span = n - 1 - d
	}
	swapRange(list, b, n-span, span)

	return b - a, n - (d - c)
}

// A variant of insertion sort for short list.
func simpleSort[E constraints.Ordered](list []E) {
	if len(list) < 2 {
		return
	}
	for i := 1; i < len(list); i++ {
		curr := list[i]
		if less(curr, list[0]) {
			for j := i; j > 0; j-- {
				list[j] = list[j-1]
			}
			list[0] = curr
		} else {
			pos := i
			for ; pos > 0 && less(curr, list[pos-1]); pos-- {
				list[pos] = list[pos-1]
			}
			list[pos] = curr
		}
	}
}

func heapSort[E constraints.Ordered](list []E) {
	for idx := len(list)/2 - 1; idx >= 0; idx-- {
		heapDown(list, idx)
	}
	for end := len(list) - 1; end > 0; end-- {
		list[0], list[end] = list[end], list[0]
		heapDown(list[:end], 0)
	}
}

func heapDown[E constraints.Ordered](list []E, pos int) {
	curr := list[pos]
	kid, last := pos*2+1, len(list)-1
	for kid < last {
		if less(list[kid], list[kid+1]) {
			kid++
		}
		if !less(curr, list[kid]) {
			break
		}
		list[pos] = list[kid]
		pos, kid = kid, kid*2+1
	}
	if kid == last && less(curr, list[kid]) {
		list[pos], pos = list[kid], kid
	}
	list[pos] = curr
}

func sortStable[E constraints.Ordered](list []E) {
	if size := len(list); size < 16 {
		simpleSort(list)
	} else {
		step := 8
		a, b := 0, step
		for b <= size {
			simpleSort(list[a:b])
			a = b
			b += step
		}
		simpleSort(list[a:])

		for step < size {
			a, b = 0, step*2
			for b <= size {
				symmerge(list[a:b], step)
				a = b
				b += step * 2
			}
			if a+step < size {
				symmerge(list[a:], step)
			}
			step *= 2
		}
	}
}

// symmerge merges the two sorted subsequences list[:border] and
// list[border:] using the symmerge algorithm from Pok-Son Kim and Arne
// Kutzner, "Stable Minimum Storage Merging by Symmetric Comparisons".
func symmerge[E constraints.Ordered](list []E, border int) {
	size := len(list)

	// Avoid unnecessary recursion by inserting a single element directly.
	if border == 1 {
		curr := list[0]
		a, b := 1, size
		for a < b {
			m := int(uint(a+b) / 2)
			if less(list[m], curr) {
				a = m + 1
			} else {
				b = m
			}
		}
		for i := 1; i < a; i++ {
			list[i-1] = list[i]
		}
		list[a-1] = curr
		return
	}

	if border == size-1 {
		curr := list[border]
		a, b := 0, border
		for a < b {
			m := int(uint(a+b) / 2)
			if less(curr, list[m]) {
				b = m
			} else {
				a = m + 1
			}
		}
		for i := border; i > a; i-- {
			list[i] = list[i-1]
		}
		list[a] = curr
		return
	}

	half := size / 2
	n := border + half
	a, b := 0, border
	if border > half {
		a, b = n-size, half
	}

	p := n - 1
	for a < b {
		m := int(uint(a+b) / 2)
		if less(list[p-m], list[m]) {
			b = m
		} else {
			a = m + 1
		}
	}
	b = n - a

	if a < border && border < b {
		rotate(list[a:b], border-a)
	}
	if 0 < a && a < half {
		symmerge(list[:half], a)
	}
	if half < b && b < size {
		symmerge(list[half:], b-half)
	}
}
