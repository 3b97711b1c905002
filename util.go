// Copyright 2023 The go-quicker Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "math/bits"

const (
	hintSorted uint8 = 1 << iota
	hintReversed
)

// log2Ceil returns ⌈log₂(num)⌉, and 0 for num ≤ 1.
func log2Ceil(num uint) int {
	if num <= 1 {
		return 0
	}
	return bits.Len(num - 1)
}

// reverse flips list in place.
func reverse[E any](list []E) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}

// rotate exchanges the two blocks list[:border] and list[border:].
func rotate[E any](list []E, border int) {
	reverse(list[:border])
	reverse(list[border:])
	reverse(list)
}

// swapRange swaps list[a:a+n] with list[b:b+n]; the ranges must not
// overlap.
func swapRange[E any](list []E, a, b, n int) {
	for i := 0; i < n; i++ {
		list[a+i], list[b+i] = list[b+i], list[a+i]
	}
}
