// Copyright 2023 The go-quicker Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import "unsafe"

// SortFloat64s sorts x under the total order over float64 values:
// ascending numeric order with -0.0 placed immediately before +0.0,
// and every NaN grouped in one block at the end of the slice. The NaN
// count is preserved; which NaN bit patterns end up where within the
// block is unspecified.
//
// Instead of feeding a comparator full of NaN and signed-zero special
// cases to the generic sort, the NaN-free prefix is reinterpreted in
// place as unsigned words, mapped through an order-preserving bit key,
// sorted by plain integer comparison and mapped back. This is the one
// place the package depends on the IEEE-754 binary64 layout of the
// host.
func SortFloat64s(x []float64) {
	n := len(x)
	for i := 0; i < n; {
		if v := x[i]; v != v {
			n--
			x[i], x[n] = x[n], x[i]
		} else {
			i++
		}
	}
	if n == 0 {
		return
	}
	keys := unsafe.Slice((*uint64)(unsafe.Pointer(&x[0])), n)
	for i, k := range keys {
		keys[i] = floatKey64(k)
	}
	sortFast(keys)
	for i, k := range keys {
		keys[i] = floatUnkey64(k)
	}
}

// SortFloat32s is SortFloat64s for float32 values, with the same NaN
// and signed-zero policy.
func SortFloat32s(x []float32) {
	n := len(x)
	for i := 0; i < n; {
		if v := x[i]; v != v {
			n--
			x[i], x[n] = x[n], x[i]
		} else {
			i++
		}
	}
	if n == 0 {
		return
	}
	keys := unsafe.Slice((*uint32)(unsafe.Pointer(&x[0])), n)
	for i, k := range keys {
		keys[i] = floatKey32(k)
	}
	sortFast(keys)
	for i, k := range keys {
		keys[i] = floatUnkey32(k)
	}
}

// floatKey64 maps a float64 bit pattern to a uint64 whose unsigned
// order matches the numeric order of the floats: positive patterns get
// the sign bit set, negative patterns are inverted wholesale. The map
// is a bijection, so no information is lost across the sort.
func floatKey64(b uint64) uint64 {
	if b>>63 != 0 {
		return ^b
	}
	return b | 1<<63
}

func floatUnkey64(k uint64) uint64 {
	if k>>63 != 0 {
		return k &^ (1 << 63)
	}
	return ^k
}

func floatKey32(b uint32) uint32 {
	if b>>31 != 0 {
		return ^b
	}
	return b | 1<<31
}

func floatUnkey32(k uint32) uint32 {
	if k>>31 != 0 {
		return k &^ (1 << 31)
	}
	return ^k
}
