// Copyright 2023 The go-quicker Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

// This file mirrors sort_ordered.go with the operator comparisons
// replaced by calls through a three-way comparator. Keep the two in
// sync.

// cmpFunc reports the order of a and b: negative for a < b, zero for
// equal, positive for a > b.
type cmpFunc[E any] func(a, b E) int

func (cm cmpFunc[E]) less(a, b E) bool {
	return cm(a, b) < 0
}

func (cm cmpFunc[E]) sortFast(list []E) {
	size := len(list)
	if size <= maxInsertion {
		cm.simpleSort(list)
		return
	}
	chance := log2Ceil(uint(size)) * budgetNum / budgetDen
	if size > 50 {
		a, b, c := size/4, size/2, size*3/4
		a, ha := cm.median(list, a-1, a, a+1)
		b, hb := cm.median(list, b-1, b, b+1)
		c, hc := cm.median(list, c-1, c, c+1)
		_, hint := cm.median(list, a, b, c)
		hint &= ha & hb & hc

		if hint == hintReversed {
			reverse(list)
			hint = hintSorted
		}
		if hint == hintSorted {
			for i := 1; i < size; i++ {
				if cm.less(list[i], list[i-1]) {
					hint = 0
					break
				}
			}
			if hint == hintSorted {
				return
			}
		}
	}
	cm.introSort(list, chance)
}

func (cm cmpFunc[E]) median(list []E, a, b, c int) (int, uint8) {
	if cm.less(list[b], list[a]) {
		if cm.less(list[c], list[b]) {
			return b, hintReversed
		} else if cm.less(list[c], list[a]) {
			return c, 0
		} else {
			return a, 0
		}
	} else {
		if cm.less(list[c], list[a]) {
			return a, 0
		} else if cm.less(list[c], list[b]) {
			return c, 0
		} else {
			return b, hintSorted
		}
	}
}

func (cm cmpFunc[E]) introSort(list []E, chance int) {
	for len(list) > maxInsertion {
		if chance--; chance < 0 {
			cm.heapSort(list)
			return
		}

		size := len(list)
		m, s := size/2, size/4
		i1, i2, i3, i4, i5 := cm.sortIndex5(list, m-s, m-1, m, m+1, m+s)

		if cm.less(list[i1], list[i2]) && cm.less(list[i2], list[i3]) &&
			cm.less(list[i3], list[i4]) && cm.less(list[i4], list[i5]) {
			l, r := cm.triPartition(list, i1, i2, i3, i4, i5)
			left, mid, right := list[:l], list[l+1:r], list[r+1:]
			if len(left) < len(right) {
				left, right = right, left
			}
			if len(left) < len(mid) {
				left, mid = mid, left
			}
			cm.introSort(mid, chance)
			cm.introSort(right, chance)
			list = left
		} else {
			lo, hi := cm.fatPartition(list, i3)
			left, right := list[:lo], list[hi:]
			if len(left) < len(right) {
				left, right = right, left
			}
			cm.introSort(right, chance)
			list = left
		}
	}
	cm.simpleSort(list)
}

func (cm cmpFunc[E]) sortIndex5(list []E,
	a, b, c, d, e int) (int, int, int, int, int) {
	if cm.less(list[b], list[a]) {
		a, b = b, a
	}
	if cm.less(list[d], list[c]) {
		c, d = d, c
	}
	if cm.less(list[c], list[a]) {
		a, c = c, a
		b, d = d, b
	}
	if cm.less(list[c], list[e]) {
		if cm.less(list[d], list[e]) {
			if cm.less(list[b], list[d]) {
				if cm.less(list[c], list[b]) {
					return a, c, b, d, e
				} else {
					return a, b, c, d, e
				}
			} else if cm.less(list[b], list[e]) {
				return a, c, d, b, e
			} else {
				return a, c, d, e, b
			}
		} else {
			if cm.less(list[b], list[e]) {
				if cm.less(list[c], list[b]) {
					return a, c, b, e, d
				} else {
					return a, b, c, e, d
				}
			} else if cm.less(list[b], list[d]) {
				return a, c, e, b, d
			} else {
				return a, c, e, d, b
			}
		}
	} else {
		if cm.less(list[b], list[c]) {
			if cm.less(list[e], list[a]) {
				return e, a, b, c, d
			} else if cm.less(list[e], list[b]) {
				return a, e, b, c, d
			} else {
				return a, b, e, c, d
			}
		} else {
			if cm.less(list[a], list[e]) {
				a, e = e, a
			}
			if cm.less(list[d], list[b]) {
				b, d = d, b
			}
			return e, a, c, b, d
		}
	}
}

func (cm cmpFunc[E]) triPartition(list []E, i1, i2, i3, i4, i5 int) (l, r int) {
	s := len(list) - 1
	pivotL, pivotR := list[i2], list[i4]
	list[i2], list[i4] = list[0], list[s]
	list[1], list[i1] = list[i1], list[1]
	list[s-1], list[i5] = list[i5], list[s-1]

	l, r = 2, s-2
	for {
		for l < s-1 && cm.less(list[l], pivotL) {
			l++
		}
		for r > 1 && cm.less(pivotR, list[r]) {
			r--
		}
		if l < r && cm.less(pivotR, list[l]) {
			list[l], list[r] = list[r], list[l]
			r--
			if cm.less(list[l], pivotL) {
				l++
				continue
			}
		}
		break
	}

	for k := l + 1; k <= r; k++ {
		if cm.less(pivotR, list[k]) {
			for r > 1 && cm.less(pivotR, list[r]) {
				r--
			}
			if k >= r {
				break
			}
			if cm.less(list[r], pivotL) {
				list[l], list[k], list[r] = list[r], list[l], list[k]
				l++
			} else {
				list[k], list[r] = list[r], list[k]
			}
			r--
		} else if cm.less(list[k], pivotL) {
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

func (cm cmpFunc[E]) fatPartition(list []E, pivot int) (lo, hi int) {
	n := len(list)
	list[0], list[pivot] = list[pivot], list[0]
	a, b, c, d := 0, 0, n-1, n-1
	for {
		for b <= c {
			o := cm(list[b], list[0])
			if o > 0 {
				break
			}
			if o == 0 {
				list[a], list[b] = list[b], list[a]
				a++
			}
			b++
		}
		for c >= b {
			o := cm(list[c], list[0])
			if o < 0 {
				break
			}
			if o == 0 {
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

func (cm cmpFunc[E]) simpleSort(list []E) {
	if len(list) < 2 {
		return
	}
	for i := 1; i < len(list); i++ {
		curr := list[i]
		if cm.less(curr, list[0]) {
			for j := i; j > 0; j-- {
				list[j] = list[j-1]
			}
			list[0] = curr
		} else {
			pos := i
			for ; pos > 0 && cm.less(curr, list[pos-1]); pos-- {
				list[pos] = list[pos-1]
			}
			list[pos] = curr
		}
	}
}

func (cm cmpFunc[E]) heapSort(list []E) {
	for idx := len(list)/2 - 1; idx >= 0; idx-- {
		cm.heapDown(list, idx)
	}
	for end := len(list) - 1; end > 0; end-- {
		list[0], list[end] = list[end], list[0]
		cm.heapDown(list[:end], 0)
	}
}

func (cm cmpFunc[E]) heapDown(list []E, pos int) {
	curr := list[pos]
	kid, last := pos*2+1, len(list)-1
	for kid < last {
		if cm.less(list[kid], list[kid+1]) {
			kid++
		}
		if !cm.less(curr, list[kid]) {
			break
		}
		list[pos] = list[kid]
		pos, kid = kid, kid*2+1
	}
	if kid == last && cm.less(curr, list[kid]) {
		list[pos], pos = list[kid], kid
	}
	list[pos] = curr
}

func (cm cmpFunc[E]) sortStable(list []E) {
	if size := len(list); size < 16 {
		cm.simpleSort(list)
	} else {
		step := 8
		a, b := 0, step
		for b <= size {
			cm.simpleSort(list[a:b])
			a = b
			b += step
		}
		cm.simpleSort(list[a:])

		for step < size {
			a, b = 0, step*2
			for b <= size {
				cm.symmerge(list[a:b], step)
				a = b
				b += step * 2
			}
			if a+step < size {
				cm.symmerge(list[a:], step)
			}
			step *= 2
		}
	}
}

func (cm cmpFunc[E]) symmerge(list []E, border int) {
	size := len(list)

	if border == 1 {
		curr := list[0]
		a, b := 1, size
		for a < b {
			m := int(uint(a+b) / 2)
			if cm.less(list[m], curr) {
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
			if cm.less(curr, list[m]) {
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
		if cm.less(list[p-m], list[m]) {
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
		cm.symmerge(list[:half], a)
	}
	if half < b && b < size {
		cm.symmerge(list[half:], b-half)
	}
}
