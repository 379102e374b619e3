// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package partition

import (
	"cmp"

	container "github.com/vlistgo/vlist/golibs/container"
)

// EqualFunc reports whether a and b should be considered the same element.
// last_index_of and the rest of the search surface use the single policy a
// Partition is constructed with: == for comparable element types via
// DefaultEqual, or a caller-supplied structural comparison otherwise. There
// is no separate "identity for nil" rule — Go generics give every E a zero
// value, not a null/non-null split, so one policy covers every element,
// including the zero value.
type EqualFunc[E any] func(a, b E) bool

// CompareFunc orders two elements: negative if a < b, zero if equal,
// positive if a > b. It is supplied per call to Sort and BinarySearch,
// mirroring a comparator argument rather than a type-wide default.
type CompareFunc[E any] func(a, b E) int

// DefaultEqual returns the == based EqualFunc for a comparable element type.
func DefaultEqual[E comparable]() EqualFunc[E] {
	return func(a, b E) bool { return a == b }
}

// DefaultCompare returns the natural-order CompareFunc for an ordered
// element type, for callers of Sort/BinarySearch that don't need a custom
// comparator.
func DefaultCompare[E cmp.Ordered]() CompareFunc[E] {
	return func(a, b E) int { return cmp.Compare(a, b) }
}

// segment is a bounded contiguous buffer of element slots. count is the
// number of live elements, always <= capacity (len(slots)), always
// <= maxCapacity. Slots in [count, capacity) hold the zero value.
type segment[E any] struct {
	maxCapacity int
	count       int
	slots       []E
}

func newSegment[E any](maxCapacity int) *segment[E] {
	return newSegmentSized[E](0, maxCapacity)
}

func newSegmentSized[E any](initCapacity, maxCapacity int) *segment[E] {
	if maxCapacity <= 0 {
		panic("partition: maxCapacity must be > 0")
	}
	if initCapacity < 0 || initCapacity > maxCapacity {
		panic("partition: initCapacity out of range")
	}
	return &segment[E]{maxCapacity: maxCapacity, slots: make([]E, initCapacity)}
}

func (s *segment[E]) capacity() int { return len(s.slots) }

func (s *segment[E]) trimmable() int { return s.capacity() - s.count }

func (s *segment[E]) extendable() int { return s.maxCapacity - s.count }

func (s *segment[E]) get(i int) E { return s.slots[i] }

func (s *segment[E]) set(i int, v E) { s.slots[i] = v }

func (s *segment[E]) contains(x E, eq EqualFunc[E]) bool {
	return s.indexOf(x, 0, s.count, eq) >= 0
}

// indexOf returns the first index in [start, start+n) holding a value equal
// to x under eq, or -1.
func (s *segment[E]) indexOf(x E, start, n int, eq EqualFunc[E]) int {
	for i := start; i < start+n; i++ {
		if eq(s.slots[i], x) {
			return i
		}
	}
	return -1
}

// lastIndexOf walks backward n steps starting at start (inclusive) looking
// for x, returning the absolute index or -1.
func (s *segment[E]) lastIndexOf(x E, start, n int, eq EqualFunc[E]) int {
	for i, steps := start, 0; steps < n; i, steps = i-1, steps+1 {
		if eq(s.slots[i], x) {
			return i
		}
	}
	return -1
}

func (s *segment[E]) clear() {
	container.SliceFill(s.slots[:s.count], *new(E))
	s.count = 0
}

// extend grows capacity (never shrinks it here) so that count+k fits,
// capped by maxCapacity. It returns how many slots were actually added to
// the backing buffer; count itself is unchanged by extend.
func (s *segment[E]) extend(k int) int {
	if k < 0 {
		panic("partition: extend with negative k")
	}
	if s.count+k > s.maxCapacity {
		panic("partition: extend exceeds maxCapacity")
	}
	need := s.count + k
	if need <= s.capacity() {
		return 0
	}
	added := need - s.capacity()
	grown := make([]E, need)
	copy(grown, s.slots)
	s.slots = grown
	return added
}

// trim shrinks capacity by k, which must not cut into live elements.
func (s *segment[E]) trim(k int) {
	if k < 0 || s.count+k > s.capacity() {
		panic("partition: trim out of range")
	}
	if k == 0 {
		return
	}
	s.slots = s.slots[:s.capacity()-k]
}

// makeRoom opens k uninitialised slots at index i, extending the backing
// buffer first if necessary. It returns the number of bytes (slots) the
// extend step actually added to capacity.
func (s *segment[E]) makeRoom(i, k int) int {
	if i < 0 || i > s.count || s.count+k > s.maxCapacity {
		panic("partition: makeRoom out of range")
	}
	if k == 0 {
		return 0
	}
	added := s.extend(k)
	s.count += k
	copy(s.slots[i+k:s.count], s.slots[i:s.count-k])
	container.SliceFill(s.slots[i:i+k], *new(E))
	return added
}

// moveTo copies k values from s starting at "from" into dst starting at
// "to", then compacts the tail of s left by k and shrinks s.count. dst's
// count is left untouched; the caller (Partition) bumps it once for the
// whole moved run.
func (s *segment[E]) moveTo(dst *segment[E], to, from, k int) {
	if k == 0 {
		return
	}
	copy(dst.slots[to:to+k], s.slots[from:from+k])
	copy(s.slots[from:s.count-k], s.slots[from+k:s.count])
	container.SliceFill(s.slots[s.count-k:s.count], *new(E))
	s.count -= k
}

// remove deletes the first element equal to x, shifting the tail down by
// one. It reports whether an element was removed.
func (s *segment[E]) remove(x E, eq EqualFunc[E]) bool {
	idx := s.indexOf(x, 0, s.count, eq)
	if idx < 0 {
		return false
	}
	s.removeRange(idx, 1)
	return true
}

// removeRange deletes the k elements starting at i, shifting the tail down.
func (s *segment[E]) removeRange(i, k int) {
	if k == 0 {
		return
	}
	if i < 0 || i+k > s.count {
		panic("partition: removeRange out of range")
	}
	copy(s.slots[i:s.count-k], s.slots[i+k:s.count])
	container.SliceFill(s.slots[s.count-k:s.count], *new(E))
	s.count -= k
}

// removeAll compacts the segment in place, keeping every element for which
// pred returns false, and reports how many were removed.
func (s *segment[E]) removeAll(pred func(E) bool) int {
	write := 0
	for read := 0; read < s.count; read++ {
		if pred(s.slots[read]) {
			continue
		}
		if write != read {
			s.slots[write] = s.slots[read]
		}
		write++
	}
	removed := s.count - write
	if removed > 0 {
		container.SliceFill(s.slots[write:s.count], *new(E))
		s.count = write
	}
	return removed
}

// sort orders the sub-range [lo, hi] (inclusive) in place using cmp. Both
// bounds must be live indices (< count).
func (s *segment[E]) sort(lo, hi int, cmp CompareFunc[E]) {
	if lo >= hi {
		return
	}
	sub := s.slots[lo : hi+1]
	quicksortSlice(sub, cmp)
}

// quicksortSlice is a small in-place, non-stable quicksort over a slice
// using an explicit comparator, used both by segment.sort and as the
// same-segment fast path of Partition.Sort.
func quicksortSlice[E any](a []E, cmp CompareFunc[E]) {
	if len(a) < 2 {
		return
	}
	lo, hi := 0, len(a)-1
	mid := a[lo+(hi-lo)/2]
	i, j := lo, hi
	for i <= j {
		for cmp(a[i], mid) < 0 {
			i++
		}
		for cmp(a[j], mid) > 0 {
			j--
		}
		if i <= j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	if lo < j {
		quicksortSlice(a[lo:j+1], cmp)
	}
	if i < hi {
		quicksortSlice(a[i:hi+1], cmp)
	}
}
