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
package vlist

import (
	"cmp"

	"github.com/vlistgo/vlist/golibs/container/iterable"
	"github.com/vlistgo/vlist/pkg/partition"
)

// SortOrdered sorts l using E's natural order. It exists because List's own
// Sort takes an explicit comparator: a method can't add the cmp.Ordered
// constraint List[E] itself wasn't declared with.
func SortOrdered[E cmp.Ordered](l *List[E]) error {
	return l.Sort(partition.DefaultCompare[E]())
}

// BinarySearchOrdered is BinarySearch using E's natural order.
func BinarySearchOrdered[E cmp.Ordered](l *List[E], index, count int, item E) (int, error) {
	return l.BinarySearch(index, count, item, partition.DefaultCompare[E]())
}

// ForEach invokes action for every element in order. It stops and returns
// action's error on the first failure.
func ForEach[E any](l *List[E], action func(E) error) error {
	if action == nil {
		return argumentNull("action")
	}
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if err := action(v); err != nil {
			return err
		}
	}
	return nil
}

// Exists reports whether any element satisfies pred.
func Exists[E any](l *List[E], pred func(E) bool) (bool, error) {
	if pred == nil {
		return false, argumentNull("pred")
	}
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if pred(v) {
			return true, nil
		}
	}
	return false, nil
}

// TrueForAll reports whether every element satisfies pred.
func TrueForAll[E any](l *List[E], pred func(E) bool) (bool, error) {
	if pred == nil {
		return false, argumentNull("pred")
	}
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}

// Find returns the first element satisfying pred and true, or the zero
// value and false if none does.
func Find[E any](l *List[E], pred func(E) bool) (E, bool, error) {
	if pred == nil {
		return *new(E), false, argumentNull("pred")
	}
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if pred(v) {
			return v, true, nil
		}
	}
	return *new(E), false, nil
}

// FindLast is Find scanning from the end.
func FindLast[E any](l *List[E], pred func(E) bool) (E, bool, error) {
	if pred == nil {
		return *new(E), false, argumentNull("pred")
	}
	n := l.p.Count()
	for i := n - 1; i >= 0; i-- {
		v := l.p.Get(i)
		if pred(v) {
			return v, true, nil
		}
	}
	return *new(E), false, nil
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[E any](l *List[E], pred func(E) bool) (int, error) {
	if pred == nil {
		return 0, argumentNull("pred")
	}
	i := 0
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if pred(v) {
			return i, nil
		}
		i++
	}
	return -1, nil
}

// FindLastIndex returns the index of the last element satisfying pred, or
// -1.
func FindLastIndex[E any](l *List[E], pred func(E) bool) (int, error) {
	if pred == nil {
		return 0, argumentNull("pred")
	}
	for i := l.p.Count() - 1; i >= 0; i-- {
		if pred(l.p.Get(i)) {
			return i, nil
		}
	}
	return -1, nil
}

// FindAll returns every element satisfying pred, in order.
func FindAll[E any](l *List[E], pred func(E) bool) ([]E, error) {
	if pred == nil {
		return nil, argumentNull("pred")
	}
	out := make([]E, 0)
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		if pred(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// ConvertAll builds a new List[R] by applying convert to every element of
// l, in order. cfg tunes the new list's partition the same way
// NewWithConfig's does.
func ConvertAll[E, R any](l *List[E], cfg Config, eq partition.EqualFunc[R], convert func(E) R) (*List[R], error) {
	if convert == nil {
		return nil, argumentNull("convert")
	}
	out := NewWithConfig[R](cfg, eq)
	items := make([]R, 0, l.p.Count())
	e := l.GetEnumerator()
	defer e.Close()
	for e.MoveNext() {
		v, _ := e.Current()
		items = append(items, convert(v))
	}
	out.p.InsertRange(out.p.End(), items)
	return out, nil
}

// MergeSorted interleaves two already-ascending Lists into a freshly built
// List holding every element from both, still ascending by less. It drives
// an iterable.Mixer over the two partitions' enumerators rather than
// concatenating and re-sorting, so the cost is O(countA+countB) instead of
// O(n log n).
func MergeSorted[E any](a, b *List[E], cfg Config, eq partition.EqualFunc[E], less func(x, y E) bool) *List[E] {
	ea, eb := a.GetEnumerator(), b.GetEnumerator()
	defer ea.Close()
	defer eb.Close()

	var mx iterable.Mixer[E]
	mx.Init(func(x, y E) bool { return !less(y, x) }, ea, eb)
	defer mx.Close()

	out := NewWithConfig[E](cfg, eq)
	for mx.HasNext() {
		v, ok := mx.Next()
		if !ok {
			break
		}
		out.Add(v)
	}
	return out
}

// ToArray copies every element into a new slice, in order.
func (l *List[E]) ToArray() []E {
	out := make([]E, l.p.Count())
	pos, n := l.p.Begin(), l.p.Count()
	for i := 0; i < n; i++ {
		out[i] = l.p.At(pos)
		pos = l.p.Next(pos)
	}
	return out
}

// CopyTo copies the whole list into dst starting at dstIndex. dst must have
// room for Count() elements from dstIndex on.
func (l *List[E]) CopyTo(dst []E, dstIndex int) error {
	return l.CopyRangeTo(0, l.p.Count(), dst, dstIndex)
}

// CopyRangeTo copies the count elements starting at srcIndex into dst
// starting at dstIndex.
func (l *List[E]) CopyRangeTo(srcIndex, count int, dst []E, dstIndex int) error {
	if err := validateRange(srcIndex, count, l.p.Count()); err != nil {
		return err
	}
	if dstIndex < 0 || dstIndex+count > len(dst) {
		return outOfRangeErr(dstIndex, count, "destination slice too small for %d elements at %d", count, dstIndex)
	}
	pos := l.p.Resolve(srcIndex)
	for i := 0; i < count; i++ {
		dst[dstIndex+i] = l.p.At(pos)
		pos = l.p.Next(pos)
	}
	return nil
}

// GetRange returns a fresh List holding a copy of the count elements
// starting at index.
func (l *List[E]) GetRange(index, count int, cfg Config, eq partition.EqualFunc[E]) (*List[E], error) {
	if err := validateRange(index, count, l.p.Count()); err != nil {
		return nil, err
	}
	items := make([]E, count)
	pos := l.p.Resolve(index)
	for i := 0; i < count; i++ {
		items[i] = l.p.At(pos)
		pos = l.p.Next(pos)
	}
	return FromSlice[E](cfg, eq, items), nil
}
