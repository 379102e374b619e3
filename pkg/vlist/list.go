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

/*
Package vlist is the outer, argument-validating face over pkg/partition: a
List[E] that behaves like a large, mutable, randomly indexable sequence,
forwarding every structural operation to its Partition once arguments have
been checked against the taxonomy in golibs/errors.

All validation happens here, before any partition mutation; Partition
itself assumes its preconditions hold and will panic rather than validate
if handed a bad index, the same division of responsibility the partition
package's own doc describes.
*/
package vlist

import (
	"fmt"

	"github.com/vlistgo/vlist/golibs/logging"
	"github.com/vlistgo/vlist/pkg/partition"
)

// List is a segmented, virtualized sequence of E. It is not safe for
// concurrent use, matching the partition it wraps.
type List[E any] struct {
	p      *partition.Partition[E]
	logger logging.Logger
}

// New creates an empty List using DefaultConfig and eq as the element
// equality policy.
func New[E any](eq partition.EqualFunc[E]) *List[E] {
	return NewWithConfig[E](DefaultConfig(), eq)
}

// NewWithConfig creates an empty List tuned by cfg.
func NewWithConfig[E any](cfg Config, eq partition.EqualFunc[E]) *List[E] {
	p := partition.NewWithCache[E](cfg.MaxSegmentCapacity, eq, cfg.PositionCacheSize)
	p.SetTrimExcessSlack(cfg.TrimSlack)
	return &List[E]{
		p:      p,
		logger: logging.NewLogger("vlist.List"),
	}
}

// FromSlice builds a List pre-populated with items, in order.
func FromSlice[E any](cfg Config, eq partition.EqualFunc[E], items []E) *List[E] {
	l := NewWithConfig[E](cfg, eq)
	l.p.InsertRange(l.p.End(), items)
	return l
}

// Count returns the number of elements in the list.
func (l *List[E]) Count() int { return l.p.Count() }

// Capacity returns the total backing storage currently reserved.
func (l *List[E]) Capacity() int { return l.p.Capacity() }

// SetCapacity grows or shrinks backing storage to exactly capacity. It
// fails with ErrArgumentOutOfRange if capacity is below Count().
func (l *List[E]) SetCapacity(capacity int) error {
	count := l.p.Count()
	if capacity < count {
		l.logger.Warnf("set_capacity refused: requested %d below current count %d", capacity, count)
		return outOfRangeErr(capacity, count, "capacity %d below current count %d", capacity, count)
	}
	current := l.p.Capacity()
	switch {
	case capacity > current:
		l.p.ExtendCapacity(capacity - current)
	case capacity < current:
		l.p.TrimCapacity(current - capacity)
	}
	return nil
}

// TrimExcess releases backing storage down to Count() once the slack
// exceeds the list's configured trim slack (Config.TrimSlack); otherwise it
// is a no-op.
func (l *List[E]) TrimExcess() { l.p.TrimExcess() }

// Get returns the element at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := validateGetIndex(index, l.p.Count()); err != nil {
		return *new(E), err
	}
	return l.p.Get(index), nil
}

// Set overwrites the element at index.
func (l *List[E]) Set(index int, value E) error {
	if err := validateGetIndex(index, l.p.Count()); err != nil {
		return err
	}
	l.p.Set(index, value)
	return nil
}

// Contains reports whether item appears anywhere in the list.
func (l *List[E]) Contains(item E) bool { return l.p.Contains(item) }

// IndexOf returns the index of the first occurrence of item, or -1.
func (l *List[E]) IndexOf(item E) int {
	return l.p.IndexOf(item, 0, l.p.Count())
}

// IndexOfFrom returns the index of the first occurrence of item at or
// after start, or -1.
func (l *List[E]) IndexOfFrom(item E, start int) (int, error) {
	count := l.p.Count()
	if err := validateInsertIndex(start, count); err != nil {
		return 0, err
	}
	return l.p.IndexOf(item, start, count-start), nil
}

// IndexOfIn returns the index of the first occurrence of item within
// [start, start+count), or -1.
func (l *List[E]) IndexOfIn(item E, start, count int) (int, error) {
	if err := validateRange(start, count, l.p.Count()); err != nil {
		return 0, err
	}
	return l.p.IndexOf(item, start, count), nil
}

// LastIndexOf returns the index of the last occurrence of item, or -1.
func (l *List[E]) LastIndexOf(item E) int {
	n := l.p.Count()
	if n == 0 {
		return -1
	}
	return l.p.LastIndexOf(item, n-1, n)
}

// LastIndexOfFrom returns the index of the last occurrence of item at or
// before start, scanning backward, or -1.
func (l *List[E]) LastIndexOfFrom(item E, start int) (int, error) {
	count := l.p.Count()
	if err := validateGetIndex(start, count); err != nil {
		return 0, err
	}
	return l.p.LastIndexOf(item, start, start+1), nil
}

// LastIndexOfIn returns the index of the last occurrence of item within the
// count elements ending at and including start, or -1.
func (l *List[E]) LastIndexOfIn(item E, start, count int) (int, error) {
	n := l.p.Count()
	if err := validateGetIndex(start, n); err != nil {
		return 0, err
	}
	if count < 0 || count > start+1 {
		return 0, outOfRangeErr(start, count, "count %d invalid for start %d", count, start)
	}
	return l.p.LastIndexOf(item, start, count), nil
}

// BinarySearch locates item in a list already sorted by cmp, within the
// count elements starting at index. See partition.BinarySearch for the
// return-value convention.
func (l *List[E]) BinarySearch(index, count int, item E, cmp partition.CompareFunc[E]) (int, error) {
	if cmp == nil {
		return 0, argumentNull("cmp")
	}
	if err := validateRange(index, count, l.p.Count()); err != nil {
		return 0, err
	}
	return l.p.BinarySearch(index, count, item, cmp), nil
}

// GetEnumerator opens a forward enumerator over the list's current
// contents. Mutating the list while the enumerator is open is undefined
// behavior.
func (l *List[E]) GetEnumerator() *partition.Enumerator[E] { return l.p.GetEnumerator() }

// AsReadOnly returns a view that forwards the basic read operations and
// fails the writes it exposes with ErrNotSupported (see ReadOnlyList for the
// exact set).
func (l *List[E]) AsReadOnly() *ReadOnlyList[E] { return &ReadOnlyList[E]{l: l} }

// String implements fmt.Stringer for debugging.
func (l *List[E]) String() string {
	return fmt.Sprintf("List{count:%d, capacity:%d}", l.p.Count(), l.p.Capacity())
}
