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

import "github.com/vlistgo/vlist/pkg/partition"

// Add appends item to the end of the list.
func (l *List[E]) Add(item E) {
	l.p.InsertRange(l.p.End(), []E{item})
}

// AddRange appends items, in order, to the end of the list.
func (l *List[E]) AddRange(items []E) {
	if len(items) == 0 {
		return
	}
	l.p.InsertRange(l.p.End(), items)
}

// Insert opens a slot at index and writes item into it. index == Count()
// is allowed and behaves like Add.
func (l *List[E]) Insert(index int, item E) error {
	if err := validateInsertIndex(index, l.p.Count()); err != nil {
		return err
	}
	l.p.Insert(l.p.Resolve(index), item)
	return nil
}

// InsertRange opens len(items) slots at index and copies items into them.
func (l *List[E]) InsertRange(index int, items []E) error {
	if err := validateInsertIndex(index, l.p.Count()); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	l.p.InsertRange(l.p.Resolve(index), items)
	return nil
}

// Remove deletes the first occurrence of item, reporting whether one was
// found.
func (l *List[E]) Remove(item E) bool { return l.p.Remove(item) }

// RemoveAt deletes the element at index.
func (l *List[E]) RemoveAt(index int) error {
	if err := validateGetIndex(index, l.p.Count()); err != nil {
		return err
	}
	l.p.RemoveRange(l.p.Resolve(index), 1)
	return nil
}

// RemoveRange deletes the count elements starting at index.
func (l *List[E]) RemoveRange(index, count int) error {
	if err := validateRange(index, count, l.p.Count()); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	l.p.RemoveRange(l.p.Resolve(index), count)
	return nil
}

// RemoveAll deletes every element for which pred returns true, returning
// how many were removed.
func (l *List[E]) RemoveAll(pred func(E) bool) (int, error) {
	if pred == nil {
		return 0, argumentNull("pred")
	}
	return l.p.RemoveAll(pred), nil
}

// Clear removes every element without releasing backing capacity.
func (l *List[E]) Clear() { l.p.Clear() }

// Reverse flips the order of every element in the list.
func (l *List[E]) Reverse() {
	n := l.p.Count()
	if n < 2 {
		return
	}
	l.p.Reverse(l.p.Begin(), l.p.End(), n)
}

// ReverseRange flips the order of the count elements starting at index.
func (l *List[E]) ReverseRange(index, count int) error {
	if err := validateRange(index, count, l.p.Count()); err != nil {
		return err
	}
	if count < 2 {
		return nil
	}
	begin := l.p.Resolve(index)
	end := l.p.Resolve(index + count)
	l.p.Reverse(begin, end, count)
	return nil
}

// Sort orders the whole list using cmp.
func (l *List[E]) Sort(cmp partition.CompareFunc[E]) error {
	if cmp == nil {
		return argumentNull("cmp")
	}
	n := l.p.Count()
	l.p.Sort(l.p.Begin(), l.p.End(), n, cmp)
	return nil
}

// SortRange orders the count elements starting at index using cmp.
func (l *List[E]) SortRange(index, count int, cmp partition.CompareFunc[E]) error {
	if cmp == nil {
		return argumentNull("cmp")
	}
	if err := validateRange(index, count, l.p.Count()); err != nil {
		return err
	}
	begin := l.p.Resolve(index)
	end := l.p.Resolve(index + count)
	l.p.Sort(begin, end, count, cmp)
	return nil
}
