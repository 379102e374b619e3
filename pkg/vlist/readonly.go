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
	"fmt"

	"github.com/vlistgo/vlist/golibs/errors"
	"github.com/vlistgo/vlist/pkg/partition"
)

// ReadOnlyList is a view over a List that forwards Count, Capacity, Get,
// Contains, IndexOf, LastIndexOf, ToArray, GetEnumerator and CopyTo to it,
// and whose Set, Add, RemoveAt and Clear always fail with ErrNotSupported.
// List's other methods are not exposed on the view. It holds no storage of
// its own.
type ReadOnlyList[E any] struct {
	l *List[E]
}

func (r *ReadOnlyList[E]) Count() int               { return r.l.Count() }
func (r *ReadOnlyList[E]) Capacity() int            { return r.l.Capacity() }
func (r *ReadOnlyList[E]) Get(index int) (E, error) { return r.l.Get(index) }
func (r *ReadOnlyList[E]) Contains(item E) bool     { return r.l.Contains(item) }
func (r *ReadOnlyList[E]) IndexOf(item E) int       { return r.l.IndexOf(item) }
func (r *ReadOnlyList[E]) LastIndexOf(item E) int   { return r.l.LastIndexOf(item) }
func (r *ReadOnlyList[E]) ToArray() []E             { return r.l.ToArray() }

func (r *ReadOnlyList[E]) GetEnumerator() *partition.Enumerator[E] { return r.l.GetEnumerator() }

func (r *ReadOnlyList[E]) CopyTo(dst []E, dstIndex int) error {
	return r.l.CopyTo(dst, dstIndex)
}

// Set always fails: ReadOnlyList supports no write operation.
func (r *ReadOnlyList[E]) Set(int, E) error { return notSupported("Set") }

// Add always fails: ReadOnlyList supports no write operation.
func (r *ReadOnlyList[E]) Add(E) error { return notSupported("Add") }

// RemoveAt always fails: ReadOnlyList supports no write operation.
func (r *ReadOnlyList[E]) RemoveAt(int) error { return notSupported("RemoveAt") }

// Clear always fails: ReadOnlyList supports no write operation.
func (r *ReadOnlyList[E]) Clear() error { return notSupported("Clear") }

func notSupported(op string) error {
	return fmt.Errorf("%s is not supported on a read-only list: %w", op, errors.ErrNotSupported)
}
