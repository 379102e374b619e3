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
	"fmt"

	"github.com/vlistgo/vlist/golibs/container/iterable"
	"github.com/vlistgo/vlist/golibs/errors"
)

// Enumerator is a forward cursor over a Partition's live elements. It
// borrows the partition for the duration of iteration: mutating the
// partition while an Enumerator is open invalidates the enumerator, which
// is not required to detect the fact. Reset is explicitly unsupported.
//
// Enumerator implements iterable.Iterator[E] (HasNext/Next/Close) as its
// push/pull face, and additionally exposes the MoveNext/Current cursor
// style the external list surface is built on.
type Enumerator[E any] struct {
	p         *Partition[E]
	segIdx    int
	elemIdx   int
	remaining int
	started   bool
	exhausted bool
}

var _ iterable.Iterator[int] = (*Enumerator[int])(nil)

// GetEnumerator opens a new forward enumerator over p.
func (p *Partition[E]) GetEnumerator() *Enumerator[E] {
	return &Enumerator[E]{p: p}
}

func (e *Enumerator[E]) firstNonEmptyFrom(seg int) int {
	for i := seg; i < len(e.p.segments); i++ {
		if e.p.segments[i].count > 0 {
			return i
		}
	}
	return -1
}

// MoveNext advances the cursor to the next live element, returning false
// once the partition is exhausted.
func (e *Enumerator[E]) MoveNext() bool {
	if e.exhausted {
		return false
	}
	if !e.started {
		si := e.firstNonEmptyFrom(0)
		if si < 0 {
			e.exhausted = true
			return false
		}
		e.segIdx, e.elemIdx = si, 0
		e.remaining = e.p.segments[si].count - 1
		e.started = true
		return true
	}
	if e.remaining > 0 {
		e.elemIdx++
		e.remaining--
		return true
	}
	si := e.firstNonEmptyFrom(e.segIdx + 1)
	if si < 0 {
		e.exhausted = true
		return false
	}
	e.segIdx, e.elemIdx = si, 0
	e.remaining = e.p.segments[si].count - 1
	return true
}

// Current returns the element the cursor currently points to. It fails
// with ErrInvalidOperation before the first MoveNext or once exhausted.
func (e *Enumerator[E]) Current() (E, error) {
	if !e.started || e.exhausted {
		return *new(E), fmt.Errorf("%w: enumerator has no current element", errors.ErrInvalidOperation)
	}
	return e.p.segments[e.segIdx].get(e.elemIdx), nil
}

// Reset is never supported, matching the source's enumerator contract.
func (e *Enumerator[E]) Reset() error {
	return fmt.Errorf("%w: enumerator reset is not supported", errors.ErrInvalidOperation)
}

// HasNext reports whether a subsequent MoveNext/Next would succeed,
// without consuming the current element.
func (e *Enumerator[E]) HasNext() bool {
	if e.exhausted {
		return false
	}
	if !e.started {
		return e.firstNonEmptyFrom(0) >= 0
	}
	if e.remaining > 0 {
		return true
	}
	return e.firstNonEmptyFrom(e.segIdx+1) >= 0
}

// Next implements iterable.Iterator[E].
func (e *Enumerator[E]) Next() (E, bool) {
	if !e.MoveNext() {
		return *new(E), false
	}
	v, _ := e.Current()
	return v, true
}

// Close implements iterable.Iterator[E]. It marks the enumerator exhausted;
// it never returns an error since an Enumerator holds no external resource.
func (e *Enumerator[E]) Close() error {
	e.exhausted = true
	return nil
}
