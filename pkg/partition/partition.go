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

	"github.com/vlistgo/vlist/golibs/logging"
)

// DefaultMaxSegmentCapacity is used when a caller doesn't have a reason to
// pick a smaller segment cap. It is a compile-time constant the way the
// source's assembly-scoped default was, loaded once and never mutated.
const DefaultMaxSegmentCapacity = 1 << 24

// Partition is an ordered sequence of segments that together behave like one
// large, virtualized, 0-based indexable buffer of E. It owns every
// invariant described in the package doc: the segment table is never empty,
// no segment's count exceeds maxSegmentCapacity, and the virtual-index to
// (segment, element) mapping is the unique monotone enumeration that skips
// empty segments.
//
// Partition is not safe for concurrent use.
type Partition[E any] struct {
	maxSegmentCapacity int
	segments           []*segment[E]
	eq                 EqualFunc[E]
	cache              *posCache
	logger             logging.Logger
	trimExcessSlack    int
}

// New creates an empty Partition with the given maxSegmentCapacity and
// element-equality policy. eq is used by Contains, IndexOf, LastIndexOf and
// Remove; pass DefaultEqual[E]() for comparable element types.
func New[E any](maxSegmentCapacity int, eq EqualFunc[E]) *Partition[E] {
	return NewWithCache[E](maxSegmentCapacity, eq, defaultPosCacheSize)
}

// defaultPosCacheSize is a small constant: enough to absorb the common
// pattern of a few nearby repeated lookups (e.g. a for loop walking forward)
// without growing into a real index structure.
const defaultPosCacheSize = 8

// NewWithCache is New with an explicit position-cache size. A size of 0
// disables the cache entirely (see posCache.newPosCache).
func NewWithCache[E any](maxSegmentCapacity int, eq EqualFunc[E], cacheSize int) *Partition[E] {
	if maxSegmentCapacity <= 0 {
		panic("partition: maxSegmentCapacity must be > 0")
	}
	if eq == nil {
		panic("partition: eq must not be nil")
	}
	p := &Partition[E]{
		maxSegmentCapacity: maxSegmentCapacity,
		eq:                 eq,
		cache:              newPosCache(cacheSize),
		logger:             logging.NewLogger("partition.Partition"),
		trimExcessSlack:    DefaultTrimExcessSlack,
	}
	p.segments = []*segment[E]{newSegment[E](maxSegmentCapacity)}
	return p
}

// SetTrimExcessSlack overrides the tolerance TrimExcess uses below which it
// leaves capacity alone. Callers thread this from their own configuration
// (see vlist.Config.TrimSlack) at construction time, the same
// load-once-at-construction pattern as the rest of this module's config.
func (p *Partition[E]) SetTrimExcessSlack(slack int) { p.trimExcessSlack = slack }

// MaxSegmentCapacity returns the partition-wide segment cap fixed at
// construction.
func (p *Partition[E]) MaxSegmentCapacity() int { return p.maxSegmentCapacity }

// Count returns the total number of live elements across all segments.
func (p *Partition[E]) Count() int {
	n := 0
	for _, s := range p.segments {
		n += s.count
	}
	return n
}

// Capacity returns the total backing-buffer capacity across all segments.
func (p *Partition[E]) Capacity() int {
	n := 0
	for _, s := range p.segments {
		n += s.capacity()
	}
	return n
}

// SegmentCount returns the number of segments currently in the table. It is
// exposed mainly for tests asserting on the shape of the reshape
// algorithms; ordinary callers have no reason to look at it.
func (p *Partition[E]) SegmentCount() int { return len(p.segments) }

// Get returns the element at virtual index v.
func (p *Partition[E]) Get(v int) E {
	pos := p.resolve(v)
	return p.segments[pos.seg].get(pos.elem)
}

// Set overwrites the element at virtual index v. It performs no structural
// change.
func (p *Partition[E]) Set(v int, val E) {
	pos := p.resolve(v)
	p.segments[pos.seg].set(pos.elem, val)
}

// SetRange overwrites count elements starting at virtual index v from
// values. Behavior is undefined (it may panic) if values yields more
// elements than the partition has room for starting at v; callers size the
// room first with MakeRoom.
func (p *Partition[E]) SetRange(v int, values []E) {
	pos := p.resolve(v)
	for _, val := range values {
		p.segments[pos.seg].set(pos.elem, val)
		pos = p.next(pos)
	}
}

// Contains reports whether any segment holds an element equal to x under
// the partition's equality policy.
func (p *Partition[E]) Contains(x E) bool {
	for _, s := range p.segments {
		if s.contains(x, p.eq) {
			return true
		}
	}
	return false
}

// IndexOf returns the virtual index of the first element equal to x within
// [start, start+count), or -1.
func (p *Partition[E]) IndexOf(x E, start, count int) int {
	if count == 0 {
		return -1
	}
	pos := p.resolve(start)
	remaining := count
	vidx := start
	for remaining > 0 {
		s := p.segments[pos.seg]
		if pos.elem >= s.count {
			// empty (or exhausted) segment: skip to the next one
			pos = Position{seg: pos.seg + 1, elem: 0}
			continue
		}
		n := min(remaining, s.count-pos.elem)
		if idx := s.indexOf(x, pos.elem, n, p.eq); idx >= 0 {
			return vidx + (idx - pos.elem)
		}
		vidx += n
		remaining -= n
		pos = Position{seg: pos.seg + 1, elem: 0}
	}
	return -1
}

// LastIndexOf returns the virtual index of the last element equal to x
// within the count elements ending at and including start, scanning
// backward, or -1.
func (p *Partition[E]) LastIndexOf(x E, start, count int) int {
	if count == 0 {
		return -1
	}
	pos := p.resolve(start)
	remaining := count
	vidx := start
	for remaining > 0 {
		n := min(remaining, pos.elem+1)
		s := p.segments[pos.seg]
		if idx := s.lastIndexOf(x, pos.elem, n, p.eq); idx >= 0 {
			return vidx - (pos.elem - idx)
		}
		vidx -= n
		remaining -= n
		if remaining > 0 {
			pos = p.lastElementOfPreviousNonEmptySegment(pos.seg)
			if pos.seg < 0 {
				break
			}
		}
	}
	return -1
}

func (p *Partition[E]) lastElementOfPreviousNonEmptySegment(from int) Position {
	for si := from - 1; si >= 0; si-- {
		if p.segments[si].count > 0 {
			return Position{seg: si, elem: p.segments[si].count - 1}
		}
	}
	return Position{seg: -1}
}

// Clear empties every segment but keeps the segment table and its
// capacities intact, matching the teacher's own clear()-keeps-capacity
// convention (e.g. segment.clear()).
func (p *Partition[E]) Clear() {
	for _, s := range p.segments {
		s.clear()
	}
	p.cache.invalidate()
}

// String implements fmt.Stringer for debugging, in the same terse
// {field:value, ...} style as chunkfs.Chunk.String.
func (p *Partition[E]) String() string {
	return fmt.Sprintf("Partition{segments:%d, count:%d, capacity:%d, maxSegmentCapacity:%d}",
		len(p.segments), p.Count(), p.Capacity(), p.maxSegmentCapacity)
}
