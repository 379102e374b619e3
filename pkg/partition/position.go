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

// Position is an opaque cursor identifying a single slot: the index of its
// segment and the index of the element within that segment. The source
// carried a third, cache-slot field through every cursor API; this port
// drops it (see posCache) since the cache works off the virtual index alone
// and doesn't need to ride along on the cursor value itself.
//
// The zero Position is not meaningful on its own; obtain one from Begin,
// End, Resolve, Next or Previous.
type Position struct {
	seg, elem int
}

// beforeBeginSeg marks the sentinel "before begin" position that Previous
// returns when walked off the front of the partition. Callers must not
// dereference it.
const beforeBeginSeg = -1

// IsBeforeBegin reports whether pos is the sentinel produced by calling
// Previous on the first interior position.
func (pos Position) IsBeforeBegin() bool { return pos.seg == beforeBeginSeg }

// Begin returns the position of the first live element, or End() if the
// partition is empty.
func (p *Partition[E]) Begin() Position {
	for si, s := range p.segments {
		if s.count > 0 {
			return Position{seg: si, elem: 0}
		}
	}
	return p.End()
}

// End returns the sentinel one-past-last position. Because a remove never
// leaves an empty segment trailing the last non-empty one (see
// dropTrailingEmptySegments), the last table entry is always the right
// anchor for End even when the partition is empty (single empty segment).
func (p *Partition[E]) End() Position {
	last := len(p.segments) - 1
	return Position{seg: last, elem: p.segments[last].count}
}

// Resolve translates a virtual index v in [0, Count()] into its physical
// Position, walking the segment table and skipping empty segments.
func (p *Partition[E]) Resolve(v int) Position { return p.resolve(v) }

func (p *Partition[E]) resolve(v int) Position {
	if v < 0 {
		panic("partition: negative virtual index")
	}
	if seg, elem, ok := p.cache.lookup(v); ok && seg < len(p.segments) && elem <= p.segments[seg].count {
		return Position{seg: seg, elem: elem}
	}
	remaining := v
	last := len(p.segments) - 1
	for si, s := range p.segments {
		if remaining < s.count {
			pos := Position{seg: si, elem: remaining}
			p.cache.put(v, si, remaining)
			return pos
		}
		remaining -= s.count
		if remaining == 0 && si == last {
			break
		}
	}
	pos := p.End()
	p.cache.put(v, pos.seg, pos.elem)
	return pos
}

// Next advances pos by one live element. Next of the last interior position
// is End(); Next must not be called on End() itself.
func (p *Partition[E]) Next(pos Position) Position { return p.next(pos) }

func (p *Partition[E]) next(pos Position) Position {
	s := p.segments[pos.seg]
	if pos.elem+1 < s.count {
		return Position{seg: pos.seg, elem: pos.elem + 1}
	}
	for si := pos.seg + 1; si < len(p.segments); si++ {
		if p.segments[si].count > 0 {
			return Position{seg: si, elem: 0}
		}
	}
	return p.End()
}

// Previous steps pos back by one live element. Previous of Begin() is the
// "before begin" sentinel (IsBeforeBegin reports true); it must not be
// dereferenced.
func (p *Partition[E]) Previous(pos Position) Position { return p.previous(pos) }

func (p *Partition[E]) previous(pos Position) Position {
	if pos.elem > 0 {
		return Position{seg: pos.seg, elem: pos.elem - 1}
	}
	for si := pos.seg - 1; si >= 0; si-- {
		if p.segments[si].count > 0 {
			return Position{seg: si, elem: p.segments[si].count - 1}
		}
	}
	return Position{seg: beforeBeginSeg}
}

// VirtualIndex recovers the 0-based logical index of pos by counting live
// elements before it. It is O(segments) and meant for tests and
// diagnostics, not hot paths (callers driving a scan should carry the
// virtual index alongside the Position themselves, the way Partition's own
// IndexOf/LastIndexOf/Sort/BinarySearch do).
func (p *Partition[E]) VirtualIndex(pos Position) int {
	n := 0
	for si := 0; si < pos.seg; si++ {
		n += p.segments[si].count
	}
	return n + pos.elem
}

// At returns the element a Position refers to. pos must be an interior
// position (not End(), not before-begin).
func (p *Partition[E]) At(pos Position) E { return p.segments[pos.seg].get(pos.elem) }

// SetAt overwrites the element a Position refers to.
func (p *Partition[E]) SetAt(pos Position, v E) { p.segments[pos.seg].set(pos.elem, v) }

// compare orders two positions lexicographically by (segment, element),
// which matches virtual-index order because segments are visited in table
// order and live indices within a segment are contiguous.
func comparePositions(a, b Position) int {
	if a.seg != b.seg {
		if a.seg < b.seg {
			return -1
		}
		return 1
	}
	if a.elem != b.elem {
		if a.elem < b.elem {
			return -1
		}
		return 1
	}
	return 0
}
