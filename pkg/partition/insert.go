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

// insertSegmentAt splices a freshly built segment into the table at index i.
func (p *Partition[E]) insertSegmentAt(i int, s *segment[E]) {
	p.segments = append(p.segments, nil)
	copy(p.segments[i+1:], p.segments[i:])
	p.segments[i] = s
}

// MakeRoom opens k uninitialised slots at pos, reshaping the segment table
// as needed, and returns the position of the first opened slot (which is
// pos itself, renormalised if a spill pushed the insertion point into a
// freshly created segment).
func (p *Partition[E]) MakeRoom(pos Position, k int) Position {
	if k < 0 {
		panic("partition: MakeRoom with negative k")
	}
	defer p.cache.invalidate()
	if k == 0 {
		return pos
	}

	si, ei := pos.seg, pos.elem
	s := p.segments[si]

	// Fast path: the target segment alone can absorb the whole insert.
	if s.extendable() >= k {
		s.makeRoom(ei, k)
		return Position{seg: si, elem: ei}
	}

	// Spill path: push the live tail of the target segment out of the way
	// first, so segment si ends with count == ei and is free to be grown or
	// followed by brand new segments.
	p.logger.Debugf("segment %d cannot absorb insert of %d elements: reshaping segment table", si, k)
	headTail := s.count - ei
	if headTail > 0 {
		var nextExtendable int
		if si+1 < len(p.segments) {
			nextExtendable = p.segments[si+1].extendable()
		} else {
			nextExtendable = -1
		}
		if headTail <= nextExtendable {
			next := p.segments[si+1]
			next.makeRoom(0, headTail) // bumps next.count by headTail
			s.moveTo(next, 0, ei, headTail)
		} else {
			spill := newSegmentSized[E](headTail, p.maxSegmentCapacity)
			spill.count = headTail
			p.insertSegmentAt(si+1, spill)
			s.moveTo(spill, 0, ei, headTail)
		}
	}

	// s.count == ei now. Fill s to its extendable limit, then keep
	// appending fresh, fully-live segments until all of k is placed. The
	// first opened slot sits in s itself if s had any extendable room left,
	// otherwise it's the start of the next segment in the table.
	room := s.extendable()
	take := min(k, room)
	var first Position
	if take > 0 {
		s.makeRoom(ei, take) // bumps s.count by take
		k -= take
		first = Position{seg: si, elem: ei}
	} else {
		first = Position{seg: si + 1, elem: 0}
	}
	insertAt := si + 1
	if k > 0 {
		p.logger.Debugf("appending new segments at %d for %d residual elements", insertAt, k)
	}
	for k >= p.maxSegmentCapacity {
		full := newSegmentSized[E](p.maxSegmentCapacity, p.maxSegmentCapacity)
		full.count = p.maxSegmentCapacity
		p.insertSegmentAt(insertAt, full)
		insertAt++
		k -= p.maxSegmentCapacity
	}
	if k > 0 {
		residual := newSegmentSized[E](k, p.maxSegmentCapacity)
		residual.count = k
		p.insertSegmentAt(insertAt, residual)
	}
	return first
}

// Insert opens a single slot at pos and writes val into it.
func (p *Partition[E]) Insert(pos Position, val E) {
	at := p.MakeRoom(pos, 1)
	p.segments[at.seg].set(at.elem, val)
}

// InsertRange opens len(values) slots at pos and copies values into them.
func (p *Partition[E]) InsertRange(pos Position, values []E) {
	if len(values) == 0 {
		return
	}
	at := p.MakeRoom(pos, len(values))
	for _, val := range values {
		p.segments[at.seg].set(at.elem, val)
		at = p.next(at)
	}
}
