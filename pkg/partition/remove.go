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

// RemoveRange deletes k elements starting at pos, walking segment by
// segment and skipping already-empty ones. A segment left empty by the
// removal is not dropped from the table here (it may still hold reusable
// capacity for a later insert at that index) unless it ends up trailing
// the last non-empty segment, in which case dropTrailingEmptySegments
// removes it so End() and Begin() stay cheap to compute.
func (p *Partition[E]) RemoveRange(pos Position, k int) {
	if k < 0 {
		panic("partition: RemoveRange with negative k")
	}
	if k == 0 {
		return
	}
	si, ei := pos.seg, pos.elem
	remaining := k
	for remaining > 0 {
		s := p.segments[si]
		if ei >= s.count {
			si++
			ei = 0
			continue
		}
		n := min(remaining, s.count-ei)
		s.removeRange(ei, n)
		remaining -= n
		si++
		ei = 0
	}
	p.dropTrailingEmptySegments()
	p.cache.invalidate()
}

// dropTrailingEmptySegments removes every segment at the tail of the table
// that is empty, stopping once it reaches a non-empty one or a single
// remaining segment. This keeps invariant 4 (no empty segment past the
// last non-empty one) true after a remove, while middle-of-table empty
// segments are left alone until an explicit TrimCapacity call — they may
// still be reused by a later MakeRoom at that index.
func (p *Partition[E]) dropTrailingEmptySegments() {
	n := len(p.segments)
	for n > 1 && p.segments[n-1].count == 0 {
		n--
	}
	if n < len(p.segments) {
		p.logger.Debugf("dropping %d trailing empty segments", len(p.segments)-n)
	}
	p.segments = p.segments[:n]
}

// Remove deletes the first element equal to x, returning whether one was
// found.
func (p *Partition[E]) Remove(x E) bool {
	for _, s := range p.segments {
		if s.remove(x, p.eq) {
			p.dropTrailingEmptySegments()
			p.cache.invalidate()
			return true
		}
	}
	return false
}

// RemoveAll deletes every element for which pred returns true, returning
// how many were removed.
func (p *Partition[E]) RemoveAll(pred func(E) bool) int {
	removed := 0
	for _, s := range p.segments {
		removed += s.removeAll(pred)
	}
	if removed > 0 {
		p.dropTrailingEmptySegments()
		p.cache.invalidate()
	}
	return removed
}
