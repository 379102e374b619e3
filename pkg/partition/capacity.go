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

// ExtendCapacity grows total capacity by k: first topping off the last
// segment up to maxSegmentCapacity, then appending whole max-capacity empty
// segments while the remainder is still >= maxSegmentCapacity, then a final
// segment sized to whatever residual is left.
func (p *Partition[E]) ExtendCapacity(k int) {
	if k < 0 {
		panic("partition: ExtendCapacity with negative k")
	}
	if k == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	grow := min(k, last.maxCapacity-last.capacity())
	if grow > 0 {
		last.slots = append(last.slots, make([]E, grow)...)
		k -= grow
	}
	for k >= p.maxSegmentCapacity {
		p.segments = append(p.segments, newSegmentSized[E](p.maxSegmentCapacity, p.maxSegmentCapacity))
		k -= p.maxSegmentCapacity
	}
	if k > 0 {
		p.segments = append(p.segments, newSegmentSized[E](k, p.maxSegmentCapacity))
	}
	p.cache.invalidate()
}

// TrimCapacity shrinks total capacity by k, walking segments from the tail
// and taking each one's trimmable slack before moving to the next, then
// drops every now zero-capacity segment (keeping at least one segment).
func (p *Partition[E]) TrimCapacity(k int) {
	if k < 0 {
		panic("partition: TrimCapacity with negative k")
	}
	before := len(p.segments)
	for si := len(p.segments) - 1; si >= 0 && k > 0; si-- {
		s := p.segments[si]
		cut := min(k, s.trimmable())
		if cut > 0 {
			s.trim(cut)
			k -= cut
		}
	}
	kept := p.segments[:0]
	for _, s := range p.segments {
		if s.capacity() == 0 {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		kept = append(kept, newSegment[E](p.maxSegmentCapacity))
	}
	p.segments = kept
	if len(kept) < before {
		p.logger.Debugf("compacted segment table: %d -> %d segments", before, len(kept))
	}
	p.cache.invalidate()
}

// DefaultTrimExcessSlack is the tuning constant below which TrimExcess
// leaves capacity alone, matching the source's tolerance for a little slop
// rather than paying for a trim on every small removal. A Partition's own
// tolerance is Partition.trimExcessSlack, set to this by default and
// overridable via SetTrimExcessSlack.
const DefaultTrimExcessSlack = 4

// TrimExcess shrinks capacity down to Count() when the current slack
// exceeds the partition's trim slack; otherwise it is a no-op.
func (p *Partition[E]) TrimExcess() {
	count, capacity := p.Count(), p.Capacity()
	slack := capacity - count
	if slack > p.trimExcessSlack {
		p.logger.Debugf("trim_excess: shrinking capacity by %d", slack)
		p.TrimCapacity(slack)
		return
	}
	p.logger.Warnf("trim_excess no-op: slack %d within tolerance %d", slack, p.trimExcessSlack)
}
