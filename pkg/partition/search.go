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

// BinarySearch locates item within the count elements starting at index in
// a partition already ordered by cmp. It returns the virtual index of a
// match, or the bitwise complement of the insertion point if absent (so a
// negative result r means the insertion point is ^r).
//
// The source rebalances a (si, ei) pair one segment at a time to find each
// midpoint without recomputing a virtual index from scratch. This port
// instead resolves the midpoint virtual index directly through the
// position cache, which gives the same O(log n) comparison count and,
// thanks to the cache, the same amortized cost for the nearby midpoints a
// converging search produces.
func (p *Partition[E]) BinarySearch(index, count int, item E, cmp CompareFunc[E]) int {
	lo, hi := index, index+count-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		pos := p.resolve(mid)
		switch c := cmp(item, p.At(pos)); {
		case c == 0:
			return mid
		case c < 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return -(lo + 1)
}
