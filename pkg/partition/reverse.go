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

// Reverse flips the order of the count elements starting at begin (end
// must be the position count steps after begin), swapping outside-in and
// leaving a middle element in place for odd counts. Two calls in a row are
// the identity.
func (p *Partition[E]) Reverse(begin, end Position, count int) {
	lo, hi := begin, p.previous(end)
	for i := 0; i < count/2; i++ {
		a, b := p.segments[lo.seg].get(lo.elem), p.segments[hi.seg].get(hi.elem)
		p.segments[lo.seg].set(lo.elem, b)
		p.segments[hi.seg].set(hi.elem, a)
		lo = p.next(lo)
		hi = p.previous(hi)
	}
	p.cache.invalidate()
}
