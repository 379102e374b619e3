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

// posCache is the small, bounded cache of recently resolved virtual-index ->
// (segment, element) lookups mentioned in the partition's data model. Its
// absence would only cost performance, never correctness, so every method
// on it is allowed to simply miss.
//
// It is grounded on the wraparound slot arithmetic of
// golibs/container's ringBuffer (w = (w+1) % n, fixed backing array) rather
// than on golibs/container/lru's ECache: ECache is a mutex-and-channel
// guarded loading cache built for concurrent callers racing to populate the
// same key, which this single-threaded, never-loading cache has no use for.
// Lookup is a short linear scan rather than a map, since real-world
// posCache sizes are single digits to low tens of entries and a scan beats
// map overhead at that size.
type posCache struct {
	slots []posCacheEntry
	next  int
}

type posCacheEntry struct {
	valid     bool
	vidx      int
	seg, elem int
}

// newPosCache creates a cache with the given number of slots. size <= 0
// disables the cache: every lookup misses and every put is a no-op, which
// is how a caller opts entirely out of the cache per the spec's allowance.
func newPosCache(size int) *posCache {
	if size <= 0 {
		return &posCache{}
	}
	return &posCache{slots: make([]posCacheEntry, size)}
}

// lookup returns the cached (segment, element) coordinate for vidx, if any.
func (c *posCache) lookup(vidx int) (seg, elem int, ok bool) {
	for i := range c.slots {
		e := &c.slots[i]
		if e.valid && e.vidx == vidx {
			return e.seg, e.elem, true
		}
	}
	return 0, 0, false
}

// put records the resolved coordinate for vidx, evicting the oldest entry
// (round-robin, like ringBuffer's write cursor) once the cache is full.
func (c *posCache) put(vidx, seg, elem int) {
	if len(c.slots) == 0 {
		return
	}
	c.slots[c.next] = posCacheEntry{valid: true, vidx: vidx, seg: seg, elem: elem}
	c.next++
	if c.next == len(c.slots) {
		c.next = 0
	}
}

// invalidate drops every cached entry. Called on any structural mutation of
// the owning partition, since segment membership and element indices shift.
func (c *posCache) invalidate() {
	for i := range c.slots {
		c.slots[i] = posCacheEntry{}
	}
	c.next = 0
}
