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

import "github.com/vlistgo/vlist/golibs/logging"

// NewSized builds a Partition already populated with count live elements
// (all holding E's zero value) and at least capacity slots of backing
// storage, filling whole maxSegmentCapacity segments before a final
// partial one. It exists for callers that know their target size up front
// (e.g. a list constructed with an explicit initial capacity) and want to
// skip the incremental ExtendCapacity/MakeRoom dance.
func NewSized[E any](maxSegmentCapacity, count, capacity int, eq EqualFunc[E]) *Partition[E] {
	if maxSegmentCapacity <= 0 {
		panic("partition: maxSegmentCapacity must be > 0")
	}
	if count < 0 || capacity < count {
		panic("partition: invalid count/capacity")
	}
	if eq == nil {
		panic("partition: eq must not be nil")
	}
	p := &Partition[E]{
		maxSegmentCapacity: maxSegmentCapacity,
		eq:                 eq,
		cache:              newPosCache(defaultPosCacheSize),
		logger:             logging.NewLogger("partition.Partition"),
		trimExcessSlack:    DefaultTrimExcessSlack,
	}

	remainingCount, remainingCap := count, capacity
	for remainingCap > 0 {
		segCap := min(maxSegmentCapacity, remainingCap)
		segCount := min(maxSegmentCapacity, remainingCount)
		s := newSegmentSized[E](segCap, maxSegmentCapacity)
		s.count = segCount
		p.segments = append(p.segments, s)
		remainingCap -= segCap
		remainingCount -= segCount
	}
	if len(p.segments) == 0 {
		p.segments = []*segment[E]{newSegment[E](maxSegmentCapacity)}
	}
	return p
}
