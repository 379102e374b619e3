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

/*
Package partition implements the segmented storage at the heart of a
virtualized list: a dynamically sized table of bounded contiguous
segments, a mapping between a virtual (logical) index and a physical
(segment, element) coordinate, and the structural algorithms (make-room,
range removal, reversal, quicksort, binary search) that operate across
segment boundaries.

A Partition never has a single backing array larger than its configured
maxSegmentCapacity; it grows and shrinks by adding, extending, trimming
or removing segments. It is not safe for concurrent use: every exported
method assumes the caller serializes access, the way golibs/container's
own fixed-size containers do.
*/
package partition
