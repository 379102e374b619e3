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
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	vlisterrors "github.com/vlistgo/vlist/golibs/errors"
)

func fromSlice(maxCap int, vals ...int) *Partition[int] {
	p := New[int](maxCap, DefaultEqual[int]())
	p.InsertRange(p.End(), vals)
	return p
}

func toSlice(p *Partition[int]) []int {
	out := make([]int, 0, p.Count())
	for pos, n := p.Begin(), p.Count(); n > 0; n-- {
		out = append(out, p.At(pos))
		pos = p.Next(pos)
	}
	return out
}

func assertInvariants[E any](t *testing.T, p *Partition[E]) {
	t.Helper()
	sum := 0
	for i, s := range p.segments {
		if !assert.LessOrEqual(t, s.count, s.capacity(), "segment %d count<=capacity", i) ||
			!assert.LessOrEqual(t, s.capacity(), s.maxCapacity, "segment %d capacity<=maxCapacity", i) {
			t.Logf("segment table:\n%s", spew.Sdump(p.segments))
		}
		sum += s.count
	}
	assert.Equal(t, sum, p.Count())
	assert.GreaterOrEqual(t, len(p.segments), 1)
}

func TestNewIsEmpty(t *testing.T) {
	p := New[int](4, DefaultEqual[int]())
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, p.Begin(), p.End())
	assertInvariants(t, p)
}

func TestE1CrossSegmentInsert(t *testing.T) {
	p := fromSlice(4, 1, 2, 3, 4, 5, 6, 7)
	pos := p.resolve(2)
	p.InsertRange(pos, []int{97, 98, 99})
	assert.Equal(t, []int{1, 2, 97, 98, 99, 3, 4, 5, 6, 7}, toSlice(p))
	assert.Equal(t, 10, p.Count())
	assertInvariants(t, p)
	for _, s := range p.segments {
		assert.LessOrEqual(t, s.count, 4)
	}
}

func TestE2RemoveRangeAcrossSegments(t *testing.T) {
	p := fromSlice(4, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	p.RemoveRange(p.resolve(3), 5)
	assert.Equal(t, []int{0, 1, 2, 8, 9}, toSlice(p))
	assert.Equal(t, 5, p.Count())
	assertInvariants(t, p)
}

func TestE3ReverseAcrossSegments(t *testing.T) {
	p := fromSlice(4, 'a', 'b', 'c', 'd', 'e', 'f', 'g')
	p.Reverse(p.resolve(1), p.resolve(6), 5)
	assert.Equal(t, []int{'a', 'f', 'e', 'd', 'c', 'b', 'g'}, toSlice(p))
	assertInvariants(t, p)
}

func TestReverseIsInvolution(t *testing.T) {
	p := fromSlice(3, 1, 2, 3, 4, 5, 6, 7)
	before := toSlice(p)
	p.Reverse(p.resolve(1), p.resolve(6), 5)
	p.Reverse(p.resolve(1), p.resolve(6), 5)
	assert.Equal(t, before, toSlice(p))
}

func TestE4SortAcrossSegments(t *testing.T) {
	p := fromSlice(3, 9, 3, 7, 1, 4, 8, 2, 6, 5, 0)
	cmp := func(a, b int) int { return a - b }
	p.Sort(p.Begin(), p.End(), p.Count(), cmp)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, toSlice(p))
	assertInvariants(t, p)
}

func TestSortPreservesOutsideRange(t *testing.T) {
	p := fromSlice(3, 100, 9, 3, 7, 1, 200)
	cmp := func(a, b int) int { return a - b }
	p.Sort(p.resolve(1), p.resolve(5), 4, cmp)
	got := toSlice(p)
	assert.Equal(t, 100, got[0])
	assert.Equal(t, 200, got[5])
	assert.Equal(t, []int{1, 3, 7, 9}, got[1:5])
}

func TestE5BinarySearch(t *testing.T) {
	p := fromSlice(4, 10, 20, 30, 40, 50)
	cmp := func(a, b int) int { return a - b }
	assert.Equal(t, 2, p.BinarySearch(0, p.Count(), 30, cmp))
	assert.Equal(t, -3, p.BinarySearch(0, p.Count(), 25, cmp))
	assert.Equal(t, -6, p.BinarySearch(0, p.Count(), 60, cmp))
}

func TestE6CapacityLifecycle(t *testing.T) {
	p := NewWithCache[int](4, DefaultEqual[int](), 0)
	for i := 0; i < 10; i++ {
		p.InsertRange(p.End(), []int{i})
	}
	assert.GreaterOrEqual(t, p.Capacity(), 10)
	assert.Equal(t, 3, p.SegmentCount())

	p.TrimExcess()
	assert.Equal(t, 10, p.Capacity())

	p.RemoveRange(p.resolve(4), 6)
	p.TrimExcess()
	assert.Equal(t, p.Count(), p.Capacity())
}

func TestTrimExcessNoopWithinSlack(t *testing.T) {
	p := New[int](4, DefaultEqual[int]())
	p.InsertRange(p.End(), []int{1, 2})
	p.ExtendCapacity(3)
	assert.Equal(t, 5, p.Capacity())
	p.TrimExcess()
	assert.Equal(t, 5, p.Capacity(), "slack of 3 is within DefaultTrimExcessSlack, so TrimExcess must be a no-op")
}

func TestPositionRoundTrip(t *testing.T) {
	p := fromSlice(3, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	for v := 0; v <= p.Count(); v++ {
		pos := p.resolve(v)
		got := p.Begin()
		for i := 0; i < v; i++ {
			got = p.Next(got)
		}
		assert.Equal(t, pos, got, "virtual index %d", v)
	}
}

func TestRemoveRangeEmptyIsNoop(t *testing.T) {
	p := fromSlice(4, 1, 2, 3)
	before := toSlice(p)
	p.RemoveRange(p.resolve(1), 0)
	assert.Equal(t, before, toSlice(p))
}

func TestExtendThenTrimPreservesSequence(t *testing.T) {
	p := fromSlice(4, 1, 2, 3, 4, 5)
	before := toSlice(p)
	p.ExtendCapacity(10)
	assert.Equal(t, before, toSlice(p))
	p.TrimCapacity(10)
	assert.Equal(t, before, toSlice(p))
	assertInvariants(t, p)
}

func TestContainsIndexOfLastIndexOf(t *testing.T) {
	p := fromSlice(3, 1, 2, 3, 2, 1)
	assert.True(t, p.Contains(3))
	assert.False(t, p.Contains(42))
	assert.Equal(t, 1, p.IndexOf(2, 0, p.Count()))
	assert.Equal(t, 3, p.LastIndexOf(2, p.Count()-1, p.Count()))
	assert.Equal(t, -1, p.IndexOf(42, 0, p.Count()))
}

func TestRemoveAndRemoveAll(t *testing.T) {
	p := fromSlice(3, 1, 2, 3, 2, 1)
	assert.True(t, p.Remove(2))
	assert.Equal(t, []int{1, 3, 2, 1}, toSlice(p))
	n := p.RemoveAll(func(v int) bool { return v == 1 })
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{3, 2}, toSlice(p))
}

func TestEnumeratorContract(t *testing.T) {
	p := fromSlice(3, 1, 2, 3, 4, 5)
	e := p.GetEnumerator()
	_, err := e.Current()
	assert.ErrorIs(t, err, vlisterrors.ErrInvalidOperation)

	var got []int
	for e.MoveNext() {
		v, err := e.Current()
		assert.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	_, err = e.Current()
	assert.Error(t, err)
	assert.Error(t, e.Reset())
}
