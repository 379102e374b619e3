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
package vlist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	vlisterrors "github.com/vlistgo/vlist/golibs/errors"
	"github.com/vlistgo/vlist/golibs/ulidutils"
	"github.com/vlistgo/vlist/pkg/partition"
)

func testConfig() Config {
	return Config{MaxSegmentCapacity: 4, PositionCacheSize: 4, TrimSlack: partition.DefaultTrimExcessSlack}
}

func TestAddGetSet(t *testing.T) {
	l := NewWithConfig[int](testConfig(), partition.DefaultEqual[int]())
	l.Add(1)
	l.Add(2)
	l.Add(3)
	assert.Equal(t, 3, l.Count())
	v, err := l.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.NoError(t, l.Set(1, 20))
	v, _ = l.Get(1)
	assert.Equal(t, 20, v)
}

func TestGetOutOfRange(t *testing.T) {
	l := NewWithConfig[int](testConfig(), partition.DefaultEqual[int]())
	l.Add(1)
	_, err := l.Get(5)
	assert.ErrorIs(t, err, vlisterrors.ErrArgumentOutOfRange)

	var coords rangeCoords
	assert.True(t, vlisterrors.ExtractObject(err, &coords))
	assert.Equal(t, 5, coords.Index)
	assert.Equal(t, 1, coords.Count)
}

func TestInsertAndRemoveRange(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.NoError(t, l.RemoveRange(3, 5))
	assert.Equal(t, []int{0, 1, 2, 8, 9}, l.ToArray())
}

func TestRemoveRangeBadRange(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3})
	err := l.RemoveRange(2, 5)
	assert.ErrorIs(t, err, vlisterrors.ErrArgumentRange)
}

func TestSortOrderedAndBinarySearch(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{9, 3, 7, 1, 4, 8, 2, 6, 5, 0})
	assert.NoError(t, SortOrdered(l))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, l.ToArray())

	idx, err := BinarySearchOrdered(l, 0, l.Count(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, idx)
}

func TestReverseInvolution(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3, 4, 5, 6, 7})
	before := append([]int{}, l.ToArray()...)
	l.Reverse()
	l.Reverse()
	assert.Equal(t, before, l.ToArray())
}

func TestCapacitySetterRejectsBelowCount(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3})
	err := l.SetCapacity(0)
	assert.ErrorIs(t, err, vlisterrors.ErrArgumentOutOfRange)
}

func TestTrimExcessOnCapacityLifecycle(t *testing.T) {
	l := NewWithConfig[int](testConfig(), partition.DefaultEqual[int]())
	for i := 0; i < 10; i++ {
		l.Add(i)
	}
	assert.GreaterOrEqual(t, l.Capacity(), 10)
	assert.NoError(t, l.RemoveRange(4, 6))
	l.TrimExcess()
	assert.Equal(t, l.Count(), l.Capacity())
}

func TestFindFamily(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3, 4, 5})
	isEven := func(v int) bool { return v%2 == 0 }

	v, ok, err := Find(l, isEven)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok, err = FindLast(l, isEven)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	idx, err := FindIndex(l, isEven)
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = FindLastIndex(l, isEven)
	assert.NoError(t, err)
	assert.Equal(t, 3, idx)

	all, err := FindAll(l, isEven)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4}, all)

	exists, err := Exists(l, func(v int) bool { return v == 3 })
	assert.NoError(t, err)
	assert.True(t, exists)

	forAll, err := TrueForAll(l, func(v int) bool { return v > 0 })
	assert.NoError(t, err)
	assert.True(t, forAll)
}

func TestConvertAll(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3})
	out, err := ConvertAll[int, string](l, testConfig(), partition.DefaultEqual[string](), func(v int) string {
		return string(rune('a' + v - 1))
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, out.ToArray())
}

func TestReadOnlyListRejectsWrites(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3})
	ro := l.AsReadOnly()
	assert.Equal(t, 3, ro.Count())
	assert.ErrorIs(t, ro.Set(0, 9), vlisterrors.ErrNotSupported)
	assert.ErrorIs(t, ro.Add(9), vlisterrors.ErrNotSupported)
	assert.ErrorIs(t, ro.RemoveAt(0), vlisterrors.ErrNotSupported)
}

func TestCopyToAndGetRange(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3, 4, 5})
	dst := make([]int, 5)
	assert.NoError(t, l.CopyTo(dst, 0))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, dst)

	sub, err := l.GetRange(1, 3, testConfig(), partition.DefaultEqual[int]())
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, sub.ToArray())
}

func TestMergeSorted(t *testing.T) {
	a := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 3, 5, 7})
	b := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{2, 4, 6})
	merged := MergeSorted(a, b, testConfig(), partition.DefaultEqual[int](), func(x, y int) bool { return x < y })
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, merged.ToArray())
}

func TestEnumeratorForEach(t *testing.T) {
	l := FromSlice(testConfig(), partition.DefaultEqual[int](), []int{1, 2, 3})
	var sum int
	assert.NoError(t, ForEach(l, func(v int) error { sum += v; return nil }))
	assert.Equal(t, 6, sum)
}

// TestUUIDElementHasNoNaturalOrder exercises Contains/IndexOf/Remove against
// a comparable element type with no natural order, where SortOrdered and
// BinarySearchOrdered simply aren't applicable.
func TestUUIDElementHasNoNaturalOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	l := FromSlice(testConfig(), partition.DefaultEqual[uuid.UUID](), []uuid.UUID{a, b, c})

	assert.True(t, l.Contains(b))
	assert.Equal(t, 1, l.IndexOf(b))
	assert.True(t, l.Remove(b))
	assert.False(t, l.Contains(b))
	assert.Equal(t, []uuid.UUID{a, c}, l.ToArray())
}

// TestULIDElementSortsByGenerationOrder exercises a realistic sortable
// comparable element type end to end through insert/sort/search, the way a
// caller storing monotonic IDs would.
func TestULIDElementSortsByGenerationOrder(t *testing.T) {
	ids := make([]string, 5)
	for i := range ids {
		ids[i] = ulidutils.NewID()
	}
	shuffled := []string{ids[3], ids[1], ids[4], ids[0], ids[2]}
	l := FromSlice(testConfig(), partition.DefaultEqual[string](), shuffled)

	assert.NoError(t, SortOrdered(l))
	assert.Equal(t, ids, l.ToArray())

	idx, err := BinarySearchOrdered(l, 0, l.Count(), ids[2])
	assert.NoError(t, err)
	assert.Equal(t, 2, idx)
}
