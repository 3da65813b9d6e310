package collection

import (
	"testing"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lists returns one empty instance of every List implementation.
func lists() map[string]func(values ...int) List[int] {
	return map[string]func(values ...int) List[int]{
		"array": func(values ...int) List[int] { return NewArrayList(values...) },
		"linked": func(values ...int) List[int] {
			return NewLinkedList(values...)
		},
		"sub": func(values ...int) List[int] {
			backing := NewArrayList(append(append([]int{-1}, values...), -2)...)
			sub, err := backing.SubList(1, len(values)+1)
			if err != nil {
				panic(err)
			}
			return sub
		},
	}
}

func TestList_PositionalAccess(t *testing.T) {
	for name, newList := range lists() {
		t.Run(name, func(t *testing.T) {
			l := newList(1, 2, 3)

			v, err := l.Get(1)
			require.NoError(t, err)
			assert.Equal(t, 2, v)

			_, err = l.Get(3)
			assert.ErrorIs(t, err, checks.ErrIndexOutOfBounds)

			old, err := l.Set(0, 10)
			require.NoError(t, err)
			assert.Equal(t, 1, old)

			require.NoError(t, l.Insert(3, 4))
			require.NoError(t, l.Insert(0, 0))
			assert.Equal(t, []int{0, 10, 2, 3, 4}, l.ToSlice())
			assert.ErrorIs(t, l.Insert(9, 9), checks.ErrIndexOutOfBounds)

			removed, err := l.RemoveAt(1)
			require.NoError(t, err)
			assert.Equal(t, 10, removed)

			require.NoError(t, l.RemoveRange(1, 3))
			assert.Equal(t, []int{0, 4}, l.ToSlice())
			assert.Equal(t, 2, l.Size())
			assert.Equal(t, "[0, 4]", l.(interface{ String() string }).String())
		})
	}
}

func TestList_ByValue(t *testing.T) {
	for name, newList := range lists() {
		t.Run(name, func(t *testing.T) {
			l := newList(lo.Range(6)...)

			assert.Equal(t, 4, l.IndexOf(4))
			assert.Equal(t, -1, l.IndexOf(42))

			ok, err := l.Contains(5)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = l.Remove(5)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = l.Remove(5)
			require.NoError(t, err)
			assert.False(t, ok)

			changed, err := l.RemoveAll(NewArrayList(0, 2))
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, []int{1, 3, 4}, l.ToSlice())

			changed, err = l.RetainAll(NewArrayList(3, 4, 7))
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, []int{3, 4}, l.ToSlice())

			changed, err = l.AddAll(NewArrayList(8, 9))
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, []int{3, 4, 8, 9}, l.ToSlice())

			require.NoError(t, l.Clear())
			assert.True(t, l.IsEmpty())
			assert.Empty(t, l.ToSlice())
		})
	}
}

func TestList_ListIterator(t *testing.T) {
	for name, newList := range lists() {
		t.Run(name, func(t *testing.T) {
			l := newList(1, 2, 3)

			it, err := l.ListItr(1)
			require.NoError(t, err)
			assert.True(t, it.HasPrevious())
			assert.Equal(t, 1, it.NextIndex())
			assert.Equal(t, 0, it.PreviousIndex())

			assert.ErrorIs(t, it.Set(0), checks.ErrIllegalState)
			assert.ErrorIs(t, it.Remove(), checks.ErrIllegalState)

			v, ok := it.Move()
			require.True(t, ok)
			assert.Equal(t, 2, v)
			require.NoError(t, it.Set(20))

			v, ok = it.Previous()
			require.True(t, ok)
			assert.Equal(t, 20, v)
			require.NoError(t, it.Remove())
			assert.Equal(t, 1, it.NextIndex())
			assert.ErrorIs(t, it.Remove(), checks.ErrIllegalState)

			require.NoError(t, it.Add(7))
			assert.Equal(t, 2, it.NextIndex())
			assert.ErrorIs(t, it.Set(0), checks.ErrIllegalState)

			v, ok = it.Move()
			require.True(t, ok)
			assert.Equal(t, 3, v)
			assert.False(t, it.HasNext())
			_, ok = it.Move()
			assert.False(t, ok)

			assert.Equal(t, []int{1, 7, 3}, l.ToSlice())

			_, err = l.ListItr(4)
			assert.ErrorIs(t, err, checks.ErrIndexOutOfBounds)
		})
	}
}

func TestList_IteratorRemove(t *testing.T) {
	for name, newList := range lists() {
		t.Run(name, func(t *testing.T) {
			l := newList(lo.Range(7)...)

			changed, err := iterator.RemoveIf(l.Itr(), func(v int) bool { return v%2 == 0 })
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, lo.Filter(lo.Range(7), func(v, _ int) bool { return v%2 != 0 }), l.ToSlice())
		})
	}
}

// TestSubList_WritesThrough checks that sub-list changes reach the parent.
func TestSubList_WritesThrough(t *testing.T) {
	parent := NewArrayList(1, 2, 3, 4, 5)

	sub, err := parent.SubList(1, 4)
	require.NoError(t, err)
	assert.True(t, IsRandomAccess(sub))
	assert.Equal(t, []int{2, 3, 4}, sub.ToSlice())

	_, err = sub.Set(0, 20)
	require.NoError(t, err)
	_, err = sub.Add(40)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 20, 3, 4, 40, 5}, parent.ToSlice())
	assert.Equal(t, 4, sub.Size())

	require.NoError(t, sub.Clear())
	assert.Equal(t, []int{1, 5}, parent.ToSlice())
	assert.True(t, sub.IsEmpty())

	_, err = parent.SubList(2, 1)
	assert.ErrorIs(t, err, checks.ErrIndexOutOfBounds)
}

func TestSubList_Nested(t *testing.T) {
	parent := NewLinkedList(lo.Range(10)...)

	outer, err := parent.SubList(2, 8)
	require.NoError(t, err)
	assert.False(t, IsRandomAccess(outer))

	inner, err := outer.SubList(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, inner.ToSlice())

	_, err = inner.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 5, outer.Size())
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7, 8, 9}, parent.ToSlice())
}

func TestSubList_NestedRandomAccess(t *testing.T) {
	parent := NewArrayList(lo.Range(10)...)

	outer, err := parent.SubList(1, 8)
	require.NoError(t, err)
	inner, err := outer.SubList(1, 3)
	require.NoError(t, err)
	assert.True(t, IsRandomAccess(inner))
	assert.Equal(t, []int{2, 3}, inner.ToSlice())

	innermost, err := inner.SubList(0, 1)
	require.NoError(t, err)
	assert.True(t, IsRandomAccess(innermost))

	require.NoError(t, innermost.Insert(0, 20))
	assert.Equal(t, 3, inner.Size())
	assert.Equal(t, 8, outer.Size())
	assert.Equal(t, []int{0, 1, 20, 2, 3, 4, 5, 6, 7, 8, 9}, parent.ToSlice())
}

// brokenList reports elements it cannot return.
type brokenList struct {
	*ArrayList[int]
}

func (brokenList) Get(index int) (int, error) {
	return 0, checks.ErrIndexOutOfBounds
}

func TestListIterator_FailedGetEndsIteration(t *testing.T) {
	l := brokenList{NewArrayList(1, 2, 3)}

	it, err := newIndexListIterator[int](l, 1)
	require.NoError(t, err)
	require.True(t, it.HasNext())

	_, ok := it.Move()
	assert.False(t, ok)
	assert.False(t, it.HasNext())
	assert.ErrorIs(t, it.Remove(), checks.ErrIllegalState)

	it, err = newIndexListIterator[int](l, 2)
	require.NoError(t, err)
	require.True(t, it.HasPrevious())

	_, ok = it.Previous()
	assert.False(t, ok)
	assert.False(t, it.HasPrevious())
	assert.ErrorIs(t, it.Set(0), checks.ErrIllegalState)
}

func TestArrayList_AddAllFromCollection(t *testing.T) {
	l := NewArrayList(1)

	changed, err := l.AddAll(NewLinkedList[int]())
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = l.AddAll(iterator.NewSliceIterable([]int{2, 3}))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestContainsAll(t *testing.T) {
	l := NewArrayList(1, 2, 3)

	assert.True(t, ContainsAll[int](l, iterator.NewSliceIterable([]int{3, 1})))
	assert.False(t, ContainsAll[int](l, iterator.NewSliceIterable([]int{3, 4})))
	assert.True(t, ContainsAll[int](l, iterator.NewEmptyIterable[int]()))
}
