package collection

import (
	"slices"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// ArrayList is a slice-backed List with O(1) positional access.
type ArrayList[V comparable] struct {
	items []V
}

// NewArrayList copies values into a new list.
func NewArrayList[V comparable](values ...V) *ArrayList[V] {
	return &ArrayList[V]{items: slices.Clone(values)}
}

// NewArrayListFrom drains it into a new list.
func NewArrayListFrom[V comparable](it iterator.Iterator[V]) *ArrayList[V] {
	return &ArrayList[V]{items: iterator.ToList(it)}
}

func (l *ArrayList[V]) RandomAccess() {}

func (l *ArrayList[V]) Itr() iterator.Iterator[V] {
	it, _ := newIndexListIterator[V](l, 0)
	return it
}

func (l *ArrayList[V]) ListItr(index int) (iterator.ListIterator[V], error) {
	it, err := newIndexListIterator[V](l, index)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (l *ArrayList[V]) Size() int {
	return len(l.items)
}

func (l *ArrayList[V]) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *ArrayList[V]) Get(index int) (V, error) {
	if err := checks.ElementIndex(index, len(l.items)); err != nil {
		return *new(V), err
	}
	return l.items[index], nil
}

func (l *ArrayList[V]) Set(index int, v V) (V, error) {
	if err := checks.ElementIndex(index, len(l.items)); err != nil {
		return *new(V), err
	}
	old := l.items[index]
	l.items[index] = v
	return old, nil
}

func (l *ArrayList[V]) Insert(index int, v V) error {
	if err := checks.PositionIndex(index, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Insert(l.items, index, v)
	return nil
}

func (l *ArrayList[V]) Add(v V) (bool, error) {
	l.items = append(l.items, v)
	return true, nil
}

func (l *ArrayList[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	if c, ok := values.(Collection[V]); ok {
		added := c.ToSlice()
		l.items = append(l.items, added...)
		return len(added) > 0, nil
	}
	return addAll[V](l, values)
}

func (l *ArrayList[V]) RemoveAt(index int) (V, error) {
	if err := checks.ElementIndex(index, len(l.items)); err != nil {
		return *new(V), err
	}
	old := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return old, nil
}

func (l *ArrayList[V]) RemoveRange(from, to int) error {
	if err := checks.PositionIndexes(from, to, len(l.items)); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, from, to)
	return nil
}

func (l *ArrayList[V]) IndexOf(v V) int {
	return slices.Index(l.items, v)
}

func (l *ArrayList[V]) Contains(v V) (bool, error) {
	return slices.Contains(l.items, v), nil
}

func (l *ArrayList[V]) Remove(v V) (bool, error) {
	i := l.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	_, err := l.RemoveAt(i)
	return err == nil, err
}

func (l *ArrayList[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	return l.removeIf(predicate.In(c)), nil
}

func (l *ArrayList[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	return l.removeIf(predicate.Not(predicate.In(c))), nil
}

func (l *ArrayList[V]) removeIf(pred predicate.Predicate[V]) bool {
	before := len(l.items)
	l.items = slices.DeleteFunc(l.items, pred)
	return len(l.items) != before
}

func (l *ArrayList[V]) Clear() error {
	clear(l.items)
	l.items = l.items[:0]
	return nil
}

func (l *ArrayList[V]) ToSlice() []V {
	return slices.Clone(l.items)
}

func (l *ArrayList[V]) SubList(from, to int) (List[V], error) {
	return newSubList[V](l, from, to)
}

func (l *ArrayList[V]) String() string {
	return iterator.ToString(l.Itr())
}
