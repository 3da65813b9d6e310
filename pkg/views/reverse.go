package views

import (
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// ReverseList presents a list in reverse order. Element index i maps to
// size-1-i of the forward list and insertion position p maps to size-p,
// both computed against the size at the time of the call.
type ReverseList[V comparable] struct {
	forward collection.List[V]
}

type randomAccessReverseList[V comparable] struct {
	*ReverseList[V]
}

func (randomAccessReverseList[V]) RandomAccess() {}

// Reverse returns a live reversed view of l. Reversing a reversed view
// returns the list it was built from.
func Reverse[V comparable](l collection.List[V]) (collection.List[V], error) {
	if err := checks.NotNil(l, "list"); err != nil {
		return nil, err
	}

	switch r := l.(type) {
	case *ReverseList[V]:
		return r.forward, nil
	case randomAccessReverseList[V]:
		return r.forward, nil
	}

	reversed := &ReverseList[V]{forward: l}
	if collection.IsRandomAccess(l) {
		return randomAccessReverseList[V]{reversed}, nil
	}
	return reversed, nil
}

// Forward returns the list this view reverses.
func (r *ReverseList[V]) Forward() collection.List[V] {
	return r.forward
}

func (r *ReverseList[V]) reverseIndex(index int) (int, error) {
	size := r.Size()
	if err := checks.ElementIndex(index, size); err != nil {
		return 0, err
	}
	return size - 1 - index, nil
}

func (r *ReverseList[V]) reversePosition(index int) (int, error) {
	size := r.Size()
	if err := checks.PositionIndex(index, size); err != nil {
		return 0, err
	}
	return size - index, nil
}

func (r *ReverseList[V]) Size() int {
	return r.forward.Size()
}

func (r *ReverseList[V]) IsEmpty() bool {
	return r.forward.IsEmpty()
}

func (r *ReverseList[V]) Get(index int) (V, error) {
	i, err := r.reverseIndex(index)
	if err != nil {
		return *new(V), err
	}
	return r.forward.Get(i)
}

func (r *ReverseList[V]) Set(index int, v V) (V, error) {
	i, err := r.reverseIndex(index)
	if err != nil {
		return *new(V), err
	}
	return r.forward.Set(i, v)
}

func (r *ReverseList[V]) Insert(index int, v V) error {
	p, err := r.reversePosition(index)
	if err != nil {
		return err
	}
	return r.forward.Insert(p, v)
}

// Add appends v to the end of the view, which is the front of the
// forward list.
func (r *ReverseList[V]) Add(v V) (bool, error) {
	if err := r.forward.Insert(0, v); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReverseList[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	return iterator.AddAll[V](r, values.Itr())
}

func (r *ReverseList[V]) RemoveAt(index int) (V, error) {
	i, err := r.reverseIndex(index)
	if err != nil {
		return *new(V), err
	}
	return r.forward.RemoveAt(i)
}

func (r *ReverseList[V]) RemoveRange(from, to int) error {
	sub, err := r.SubList(from, to)
	if err != nil {
		return err
	}
	return sub.Clear()
}

// Remove removes the first occurrence of v in view order.
func (r *ReverseList[V]) Remove(v V) (bool, error) {
	i := r.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	_, err := r.RemoveAt(i)
	return err == nil, err
}

func (r *ReverseList[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	return r.forward.RemoveAll(c)
}

func (r *ReverseList[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	return r.forward.RetainAll(c)
}

func (r *ReverseList[V]) Clear() error {
	return r.forward.Clear()
}

func (r *ReverseList[V]) Contains(v V) (bool, error) {
	return r.forward.Contains(v)
}

func (r *ReverseList[V]) IndexOf(v V) int {
	return iterator.IndexOf(r.Itr(), predicate.EqualTo(v))
}

func (r *ReverseList[V]) SubList(from, to int) (collection.List[V], error) {
	size := r.Size()
	if err := checks.PositionIndexes(from, to, size); err != nil {
		return nil, err
	}
	sub, err := r.forward.SubList(size-to, size-from)
	if err != nil {
		return nil, err
	}
	return Reverse(sub)
}

func (r *ReverseList[V]) ToSlice() []V {
	return iterator.ToList(r.Itr())
}

func (r *ReverseList[V]) Itr() iterator.Iterator[V] {
	it, _ := r.ListItr(0)
	return it
}

func (r *ReverseList[V]) ListItr(index int) (iterator.ListIterator[V], error) {
	start, err := r.reversePosition(index)
	if err != nil {
		return nil, err
	}
	forward, err := r.forward.ListItr(start)
	if err != nil {
		return nil, err
	}
	return &reverseListIterator[V]{list: r, forward: forward}, nil
}

func (r *ReverseList[V]) String() string {
	return iterator.ToString(r.Itr())
}

// reverseListIterator walks the forward cursor backwards. Set is valid
// only after Move or Previous with no Add or Remove in between.
type reverseListIterator[V comparable] struct {
	list           *ReverseList[V]
	forward        iterator.ListIterator[V]
	canRemoveOrSet bool
}

func (it *reverseListIterator[V]) HasNext() bool {
	return it.forward.HasPrevious()
}

func (it *reverseListIterator[V]) Move() (V, bool) {
	if !it.HasNext() {
		return *new(V), false
	}
	it.canRemoveOrSet = true
	return it.forward.Previous()
}

func (it *reverseListIterator[V]) HasPrevious() bool {
	return it.forward.HasNext()
}

func (it *reverseListIterator[V]) Previous() (V, bool) {
	if !it.HasPrevious() {
		return *new(V), false
	}
	it.canRemoveOrSet = true
	return it.forward.Move()
}

func (it *reverseListIterator[V]) NextIndex() int {
	return it.list.Size() - it.forward.NextIndex()
}

func (it *reverseListIterator[V]) PreviousIndex() int {
	return it.NextIndex() - 1
}

func (it *reverseListIterator[V]) Remove() error {
	if err := checks.Remove(it.canRemoveOrSet); err != nil {
		return err
	}
	if err := it.forward.Remove(); err != nil {
		return err
	}
	it.canRemoveOrSet = false
	return nil
}

func (it *reverseListIterator[V]) Set(v V) error {
	if err := checks.State(it.canRemoveOrSet, "set requires a preceding call to next or previous"); err != nil {
		return err
	}
	return it.forward.Set(v)
}

// Add inserts v so that the next Previous returns it.
func (it *reverseListIterator[V]) Add(v V) error {
	if err := it.forward.Add(v); err != nil {
		return err
	}
	it.forward.Previous()
	it.canRemoveOrSet = false
	return nil
}
