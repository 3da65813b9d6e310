package collection

import (
	"container/list"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// LinkedList is a doubly linked List. Positional access walks from the
// nearer end; cursors move in O(1).
type LinkedList[V comparable] struct {
	l list.List
}

func NewLinkedList[V comparable](values ...V) *LinkedList[V] {
	ll := &LinkedList[V]{}
	for _, v := range values {
		ll.l.PushBack(v)
	}
	return ll
}

// node returns the element at index; index must be valid.
func (ll *LinkedList[V]) node(index int) *list.Element {
	if index < ll.l.Len()/2 {
		e := ll.l.Front()
		for i := 0; i < index; i++ {
			e = e.Next()
		}
		return e
	}
	e := ll.l.Back()
	for i := ll.l.Len() - 1; i > index; i-- {
		e = e.Prev()
	}
	return e
}

func (ll *LinkedList[V]) Itr() iterator.Iterator[V] {
	it, _ := ll.ListItr(0)
	return it
}

func (ll *LinkedList[V]) ListItr(index int) (iterator.ListIterator[V], error) {
	if err := checks.PositionIndex(index, ll.l.Len()); err != nil {
		return nil, err
	}

	var next *list.Element
	if index < ll.l.Len() {
		next = ll.node(index)
	}
	return &linkedListIterator[V]{owner: ll, next: next, nextIndex: index}, nil
}

func (ll *LinkedList[V]) Size() int {
	return ll.l.Len()
}

func (ll *LinkedList[V]) IsEmpty() bool {
	return ll.l.Len() == 0
}

func (ll *LinkedList[V]) Get(index int) (V, error) {
	if err := checks.ElementIndex(index, ll.l.Len()); err != nil {
		return *new(V), err
	}
	return ll.node(index).Value.(V), nil
}

func (ll *LinkedList[V]) Set(index int, v V) (V, error) {
	if err := checks.ElementIndex(index, ll.l.Len()); err != nil {
		return *new(V), err
	}
	e := ll.node(index)
	old := e.Value.(V)
	e.Value = v
	return old, nil
}

func (ll *LinkedList[V]) Insert(index int, v V) error {
	if err := checks.PositionIndex(index, ll.l.Len()); err != nil {
		return err
	}
	if index == ll.l.Len() {
		ll.l.PushBack(v)
		return nil
	}
	ll.l.InsertBefore(v, ll.node(index))
	return nil
}

func (ll *LinkedList[V]) Add(v V) (bool, error) {
	ll.l.PushBack(v)
	return true, nil
}

func (ll *LinkedList[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	return addAll[V](ll, values)
}

func (ll *LinkedList[V]) RemoveAt(index int) (V, error) {
	if err := checks.ElementIndex(index, ll.l.Len()); err != nil {
		return *new(V), err
	}
	return ll.l.Remove(ll.node(index)).(V), nil
}

func (ll *LinkedList[V]) RemoveRange(from, to int) error {
	if err := checks.PositionIndexes(from, to, ll.l.Len()); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	e := ll.node(from)
	for i := from; i < to; i++ {
		next := e.Next()
		ll.l.Remove(e)
		e = next
	}
	return nil
}

func (ll *LinkedList[V]) IndexOf(v V) int {
	return indexOf(ll.Itr(), v)
}

func (ll *LinkedList[V]) Contains(v V) (bool, error) {
	return ll.IndexOf(v) >= 0, nil
}

func (ll *LinkedList[V]) Remove(v V) (bool, error) {
	for e := ll.l.Front(); e != nil; e = e.Next() {
		if e.Value.(V) == v {
			ll.l.Remove(e)
			return true, nil
		}
	}
	return false, nil
}

func (ll *LinkedList[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	return iterator.RemoveAll(ll.Itr(), c)
}

func (ll *LinkedList[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	return iterator.RetainAll(ll.Itr(), c)
}

func (ll *LinkedList[V]) Clear() error {
	ll.l.Init()
	return nil
}

func (ll *LinkedList[V]) ToSlice() []V {
	res := make([]V, 0, ll.l.Len())
	for e := ll.l.Front(); e != nil; e = e.Next() {
		res = append(res, e.Value.(V))
	}
	return res
}

func (ll *LinkedList[V]) SubList(from, to int) (List[V], error) {
	return newSubList[V](ll, from, to)
}

func (ll *LinkedList[V]) String() string {
	return iterator.ToString(ll.Itr())
}

// linkedListIterator keeps next, the element Move would return (nil at
// the end), and lastReturned, cleared by Add and Remove.
type linkedListIterator[V comparable] struct {
	owner        *LinkedList[V]
	next         *list.Element
	nextIndex    int
	lastReturned *list.Element
}

func (it *linkedListIterator[V]) HasNext() bool {
	return it.nextIndex < it.owner.l.Len()
}

func (it *linkedListIterator[V]) Move() (V, bool) {
	if !it.HasNext() || it.next == nil {
		return *new(V), false
	}
	it.lastReturned = it.next
	it.next = it.next.Next()
	it.nextIndex++
	return it.lastReturned.Value.(V), true
}

func (it *linkedListIterator[V]) HasPrevious() bool {
	return it.nextIndex > 0
}

func (it *linkedListIterator[V]) Previous() (V, bool) {
	if !it.HasPrevious() {
		return *new(V), false
	}
	if it.next == nil {
		it.next = it.owner.l.Back()
	} else {
		it.next = it.next.Prev()
	}
	it.lastReturned = it.next
	it.nextIndex--
	return it.lastReturned.Value.(V), true
}

func (it *linkedListIterator[V]) NextIndex() int {
	return it.nextIndex
}

func (it *linkedListIterator[V]) PreviousIndex() int {
	return it.nextIndex - 1
}

func (it *linkedListIterator[V]) Remove() error {
	if err := checks.Remove(it.lastReturned != nil); err != nil {
		return err
	}
	following := it.lastReturned.Next()
	it.owner.l.Remove(it.lastReturned)
	if it.next == it.lastReturned {
		it.next = following
	} else {
		it.nextIndex--
	}
	it.lastReturned = nil
	return nil
}

func (it *linkedListIterator[V]) Set(v V) error {
	if err := checks.State(it.lastReturned != nil, "set requires a preceding call to next or previous"); err != nil {
		return err
	}
	it.lastReturned.Value = v
	return nil
}

func (it *linkedListIterator[V]) Add(v V) error {
	it.lastReturned = nil
	if it.next == nil {
		it.owner.l.PushBack(v)
	} else {
		it.owner.l.InsertBefore(v, it.next)
	}
	it.nextIndex++
	return nil
}
