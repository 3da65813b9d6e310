package collection

import (
	"github.com/johnjamespj/arrow/pkg/checks"
)

// indexListIterator is a ListIterator over any List through positional
// access. lastRet is the index of the element last returned by Move or
// Previous, or -1 after Add/Remove.
type indexListIterator[V any] struct {
	list    List[V]
	cursor  int
	lastRet int
}

func newIndexListIterator[V any](l List[V], index int) (*indexListIterator[V], error) {
	if err := checks.PositionIndex(index, l.Size()); err != nil {
		return nil, err
	}
	return &indexListIterator[V]{list: l, cursor: index, lastRet: -1}, nil
}

func (it *indexListIterator[V]) HasNext() bool {
	return it.cursor < it.list.Size()
}

func (it *indexListIterator[V]) Move() (V, bool) {
	if !it.HasNext() {
		return *new(V), false
	}
	v, err := it.list.Get(it.cursor)
	if err != nil {
		// the list changed outside this cursor; end the iteration
		it.cursor = it.list.Size()
		it.lastRet = -1
		return *new(V), false
	}
	it.lastRet = it.cursor
	it.cursor++
	return v, true
}

func (it *indexListIterator[V]) HasPrevious() bool {
	return it.cursor > 0
}

func (it *indexListIterator[V]) Previous() (V, bool) {
	if !it.HasPrevious() {
		return *new(V), false
	}
	v, err := it.list.Get(it.cursor - 1)
	if err != nil {
		it.cursor = 0
		it.lastRet = -1
		return *new(V), false
	}
	it.cursor--
	it.lastRet = it.cursor
	return v, true
}

func (it *indexListIterator[V]) NextIndex() int {
	return it.cursor
}

func (it *indexListIterator[V]) PreviousIndex() int {
	return it.cursor - 1
}

func (it *indexListIterator[V]) Remove() error {
	if err := checks.Remove(it.lastRet >= 0); err != nil {
		return err
	}
	if _, err := it.list.RemoveAt(it.lastRet); err != nil {
		return err
	}
	if it.lastRet < it.cursor {
		it.cursor--
	}
	it.lastRet = -1
	return nil
}

func (it *indexListIterator[V]) Set(v V) error {
	if err := checks.State(it.lastRet >= 0, "set requires a preceding call to next or previous"); err != nil {
		return err
	}
	_, err := it.list.Set(it.lastRet, v)
	return err
}

func (it *indexListIterator[V]) Add(v V) error {
	if err := it.list.Insert(it.cursor, v); err != nil {
		return err
	}
	it.cursor++
	it.lastRet = -1
	return nil
}
