package collection

import (
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// subList is a live window [offset, offset+size) of parent. Changes made
// through the window update its size; structural changes made to parent
// directly leave the window undefined.
type subList[V comparable] struct {
	parent List[V]
	offset int
	size   int
}

type randomAccessSubList[V comparable] struct {
	*subList[V]
}

func (randomAccessSubList[V]) RandomAccess() {}

func (s randomAccessSubList[V]) SubList(from, to int) (List[V], error) {
	return newSubList[V](s, from, to)
}

func newSubList[V comparable](parent List[V], from, to int) (List[V], error) {
	if err := checks.PositionIndexes(from, to, parent.Size()); err != nil {
		return nil, err
	}
	s := &subList[V]{parent: parent, offset: from, size: to - from}
	if IsRandomAccess(parent) {
		return randomAccessSubList[V]{s}, nil
	}
	return s, nil
}

func (s *subList[V]) Itr() iterator.Iterator[V] {
	it, _ := newIndexListIterator[V](s, 0)
	return it
}

func (s *subList[V]) ListItr(index int) (iterator.ListIterator[V], error) {
	it, err := newIndexListIterator[V](s, index)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *subList[V]) Size() int {
	return s.size
}

func (s *subList[V]) IsEmpty() bool {
	return s.size == 0
}

func (s *subList[V]) Get(index int) (V, error) {
	if err := checks.ElementIndex(index, s.size); err != nil {
		return *new(V), err
	}
	return s.parent.Get(s.offset + index)
}

func (s *subList[V]) Set(index int, v V) (V, error) {
	if err := checks.ElementIndex(index, s.size); err != nil {
		return *new(V), err
	}
	return s.parent.Set(s.offset+index, v)
}

func (s *subList[V]) Insert(index int, v V) error {
	if err := checks.PositionIndex(index, s.size); err != nil {
		return err
	}
	if err := s.parent.Insert(s.offset+index, v); err != nil {
		return err
	}
	s.size++
	return nil
}

func (s *subList[V]) Add(v V) (bool, error) {
	if err := s.Insert(s.size, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *subList[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	return addAll[V](s, values)
}

func (s *subList[V]) RemoveAt(index int) (V, error) {
	if err := checks.ElementIndex(index, s.size); err != nil {
		return *new(V), err
	}
	v, err := s.parent.RemoveAt(s.offset + index)
	if err != nil {
		return v, err
	}
	s.size--
	return v, nil
}

func (s *subList[V]) RemoveRange(from, to int) error {
	if err := checks.PositionIndexes(from, to, s.size); err != nil {
		return err
	}
	if err := s.parent.RemoveRange(s.offset+from, s.offset+to); err != nil {
		return err
	}
	s.size -= to - from
	return nil
}

func (s *subList[V]) IndexOf(v V) int {
	return indexOf(s.Itr(), v)
}

func (s *subList[V]) Contains(v V) (bool, error) {
	return s.IndexOf(v) >= 0, nil
}

func (s *subList[V]) Remove(v V) (bool, error) {
	i := s.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	_, err := s.RemoveAt(i)
	return err == nil, err
}

func (s *subList[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	return iterator.RemoveAll(s.Itr(), c)
}

func (s *subList[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	return iterator.RetainAll(s.Itr(), c)
}

func (s *subList[V]) Clear() error {
	return s.RemoveRange(0, s.size)
}

func (s *subList[V]) ToSlice() []V {
	return iterator.ToList(s.Itr())
}

func (s *subList[V]) SubList(from, to int) (List[V], error) {
	return newSubList[V](s, from, to)
}

func (s *subList[V]) String() string {
	return iterator.ToString(s.Itr())
}
