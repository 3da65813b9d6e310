package iterator

import (
	"container/list"

	"github.com/johnjamespj/arrow/pkg/predicate"
)

// BaseIterable is an Iterable built from a cursor factory. Every fluent
// method returns a new lazy BaseIterable whose cursors re-run the chain
// from the start.
type BaseIterable[V any] struct {
	builder func() Iterator[V]
}

func BaseIterableFrom[V any](builder func() Iterator[V]) *BaseIterable[V] {
	return &BaseIterable[V]{
		builder: builder,
	}
}

// From wraps any Iterable so the fluent methods are available on it.
func From[V any](it Iterable[V]) *BaseIterable[V] {
	if b, ok := it.(*BaseIterable[V]); ok {
		return b
	}
	return BaseIterableFrom(it.Itr)
}

func (i *BaseIterable[V]) Itr() Iterator[V] {
	return i.builder()
}

func (i *BaseIterable[V]) Take(n int) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &TakeNIterator[V]{
			Iterable: i.Itr(),
			N:        n,
			idx:      0,
		}
	})
}

func (i *BaseIterable[V]) Skip(n int) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SkipNIterator[V]{
			Iterable: i.Itr(),
			N:        n,
			idx:      0,
		}
	})
}

func (i *BaseIterable[V]) SkipWhile(pred predicate.Predicate[V]) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return newSkipWhileIterator(i.Itr(), pred)
	})
}

func (i *BaseIterable[V]) TakeWhile(pred predicate.Predicate[V]) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return newTakeWhileIterator(i.Itr(), pred)
	})
}

func (i *BaseIterable[V]) Where(pred predicate.Predicate[V]) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return newFilterIterator(i.Itr(), pred)
	})
}

func (i *BaseIterable[V]) FollowedBy(itr ...Iterable[V]) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		iterators := make([]Iterator[V], 0, len(itr)+1)
		iterators = append(iterators, i.Itr())
		for _, it := range itr {
			iterators = append(iterators, it.Itr())
		}

		return &ChainIterator[V]{
			Iterables: iterators,
			idx:       0,
		}
	})
}

func (i *BaseIterable[V]) Reversed() *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &ReversedIterator[V]{
			Iterable: i.Itr(),
		}
	})
}

func (i *BaseIterable[V]) Any(pred predicate.Predicate[V]) bool {
	return Any(i.Itr(), pred)
}

func (i *BaseIterable[V]) Every(pred predicate.Predicate[V]) bool {
	return All(i.Itr(), pred)
}

func (i *BaseIterable[V]) ForEach(f func(V)) {
	itr := i.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		f(v)
	}
}

func (i *BaseIterable[V]) ToList() []V {
	return ToList(i.Itr())
}

func (i *BaseIterable[V]) String() string {
	return ToString(i.Itr())
}

type TakeNIterator[V any] struct {
	Iterable Iterator[V]
	N        int
	idx      int
}

func (i *TakeNIterator[V]) HasNext() bool {
	return i.idx < i.N && i.Iterable.HasNext()
}

func (i *TakeNIterator[V]) Move() (V, bool) {
	if i.idx >= i.N {
		return *new(V), false
	}

	v, ok := i.Iterable.Move()
	if ok {
		i.idx++
	}
	return v, ok
}

type SkipNIterator[V any] struct {
	Iterable Iterator[V]
	N        int
	idx      int
}

func (i *SkipNIterator[V]) skip() {
	for i.idx < i.N {
		i.Iterable.Move()
		i.idx++
	}
}

func (i *SkipNIterator[V]) HasNext() bool {
	i.skip()
	return i.Iterable.HasNext()
}

func (i *SkipNIterator[V]) Move() (V, bool) {
	i.skip()
	return i.Iterable.Move()
}

type TakeWhileIterator[V any] struct {
	lookahead[V]
	Iterable  Iterator[V]
	Predicate predicate.Predicate[V]
}

func newTakeWhileIterator[V any](it Iterator[V], pred predicate.Predicate[V]) *TakeWhileIterator[V] {
	t := &TakeWhileIterator[V]{
		Iterable:  it,
		Predicate: pred,
	}
	t.compute = func() (V, bool) {
		if v, ok := t.Iterable.Move(); ok && t.Predicate(v) {
			return v, true
		}
		return *new(V), false
	}
	return t
}

type ChainIterator[V any] struct {
	Iterables []Iterator[V]
	idx       int
}

func (i *ChainIterator[V]) HasNext() bool {
	for i.idx < len(i.Iterables) {
		if i.Iterables[i.idx].HasNext() {
			return true
		}

		i.idx++
	}

	return false
}

func (i *ChainIterator[V]) Move() (V, bool) {
	if !i.HasNext() {
		return *new(V), false
	}
	return i.Iterables[i.idx].Move()
}

// ReversedIterator drains its source on first use and replays it backwards.
type ReversedIterator[V any] struct {
	Iterable Iterator[V]
	stack    list.List
	filled   bool
}

func (i *ReversedIterator[V]) fill() {
	if i.filled {
		return
	}
	for v, ok := i.Iterable.Move(); ok; v, ok = i.Iterable.Move() {
		i.stack.PushBack(v)
	}
	i.filled = true
}

func (i *ReversedIterator[V]) HasNext() bool {
	i.fill()
	return i.stack.Len() > 0
}

func (i *ReversedIterator[V]) Move() (V, bool) {
	if !i.HasNext() {
		return *new(V), false
	}

	v := i.stack.Back()
	i.stack.Remove(v)
	return v.Value.(V), true
}

type SkipWhileIterator[V any] struct {
	lookahead[V]
	Iterator  Iterator[V]
	Predicate predicate.Predicate[V]
	Start     bool
}

func newSkipWhileIterator[V any](it Iterator[V], pred predicate.Predicate[V]) *SkipWhileIterator[V] {
	s := &SkipWhileIterator[V]{
		Iterator:  it,
		Predicate: pred,
	}
	s.compute = func() (V, bool) {
		if !s.Start {
			for v, ok := s.Iterator.Move(); ok; v, ok = s.Iterator.Move() {
				if !s.Predicate(v) {
					s.Start = true
					return v, true
				}
			}
			return *new(V), false
		}

		return s.Iterator.Move()
	}
	return s
}
