package iterator

import (
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// FilterIterator yields the elements of Iterator that satisfy Predicate.
// It pulls from the source only as far as needed to answer HasNext.
type FilterIterator[V any] struct {
	lookahead[V]
	Iterator  Iterator[V]
	Predicate predicate.Predicate[V]
}

func newFilterIterator[V any](it Iterator[V], pred predicate.Predicate[V]) *FilterIterator[V] {
	f := &FilterIterator[V]{
		Iterator:  it,
		Predicate: pred,
	}
	f.compute = f.computeNext
	return f
}

func (f *FilterIterator[V]) computeNext() (V, bool) {
	for v, ok := f.Iterator.Move(); ok; v, ok = f.Iterator.Move() {
		if f.Predicate(v) {
			return v, true
		}
	}
	return *new(V), false
}

// Remove is not supported: the source may already be past the element.
func (f *FilterIterator[V]) Remove() error {
	return checks.ErrUnsupportedOperation
}

// Filter returns a lazy cursor over the elements of it that satisfy pred.
func Filter[V any](it Iterator[V], pred predicate.Predicate[V]) Iterator[V] {
	return newFilterIterator(it, pred)
}

// FilterType returns a lazy cursor over the elements of it whose dynamic
// type is S (or implements S, for interface S).
func FilterType[S any, V any](it Iterator[V]) Iterator[S] {
	return Transform[V, S](Filter(it, predicate.InstanceOf[S, V]()), func(v V) S {
		return any(v).(S)
	})
}
