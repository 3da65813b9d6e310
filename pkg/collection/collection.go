// Package collection defines the sized, mutable collection contracts the
// view and iterable packages recognize, and the concrete collections that
// own storage: ArrayList, LinkedList and SortedSet.
package collection

import (
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// Sized is implemented by sequences that know their length without
// traversal.
type Sized interface {
	Size() int

	IsEmpty() bool
}

type Collection[V any] interface {
	iterator.Iterable[V]
	Sized

	// Contains may fail with checks.ErrTypeMismatch when the collection
	// cannot hold v.
	Contains(v V) (bool, error)

	Add(v V) (bool, error)

	AddAll(values iterator.Iterable[V]) (bool, error)

	// Remove removes one occurrence of v.
	Remove(v V) (bool, error)

	RemoveAll(c predicate.Container[V]) (bool, error)

	RetainAll(c predicate.Container[V]) (bool, error)

	Clear() error

	ToSlice() []V
}

// List is an ordered, index-addressable Collection.
type List[V any] interface {
	Collection[V]

	Get(index int) (V, error)

	// Set replaces the element at index and returns the old one. Lists
	// without in-place overwrite fail with checks.ErrUnsupportedOperation.
	Set(index int, v V) (V, error)

	Insert(index int, v V) error

	RemoveAt(index int) (V, error)

	RemoveRange(from, to int) error

	IndexOf(v V) int

	// SubList is a live view of [from, to); changes flow both ways.
	SubList(from, to int) (List[V], error)

	ListItr(index int) (iterator.ListIterator[V], error)
}

// RandomAccess marks lists with O(1) positional access.
type RandomAccess interface {
	RandomAccess()
}

func IsRandomAccess(v any) bool {
	_, ok := v.(RandomAccess)
	return ok
}

// ContainsAll reports whether every element of values is in c.
func ContainsAll[V any](c predicate.Container[V], values iterator.Iterable[V]) bool {
	return iterator.All(values.Itr(), predicate.In(c))
}

func addAll[V any](c Collection[V], values iterator.Iterable[V]) (bool, error) {
	return iterator.AddAll[V](c, values.Itr())
}

func indexOf[V comparable](it iterator.Iterator[V], v V) int {
	return iterator.IndexOf(it, predicate.EqualTo(v))
}
