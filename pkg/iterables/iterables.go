// Package iterables lifts the cursor operations of package iterator to
// restartable sequences. Sequences that are known collections answer
// size, containment and bulk removal through their own methods instead of
// a traversal.
package iterables

import (
	"fmt"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

func Size[V any](it iterator.Iterable[V]) int {
	if s, ok := it.(collection.Sized); ok {
		return s.Size()
	}
	return iterator.Size(it.Itr())
}

// IsEmpty pulls at most one cursor position and never mutates it.
func IsEmpty[V any](it iterator.Iterable[V]) bool {
	if s, ok := it.(collection.Sized); ok {
		return s.IsEmpty()
	}
	return !it.Itr().HasNext()
}

func Contains[V comparable](it iterator.Iterable[V], element V) bool {
	if c, ok := it.(collection.Collection[V]); ok {
		return SafeContains[V](c, element)
	}
	return iterator.Contains(it.Itr(), element)
}

// SafeContains reports c.Contains(v), treating any failure of the
// collection (type mismatch, null reference) as "not contained".
func SafeContains[V any](c predicate.Container[V], v V) bool {
	if err := checks.NotNil(c, "collection"); err != nil {
		return false
	}
	ok, err := c.Contains(v)
	return err == nil && ok
}

func RemoveAll[V any](it iterator.Iterable[V], elementsToRemove predicate.Container[V]) (bool, error) {
	if err := checks.NotNil(elementsToRemove, "elementsToRemove"); err != nil {
		return false, err
	}
	if c, ok := it.(collection.Collection[V]); ok {
		return c.RemoveAll(elementsToRemove)
	}
	return iterator.RemoveAll(it.Itr(), elementsToRemove)
}

func RetainAll[V any](it iterator.Iterable[V], elementsToRetain predicate.Container[V]) (bool, error) {
	if err := checks.NotNil(elementsToRetain, "elementsToRetain"); err != nil {
		return false, err
	}
	if c, ok := it.(collection.Collection[V]); ok {
		return c.RetainAll(elementsToRetain)
	}
	return iterator.RetainAll(it.Itr(), elementsToRetain)
}

// AddAll adds every element of values to dst. A collection source is
// handed to the destination's own AddAll when dst is a collection.
func AddAll[V any](dst iterator.Adder[V], values iterator.Iterable[V]) (bool, error) {
	if c, ok := dst.(collection.Collection[V]); ok {
		if _, ok := values.(collection.Collection[V]); ok {
			return c.AddAll(values)
		}
	}
	return iterator.AddAll(dst, values.Itr())
}

// ElementsEqual compares in order. Sized sequences of different sizes are
// unequal without traversal.
func ElementsEqual[V comparable](a, b iterator.Iterable[V]) bool {
	sa, aSized := a.(collection.Sized)
	sb, bSized := b.(collection.Sized)
	if aSized && bSized && sa.Size() != sb.Size() {
		return false
	}
	return iterator.ElementsEqual(a.Itr(), b.Itr())
}

func Get[V any](it iterator.Iterable[V], position int) (V, error) {
	if l, ok := it.(collection.List[V]); ok {
		return l.Get(position)
	}
	return iterator.Get(it.Itr(), position)
}

func GetOr[V any](it iterator.Iterable[V], position int, defaultValue V) (V, error) {
	if err := checks.IndexNonnegative(position); err != nil {
		return defaultValue, err
	}
	if l, ok := it.(collection.List[V]); ok {
		if position >= l.Size() {
			return defaultValue, nil
		}
		return l.Get(position)
	}
	return iterator.GetOr(it.Itr(), position, defaultValue)
}

func GetFirst[V any](it iterator.Iterable[V], defaultValue V) V {
	return iterator.GetNext(it.Itr(), defaultValue)
}

// GetLast fails with checks.ErrNoSuchElement for an empty sequence.
func GetLast[V any](it iterator.Iterable[V]) (V, error) {
	if l, ok := it.(collection.List[V]); ok {
		if l.IsEmpty() {
			return *new(V), fmt.Errorf("%w: list is empty", checks.ErrNoSuchElement)
		}
		return l.Get(l.Size() - 1)
	}
	return iterator.GetLast(it.Itr())
}

func GetLastOr[V any](it iterator.Iterable[V], defaultValue V) V {
	if v, err := GetLast(it); err == nil {
		return v
	}
	return defaultValue
}

func GetOnlyElement[V any](it iterator.Iterable[V]) (V, error) {
	return iterator.GetOnlyElement(it.Itr())
}

func GetOnlyElementOr[V any](it iterator.Iterable[V], defaultValue V) (V, error) {
	return iterator.GetOnlyElementOr(it.Itr(), defaultValue)
}

func Any[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) bool {
	return iterator.Any(it.Itr(), pred)
}

func All[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) bool {
	return iterator.All(it.Itr(), pred)
}

func Find[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) (V, error) {
	return iterator.Find(it.Itr(), pred)
}

func FindOr[V any](it iterator.Iterable[V], pred predicate.Predicate[V], defaultValue V) V {
	return iterator.FindOr(it.Itr(), pred, defaultValue)
}

func TryFind[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) optional.Value[V] {
	return iterator.TryFind(it.Itr(), pred)
}

func IndexOf[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) int {
	return iterator.IndexOf(it.Itr(), pred)
}

func ToString[V any](it iterator.Iterable[V]) string {
	return iterator.ToString(it.Itr())
}

func ToList[V any](it iterator.Iterable[V]) []V {
	if c, ok := it.(collection.Collection[V]); ok {
		return c.ToSlice()
	}
	return iterator.ToList(it.Itr())
}
