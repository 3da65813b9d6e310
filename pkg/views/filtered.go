// Package views provides live collection views. A view owns no storage:
// every read re-derives from the collection it wraps and every write goes
// through to it.
package views

import (
	"fmt"

	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/iterables"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
	"github.com/johnjamespj/arrow/pkg/util"
)

// Filtered exposes the elements of an underlying collection that satisfy
// a predicate. The predicate must be consistent with equality.
type Filtered[V any] struct {
	unfiltered collection.Collection[V]
	predicate  predicate.Predicate[V]
}

// Filter returns a live view of the elements of c satisfying pred.
// Filtering a filtered view yields a single view over the same underlying
// collection with both predicates combined.
func Filter[V any](c collection.Collection[V], pred predicate.Predicate[V]) (*Filtered[V], error) {
	if err := checks.NotNil(c, "collection"); err != nil {
		return nil, err
	}
	if err := checks.NotNil(pred, "predicate"); err != nil {
		return nil, err
	}

	if f, ok := c.(*Filtered[V]); ok {
		util.Debug("combining nested filtered views", func() []any {
			return []any{"underlying", fmt.Sprintf("%T", f.unfiltered)}
		})
		return f.createCombined(pred), nil
	}
	return &Filtered[V]{unfiltered: c, predicate: pred}, nil
}

func (f *Filtered[V]) createCombined(pred predicate.Predicate[V]) *Filtered[V] {
	return &Filtered[V]{
		unfiltered: f.unfiltered,
		predicate:  f.predicate.And(pred),
	}
}

// Add fails with checks.ErrInvalidArgument for elements the predicate
// rejects.
func (f *Filtered[V]) Add(v V) (bool, error) {
	if err := checks.Argument(f.predicate(v), "element %v does not satisfy the view predicate", v); err != nil {
		return false, err
	}
	return f.unfiltered.Add(v)
}

// AddAll checks every element before adding any.
func (f *Filtered[V]) AddAll(values iterator.Iterable[V]) (bool, error) {
	it := values.Itr()
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		if err := checks.Argument(f.predicate(v), "element %v does not satisfy the view predicate", v); err != nil {
			return false, err
		}
	}
	return f.unfiltered.AddAll(values)
}

// Clear removes the matching elements from the underlying collection and
// leaves the others.
func (f *Filtered[V]) Clear() error {
	_, err := iterables.RemoveIf[V](f.unfiltered, f.predicate)
	return err
}

func (f *Filtered[V]) Contains(v V) (bool, error) {
	if iterables.SafeContains[V](f.unfiltered, v) {
		return f.predicate(v), nil
	}
	return false, nil
}

func (f *Filtered[V]) ContainsAll(values iterator.Iterable[V]) bool {
	return collection.ContainsAll[V](f, values)
}

func (f *Filtered[V]) IsEmpty() bool {
	return !iterables.Any[V](f.unfiltered, f.predicate)
}

func (f *Filtered[V]) Itr() iterator.Iterator[V] {
	return iterator.Filter(f.unfiltered.Itr(), f.predicate)
}

func (f *Filtered[V]) Remove(v V) (bool, error) {
	if ok, _ := f.Contains(v); !ok {
		return false, nil
	}
	return f.unfiltered.Remove(v)
}

func (f *Filtered[V]) RemoveAll(c predicate.Container[V]) (bool, error) {
	if err := checks.NotNil(c, "elementsToRemove"); err != nil {
		return false, err
	}
	return iterables.RemoveIf[V](f.unfiltered, f.predicate.And(predicate.In(c)))
}

func (f *Filtered[V]) RetainAll(c predicate.Container[V]) (bool, error) {
	if err := checks.NotNil(c, "elementsToRetain"); err != nil {
		return false, err
	}
	return iterables.RemoveIf[V](f.unfiltered, f.predicate.And(predicate.Not(predicate.In(c))))
}

// Size traverses the underlying collection.
func (f *Filtered[V]) Size() int {
	return iterator.Size(f.Itr())
}

func (f *Filtered[V]) ToSlice() []V {
	return iterator.ToList(f.Itr())
}

func (f *Filtered[V]) String() string {
	return iterator.ToString(f.Itr())
}
