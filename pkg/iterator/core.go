package iterator

import (
	"fmt"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/joiner"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// Size returns the number of elements remaining in it and leaves it
// exhausted.
func Size[V any](it Iterator[V]) int {
	count := 0
	for _, ok := it.Move(); ok; _, ok = it.Move() {
		count++
	}
	return count
}

func Contains[V comparable](it Iterator[V], element V) bool {
	return Any(it, predicate.EqualTo(element))
}

// RemoveIf removes, through the cursor, every element that satisfies
// pred and leaves it exhausted. A cursor that cannot remove fails with
// checks.ErrUnsupportedOperation at the first match.
func RemoveIf[V any](it Iterator[V], pred predicate.Predicate[V]) (bool, error) {
	if err := checks.NotNil(pred, "predicate"); err != nil {
		return false, err
	}

	remover, canRemove := it.(Remover)
	modified := false
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		if !pred(v) {
			continue
		}
		if !canRemove {
			return modified, fmt.Errorf("%w: %T cannot remove elements", checks.ErrUnsupportedOperation, it)
		}
		if err := remover.Remove(); err != nil {
			return modified, err
		}
		modified = true
	}
	return modified, nil
}

func RemoveAll[V any](it Iterator[V], elementsToRemove predicate.Container[V]) (bool, error) {
	return RemoveIf(it, predicate.In(elementsToRemove))
}

func RetainAll[V any](it Iterator[V], elementsToRetain predicate.Container[V]) (bool, error) {
	return RemoveIf(it, predicate.Not(predicate.In(elementsToRetain)))
}

// Clear removes every remaining element through the cursor.
func Clear[V any](it Iterator[V]) error {
	_, err := RemoveIf(it, predicate.AlwaysTrue[V]())
	return err
}

// ElementsEqual reports whether both cursors yield equal elements in the
// same order and run out together. Both cursors are advanced.
func ElementsEqual[V comparable](a, b Iterator[V]) bool {
	return ElementsEqualFunc(a, b, func(x, y V) bool { return x == y })
}

func ElementsEqualFunc[V, U any](a Iterator[V], b Iterator[U], eq func(V, U) bool) bool {
	for a.HasNext() {
		if !b.HasNext() {
			return false
		}
		x, _ := a.Move()
		y, _ := b.Move()
		if !eq(x, y) {
			return false
		}
	}
	return !b.HasNext()
}

// ToString formats the remaining elements as [e1, e2, ..., en].
func ToString[V any](it Iterator[V]) string {
	return "[" + joiner.Join(joiner.Standard, Seq(it)) + "]"
}

// Seq adapts the cursor to a range-over-func sequence. The sequence is
// single use, like the cursor.
func Seq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Move(); ok; v, ok = it.Move() {
			if !yield(v) {
				return
			}
		}
	}
}

func ToList[V any](it Iterator[V]) []V {
	return seq.Collect(Seq(it))
}

// GetOnlyElement fails with checks.ErrNoSuchElement for an empty cursor
// and checks.ErrInvalidArgument when more than one element remains.
func GetOnlyElement[V any](it Iterator[V]) (V, error) {
	first, ok := it.Move()
	if !ok {
		return first, fmt.Errorf("%w: iterator is empty", checks.ErrNoSuchElement)
	}
	if it.HasNext() {
		return *new(V), fmt.Errorf("%w: expected one element but found multiple", checks.ErrInvalidArgument)
	}
	return first, nil
}

func GetOnlyElementOr[V any](it Iterator[V], defaultValue V) (V, error) {
	if !it.HasNext() {
		return defaultValue, nil
	}
	return GetOnlyElement(it)
}

// AddAll adds every remaining element to dst and reports whether dst
// changed.
func AddAll[V any](dst Adder[V], it Iterator[V]) (bool, error) {
	if err := checks.NotNil(dst, "destination"); err != nil {
		return false, err
	}

	modified := false
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		added, err := dst.Add(v)
		if err != nil {
			return modified, err
		}
		modified = modified || added
	}
	return modified, nil
}

func Any[V any](it Iterator[V], pred predicate.Predicate[V]) bool {
	return IndexOf(it, pred) != -1
}

// All is true for an empty cursor.
func All[V any](it Iterator[V], pred predicate.Predicate[V]) bool {
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Find returns the first match, or checks.ErrNotFound after exhausting it.
func Find[V any](it Iterator[V], pred predicate.Predicate[V]) (V, error) {
	v, ok := Filter(it, pred).Move()
	if !ok {
		return v, fmt.Errorf("%w: no element satisfies the predicate", checks.ErrNotFound)
	}
	return v, nil
}

func FindOr[V any](it Iterator[V], pred predicate.Predicate[V], defaultValue V) V {
	return GetNext(Filter(it, pred), defaultValue)
}

func TryFind[V any](it Iterator[V], pred predicate.Predicate[V]) optional.Value[V] {
	if v, ok := Filter(it, pred).Move(); ok {
		return optional.Of(v)
	}
	return optional.Empty[V]()
}

// IndexOf returns the position of the first match, leaving the cursor just
// past it, or -1 with the cursor exhausted.
func IndexOf[V any](it Iterator[V], pred predicate.Predicate[V]) int {
	i := 0
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		if pred(v) {
			return i
		}
		i++
	}
	return -1
}

// Get advances position+1 times and returns the element at position.
func Get[V any](it Iterator[V], position int) (V, error) {
	if err := checks.IndexNonnegative(position); err != nil {
		return *new(V), err
	}

	skipped, _ := Advance(it, position)
	v, ok := it.Move()
	if !ok {
		return v, fmt.Errorf("%w: position (%d) must be less than the number of elements that remained (%d)",
			checks.ErrIndexOutOfBounds, position, skipped)
	}
	return v, nil
}

// GetOr is Get with a default for short cursors. A negative position
// still fails.
func GetOr[V any](it Iterator[V], position int, defaultValue V) (V, error) {
	if err := checks.IndexNonnegative(position); err != nil {
		return defaultValue, err
	}
	Advance(it, position)
	return GetNext(it, defaultValue), nil
}

func GetNext[V any](it Iterator[V], defaultValue V) V {
	if v, ok := it.Move(); ok {
		return v
	}
	return defaultValue
}

func GetLast[V any](it Iterator[V]) (V, error) {
	last, ok := it.Move()
	if !ok {
		return last, fmt.Errorf("%w: iterator is empty", checks.ErrNoSuchElement)
	}
	for v, ok := it.Move(); ok; v, ok = it.Move() {
		last = v
	}
	return last, nil
}

func GetLastOr[V any](it Iterator[V], defaultValue V) V {
	if v, err := GetLast(it); err == nil {
		return v
	}
	return defaultValue
}

// Advance moves it forward n times or until it is exhausted and returns
// the number of steps taken.
func Advance[V any](it Iterator[V], n int) (int, error) {
	if err := checks.Nonnegative(n, "numberToAdvance"); err != nil {
		return 0, err
	}

	i := 0
	for ; i < n; i++ {
		if _, ok := it.Move(); !ok {
			break
		}
	}
	return i, nil
}

// Next is Move with checks.ErrNoSuchElement for an exhausted cursor.
func Next[V any](it Iterator[V]) (V, error) {
	v, ok := it.Move()
	if !ok {
		return v, checks.ErrNoSuchElement
	}
	return v, nil
}
