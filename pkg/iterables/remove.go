package iterables

import (
	"errors"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
	"github.com/johnjamespj/arrow/pkg/util"
)

// RemoveIf removes every element satisfying pred and reports whether any
// was removed. Random-access lists are compacted in place with Set and
// one RemoveRange; everything else goes through cursor removal.
func RemoveIf[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) (bool, error) {
	if err := checks.NotNil(pred, "predicate"); err != nil {
		return false, err
	}
	if l, ok := it.(collection.List[V]); ok && collection.IsRandomAccess(l) {
		return removeIfFromRandomAccessList(l, pred)
	}
	return iterator.RemoveIf(it.Itr(), pred)
}

// removeIfFromRandomAccessList keeps survivors in [0, to) while scanning
// with from, then drops the tail [to, size).
func removeIfFromRandomAccessList[V any](l collection.List[V], pred predicate.Predicate[V]) (bool, error) {
	from, to := 0, 0
	size := l.Size()
	for ; from < size; from++ {
		v, err := l.Get(from)
		if err != nil {
			return from != to, err
		}
		if pred(v) {
			continue
		}
		if from > to {
			if _, err := l.Set(to, v); err != nil {
				if !errors.Is(err, checks.ErrUnsupportedOperation) {
					return true, err
				}
				util.Debug("list cannot be overwritten, removing remaining matches one by one", func() []any {
					return []any{"size", size, "to", to, "from", from}
				})
				return true, slowRemoveIfForRemainingElements(l, pred, to, from)
			}
		}
		to++
	}

	if err := l.RemoveRange(to, size); err != nil {
		return from != to, err
	}
	return from != to, nil
}

// slowRemoveIfForRemainingElements finishes an interrupted compaction.
// [0, to) holds survivors, [to, from) holds removable leftovers and the
// element at from is a survivor that could not be moved.
func slowRemoveIfForRemainingElements[V any](l collection.List[V], pred predicate.Predicate[V], to, from int) error {
	for n := l.Size() - 1; n > from; n-- {
		v, err := l.Get(n)
		if err != nil {
			return err
		}
		if pred(v) {
			if _, err := l.RemoveAt(n); err != nil {
				return err
			}
		}
	}
	for n := from - 1; n >= to; n-- {
		if _, err := l.RemoveAt(n); err != nil {
			return err
		}
	}
	return nil
}

// RemoveFirstMatching removes and returns the first element satisfying
// pred, or an empty value when there is none.
func RemoveFirstMatching[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) (optional.Value[V], error) {
	if err := checks.NotNil(pred, "predicate"); err != nil {
		return optional.Empty[V](), err
	}

	cursor := it.Itr()
	for v, ok := cursor.Move(); ok; v, ok = cursor.Move() {
		if !pred(v) {
			continue
		}
		remover, canRemove := cursor.(iterator.Remover)
		if !canRemove {
			return optional.Empty[V](), checks.ErrUnsupportedOperation
		}
		if err := remover.Remove(); err != nil {
			return optional.Empty[V](), err
		}
		return optional.Of(v), nil
	}
	return optional.Empty[V](), nil
}
