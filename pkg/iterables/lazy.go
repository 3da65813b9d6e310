package iterables

import (
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/iterator"
	"github.com/johnjamespj/arrow/pkg/predicate"
)

// Partition is the lazy sequence of consecutive windows of size elements.
func Partition[V any](it iterator.Iterable[V], size int) (*iterator.BaseIterable[[]V], error) {
	if err := checks.Argument(size > 0, "partition size must be positive but was %d", size); err != nil {
		return nil, err
	}
	return iterator.BaseIterableFrom(func() iterator.Iterator[[]V] {
		windows, _ := iterator.Partition(it.Itr(), size)
		return windows
	}), nil
}

// PaddedPartition is Partition with the final window padded with empty
// values to exactly size elements.
func PaddedPartition[V any](it iterator.Iterable[V], size int) (*iterator.BaseIterable[[]optional.Value[V]], error) {
	if err := checks.Argument(size > 0, "partition size must be positive but was %d", size); err != nil {
		return nil, err
	}
	return iterator.BaseIterableFrom(func() iterator.Iterator[[]optional.Value[V]] {
		windows, _ := iterator.PaddedPartition(it.Itr(), size)
		return windows
	}), nil
}

func Filter[V any](it iterator.Iterable[V], pred predicate.Predicate[V]) *iterator.BaseIterable[V] {
	return iterator.BaseIterableFrom(func() iterator.Iterator[V] {
		return iterator.Filter(it.Itr(), pred)
	})
}

// FilterType keeps the elements whose dynamic type is S.
func FilterType[S any, V any](it iterator.Iterable[V]) *iterator.BaseIterable[S] {
	return iterator.BaseIterableFrom(func() iterator.Iterator[S] {
		return iterator.FilterType[S](it.Itr())
	})
}
