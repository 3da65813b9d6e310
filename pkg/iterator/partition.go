package iterator

import (
	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/johnjamespj/arrow/pkg/checks"
)

// PartitionIterator reads its source in windows of Size elements. Each
// Move pulls one whole window eagerly; the last window may be short.
type PartitionIterator[V any] struct {
	source Iterator[V]
	size   int
}

func (p *PartitionIterator[V]) HasNext() bool {
	return p.source.HasNext()
}

func (p *PartitionIterator[V]) Move() ([]V, bool) {
	if !p.HasNext() {
		return nil, false
	}

	window := make([]V, 0, p.size)
	for len(window) < p.size {
		v, ok := p.source.Move()
		if !ok {
			break
		}
		window = append(window, v)
	}
	return window, true
}

// Partition divides it into windows of size elements; the final window
// holds whatever is left. Fails with checks.ErrInvalidArgument for a
// nonpositive size.
func Partition[V any](it Iterator[V], size int) (Iterator[[]V], error) {
	if err := checks.Argument(size > 0, "partition size must be positive but was %d", size); err != nil {
		return nil, err
	}
	return &PartitionIterator[V]{source: it, size: size}, nil
}

// PaddedPartition is Partition with the final window padded to exactly
// size elements using empty values.
func PaddedPartition[V any](it Iterator[V], size int) (Iterator[[]optional.Value[V]], error) {
	windows, err := Partition(it, size)
	if err != nil {
		return nil, err
	}
	return Transform(windows, func(window []V) []optional.Value[V] {
		return pad(window, size)
	}), nil
}

func pad[V any](window []V, size int) []optional.Value[V] {
	padded := make([]optional.Value[V], size)
	for i := range padded {
		if i < len(window) {
			padded[i] = optional.Of(window[i])
		} else {
			padded[i] = optional.Empty[V]()
		}
	}
	return padded
}
