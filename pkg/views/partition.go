package views

import (
	"github.com/johnjamespj/arrow/pkg/checks"
	"github.com/johnjamespj/arrow/pkg/collection"
	"github.com/johnjamespj/arrow/pkg/iterator"
)

// Partitioned is a read-only view of a list as consecutive chunks of size
// elements; the last chunk may be shorter. Chunks of a random-access list
// are live sub-lists. Chunks of other lists are copies taken when the
// chunk is requested.
type Partitioned[V comparable] struct {
	list collection.List[V]
	size int
}

// Partition fails with checks.ErrInvalidArgument for a nonpositive size.
func Partition[V comparable](l collection.List[V], size int) (*Partitioned[V], error) {
	if err := checks.NotNil(l, "list"); err != nil {
		return nil, err
	}
	if err := checks.Argument(size > 0, "partition size must be positive but was %d", size); err != nil {
		return nil, err
	}
	return &Partitioned[V]{list: l, size: size}, nil
}

// Size is the number of chunks, ceil(len/size).
func (p *Partitioned[V]) Size() int {
	n := p.list.Size()
	return n/p.size + min(n%p.size, 1)
}

func (p *Partitioned[V]) IsEmpty() bool {
	return p.list.IsEmpty()
}

// bounds returns the range [start, end) chunk k covers.
func (p *Partitioned[V]) bounds(k int) (int, int, error) {
	if err := checks.ElementIndex(k, p.Size()); err != nil {
		return 0, 0, err
	}
	start := k * p.size
	return start, min(start+p.size, p.list.Size()), nil
}

func (p *Partitioned[V]) Get(k int) (collection.List[V], error) {
	start, end, err := p.bounds(k)
	if err != nil {
		return nil, err
	}
	if collection.IsRandomAccess(p.list) {
		return p.list.SubList(start, end)
	}
	return p.copyChunk(start, end)
}

func (p *Partitioned[V]) copyChunk(start, end int) (collection.List[V], error) {
	it, err := p.list.ListItr(start)
	if err != nil {
		return nil, err
	}
	chunk := collection.NewArrayListFrom(&iterator.TakeNIterator[V]{Iterable: it, N: end - start})
	return chunk, nil
}

// Itr yields the chunks in order. A list without random access is walked
// once per cursor instead of once per chunk.
func (p *Partitioned[V]) Itr() iterator.Iterator[collection.List[V]] {
	if !collection.IsRandomAccess(p.list) {
		windows, _ := iterator.Partition(p.list.Itr(), p.size)
		return iterator.Transform(windows, func(window []V) collection.List[V] {
			return collection.NewArrayList(window...)
		})
	}
	return iterator.NewGeneratorIterable(func(k int) collection.List[V] {
		chunk, _ := p.Get(k)
		return chunk
	}, p.Size()).Itr()
}

func (p *Partitioned[V]) ToSlice() []collection.List[V] {
	return iterator.ToList(p.Itr())
}

func (p *Partitioned[V]) String() string {
	return iterator.ToString(p.Itr())
}
