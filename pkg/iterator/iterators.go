package iterator

func NewEmptyIterable[V any]() *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &EmptyIterator[V]{}
	})
}

func NewGeneratorIterable[V any](generator func(idx int) V, length int) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &GeneratorIterator[V]{
			Generator: generator,
			Length:    length,
			idx:       0,
		}
	})
}

func NewSliceIterable[V any](slice []V) *BaseIterable[V] {
	return BaseIterableFrom(func() Iterator[V] {
		return &SliceIterator[V]{
			Slice: slice,
			idx:   0,
		}
	})
}

// Of returns a cursor over the given values.
func Of[V any](values ...V) Iterator[V] {
	return &SliceIterator[V]{Slice: values}
}

type EmptyIterator[V any] struct{}

func (*EmptyIterator[V]) Move() (V, bool) {
	return *new(V), false
}

func (*EmptyIterator[V]) HasNext() bool {
	return false
}

type GeneratorIterator[V any] struct {
	Generator func(idx int) V
	idx       int
	Length    int
}

func (g *GeneratorIterator[V]) Move() (V, bool) {
	if g.idx < g.Length {
		v := g.Generator(g.idx)
		g.idx++
		return v, true
	}
	return *new(V), false
}

func (g *GeneratorIterator[V]) HasNext() bool {
	return g.idx < g.Length
}

// SliceIterator walks a slice it does not own. It cannot remove.
type SliceIterator[V any] struct {
	Slice []V
	idx   int
}

func (s *SliceIterator[V]) Move() (V, bool) {
	if s.idx < len(s.Slice) {
		v := s.Slice[s.idx]
		s.idx++
		return v, true
	}
	return *new(V), false
}

func (s *SliceIterator[V]) HasNext() bool {
	return s.idx < len(s.Slice)
}
