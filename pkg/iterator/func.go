package iterator

// Map returns a lazy sequence of f applied to every element of it.
func Map[T, U any](it Iterable[T], f func(T) U) *BaseIterable[U] {
	return BaseIterableFrom(func() Iterator[U] {
		return Transform(it.Itr(), f)
	})
}

// Transform is Map over a single cursor.
func Transform[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	return &MapIterator[T, U]{
		i: it,
		f: f,
	}
}

type MapIterator[T, U any] struct {
	i Iterator[T]
	f func(T) U
}

func (i *MapIterator[T, U]) HasNext() bool {
	return i.i.HasNext()
}

func (i *MapIterator[T, U]) Move() (U, bool) {
	if v, ok := i.i.Move(); ok {
		return i.f(v), true
	}

	return *new(U), false
}
