package iterator

// Iterator is a one-shot forward cursor. Once HasNext reports false it
// never reports true again. Move returns the next element, or the zero
// value and false when the cursor is exhausted.
type Iterator[V any] interface {
	HasNext() bool

	Move() (V, bool)
}

// Remover is implemented by cursors that can remove the element most
// recently returned by Move. Remove fails with checks.ErrIllegalState
// before the first Move or when called twice without a Move in between.
type Remover interface {
	Remove() error
}

// ListIterator is a bidirectional cursor over a list. The cursor sits
// between elements: NextIndex is the index Move would return, and
// PreviousIndex is NextIndex-1.
type ListIterator[V any] interface {
	Iterator[V]
	Remover

	HasPrevious() bool

	Previous() (V, bool)

	NextIndex() int

	PreviousIndex() int

	// Set replaces the element last returned by Move or Previous.
	Set(v V) error

	// Add inserts v before the element Move would return.
	Add(v V) error
}

// Iterable is a restartable sequence: every call to Itr returns a fresh
// cursor positioned before the first element.
type Iterable[V any] interface {
	Itr() Iterator[V]
}

// Adder is the insertion capability AddAll needs.
type Adder[V any] interface {
	Add(v V) (bool, error)
}
