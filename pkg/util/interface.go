package util

// Comparable is implemented by values that carry their own ordering.
// CompareTo returns a negative number, zero or a positive number when the
// receiver sorts before, together with or after the argument.
type Comparable[T any] interface {
	CompareTo(T) int
}

// Compare adapts Comparable values to a plain comparison func.
func Compare[T Comparable[T]](a, b T) int {
	return a.CompareTo(b)
}
