// Package predicate provides composable boolean tests over values.
//
// Predicates must be pure and, when used to filter live views, consistent
// with equality: two equal values must get the same answer. Combinators
// capture their operands and evaluate nothing until the result is applied.
package predicate

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/is"
)

type Predicate[T any] func(T) bool

func (p Predicate[T]) Apply(v T) bool {
	return p(v)
}

func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return And(p, other)
}

func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return Or(p, other)
}

func (p Predicate[T]) Negate() Predicate[T] {
	return Not(p)
}

// And is true when every component is; an empty And is always true.
func And[T any](components ...Predicate[T]) Predicate[T] {
	components = slices.Clone(components)
	return func(v T) bool {
		for _, p := range components {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or is true when any component is; an empty Or is always false.
func Or[T any](components ...Predicate[T]) Predicate[T] {
	components = slices.Clone(components)
	return func(v T) bool {
		for _, p := range components {
			if p(v) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

func AlwaysTrue[T any]() Predicate[T] {
	return func(T) bool { return true }
}

func AlwaysFalse[T any]() Predicate[T] {
	return func(T) bool { return false }
}

func EqualTo[T comparable](target T) Predicate[T] {
	return is.EqualTo(target)
}

// Container is the membership capability In needs.
type Container[T any] interface {
	Contains(T) (bool, error)
}

// In tests membership in c. A Contains error, such as a type mismatch,
// counts as "not in".
func In[T any](c Container[T]) Predicate[T] {
	return func(v T) bool {
		ok, err := c.Contains(v)
		return err == nil && ok
	}
}

// InstanceOf is true for values whose dynamic type is S, or implements S
// when S is an interface.
func InstanceOf[S any, T any]() Predicate[T] {
	return func(v T) bool {
		_, ok := any(v).(S)
		return ok
	}
}
