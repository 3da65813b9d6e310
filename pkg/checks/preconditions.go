// Package checks holds the error kinds shared by the collection packages
// and the precondition helpers that produce them. Every helper returns nil
// when the condition holds and an error wrapping one of the sentinels
// otherwise, so callers can write
//
//	if err := checks.ElementIndex(i, size); err != nil {
//		return zero, err
//	}
package checks

import (
	"fmt"
	"reflect"
)

func Argument(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func State(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}

// NotNil reports ErrNullReference for nil interfaces and for nil pointers,
// funcs, maps, slices and channels stored in an interface.
func NotNil(ref any, name string) error {
	if ref == nil {
		return fmt.Errorf("%w: %s", ErrNullReference, name)
	}

	v := reflect.ValueOf(ref)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return fmt.Errorf("%w: %s", ErrNullReference, name)
		}
	}
	return nil
}

// ElementIndex checks that index names an element of a sequence of the
// given size, i.e. 0 <= index < size.
func ElementIndex(index, size int) error {
	if index < 0 {
		return fmt.Errorf("%w: index (%d) must not be negative", ErrIndexOutOfBounds, index)
	}
	if index >= size {
		return fmt.Errorf("%w: index (%d) must be less than size (%d)", ErrIndexOutOfBounds, index, size)
	}
	return nil
}

// PositionIndex checks that index is a valid insertion point, i.e.
// 0 <= index <= size.
func PositionIndex(index, size int) error {
	if index < 0 {
		return fmt.Errorf("%w: index (%d) must not be negative", ErrIndexOutOfBounds, index)
	}
	if index > size {
		return fmt.Errorf("%w: index (%d) must not be greater than size (%d)", ErrIndexOutOfBounds, index, size)
	}
	return nil
}

func PositionIndexes(start, end, size int) error {
	if start < 0 || end < start || end > size {
		return fmt.Errorf("%w: range [%d, %d) is not valid for size %d", ErrIndexOutOfBounds, start, end, size)
	}
	return nil
}

func IndexNonnegative(value int) error {
	if value < 0 {
		return fmt.Errorf("%w: value (%d) must not be negative", ErrIndexOutOfBounds, value)
	}
	return nil
}

func Nonnegative(value int, name string) error {
	if value < 0 {
		return fmt.Errorf("%w: %s cannot be negative but was: %d", ErrInvalidArgument, name, value)
	}
	return nil
}

// Remove guards cursor removal.
func Remove(canRemove bool) error {
	return State(canRemove, "no calls to next() since the last call to remove()")
}
