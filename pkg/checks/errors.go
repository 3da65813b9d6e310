package checks

import "fmt"

var (
	ErrInvalidArgument      = fmt.Errorf("invalid argument")
	ErrIllegalState         = fmt.Errorf("illegal state")
	ErrIndexOutOfBounds     = fmt.Errorf("index out of bounds")
	ErrNoSuchElement        = fmt.Errorf("no such element")
	ErrNotFound             = fmt.Errorf("not found")
	ErrUnsupportedOperation = fmt.Errorf("unsupported operation")
	ErrNullReference        = fmt.Errorf("null reference")

	// ErrTypeMismatch is returned by collections that cannot hold the
	// dynamic type of a queried value. Containment checks treat it as
	// "not contained".
	ErrTypeMismatch = fmt.Errorf("type mismatch")
)
