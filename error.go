package numlist

import "errors"

var (
	// ErrDigitOutOfRange indicates a digit does not fit the number's base.
	ErrDigitOutOfRange = errors.New("digit out of range")
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoCurrent indicates a cursor operation without a preceding Next or Prev.
	ErrNoCurrent = errors.New("cursor has no current element")
	// ErrInvalidBase indicates a base outside the supported catalog.
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidOperation indicates an unknown additional operation.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidTopology indicates an unknown list topology.
	ErrInvalidTopology = errors.New("invalid topology")
)
