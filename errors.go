package strbuild

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is reported when an operation is attempted on a
	// disposed builder. Match it with errors.Is.
	ErrInvalidState = errors.New("builder has been disposed")

	// ErrOutOfRange is reported when an insertion index falls outside
	// the [0, Len()] range. Match it with errors.Is.
	ErrOutOfRange = errors.New("index out of range")

	// ErrTooLarge is the value carried by the panic raised when a
	// capacity request exceeds MaxCapacity.
	ErrTooLarge = errors.New("buffer capacity exceeds maximum")
)

type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	if e.Op == "" {
		return "operation on disposed builder"
	}
	return fmt.Sprintf("%s: operation on disposed builder", e.Op)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

type RangeError struct {
	Op     string
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d]", e.Op, e.Index, e.Length)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
