package async

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")
	ErrPanic   = errors.New("async: function panicked")
)

// PanicError carries the value recovered from a panicking function.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPanic.Error(), e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}
