// Package mex implements the argument helpers shared by MEX bindings:
// dimension extraction, slice-shape broadcasting, slice bounds checks and
// type/size validation of host arrays.
package mex

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is matched by every recoverable validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is returned when an argument has the wrong type or size.
type ArgumentError struct {
	msg string
}

func invalidArgument(format string, args ...any) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return e.msg
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// AssertionError is the panic value raised when a caller breaks a
// precondition. It is not meant to be recovered.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Msg
}

func precondition(cond bool, msg string) {
	if !cond {
		panic(&AssertionError{Msg: msg})
	}
}
