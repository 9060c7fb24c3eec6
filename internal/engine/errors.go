package engine

import (
	"errors"
	"fmt"
)

// ErrRejected is matched by every *RejectedError.
var ErrRejected = errors.New("drag rejected")

// ErrUnsatisfiable wraps the validation error of a layout whose bounds cannot
// all be met inside the container. The sizes are committed regardless.
var ErrUnsatisfiable = errors.New("layout constraints not satisfiable")

// RejectedError describes a drag step that would break a size constraint.
// The layout is left exactly as it was.
type RejectedError struct {
	Divider int
	Delta   int
	Reason  string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("divider %d delta %d rejected: %s", e.Divider, e.Delta, e.Reason)
}

// Is reports ErrRejected as a match.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func reject(divider, delta int, format string, args ...any) error {
	return &RejectedError{Divider: divider, Delta: delta, Reason: fmt.Sprintf(format, args...)}
}
