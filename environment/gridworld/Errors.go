package gridworld

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction is reported when a step is requested with an
	// action outside the action space
	ErrInvalidAction = errors.New("invalid action")

	// ErrUnsupportedMode is reported when rendering is requested in a
	// mode other than Console
	ErrUnsupportedMode = errors.New("unsupported render mode")

	// ErrOutOfBounds is reported by validated resets and starters when
	// a position lies outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")
)

// InvalidActionError records the offending action of a malformed step.
// It matches ErrInvalidAction under errors.Is.
type InvalidActionError struct {
	Op     string
	Action float64
}

// Error satisfies the error interface
func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("%s: received invalid action=%v which is not part "+
		"of the action space [%d, %d]", e.Op, e.Action, Up, Right)
}

// Unwrap returns ErrInvalidAction
func (e *InvalidActionError) Unwrap() error {
	return ErrInvalidAction
}

// UnsupportedModeError records a render mode that is not supported.
// It matches ErrUnsupportedMode under errors.Is.
type UnsupportedModeError struct {
	Mode RenderMode
}

// Error satisfies the error interface
func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("render: mode %q not supported, only %q is",
		string(e.Mode), string(Console))
}

// Unwrap returns ErrUnsupportedMode
func (e *UnsupportedModeError) Unwrap() error {
	return ErrUnsupportedMode
}
