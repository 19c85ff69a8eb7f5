package gridworld

import (
	"fmt"
	"math"
)

// Action is one of the four directions the agent can move in. The
// integer values are the numeric action protocol used by training
// loops.
type Action int

const (
	Up Action = iota
	Left
	Down
	Right
)

// Actions is the number of actions in the action space
const Actions = 4

// Valid returns whether a is one of the four actions
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

// displacement returns the change in (row, col) caused by a
func (a Action) displacement() (int, int) {
	switch a {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionFromInt converts a numeric action into an Action, returning an
// *InvalidActionError if v is not in the action space
func ActionFromInt(v int) (Action, error) {
	a := Action(v)
	if !a.Valid() {
		return a, &InvalidActionError{Op: "actionFromInt", Action: float64(v)}
	}
	return a, nil
}

// ActionFromFloat converts an action stored in a float vector into an
// Action. Non-integral values are invalid.
func ActionFromFloat(v float64) (Action, error) {
	if v != math.Trunc(v) || v < Up.float() || v > Right.float() {
		return Action(-1), &InvalidActionError{Op: "actionFromFloat", Action: v}
	}
	return Action(v), nil
}

func (a Action) float() float64 {
	return float64(a)
}
