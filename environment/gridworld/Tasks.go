package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridworld/environment"
	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	TimeStepReward int = -1
	GoalReward     int = 0
)

// Corners is the task of reaching either absorbing corner of a square
// grid: the top-left cell (0, 0) or the bottom-right cell
// (size-1, size-1). Every step that does not end in a corner is
// rewarded with TimeStepReward, and every step that does is rewarded
// with GoalReward.
type Corners struct {
	environment.Starter
	stepLimit environment.Ender

	size  int
	goals []Position
}

// NewCorners creates a new Corners task on a size x size grid. Episodes
// start at states drawn from s. If cutoff is positive, episodes are
// additionally ended after cutoff steps.
func NewCorners(s environment.Starter, size, cutoff int) (*Corners, error) {
	if size < 1 {
		return nil, fmt.Errorf("newCorners: size must be positive, got %d",
			size)
	}

	goals := []Position{{0, 0}}
	if size > 1 {
		goals = append(goals, Position{size - 1, size - 1})
	}

	var stepLimit environment.Ender
	if cutoff > 0 {
		stepLimit = environment.NewStepLimit(cutoff)
	}

	return &Corners{
		Starter:   s,
		stepLimit: stepLimit,
		size:      size,
		goals:     goals,
	}, nil
}

// Terminal returns the absorbing positions of the task
func (c *Corners) Terminal() []Position {
	goals := make([]Position, len(c.goals))
	copy(goals, c.goals)
	return goals
}

func (c *Corners) atGoal(p Position) bool {
	for _, goal := range c.goals {
		if p == goal {
			return true
		}
	}
	return false
}

func (c *Corners) reward(done bool) int {
	if done {
		return GoalReward
	}
	return TimeStepReward
}

// GetReward returns the reward for transitioning to nextState. The
// reward depends only on whether nextState is absorbing.
func (c *Corners) GetReward(_, _, nextState mat.Vector) float64 {
	return float64(c.reward(c.AtGoal(nextState)))
}

// AtGoal returns whether the (row, col) observation state is one of
// the absorbing corners
func (c *Corners) AtGoal(state mat.Matrix) bool {
	vec, ok := state.(mat.Vector)
	if !ok {
		return false
	}

	p, err := PositionFromVec(vec)
	if err != nil {
		return false
	}
	return c.atGoal(p)
}

// End determines whether the episode has ended, either by reaching a
// corner or by exceeding the step limit
func (c *Corners) End(t *ts.TimeStep) bool {
	if c.AtGoal(t.Observation) {
		t.SetEnd(ts.TerminalStateReached)
		t.StepType = ts.Last
		return true
	}

	if c.stepLimit != nil {
		return c.stepLimit.End(t)
	}
	return false
}

// Min returns the minimum reward attainable in the Task
func (c *Corners) Min() float64 {
	return floats.Min(c.rewards())
}

// Max returns the maximum reward attainable in the Task
func (c *Corners) Max() float64 {
	return floats.Max(c.rewards())
}

func (c *Corners) rewards() []float64 {
	return []float64{float64(TimeStepReward), float64(GoalReward)}
}

func (c *Corners) String() string {
	return fmt.Sprintf("Corners | Goals: %v", c.goals)
}
