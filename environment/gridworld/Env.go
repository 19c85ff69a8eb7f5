package gridworld

import (
	"fmt"

	env "github.com/samuelfneumann/gridworld/environment"
	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// Env exposes a GridWorld through the environment.Environment
// interface, so that it can be driven by an experiment. Actions are
// 1-dimensional vectors holding the numeric action, and observations
// are the (row, col) position of the agent.
type Env struct {
	*Corners
	grid *GridWorld

	discount    float64
	currentStep ts.TimeStep
}

// NewEnv creates a new Env for task t and returns it with its first
// TimeStep
func NewEnv(t *Corners, discount float64, opts ...Option) (*Env, ts.TimeStep,
	error) {
	grid, err := NewFromTask(t, opts...)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: %w", err)
	}

	step := ts.New(ts.First, 0, discount, grid.Position().Vec(), 0)
	e := &Env{
		Corners:     t,
		grid:        grid,
		discount:    discount,
		currentStep: step,
	}

	return e, step, nil
}

// GridWorld returns the underlying GridWorld
func (e *Env) GridWorld() *GridWorld {
	return e.grid
}

// Step takes one step in the environment. The action must be a vector
// of length 1 holding one of the numeric actions 0 (Up), 1 (Left),
// 2 (Down) or 3 (Right). Invalid actions return an *InvalidActionError
// and leave the environment unchanged.
func (e *Env) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be "+
			"1-dimensional, got length %d", action.Len())
	}

	a, err := ActionFromFloat(action.AtVec(0))
	if err != nil {
		return ts.TimeStep{}, false, err
	}

	result, err := e.grid.Step(a)
	if err != nil {
		return ts.TimeStep{}, false, err
	}

	nextStep := ts.New(ts.Mid, float64(result.Reward), e.discount,
		result.Position.Vec(), e.currentStep.Number+1)
	last := e.End(&nextStep)
	e.currentStep = nextStep

	return nextStep, last, nil
}

// Reset starts a new episode at a position drawn from the task's
// Starter
func (e *Env) Reset() (ts.TimeStep, error) {
	start, err := PositionFromVec(e.Start())
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not use starting "+
			"state: %w", err)
	}
	return e.ResetTo(start), nil
}

// ResetTo starts a new episode with the agent at p. As with
// GridWorld.Reset, p is not validated.
func (e *Env) ResetTo(p Position) ts.TimeStep {
	e.grid.Reset(p)
	step := ts.New(ts.First, 0, e.discount, p.Vec(), 0)
	e.currentStep = step
	return step
}

// CurrentTimeStep returns the last TimeStep produced by the environment
func (e *Env) CurrentTimeStep() ts.TimeStep {
	return e.currentStep
}

// Render renders the underlying GridWorld
func (e *Env) Render(mode RenderMode) error {
	return e.grid.Render(mode)
}

// Close closes the underlying GridWorld
func (e *Env) Close() error {
	return e.grid.Close()
}

// ActionSpec returns the action specification of the environment
func (e *Env) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{Up.float()})
	upperBound := mat.NewVecDense(1, []float64{Right.float()})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound, env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment. The upper bound of each coordinate is declared as the
// grid size, one more than the largest reachable coordinate.
func (e *Env) ObservationSpec() env.Spec {
	size := float64(e.grid.Size())

	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, []float64{0, 0})
	upperBound := mat.NewVecDense(2, []float64{size, size})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (e *Env) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{e.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// RewardSpec returns the reward specification of the environment
func (e *Env) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{e.Min()})
	upperBound := mat.NewVecDense(1, []float64{e.Max()})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound, env.Discrete)
}

func (e *Env) String() string {
	str := "GridWorld | At: %v  |  %v  |  Size: %d"
	return fmt.Sprintf(str, e.grid.Position(), e.Corners, e.grid.Size())
}
