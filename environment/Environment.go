// Package environment outlines the interfaces and structs needed to
// implement concrete environments and to drive them from an experiment
package environment

import (
	"github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when an episode should end. End modifies the
// TimeStep so that its StepType is timestep.Last and records the
// reason the episode ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some
// environment, together with the start state distribution and the
// episode termination rule
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState mat.Vector) float64
	AtGoal(state mat.Matrix) bool
	Min() float64 // Minimum attainable reward on a single step
	Max() float64 // Maximum attainable reward on a single step
}

// Environment implements a simulated environment, which includes a
// Task to complete
type Environment interface {
	Task
	Reset() (timestep.TimeStep, error)
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)
	CurrentTimeStep() timestep.TimeStep
	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
	Close() error
}
