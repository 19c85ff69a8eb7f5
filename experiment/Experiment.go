// Package experiment implements functionality for running an
// experiment: driving an environment with a source of actions and
// tracking the TimeSteps it produces
package experiment

import (
	"errors"

	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// ErrStop can be returned by an ActionSelector to end an experiment
// early. Experiments treat it as a normal end rather than a failure.
var ErrStop = errors.New("experiment stopped")

// ActionSelector chooses the action to take at each TimeStep. The
// environment collaborator loop of an experiment calls SelectAction
// once per step.
type ActionSelector interface {
	SelectAction(t ts.TimeStep) (*mat.VecDense, error)
}

// Experiment outlines structs that can run experiments. The Run()
// method runs episodes until the maximum timestep limit is reached,
// or the ActionSelector stops the experiment. The RunEpisode() method
// runs a single episode.
//
// Experiments send each TimeStep to their Trackers. The Save() method
// then saves all tracked data to disk, usually after the experiment
// has been run.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the experiment is done
	Save() error
}
