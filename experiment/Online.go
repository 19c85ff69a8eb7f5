package experiment

import (
	"errors"
	"fmt"

	env "github.com/samuelfneumann/gridworld/environment"
	"github.com/samuelfneumann/gridworld/experiment/trackers"
	ts "github.com/samuelfneumann/gridworld/timestep"
)

// Online is an Experiment that drives an environment online, one
// action at a time
type Online struct {
	env.Environment
	selector     ActionSelector
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given action selector. The steps parameter
// determines how many timesteps the experiment is run for, and the t
// parameter is a slice of trackers.Tracker which determine what data
// is saved.
func NewOnline(e env.Environment, s ActionSelector, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		selector:    s,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with the experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// RunEpisode runs a single episode of the experiment. It returns
// whether the experiment has finished, either because the step limit
// was reached or because the ActionSelector returned ErrStop.
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		action, err := o.selector.SelectAction(step)
		if errors.Is(err, ErrStop) {
			return true, nil
		} else if err != nil {
			return true, fmt.Errorf("runEpisode: could not select "+
				"action: %w", err)
		}

		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		o.currentSteps++

		o.track(step)
	}

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for {
		done, err := o.RunEpisode()
		if err != nil || done {
			return err
		}
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
