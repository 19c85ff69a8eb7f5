package experiment_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridworld/environment/gridworld"
	"github.com/samuelfneumann/gridworld/experiment"
	"github.com/samuelfneumann/gridworld/experiment/trackers"
	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// script selects actions from a fixed list, cycling through it
type script struct {
	actions []gridworld.Action
	next    int
}

func (s *script) SelectAction(ts.TimeStep) (*mat.VecDense, error) {
	a := s.actions[s.next%len(s.actions)]
	s.next++
	return mat.NewVecDense(1, []float64{float64(a)}), nil
}

// stopAfter stops the experiment after n actions
type stopAfter struct {
	n int
}

func (s *stopAfter) SelectAction(ts.TimeStep) (*mat.VecDense, error) {
	if s.n == 0 {
		return nil, experiment.ErrStop
	}
	s.n--
	return mat.NewVecDense(1, []float64{float64(gridworld.Right)}), nil
}

// constant always selects the same raw action value
type constant float64

func (c constant) SelectAction(ts.TimeStep) (*mat.VecDense, error) {
	return mat.NewVecDense(1, []float64{float64(c)}), nil
}

func newEnv(t *testing.T, row, col int) *gridworld.Env {
	t.Helper()

	starter, err := gridworld.NewSingleStart(row, col, 4)
	if err != nil {
		t.Fatal(err)
	}
	task, err := gridworld.NewCorners(starter, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	e, _, err := gridworld.NewEnv(task, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestOnlineRun(t *testing.T) {
	dir := t.TempDir()
	returns := trackers.NewReturn(filepath.Join(dir, "returns.bin"))
	lengths := trackers.NewEpisodeLength(filepath.Join(dir, "lengths.bin"))

	// From (1, 1): up, then left reaches (0, 0) in two steps
	e := newEnv(t, 1, 1)
	s := &script{actions: []gridworld.Action{gridworld.Up, gridworld.Left}}
	o := experiment.NewOnline(e, s, 6, returns)
	o.Register(lengths)

	if err := o.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if o.Steps() != 6 {
		t.Errorf("steps = %d, want 6", o.Steps())
	}

	wantReturns := []float64{-1, -1, -1}
	if got := returns.Data(); !equal(got, wantReturns) {
		t.Errorf("returns = %v, want %v", got, wantReturns)
	}
	wantLengths := []float64{2, 2, 2}
	if got := lengths.Data(); !equal(got, wantLengths) {
		t.Errorf("lengths = %v, want %v", got, wantLengths)
	}

	if err := o.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := trackers.LoadData(filepath.Join(dir, "returns.bin"))
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if !equal(loaded, wantReturns) {
		t.Errorf("loaded returns = %v, want %v", loaded, wantReturns)
	}
}

func TestOnlineStop(t *testing.T) {
	e := newEnv(t, 1, 0)
	o := experiment.NewOnline(e, &stopAfter{n: 2}, 100)

	if err := o.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if o.Steps() != 2 {
		t.Errorf("steps = %d, want 2", o.Steps())
	}
	if got := e.GridWorld().Position(); got != (gridworld.Position{Row: 1, Col: 2}) {
		t.Errorf("agent at %v, want (1, 2)", got)
	}
}

func TestOnlineInvalidAction(t *testing.T) {
	o := experiment.NewOnline(newEnv(t, 1, 1), constant(7), 10)

	err := o.Run()
	if !errors.Is(err, gridworld.ErrInvalidAction) {
		t.Errorf("run: err = %v, want ErrInvalidAction", err)
	}
	if o.Steps() != 0 {
		t.Errorf("steps = %d, want 0", o.Steps())
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
