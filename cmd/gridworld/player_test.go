package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/samuelfneumann/gridworld/environment/gridworld"
	"github.com/samuelfneumann/gridworld/experiment"
	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

type countingScreen struct {
	renders int
}

func (c *countingScreen) Render(gridworld.RenderMode) error {
	c.renders++
	return nil
}

func TestParseAction(t *testing.T) {
	tests := map[string]gridworld.Action{
		"w":   gridworld.Up,
		"A":   gridworld.Left,
		" s ": gridworld.Down,
		"d":   gridworld.Right,
		"0":   gridworld.Up,
		"3":   gridworld.Right,
	}
	for text, want := range tests {
		got, err := parseAction(text)
		if err != nil || got != want {
			t.Errorf("parseAction(%q) = %v, %v, want %v", text, got, err, want)
		}
	}

	if _, err := parseAction("7"); !errors.Is(err, gridworld.ErrInvalidAction) {
		t.Errorf("parseAction(7): err = %v, want ErrInvalidAction", err)
	}
	if _, err := parseAction("jump"); err == nil {
		t.Error("parseAction(jump): expected error")
	}
	for _, text := range []string{"", "q"} {
		if _, err := parseAction(text); err != experiment.ErrStop {
			t.Errorf("parseAction(%q): err = %v, want ErrStop", text, err)
		}
	}
}

func TestConsolePlayer(t *testing.T) {
	screen := &countingScreen{}
	p := newConsolePlayer(strings.NewReader("jump\nd\n2\n"), screen)
	step := ts.New(ts.Mid, -1, 1, mat.NewVecDense(2, nil), 1)

	for _, want := range []gridworld.Action{gridworld.Right, gridworld.Down} {
		action, err := p.SelectAction(step)
		if err != nil {
			t.Fatalf("selectAction: %v", err)
		}
		if action.AtVec(0) != float64(want) {
			t.Errorf("action = %v, want %v", action.AtVec(0), want)
		}
	}

	if _, err := p.SelectAction(step); err != experiment.ErrStop {
		t.Errorf("selectAction at end of input: err = %v, want ErrStop", err)
	}
	if screen.renders != 3 {
		t.Errorf("renders = %d, want 3", screen.renders)
	}
}
