package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samuelfneumann/gridworld/environment/gridworld"
	"github.com/samuelfneumann/gridworld/experiment"
	ts "github.com/samuelfneumann/gridworld/timestep"
	"gonum.org/v1/gonum/mat"
)

var keys = map[string]gridworld.Action{
	"w": gridworld.Up,
	"a": gridworld.Left,
	"s": gridworld.Down,
	"d": gridworld.Right,
}

// renderer is the part of gridworld.Env the console player draws with
type renderer interface {
	Render(gridworld.RenderMode) error
}

// consolePlayer selects actions typed on the console, rendering the
// grid before each one
type consolePlayer struct {
	in     *bufio.Scanner
	screen renderer
}

func newConsolePlayer(r io.Reader, screen renderer) *consolePlayer {
	return &consolePlayer{bufio.NewScanner(r), screen}
}

// SelectAction renders the grid and reads the next action. Unknown
// input is reported and read again. It returns experiment.ErrStop at
// the end of input or when the player quits.
func (c *consolePlayer) SelectAction(ts.TimeStep) (*mat.VecDense, error) {
	if err := c.screen.Render(gridworld.Console); err != nil {
		return nil, err
	}

	for c.in.Scan() {
		a, err := parseAction(c.in.Text())
		if err == experiment.ErrStop {
			return nil, err
		} else if err != nil {
			fmt.Println(err)
			continue
		}
		return mat.NewVecDense(1, []float64{float64(a)}), nil
	}

	if err := c.in.Err(); err != nil {
		return nil, fmt.Errorf("selectAction: could not read input: %w", err)
	}
	return nil, experiment.ErrStop
}

func parseAction(text string) (gridworld.Action, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || text == "q" {
		return 0, experiment.ErrStop
	}

	if a, ok := keys[text]; ok {
		return a, nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("unknown action %q, use w, a, s, d or 0-3", text)
	}
	return gridworld.ActionFromInt(v)
}
