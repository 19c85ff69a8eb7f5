// Package gridworld implements the square gridworld of Sutton and Barto's
// Example 4.1: an agent moves between the cells of a size x size grid
// until it reaches one of two absorbing corners, the top-left cell and
// the bottom-right cell.
//
// Moves that would leave the grid are clipped to its edge. Every step
// that does not end in a corner is rewarded with -1, and every step
// that does is rewarded with 0. Once in a corner, the agent stays there
// and further steps are rewarded with 0 until the GridWorld is reset.
//
// A GridWorld is owned by a single controlling loop and is not safe
// for concurrent use. Independent episodes should use independent
// GridWorlds.
package gridworld

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridworld/utils/intutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// Info holds auxiliary information about a step. It currently carries
// no data.
type Info struct{}

// Result is the outcome of a single step
type Result struct {
	Position Position
	Reward   int
	Done     bool
	Info     Info
}

// GridWorld tracks the size of a square grid, its absorbing corners,
// and the current agent position
type GridWorld struct {
	task   *Corners
	size   int
	bounds r1.Interval
	agent  Position

	out    io.Writer
	colour bool
}

// Option configures a GridWorld
type Option func(*GridWorld)

// WithOutput sets the writer that Render writes to. The default is
// os.Stdout, which a nil w leaves in place.
func WithOutput(w io.Writer) Option {
	return func(g *GridWorld) {
		if w != nil {
			g.out = w
		}
	}
}

// WithColour sets whether Render colours the agent and corner cells
func WithColour(colour bool) Option {
	return func(g *GridWorld) {
		g.colour = colour
	}
}

// New creates a new size x size GridWorld with the agent placed
// uniformly at random using the random source src
func New(size int, src rand.Source, opts ...Option) (*GridWorld, error) {
	if size < 1 {
		return nil, fmt.Errorf("new: size must be positive, got %d", size)
	}

	starter, err := NewUniformStart(size, src)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	task, err := NewCorners(starter, size, 0)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return NewFromTask(task, opts...)
}

// NewFromTask creates a new GridWorld for the Corners task t, with the
// agent placed at a position drawn from the task's Starter
func NewFromTask(t *Corners, opts ...Option) (*GridWorld, error) {
	g := &GridWorld{
		task:   t,
		size:   t.size,
		bounds: r1.Interval{Min: 0, Max: float64(t.size - 1)},
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}

	start, err := PositionFromVec(t.Start())
	if err != nil {
		return nil, fmt.Errorf("newFromTask: could not use starting "+
			"state: %w", err)
	}
	g.agent = start

	return g, nil
}

// Size returns the side length of the grid
func (g *GridWorld) Size() int {
	return g.size
}

// Position returns the current agent position
func (g *GridWorld) Position() Position {
	return g.agent
}

// Terminal returns the absorbing corners of the grid
func (g *GridWorld) Terminal() []Position {
	return g.task.Terminal()
}

// IsTerminal returns whether p is an absorbing corner
func (g *GridWorld) IsTerminal(p Position) bool {
	return g.task.atGoal(p)
}

// Done returns whether the agent is in an absorbing corner
func (g *GridWorld) Done() bool {
	return g.task.atGoal(g.agent)
}

// InBounds returns whether p lies on the grid
func (g *GridWorld) InBounds(p Position) bool {
	return intutils.InInterval(p.Row, g.bounds) &&
		intutils.InInterval(p.Col, g.bounds)
}

// Step moves the agent one cell in the direction of action a, clipping
// the move to the edges of the grid. If the agent is already in an
// absorbing corner, it does not move and the step is rewarded with 0.
//
// Step returns an *InvalidActionError and leaves the agent in place if
// a is not one of the four actions.
func (g *GridWorld) Step(a Action) (Result, error) {
	if !a.Valid() {
		return Result{}, &InvalidActionError{Op: "step", Action: a.float()}
	}

	if g.Done() {
		return Result{g.agent, GoalReward, true, Info{}}, nil
	}

	next := g.agent.move(a)
	g.agent = Position{
		Row: intutils.ClipInterval(next.Row, g.bounds),
		Col: intutils.ClipInterval(next.Col, g.bounds),
	}

	done := g.Done()
	return Result{g.agent, g.task.reward(done), done, Info{}}, nil
}

// Reset places the agent at p. The position is not validated: p may
// lie off the grid or in an absorbing corner. A subsequent Step clips
// the agent back onto the grid along the axis it moves on only.
func (g *GridWorld) Reset(p Position) {
	g.agent = p
}

// ResetChecked places the agent at p if p lies on the grid, and
// otherwise returns an error wrapping ErrOutOfBounds
func (g *GridWorld) ResetChecked(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("resetChecked: %v on grid of size %d: %w", p,
			g.size, ErrOutOfBounds)
	}
	g.Reset(p)
	return nil
}

// Close releases the GridWorld. It holds no resources, so Close always
// returns nil.
func (g *GridWorld) Close() error {
	return nil
}
