package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridworld/environment"
	"gonum.org/v1/gonum/mat"
)

// NewUniformStart returns a Starter which samples starting positions
// uniformly over a size x size grid using the random source src
func NewUniformStart(size int, src rand.Source) (environment.Starter, error) {
	s, err := environment.NewCategoricalStarter([]int{size, size}, src)
	if err != nil {
		return nil, fmt.Errorf("newUniformStart: %w", err)
	}
	return s, nil
}

// SingleStart starts every episode at the same position
type SingleStart struct {
	start Position
}

// NewSingleStart returns a Starter which always starts at (row, col)
// on a size x size grid
func NewSingleStart(row, col, size int) (environment.Starter, error) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return nil, fmt.Errorf("newSingleStart: %v on grid of size %d: %w",
			Position{row, col}, size, ErrOutOfBounds)
	}
	return &SingleStart{Position{row, col}}, nil
}

// Start returns the starting position as a (row, col) vector
func (s *SingleStart) Start() *mat.VecDense {
	return s.start.Vec()
}
