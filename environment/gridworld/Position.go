package gridworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Position is a cell of the grid, indexed from the top-left corner
type Position struct {
	Row, Col int
}

// Vec returns the position as the observation vector (row, col)
func (p Position) Vec() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(p.Row), float64(p.Col)})
}

// PositionFromVec converts an observation vector (row, col) into a
// Position
func PositionFromVec(v mat.Vector) (Position, error) {
	if v.Len() != 2 {
		return Position{}, fmt.Errorf("positionFromVec: vector must have "+
			"length 2, got %d", v.Len())
	}

	row, col := v.AtVec(0), v.AtVec(1)
	if row != math.Trunc(row) || col != math.Trunc(col) {
		return Position{}, fmt.Errorf("positionFromVec: coordinates (%v, %v) "+
			"are not integral", row, col)
	}
	return Position{int(row), int(col)}, nil
}

// move returns the position displaced one cell in direction a, without
// any bounds checking
func (p Position) move(a Action) Position {
	dr, dc := a.displacement()
	return Position{p.Row + dr, p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
