package gridworld

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCornersReward(t *testing.T) {
	start, err := NewSingleStart(1, 1, 4)
	if err != nil {
		t.Fatalf("newSingleStart: %v", err)
	}
	c, err := NewCorners(start, 4, 0)
	if err != nil {
		t.Fatalf("newCorners: %v", err)
	}

	tests := []struct {
		next Position
		want float64
	}{
		{Position{0, 0}, 0},
		{Position{3, 3}, 0},
		{Position{0, 3}, -1},
		{Position{2, 1}, -1},
	}
	for _, test := range tests {
		if got := c.GetReward(nil, nil, test.next.Vec()); got != test.want {
			t.Errorf("reward for %v = %v, want %v", test.next, got, test.want)
		}
	}

	if c.Min() != -1 || c.Max() != 0 {
		t.Errorf("reward range [%v, %v], want [-1, 0]", c.Min(), c.Max())
	}
}

func TestCornersAtGoal(t *testing.T) {
	start, _ := NewSingleStart(0, 0, 3)
	c, _ := NewCorners(start, 3, 0)

	if !c.AtGoal(Position{2, 2}.Vec()) {
		t.Error("(2, 2) should be a goal on a 3x3 grid")
	}
	if c.AtGoal(Position{2, 1}.Vec()) {
		t.Error("(2, 1) should not be a goal on a 3x3 grid")
	}
	if c.AtGoal(mat.NewDense(2, 2, nil)) {
		t.Error("a non-vector state should never be a goal")
	}
	if c.AtGoal(mat.NewVecDense(2, []float64{0.5, 0})) {
		t.Error("a non-integral state should never be a goal")
	}
}

func TestNewCornersInvalidSize(t *testing.T) {
	if _, err := NewCorners(nil, 0, 0); err == nil {
		t.Error("expected error for size 0")
	}
}

func TestNewSingleStartOutOfBounds(t *testing.T) {
	for _, p := range []Position{{4, 0}, {0, 4}, {-1, 0}} {
		_, err := NewSingleStart(p.Row, p.Col, 4)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("newSingleStart(%v): err = %v, want ErrOutOfBounds", p, err)
		}
	}
}
