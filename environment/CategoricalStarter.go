package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. The categorical
// distributions sample values in (0, 1, 2, ... N).
type CategoricalStarter struct {
	features int
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1). All dimensions draw from
// the single source src, so a deterministic source yields a
// deterministic sequence of starting states.
func NewCategoricalStarter(bounds []int, src rand.Source) (*CategoricalStarter,
	error) {
	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		if bounds[i] < 1 {
			return nil, fmt.Errorf("newCategoricalStarter: bound %d must be "+
				"positive, got %d", i, bounds[i])
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, src)
	}

	return &CategoricalStarter{len(bounds), rand}, nil
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}
