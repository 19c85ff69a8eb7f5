// Package envconfig provides configuration structs for configuring
// gridworld environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridworld/environment"
	"github.com/samuelfneumann/gridworld/environment/gridworld"
	ts "github.com/samuelfneumann/gridworld/timestep"
)

// Start is a fixed starting position. A nil Start in a Config means
// starting positions are drawn uniformly over the grid.
type Start struct {
	Row int
	Col int
}

// Config implements a specific configuration of a gridworld
// environment
type Config struct {
	Size          int
	Seed          uint64
	Discount      float64
	EpisodeCutoff uint
	Colour        bool
	Start         *Start `json:",omitempty"`
}

// Default returns the configuration of the 4x4 gridworld of Sutton
// and Barto's Example 4.1
func Default() Config {
	return Config{
		Size:     4,
		Discount: 1.0,
	}
}

// Validate returns an error if the Config cannot be used to create an
// environment
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("validate: size must be positive, got %d", c.Size)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], got %v",
			c.Discount)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. Rendering writes to out.
func (c Config) Create(out io.Writer) (*gridworld.Env, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	var starter environment.Starter
	var err error
	if c.Start != nil {
		starter, err = gridworld.NewSingleStart(c.Start.Row, c.Start.Col,
			c.Size)
	} else {
		starter, err = gridworld.NewUniformStart(c.Size, rand.NewSource(c.Seed))
	}
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	task, err := gridworld.NewCorners(starter, c.Size, int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	return gridworld.NewEnv(task, c.Discount, gridworld.WithOutput(out),
		gridworld.WithColour(c.Colour))
}

// Load reads a JSON encoded Config from the file at path. Fields
// missing from the file keep their Default values.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not open config file: %w",
			err)
	}
	defer file.Close()

	c := Default()
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %w", err)
	}

	return c, c.Validate()
}

// Save writes the Config as JSON to the file at path
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config file: %w", err)
	}
	return nil
}
