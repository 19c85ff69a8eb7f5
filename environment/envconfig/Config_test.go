package envconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gridworld/environment/gridworld"
)

func TestCreateFixedStart(t *testing.T) {
	c := Default()
	c.Start = &Start{Row: 1, Col: 2}

	var buf bytes.Buffer
	e, step, err := c.Create(&buf)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !step.First() {
		t.Errorf("first step = %v, want First", step)
	}
	if got := e.GridWorld().Position(); got != (gridworld.Position{Row: 1, Col: 2}) {
		t.Errorf("start = %v, want (1, 2)", got)
	}

	if err := e.Render(gridworld.Console); err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "....\n..X.\n....\n....\n"; buf.String() != want {
		t.Errorf("render = %q, want %q", buf.String(), want)
	}
}

func TestCreateSeeded(t *testing.T) {
	c := Config{Size: 7, Seed: 1923, Discount: 0.9}

	a, _, err := c.Create(nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, _, _ := c.Create(nil)

	if a.GridWorld().Position() != b.GridWorld().Position() {
		t.Errorf("equal seeds gave different starts %v and %v",
			a.GridWorld().Position(), b.GridWorld().Position())
	}
}

func TestCreateInvalid(t *testing.T) {
	tests := []Config{
		{Size: 0, Discount: 1},
		{Size: 3, Discount: 1.5},
		{Size: 3, Discount: 1, Start: &Start{Row: 3, Col: 0}},
	}

	for _, c := range tests {
		if _, _, err := c.Create(nil); err == nil {
			t.Errorf("create(%+v): expected error", c)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := Config{Size: 5, Seed: 7, Discount: 0.95, EpisodeCutoff: 100,
		Start: &Start{Row: 2, Col: 3}}
	if err := c.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Size != c.Size || loaded.Seed != c.Seed ||
		loaded.Discount != c.Discount ||
		loaded.EpisodeCutoff != c.EpisodeCutoff ||
		loaded.Start == nil || *loaded.Start != *c.Start {
		t.Errorf("loaded %+v, want %+v", loaded, c)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"Size": 6}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Size != 6 || c.Discount != 1.0 || c.Start != nil {
		t.Errorf("loaded %+v, want size 6 with default discount", c)
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"Size": 4, "Walls": []}`), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("load: expected error for unknown field")
	}
}
