// Command gridworld plays the corner gridworld in the console. Actions
// are read from standard input, one per line: w, a, s, d or the
// numeric actions 0 (up), 1 (left), 2 (down) and 3 (right). A blank
// line or q ends the session.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/samuelfneumann/gridworld/environment/envconfig"
	"github.com/samuelfneumann/gridworld/experiment"
	"github.com/samuelfneumann/gridworld/experiment/trackers"
	"gonum.org/v1/gonum/floats"
)

func main() {
	c := envconfig.Default()

	configPath := flag.String("config", "", "JSON environment config file")
	flag.IntVar(&c.Size, "size", c.Size, "side length of the grid")
	flag.Uint64Var(&c.Seed, "seed", c.Seed, "seed for starting positions")
	flag.Float64Var(&c.Discount, "discount", c.Discount, "discount factor")
	flag.UintVar(&c.EpisodeCutoff, "cutoff", c.EpisodeCutoff,
		"maximum steps per episode, 0 for no limit")
	flag.BoolVar(&c.Colour, "colour", c.Colour, "colour the rendered grid")
	steps := flag.Uint("steps", 1000, "maximum total steps")
	returnsPath := flag.String("returns", "", "file to save episode returns")
	lengthsPath := flag.String("lengths", "", "file to save episode lengths")
	flag.Parse()

	if *configPath != "" {
		var err error
		if c, err = envconfig.Load(*configPath); err != nil {
			log.Fatalf("could not load config: %v", err)
		}
	}

	e, _, err := c.Create(os.Stdout)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}
	defer e.Close()
	log.Println(e)

	returns := trackers.NewReturn(*returnsPath)
	lengths := trackers.NewEpisodeLength(*lengthsPath)

	player := newConsolePlayer(os.Stdin, e)
	exp := experiment.NewOnline(e, player, *steps, returns, lengths)
	if err := exp.Run(); err != nil {
		log.Fatalf("could not run experiment: %v", err)
	}

	data := returns.Data()
	log.Printf("finished %d episodes in %d steps", len(data), exp.Steps())
	if len(data) > 0 {
		log.Printf("mean return %.2f, best return %.2f",
			floats.Sum(data)/float64(len(data)), floats.Max(data))
	}

	if *returnsPath != "" {
		if err := returns.Save(); err != nil {
			log.Fatalf("could not save returns: %v", err)
		}
	}
	if *lengthsPath != "" {
		if err := lengths.Save(); err != nil {
			log.Fatalf("could not save episode lengths: %v", err)
		}
	}
}
