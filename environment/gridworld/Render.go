package gridworld

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// RenderMode is the mode in which a GridWorld is rendered
type RenderMode string

// Console renders the grid as text, one line per row
const Console RenderMode = "console"

const (
	agentCell = "X"
	emptyCell = "."
)

// Render writes a textual snapshot of the grid to the GridWorld's
// output, marking the agent's cell with an X and every other cell with
// a dot. Only the Console mode is supported.
func (g *GridWorld) Render(mode RenderMode) error {
	if mode != Console {
		return &UnsupportedModeError{mode}
	}

	_, err := fmt.Fprint(g.out, g.grid(g.colour))
	return err
}

// String returns the uncoloured console rendering of the grid
func (g *GridWorld) String() string {
	return g.grid(false)
}

func (g *GridWorld) grid(colour bool) string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			switch {
			case r == g.agent.Row && c == g.agent.Col && colour:
				b.WriteString(aurora.Green(agentCell).Bold().String())
			case r == g.agent.Row && c == g.agent.Col:
				b.WriteString(agentCell)
			case colour && g.task.atGoal(Position{r, c}):
				b.WriteString(aurora.Blue(emptyCell).String())
			default:
				b.WriteString(emptyCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
