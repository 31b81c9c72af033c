// Package autopilot steers a snake toward the food with A*
package autopilot

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/navigation"
)

// Steerable is the slice of game state the controller reads and writes
type Steerable interface {
	Head() grid.Cell
	Food() grid.Cell
	Body() []grid.Cell
	ChangeDirection(d grid.Direction) bool
}

// Decision describes one steering choice
type Decision struct {
	Direction  grid.Direction
	Planned    bool // False when the random fallback was used
	PathLength int
	Accepted   bool // Whether the game took the direction
}

// Controller plans one direction per tick
// Owned by the loop driver goroutine, not safe for concurrent use
type Controller struct {
	finder *navigation.Pathfinder
	rng    *rand.Rand
}

// New creates a controller for g, rng drives the fallback choice
func New(g grid.Grid, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{
		finder: navigation.NewPathfinder(g),
		rng:    rng,
	}
}

// Steer plans head to food around the body and submits the first step
// The enemy is not an obstacle. Without a path a random direction is submitted
func (c *Controller) Steer(game Steerable) Decision {
	path, ok := c.finder.FindPath(game.Head(), game.Food(), game.Body())

	var dec Decision
	if ok && len(path) > 0 {
		dec.Direction = path[0]
		dec.Planned = true
		dec.PathLength = len(path)
	} else {
		dec.Direction = grid.Directions[c.rng.IntN(len(grid.Directions))]
	}

	dec.Accepted = game.ChangeDirection(dec.Direction)
	return dec
}

// Expanded returns node expansions of the last search
func (c *Controller) Expanded() int {
	return c.finder.Expanded
}
