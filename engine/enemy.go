package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Enemy is a rigid 3-cell worm that spawns once per run, wanders and expires
type Enemy struct {
	Cells [parameter.EnemyLength]grid.Cell // Head first

	Active  bool
	Spawned bool // Latches on first successful spawn, cleared only by a reset

	Lifetime  int // Ticks left while active
	Countdown int // Ticks until the next step
}

// Occupies reports whether an active enemy covers c
func (e *Enemy) Occupies(c grid.Cell) bool {
	if !e.Active {
		return false
	}
	for _, ec := range e.Cells {
		if ec == c {
			return true
		}
	}
	return false
}

// spawn tries up to attempts random straight placements disjoint from snake
// Failure leaves the enemy unspawned so a later tick may retry
func (e *Enemy) spawn(g grid.Grid, rng *rand.Rand, snake []grid.Cell, attempts, lifetime, interval int) bool {
	for i := 0; i < attempts; i++ {
		head := grid.Cell{X: rng.IntN(g.Width), Y: rng.IntN(g.Height)}
		back := grid.Directions[rng.IntN(len(grid.Directions))].Opposite()

		var cells [parameter.EnemyLength]grid.Cell
		cells[0] = head
		for j := 1; j < len(cells); j++ {
			cells[j] = g.Step(cells[j-1], back)
		}
		if overlapsAny(cells[:], snake) {
			continue
		}

		e.Cells = cells
		e.Active = true
		e.Spawned = true
		e.Lifetime = lifetime
		e.Countdown = interval
		return true
	}
	return false
}

// advance runs the per-tick motion countdown and lifetime decay
func (e *Enemy) advance(g grid.Grid, rng *rand.Rand, interval int) (moved, expired bool) {
	if !e.Active {
		return false, false
	}

	e.Countdown--
	if e.Countdown <= 0 {
		e.step(g, grid.Directions[rng.IntN(len(grid.Directions))])
		e.Countdown = interval
		moved = true
	}

	e.Lifetime--
	if e.Lifetime <= 0 {
		e.Active = false
		expired = true
	}
	return moved, expired
}

// step moves the head one cell and slides the rest behind it
// A heading that folds onto the second cell turns the worm around instead
func (e *Enemy) step(g grid.Grid, d grid.Direction) {
	next := g.Step(e.Cells[0], d)
	if next == e.Cells[1] {
		n := len(e.Cells)
		for i := 0; i < n/2; i++ {
			e.Cells[i], e.Cells[n-1-i] = e.Cells[n-1-i], e.Cells[i]
		}
		next = g.Step(e.Cells[0], d)
	}
	copy(e.Cells[1:], e.Cells[:len(e.Cells)-1])
	e.Cells[0] = next
}

func overlapsAny(cells, snake []grid.Cell) bool {
	for _, c := range cells {
		for _, s := range snake {
			if c == s {
				return true
			}
		}
	}
	return false
}
