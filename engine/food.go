package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/grid"
)

// placeFood picks a cell uniformly among those not covered by snake
// ok is false only when the snake fills the board
func placeFood(g grid.Grid, rng *rand.Rand, snake []grid.Cell) (grid.Cell, bool) {
	taken := make([]bool, g.Size())
	for _, c := range snake {
		taken[g.Index(c)] = true
	}

	free := g.Size() - countDistinct(taken)
	if free <= 0 {
		return grid.Cell{}, false
	}

	k := rng.IntN(free)
	for idx, t := range taken {
		if t {
			continue
		}
		if k == 0 {
			return g.CellAt(idx), true
		}
		k--
	}
	return grid.Cell{}, false
}

func countDistinct(taken []bool) int {
	n := 0
	for _, t := range taken {
		if t {
			n++
		}
	}
	return n
}
