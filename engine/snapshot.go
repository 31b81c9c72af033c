package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/grid"
)

// Snapshot is a read-only copy of the board for renderers and planners
type Snapshot struct {
	Grid grid.Grid

	Snake []grid.Cell // Head first
	Food  grid.Cell
	Enemy []grid.Cell // Nil when absent

	EnemyLifetime int
	Direction     grid.Direction
	Score         int
	VictoryScore  int
	Tick          int
	Elapsed       time.Duration // Game time since run start
	Result        TickResult
}

// Snapshot copies the current state
func (gs *GameState) Snapshot() Snapshot {
	snake := make([]grid.Cell, len(gs.snake))
	copy(snake, gs.snake)

	var enemy []grid.Cell
	if gs.enemy.Active {
		enemy = make([]grid.Cell, len(gs.enemy.Cells))
		copy(enemy, gs.enemy.Cells[:])
	}

	return Snapshot{
		Grid:          gs.cfg.Grid,
		Snake:         snake,
		Food:          gs.food,
		Enemy:         enemy,
		EnemyLifetime: gs.enemy.Lifetime,
		Direction:     gs.direction,
		Score:         gs.score,
		VictoryScore:  gs.cfg.VictoryScore,
		Tick:          gs.tick,
		Elapsed:       gs.clock.Now().Sub(gs.runStart),
		Result:        gs.result,
	}
}
