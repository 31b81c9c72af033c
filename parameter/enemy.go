package parameter

import (
	"time"
)

// Enemy Entity
const (
	// EnemyLength is the fixed number of cells in the enemy worm
	EnemyLength = 3

	// EnemyWarmup is game time after run start before the single spawn attempt window opens
	EnemyWarmup = 10 * time.Second

	// EnemyLifetimeTicks is how many ticks the enemy stays on the board
	EnemyLifetimeTicks = 100

	// EnemyMoveIntervalTicks is ticks between enemy steps
	EnemyMoveIntervalTicks = 3

	// EnemySpawnAttempts bounds random placements tried per tick before giving up until the next tick
	EnemySpawnAttempts = 100
)
