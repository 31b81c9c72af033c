package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

// GameConfig is the immutable per-game subset of the run configuration
type GameConfig struct {
	Grid         grid.Grid
	VictoryScore int

	EnemyWarmup        time.Duration
	EnemyLifetime      int // Ticks
	EnemyMoveInterval  int // Ticks between steps
	EnemySpawnAttempts int
}

// DefaultGameConfig returns stock settings for the given grid
func DefaultGameConfig(g grid.Grid) GameConfig {
	return GameConfig{
		Grid:               g,
		VictoryScore:       parameter.VictoryScore,
		EnemyWarmup:        parameter.EnemyWarmup,
		EnemyLifetime:      parameter.EnemyLifetimeTicks,
		EnemyMoveInterval:  parameter.EnemyMoveIntervalTicks,
		EnemySpawnAttempts: parameter.EnemySpawnAttempts,
	}
}

// GameState owns the snake, food, enemy and heading of one run
// Single owner: not safe for concurrent use, readers get copies via Snapshot
type GameState struct {
	cfg   GameConfig
	clock Clock
	rng   *rand.Rand

	snake     []grid.Cell // Head at index 0
	direction grid.Direction
	growing   bool
	food      grid.Cell
	enemy     Enemy
	score     int

	tick     int
	runStart time.Time
	result   TickResult // Continue until the run ends
}

// NewGameState creates a game in its initial run state
func NewGameState(cfg GameConfig, clock Clock, rng *rand.Rand) *GameState {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	gs := &GameState{
		cfg:   cfg,
		clock: clock,
		rng:   rng,
	}
	gs.Reset()
	return gs
}

// Reset starts a new run: snake, heading, score, food, enemy and warm-up epoch
func (gs *GameState) Reset() {
	g := gs.cfg.Grid
	gs.snake = append(gs.snake[:0], grid.Cell{X: g.Width / 2, Y: g.Height / 2})
	gs.direction = grid.Right
	gs.growing = false
	gs.score = 0
	gs.enemy = Enemy{}
	gs.tick = 0
	gs.runStart = gs.clock.Now()
	gs.result = Continue
	gs.food, _ = placeFood(g, gs.rng, gs.snake)
}

// ChangeDirection sets the heading unless d reverses the current one
// Rejected requests are ignored and reported as false
func (gs *GameState) ChangeDirection(d grid.Direction) bool {
	if !d.Valid() || d == gs.direction.Opposite() {
		return false
	}
	gs.direction = d
	return true
}

// Tick advances one step and returns only its result
func (gs *GameState) Tick() TickResult {
	return gs.Step().Result
}

// Step advances the simulation by one tick
// Order: enemy spawn, enemy motion, head advance, collisions, commit, score
// After a terminal result the state is frozen until Reset
func (gs *GameState) Step() TickReport {
	if gs.result.Terminal() {
		return TickReport{Result: gs.result, Tick: gs.tick}
	}

	g := gs.cfg.Grid
	gs.tick++
	report := TickReport{Tick: gs.tick}

	if !gs.enemy.Spawned && gs.clock.Now().Sub(gs.runStart) > gs.cfg.EnemyWarmup {
		report.EnemySpawned = gs.enemy.spawn(g, gs.rng, gs.snake,
			gs.cfg.EnemySpawnAttempts, gs.cfg.EnemyLifetime, gs.cfg.EnemyMoveInterval)
	}

	if gs.enemy.Active {
		report.EnemyMoved, report.EnemyExpired = gs.enemy.advance(g, gs.rng, gs.cfg.EnemyMoveInterval)
	}

	next := g.Step(gs.snake[0], gs.direction)

	if gs.snakeOccupies(next) || gs.enemy.Occupies(next) {
		gs.result = GameOver
		report.Result = GameOver
		return report
	}

	gs.snake = append(gs.snake, grid.Cell{})
	copy(gs.snake[1:], gs.snake[:len(gs.snake)-1])
	gs.snake[0] = next

	result := Continue
	boardFull := false
	if next == gs.food {
		gs.growing = true
		result = FoodEaten
		if food, ok := placeFood(g, gs.rng, gs.snake); ok {
			gs.food = food
		} else {
			boardFull = true
		}
	}

	if gs.growing {
		gs.growing = false
	} else {
		gs.snake = gs.snake[:len(gs.snake)-1]
	}

	if result == FoodEaten {
		gs.score += parameter.ScorePerFood
		if gs.score >= gs.cfg.VictoryScore || boardFull {
			result = Victory
		}
	}

	if result.Terminal() {
		gs.result = result
	}
	report.Result = result
	return report
}

func (gs *GameState) snakeOccupies(c grid.Cell) bool {
	for _, s := range gs.snake {
		if s == c {
			return true
		}
	}
	return false
}

// Head returns the snake head cell
func (gs *GameState) Head() grid.Cell {
	return gs.snake[0]
}

// Body returns a copy of the snake excluding the head
func (gs *GameState) Body() []grid.Cell {
	body := make([]grid.Cell, len(gs.snake)-1)
	copy(body, gs.snake[1:])
	return body
}

// Len returns the snake length
func (gs *GameState) Len() int {
	return len(gs.snake)
}

// Food returns the food cell
func (gs *GameState) Food() grid.Cell {
	return gs.food
}

// Direction returns the current heading
func (gs *GameState) Direction() grid.Direction {
	return gs.direction
}

// Score returns food eaten this run
func (gs *GameState) Score() int {
	return gs.score
}

// Grid returns the board geometry
func (gs *GameState) Grid() grid.Grid {
	return gs.cfg.Grid
}

// Config returns the game settings
func (gs *GameState) Config() GameConfig {
	return gs.cfg
}

// Over reports whether the run has ended
func (gs *GameState) Over() bool {
	return gs.result.Terminal()
}

// Result returns the terminal result, Continue while running
func (gs *GameState) Result() TickResult {
	return gs.result
}

// Enemy returns a copy of the enemy state
func (gs *GameState) Enemy() Enemy {
	return gs.enemy
}
