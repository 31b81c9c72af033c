package engine

// TickResult is the outcome of one simulation step
type TickResult uint8

const (
	Continue TickResult = iota
	FoodEaten
	GameOver
	Victory
)

var resultNames = [...]string{"continue", "food_eaten", "game_over", "victory"}

func (r TickResult) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Terminal reports whether the result ends the run
func (r TickResult) Terminal() bool {
	return r == GameOver || r == Victory
}

// TickReport carries the result plus enemy lifecycle events of one step
type TickReport struct {
	Result TickResult
	Tick   int // 1-based tick number within the run

	EnemySpawned bool
	EnemyMoved   bool
	EnemyExpired bool
}
