package parameter

// Board
const (
	// GridWidth and GridHeight are the default board dimensions in cells
	GridWidth  = 30
	GridHeight = 30

	// MinGridSide is the smallest board edge that still fits a 3-cell enemy
	MinGridSide = 3
)

// Scoring
const (
	// VictoryScore is the food count that ends a run in victory
	VictoryScore = 50

	// ScorePerFood is added on every food eaten
	ScorePerFood = 1
)

// Speed ramp, every SpeedStepScore points the tick rate grows by SpeedStepTPS
const (
	SpeedStepScore = 5
	SpeedStepTPS   = 1
)
