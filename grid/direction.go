package grid

import "fmt"

// Direction is one of the four cardinal headings
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings in stable expansion order
var Directions = [4]Direction{Up, Right, Down, Left}

// Unit deltas indexed by Direction, screen coordinates (y grows downward)
var dirDeltas = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Opposite direction lookup
var dirOpposite = [4]Direction{Down, Left, Up, Right}

var dirNames = [4]string{"up", "right", "down", "left"}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return dirOpposite[d&3]
}

// Delta returns the unit step for the heading
func (d Direction) Delta() (dx, dy int) {
	v := dirDeltas[d&3]
	return v[0], v[1]
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d <= Left
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// ParseDirection maps a heading name (up/down/left/right) to a Direction
func ParseDirection(s string) (Direction, error) {
	for i, name := range dirNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
