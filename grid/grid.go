// Package grid provides the toroidal cell space shared by the simulation and navigation
package grid

// Cell is a grid coordinate, compared and hashed by value
type Cell struct {
	X, Y int
}

// Grid is a fixed-size wrap-around coordinate space
type Grid struct {
	Width, Height int
}

// New creates a grid of the given dimensions
func New(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Size returns the number of cells
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Contains reports whether c lies inside [0,W)x[0,H)
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap folds any coordinate back into the grid
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

// Step returns the wrapped neighbor of c in direction d
func (g Grid) Step(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: mod(c.X+dx, g.Width), Y: mod(c.Y+dy, g.Height)}
}

// Neighbors returns the four wrapped neighbors in Directions order
func (g Grid) Neighbors(c Cell) [4]Cell {
	var out [4]Cell
	for i, d := range Directions {
		out[i] = g.Step(c, d)
	}
	return out
}

// Index flattens a cell to its arena index y*W+x
func (g Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt is the inverse of Index
func (g Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// Manhattan returns |x1-x2| + |y1-y2|
// Wrap-around shortcuts are ignored, so on a torus the estimate can exceed the
// true distance; A* built on it may return a longer, still valid, path
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
