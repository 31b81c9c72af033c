package autopilot

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
)

type fakeGame struct {
	head, food grid.Cell
	body       []grid.Cell
	dir        grid.Direction
	submitted  []grid.Direction
}

func (f *fakeGame) Head() grid.Cell   { return f.head }
func (f *fakeGame) Food() grid.Cell   { return f.food }
func (f *fakeGame) Body() []grid.Cell { return f.body }

func (f *fakeGame) ChangeDirection(d grid.Direction) bool {
	f.submitted = append(f.submitted, d)
	if d == f.dir.Opposite() {
		return false
	}
	f.dir = d
	return true
}

// TestSteerFollowsPath verifies the first path step is submitted
func TestSteerFollowsPath(t *testing.T) {
	c := New(grid.New(10, 10), rand.New(rand.NewPCG(1, 1)))
	g := &fakeGame{head: grid.Cell{X: 2, Y: 2}, food: grid.Cell{X: 2, Y: 5}, dir: grid.Right}

	dec := c.Steer(g)

	assert.True(t, dec.Planned)
	assert.Equal(t, grid.Down, dec.Direction)
	assert.Equal(t, 3, dec.PathLength)
	assert.True(t, dec.Accepted)
	assert.Equal(t, []grid.Direction{grid.Down}, g.submitted)
	assert.Positive(t, c.Expanded())
}

// TestSteerIgnoresOppositeRejection verifies a planned reversal is reported as rejected
func TestSteerIgnoresOppositeRejection(t *testing.T) {
	c := New(grid.New(10, 10), rand.New(rand.NewPCG(2, 2)))
	g := &fakeGame{head: grid.Cell{X: 5, Y: 5}, food: grid.Cell{X: 4, Y: 5}, dir: grid.Right}

	dec := c.Steer(g)

	assert.True(t, dec.Planned)
	assert.Equal(t, grid.Left, dec.Direction)
	assert.False(t, dec.Accepted)
	assert.Equal(t, grid.Right, g.dir)
}

// TestSteerFallsBackWhenBoxedIn verifies a random direction is submitted without a path
func TestSteerFallsBackWhenBoxedIn(t *testing.T) {
	c := New(grid.New(10, 10), rand.New(rand.NewPCG(3, 3)))
	head := grid.Cell{X: 5, Y: 5}
	g := &fakeGame{
		head: head,
		food: grid.Cell{X: 0, Y: 0},
		body: []grid.Cell{{X: 5, Y: 4}, {X: 6, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 5}},
		dir:  grid.Up,
	}

	dec := c.Steer(g)

	assert.False(t, dec.Planned)
	assert.Zero(t, dec.PathLength)
	assert.True(t, dec.Direction.Valid())
	require.Len(t, g.submitted, 1)
	assert.Equal(t, dec.Direction, g.submitted[0])
}

// TestSteerUsesWrap verifies the planner crosses the board edge when it is shorter
func TestSteerUsesWrap(t *testing.T) {
	c := New(grid.New(10, 10), rand.New(rand.NewPCG(4, 4)))
	g := &fakeGame{head: grid.Cell{X: 0, Y: 5}, food: grid.Cell{X: 9, Y: 5}, dir: grid.Up}

	dec := c.Steer(g)

	assert.True(t, dec.Planned)
	assert.Equal(t, grid.Left, dec.Direction)
	assert.Equal(t, 1, dec.PathLength)
}

// TestAutopilotPlaysGame verifies the controller keeps a game alive and scoring
func TestAutopilotPlaysGame(t *testing.T) {
	clock := engine.NewMockClock(time.Unix(0, 0))
	cfg := engine.DefaultGameConfig(grid.New(12, 12))
	cfg.VictoryScore = 10
	gs := engine.NewGameState(cfg, clock, rand.New(rand.NewPCG(5, 5)))
	c := New(cfg.Grid, rand.New(rand.NewPCG(6, 6)))

	planned := 0
	for i := 0; i < 2000 && !gs.Over(); i++ {
		if c.Steer(gs).Planned {
			planned++
		}
		gs.Step()
	}

	require.True(t, gs.Over())
	assert.Positive(t, planned)
	assert.Positive(t, gs.Score())
}
