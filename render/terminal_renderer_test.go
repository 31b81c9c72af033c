package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/scheduler"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func testFrame() scheduler.Frame {
	return scheduler.Frame{
		Snapshot: engine.Snapshot{
			Grid:          grid.New(6, 4),
			Snake:         []grid.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}},
			Food:          grid.Cell{X: 5, Y: 3},
			Enemy:         []grid.Cell{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}},
			EnemyLifetime: 42,
			Score:         3,
			VictoryScore:  50,
		},
		Mode:     config.ModeAuto,
		TickRate: 11,
		Run:      2,
	}
}

// TestRenderCells verifies each entity lands on its two-column cell
func TestRenderCells(t *testing.T) {
	screen := newScreen(t)
	New(screen).Render(testFrame())

	x, y := CellOrigin(grid.Cell{X: 2, Y: 1})
	assert.Equal(t, GlyphHead[0], runeAt(screen, x, y))
	assert.Equal(t, GlyphHead[1], runeAt(screen, x+1, y))

	x, y = CellOrigin(grid.Cell{X: 1, Y: 1})
	assert.Equal(t, GlyphBody[0], runeAt(screen, x, y))

	x, y = CellOrigin(grid.Cell{X: 5, Y: 3})
	assert.Equal(t, GlyphFood[0], runeAt(screen, x, y))
	assert.Equal(t, GlyphFood[1], runeAt(screen, x+1, y))

	x, y = CellOrigin(grid.Cell{X: 0, Y: 3})
	assert.Equal(t, GlyphEnemy[0], runeAt(screen, x, y))

	x, y = CellOrigin(grid.Cell{X: 3, Y: 0})
	assert.Equal(t, ' ', runeAt(screen, x, y))
}

// TestRenderBorder verifies the board frame corners
func TestRenderBorder(t *testing.T) {
	screen := newScreen(t)
	New(screen).Render(testFrame())

	// 6 cells wide -> 12 columns plus two borders
	assert.Equal(t, borderTopLeft, runeAt(screen, 0, 1))
	assert.Equal(t, borderTopRight, runeAt(screen, 13, 1))
	assert.Equal(t, borderBottomLeft, runeAt(screen, 0, 6))
	assert.Equal(t, borderBottomRight, runeAt(screen, 13, 6))
	assert.Equal(t, borderVertical, runeAt(screen, 0, 3))
}

// TestRenderHUD verifies the status line content
func TestRenderHUD(t *testing.T) {
	screen := newScreen(t)
	f := testFrame()
	f.Paused = true
	New(screen).Render(f)

	hud := rowText(screen, hudRow, 80)
	assert.Contains(t, hud, "Score 3/50")
	assert.Contains(t, hud, "Mode auto")
	assert.Contains(t, hud, "Speed 11")
	assert.Contains(t, hud, "Run 2")
	assert.Contains(t, hud, "Enemy 42")
	assert.Contains(t, hud, "[paused]")
}

// TestRenderBanner verifies end banners are drawn across the board middle
func TestRenderBanner(t *testing.T) {
	screen := newScreen(t)
	f := testFrame()
	f.Snapshot.Enemy = nil
	f.Snapshot.Result = engine.GameOver
	f.Banner = "GAME OVER"
	New(screen).Render(f)

	_, y := CellOrigin(grid.Cell{Y: f.Snapshot.Grid.Height / 2})
	assert.Contains(t, rowText(screen, y, 80), "GAME OVER")
	assert.NotContains(t, rowText(screen, hudRow, 80), "Enemy")
}
