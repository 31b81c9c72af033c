package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/scheduler"
)

// Screen layout: HUD on row 0, bordered board below
const (
	hudRow     = 0
	boardTop   = 1 // Top border row
	boardLeft  = 0 // Left border column
	cellWidth  = 2
	borderSize = 1
)

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// New creates a renderer over an initialized screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

var _ scheduler.Renderer = (*Renderer)(nil)

// Render draws the whole frame and shows it
func (r *Renderer) Render(f scheduler.Frame) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	snap := f.Snapshot
	r.drawHUD(f)
	r.drawBorder(snap.Grid)
	r.drawBoard(snap)
	if f.Banner != "" {
		r.drawBanner(snap, f.Banner)
	}

	r.screen.Show()
}

// CellOrigin returns the screen position of the left column of board cell c
func CellOrigin(c grid.Cell) (x, y int) {
	return boardLeft + borderSize + c.X*cellWidth, boardTop + borderSize + c.Y
}

func (r *Renderer) drawHUD(f scheduler.Frame) {
	snap := f.Snapshot
	line := fmt.Sprintf("Score %d/%d  Mode %s  Speed %d  Run %d",
		snap.Score, snap.VictoryScore, f.Mode, f.TickRate, f.Run)
	if snap.Enemy != nil {
		line += fmt.Sprintf("  Enemy %d", snap.EnemyLifetime)
	}
	if f.Paused {
		line += "  [paused]"
	}
	r.drawText(0, hudRow, line, r.base.Foreground(RgbHUD))
}

func (r *Renderer) drawBorder(g grid.Grid) {
	style := r.base.Foreground(RgbBorder)
	left := boardLeft
	right := boardLeft + borderSize + g.Width*cellWidth
	top := boardTop
	bottom := boardTop + borderSize + g.Height

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, borderHorizontal, nil, style)
		r.screen.SetContent(x, bottom, borderHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, borderVertical, nil, style)
		r.screen.SetContent(right, y, borderVertical, nil, style)
	}
	r.screen.SetContent(left, top, borderTopLeft, nil, style)
	r.screen.SetContent(right, top, borderTopRight, nil, style)
	r.screen.SetContent(left, bottom, borderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, borderBottomRight, nil, style)
}

func (r *Renderer) drawBoard(snap engine.Snapshot) {
	r.drawCell(snap.Food, GlyphFood, r.base.Foreground(RgbFood).Bold(true))

	enemyColor := RgbEnemy
	if snap.EnemyLifetime <= enemyDimTicks {
		enemyColor = RgbEnemyDim
	}
	for _, c := range snap.Enemy {
		r.drawCell(c, GlyphEnemy, r.base.Foreground(enemyColor))
	}

	// Tail to head so the head wins any overlap
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(snap.Snake[i], GlyphHead, r.base.Foreground(RgbSnakeHead))
		} else {
			r.drawCell(snap.Snake[i], GlyphBody, r.base.Foreground(RgbSnakeBody))
		}
	}
}

func (r *Renderer) drawCell(c grid.Cell, glyph [2]rune, style tcell.Style) {
	x, y := CellOrigin(c)
	r.screen.SetContent(x, y, glyph[0], nil, style)
	r.screen.SetContent(x+1, y, glyph[1], nil, style)
}

func (r *Renderer) drawBanner(snap engine.Snapshot, text string) {
	color := RgbBannerPaused
	switch snap.Result {
	case engine.GameOver:
		color = RgbBannerGameOver
	case engine.Victory:
		color = RgbBannerVictory
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color).Bold(true)

	padded := " " + text + " "
	boardWidth := snap.Grid.Width*cellWidth + 2*borderSize
	x := boardLeft + (boardWidth-len([]rune(padded)))/2
	if x < 0 {
		x = 0
	}
	y := boardTop + borderSize + snap.Grid.Height/2
	r.drawText(x, y, padded, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
