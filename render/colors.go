package render

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 95, 120)   // Muted slate
	RgbHUD        = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDDim     = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbFood      = tcell.NewRGBColor(255, 80, 80) // Normal Red
	RgbEnemy     = tcell.NewRGBColor(200, 80, 255)
	RgbEnemyDim  = tcell.NewRGBColor(110, 50, 140) // Enemy close to expiry

	RgbBannerGameOver = tcell.NewRGBColor(255, 80, 80)
	RgbBannerVictory  = tcell.NewRGBColor(255, 255, 0)
	RgbBannerPaused   = tcell.NewRGBColor(255, 165, 0)
)

// Two-column cell glyphs
var (
	GlyphEmpty = [2]rune{' ', ' '}
	GlyphHead  = [2]rune{'█', '█'}
	GlyphBody  = [2]rune{'▓', '▓'}
	GlyphFood  = [2]rune{'(', ')'}
	GlyphEnemy = [2]rune{'▒', '▒'}
)

// Box drawing
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// enemyDimTicks is the remaining lifetime below which the enemy fades
const enemyDimTicks = 10
