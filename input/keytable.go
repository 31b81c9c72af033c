package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/grid"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Command

	// Printable bindings, matched case-insensitively
	Runes map[rune]Command
}

// DefaultKeyTable returns arrows, WASD and hjkl steering plus control keys
// Autopilot sits on Tab and m since a is taken by WASD
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     Steer(grid.Up),
			tcell.KeyRight:  Steer(grid.Right),
			tcell.KeyDown:   Steer(grid.Down),
			tcell.KeyLeft:   Steer(grid.Left),
			tcell.KeyTab:    ToggleAutopilot,
			tcell.KeyEscape: Quit,
			tcell.KeyCtrlC:  Quit,
		},
		Runes: map[rune]Command{
			'w': Steer(grid.Up),
			'd': Steer(grid.Right),
			's': Steer(grid.Down),
			'a': Steer(grid.Left),
			'k': Steer(grid.Up),
			'l': Steer(grid.Right),
			'j': Steer(grid.Down),
			'h': Steer(grid.Left),
			'q': Quit,
			'p': TogglePause,
			' ': TogglePause,
			'm': ToggleAutopilot,
			'r': Restart,
		},
	}
}

// defaultTable backs Translate
var defaultTable = DefaultKeyTable()

// Translate maps a key event with the default table
func Translate(ev *tcell.EventKey) (Command, bool) {
	return defaultTable.Translate(ev)
}

// Translate maps a key event to a command, ok is false for unbound keys
func (kt *KeyTable) Translate(ev *tcell.EventKey) (Command, bool) {
	if ev == nil {
		return Command{}, false
	}
	if ev.Key() == tcell.KeyRune {
		cmd, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	cmd, ok := kt.SpecialKeys[ev.Key()]
	return cmd, ok
}
