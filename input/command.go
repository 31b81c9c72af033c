// Package input turns terminal key events into game commands
package input

import "github.com/lixenwraith/vi-snake/grid"

// Kind classifies a command
type Kind uint8

const (
	KindNone Kind = iota
	KindSteer
	KindQuit
	KindTogglePause
	KindToggleAutopilot
	KindRestart
)

var kindNames = [...]string{
	KindNone:            "none",
	KindSteer:           "steer",
	KindQuit:            "quit",
	KindTogglePause:     "toggle_pause",
	KindToggleAutopilot: "toggle_autopilot",
	KindRestart:         "restart",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is one player request, Direction is meaningful only for KindSteer
type Command struct {
	Kind      Kind
	Direction grid.Direction
}

// Steer builds a steering command
func Steer(d grid.Direction) Command {
	return Command{Kind: KindSteer, Direction: d}
}

// Control commands
var (
	Quit            = Command{Kind: KindQuit}
	TogglePause     = Command{Kind: KindTogglePause}
	ToggleAutopilot = Command{Kind: KindToggleAutopilot}
	Restart         = Command{Kind: KindRestart}
)
