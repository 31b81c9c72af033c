// Package scheduler drives a game at its tick rate: input, autopilot, simulation, cues and frames
package scheduler

import (
	"github.com/lixenwraith/vi-snake/autopilot"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
)

// Game is the simulation surface the loop drives, satisfied by *engine.GameState
type Game interface {
	autopilot.Steerable
	Step() engine.TickReport
	Reset()
	Snapshot() engine.Snapshot
	Score() int
	Over() bool
}

// Frame is the read-only view handed to the renderer every loop step
type Frame struct {
	Snapshot engine.Snapshot
	Mode     config.Mode
	TickRate int
	Paused   bool
	Banner   string // Empty while a run is in progress and unpaused
	Run      int    // 1-based run number
}

// Renderer draws frames
type Renderer interface {
	Render(Frame)
}

// Cues plays feedback for game events
type Cues interface {
	Eat()
	EnemySpawn()
	GameOver()
	Victory()
}

// NoopCues is a silent Cues
type NoopCues struct{}

func (NoopCues) Eat()        {}
func (NoopCues) EnemySpawn() {}
func (NoopCues) GameOver()   {}
func (NoopCues) Victory()    {}

type noopRenderer struct{}

func (noopRenderer) Render(Frame) {}

// StepResult reports what one loop step did
type StepResult struct {
	Ticked    bool // Simulation advanced
	Report    engine.TickReport
	Decision  autopilot.Decision
	Piloted   bool // Decision is set
	RunEnded  bool
	Restarted bool
	Quit      bool
}

// Outcome summarizes a Run
type Outcome struct {
	Result engine.TickResult // Last run result, Continue if interrupted mid-run
	Score  int
	Ticks  int
	Runs   int // Completed runs
}
