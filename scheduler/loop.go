package scheduler

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/autopilot"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Options wires a Loop, zero fields get working defaults
type Options struct {
	Config *config.Config

	// Clock is the game clock; pause toggles it so the enemy warm-up skips paused time
	Clock *engine.PausableClock
	Rand  *rand.Rand

	// Game defaults to an engine.GameState built from Config, Clock and Rand
	Game      Game
	Autopilot *autopilot.Controller

	Commands <-chan input.Command
	Renderer Renderer
	Cues     Cues
	Metrics  *status.Registry
	Logger   *zap.Logger
}

// Loop owns one game and advances it one tick per step
// Single goroutine: Step and Run must not be called concurrently
type Loop struct {
	cfg    *config.Config
	clock  *engine.PausableClock
	game   Game
	pilot  *autopilot.Controller
	cmds   <-chan input.Command
	render Renderer
	cues   Cues
	log    *zap.Logger

	mode   config.Mode
	paused bool
	rate   int
	quit   bool
	done   bool // OnEnd exit reached

	runID   string
	run     int
	runs    int
	endedAt time.Time // Game-clock time the current run ended, zero while running
	last    engine.TickReport

	rateChanged bool

	// Cached metric pointers
	mTicks, mFood, mRuns, mDeaths, mVictories *atomic.Int64
	mPlanned, mFallbacks                      *atomic.Int64
	mTickRate, mPathLen                       *status.AtomicFloat
}

// New builds a loop from opts
func New(opts Options) *Loop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewPausableClock(nil)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5851f42d4c957f2d))
	}
	game := opts.Game
	if game == nil {
		game = engine.NewGameState(cfg.GameConfig(), clock, rng)
	}
	pilot := opts.Autopilot
	if pilot == nil {
		pilot = autopilot.New(cfg.Grid(), rng)
	}
	render := opts.Renderer
	if render == nil {
		render = noopRenderer{}
	}
	cues := opts.Cues
	if cues == nil {
		cues = NoopCues{}
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loop{
		cfg:    cfg,
		clock:  clock,
		game:   game,
		pilot:  pilot,
		cmds:   opts.Commands,
		render: render,
		cues:   cues,
		log:    logger,
		mode:   cfg.Mode,
		rate:   cfg.TickRate,

		mTicks:     metrics.Ints.Get(status.EngineTicks),
		mFood:      metrics.Ints.Get(status.EngineFood),
		mRuns:      metrics.Ints.Get(status.EngineRuns),
		mDeaths:    metrics.Ints.Get(status.EngineDeaths),
		mVictories: metrics.Ints.Get(status.EngineVictories),
		mPlanned:   metrics.Ints.Get(status.AutopilotPlanned),
		mFallbacks: metrics.Ints.Get(status.AutopilotFallbacks),
		mTickRate:  metrics.Floats.Get(status.EngineTickRate),
		mPathLen:   metrics.Floats.Get(status.AutopilotPathLen),
	}
	l.mTickRate.Set(float64(l.rate))
	l.beginRun()
	return l
}

// Run steps the loop at the current tick rate until quit, cancellation or an exit-on-end
// Cancellation returns ctx.Err() alongside the outcome so far
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	ticker := time.NewTicker(config.TickInterval(l.rate))
	defer ticker.Stop()

	l.render.Render(l.frame())

	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop cancelled", zap.String("run", l.runID), zap.Error(ctx.Err()))
			return l.Outcome(), ctx.Err()

		case <-ticker.C:
			res := l.Step()
			if res.Quit || l.done {
				return l.Outcome(), nil
			}
			if l.rateChanged {
				ticker.Reset(config.TickInterval(l.rate))
				l.rateChanged = false
			}
		}
	}
}

// Step runs one frame: drain commands, advance unless paused or ended, render
func (l *Loop) Step() StepResult {
	var res StepResult

	steer, hasSteer, restart := l.drain()
	if l.quit {
		res.Quit = true
		l.log.Info("quit", l.runFields()...)
		return res
	}

	if restart {
		l.log.Info("run restarted", l.runFields()...)
		l.restart()
		res.Restarted = true
		l.render.Render(l.frame())
		return res
	}

	if l.paused {
		l.render.Render(l.frame())
		return res
	}

	if l.game.Over() {
		if l.cfg.OnEnd == config.EndRestart && l.clock.Now().Sub(l.endedAt) >= l.cfg.RestartDelay.Duration {
			l.restart()
			res.Restarted = true
		}
		l.render.Render(l.frame())
		return res
	}

	if l.mode == config.ModeAuto {
		res.Decision = l.pilot.Steer(l.game)
		res.Piloted = true
		if res.Decision.Planned {
			l.mPlanned.Add(1)
			l.mPathLen.Set(float64(res.Decision.PathLength))
		} else {
			l.mFallbacks.Add(1)
		}
	} else if hasSteer {
		l.game.ChangeDirection(steer)
	}

	rep := l.game.Step()
	res.Ticked = true
	res.Report = rep
	l.last = rep
	l.mTicks.Add(1)

	if rep.EnemySpawned {
		l.cues.EnemySpawn()
		l.log.Debug("enemy spawned", zap.String("run", l.runID), zap.Int("tick", rep.Tick))
	}
	if rep.EnemyExpired {
		l.log.Debug("enemy expired", zap.String("run", l.runID), zap.Int("tick", rep.Tick))
	}

	switch rep.Result {
	case engine.FoodEaten:
		l.mFood.Add(1)
		l.cues.Eat()
		l.ramp()
	case engine.Victory:
		l.mFood.Add(1)
		l.mVictories.Add(1)
		l.cues.Victory()
		l.endRun()
		res.RunEnded = true
	case engine.GameOver:
		l.mDeaths.Add(1)
		l.cues.GameOver()
		l.endRun()
		res.RunEnded = true
	}

	l.render.Render(l.frame())
	return res
}

// drain empties the command buffer without blocking
// Control commands apply in order, only the last steering command is returned
func (l *Loop) drain() (steer grid.Direction, hasSteer, restart bool) {
	if l.cmds == nil {
		return steer, false, false
	}
	for {
		select {
		case cmd, ok := <-l.cmds:
			if !ok {
				l.cmds = nil
				l.quit = true
				return steer, hasSteer, restart
			}
			switch cmd.Kind {
			case input.KindSteer:
				steer, hasSteer = cmd.Direction, true
			case input.KindQuit:
				l.quit = true
				return steer, hasSteer, restart
			case input.KindTogglePause:
				l.paused = l.clock.Toggle()
				l.log.Debug("pause toggled", zap.Bool("paused", l.paused))
			case input.KindToggleAutopilot:
				if l.mode == config.ModeAuto {
					l.mode = config.ModeManual
				} else {
					l.mode = config.ModeAuto
				}
				l.log.Info("mode changed", zap.Stringer("mode", l.mode))
			case input.KindRestart:
				restart = true
			}
		default:
			return steer, hasSteer, restart
		}
	}
}

// ramp raises the tick rate with the score
func (l *Loop) ramp() {
	rate := RampRate(l.cfg.TickRate, l.cfg.MaxTickRate, l.cfg.SpeedStep, l.game.Score())
	if rate != l.rate {
		l.setRate(rate)
		l.log.Debug("speed up", zap.String("run", l.runID), zap.Int("tick_rate", rate))
	}
}

func (l *Loop) setRate(rate int) {
	l.rate = rate
	l.rateChanged = true
	l.mTickRate.Set(float64(rate))
}

// RampRate is the tick rate for score: base plus one increment per step points, capped at ceiling
// A step of 0 disables the ramp
func RampRate(base, ceiling, step, score int) int {
	if step <= 0 {
		return base
	}
	return min(base+(score/step)*parameter.SpeedStepTPS, ceiling)
}

func (l *Loop) beginRun() {
	l.run++
	l.runID = uuid.NewString()
	l.endedAt = time.Time{}
	l.last = engine.TickReport{}
	l.log.Info("run started", zap.String("run", l.runID), zap.Int("number", l.run), zap.Stringer("mode", l.mode))
}

func (l *Loop) endRun() {
	l.runs++
	l.mRuns.Add(1)
	l.endedAt = l.clock.Now()
	l.log.Info("run ended", l.runFields()...)

	if l.cfg.OnEnd == config.EndExit {
		l.done = true
	}
}

func (l *Loop) restart() {
	if l.paused {
		l.clock.Resume()
		l.paused = false
	}
	l.game.Reset()
	if l.rate != l.cfg.TickRate {
		l.setRate(l.cfg.TickRate)
	}
	l.beginRun()
}

func (l *Loop) runFields() []zap.Field {
	return []zap.Field{
		zap.String("run", l.runID),
		zap.Int("score", l.game.Score()),
		zap.Int("ticks", l.last.Tick),
		zap.Stringer("result", l.last.Result),
		zap.Stringer("mode", l.mode),
	}
}

func (l *Loop) frame() Frame {
	snap := l.game.Snapshot()
	return Frame{
		Snapshot: snap,
		Mode:     l.mode,
		TickRate: l.rate,
		Paused:   l.paused,
		Banner:   l.banner(snap),
		Run:      l.run,
	}
}

func (l *Loop) banner(snap engine.Snapshot) string {
	switch {
	case snap.Result == engine.Victory:
		return l.endBanner("VICTORY", snap.Score)
	case snap.Result == engine.GameOver:
		return l.endBanner("GAME OVER", snap.Score)
	case l.paused:
		return "PAUSED"
	}
	return ""
}

func (l *Loop) endBanner(title string, score int) string {
	if l.cfg.OnEnd == config.EndRestart {
		return fmt.Sprintf("%s  score %d  restarting", title, score)
	}
	return fmt.Sprintf("%s  score %d", title, score)
}

// Outcome summarizes the loop so far
func (l *Loop) Outcome() Outcome {
	return Outcome{
		Result: l.game.Snapshot().Result,
		Score:  l.game.Score(),
		Ticks:  l.last.Tick,
		Runs:   l.runs,
	}
}

// Mode returns who is steering
func (l *Loop) Mode() config.Mode {
	return l.mode
}

// Paused reports the pause state
func (l *Loop) Paused() bool {
	return l.paused
}

// TickRate returns the current ticks per second
func (l *Loop) TickRate() int {
	return l.rate
}

// RunID returns the current run's id
func (l *Loop) RunID() string {
	return l.runID
}

// Done reports whether a run ended with OnEnd set to exit
func (l *Loop) Done() bool {
	return l.done
}
