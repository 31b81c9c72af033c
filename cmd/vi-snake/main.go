package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/scheduler"
	"github.com/lixenwraith/vi-snake/status"
)

func main() {
	// Terminal must be restored even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()
	core.SetCrashLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() {
		finiOnce.Do(func() {
			core.SetCrashScreen(nil)
			screen.Fini()
		})
	}
	defer fini()
	core.SetCrashScreen(screen)
	screen.HideCursor()

	var cues scheduler.Cues = scheduler.NoopCues{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game runs without sound
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sm.Cleanup()
			cues = sm
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("tick_rate", cfg.TickRate),
		zap.Stringer("mode", cfg.Mode),
		zap.Uint64("seed", seed),
	)

	poller := input.NewPoller(screen, nil, parameter.CommandQueueSize)
	poller.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	loop := scheduler.New(scheduler.Options{
		Config:   cfg,
		Clock:    engine.NewPausableClock(nil),
		Rand:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		Commands: poller.Commands(),
		Renderer: render.New(screen),
		Cues:     cues,
		Metrics:  metrics,
		Logger:   logger,
	})

	out, err := loop.Run(ctx)
	fini()

	logger.Info("exit",
		append([]zap.Field{
			zap.Int("runs", out.Runs),
			zap.Int("score", out.Score),
			zap.Stringer("result", out.Result),
			zap.Int64("dropped_commands", poller.Dropped()),
		}, metrics.Fields()...)...,
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("score %d, runs completed %d\n", out.Score, out.Runs)
	return nil
}

// loadConfig reads the optional TOML file then applies only the flags given on the command line
func loadConfig(args []string) (*config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)

	path := fs.String("config", "", "TOML config file")
	width := fs.Int("width", def.Width, "grid width in cells")
	height := fs.Int("height", def.Height, "grid height in cells")
	tps := fs.Int("tps", def.TickRate, "base ticks per second")
	maxTPS := fs.Int("max-tps", def.MaxTickRate, "tick rate ceiling for the speed ramp")
	speedStep := fs.Int("speed-step", def.SpeedStep, "score points per tick rate increase, 0 disables")
	victory := fs.Int("victory", def.VictoryScore, "score that wins a run")
	mode := fs.String("mode", def.Mode.String(), "manual or auto")
	onEnd := fs.String("on-end", def.OnEnd.String(), "restart or exit when a run ends")
	restartDelay := fs.Duration("restart-delay", def.RestartDelay.Duration, "pause before restarting")
	warmup := fs.Duration("enemy-warmup", def.Enemy.Warmup.Duration, "game time before the enemy may spawn")
	seed := fs.Uint64("seed", def.Seed, "random seed, 0 for time based")
	sound := fs.Bool("sound", def.Sound, "enable sound cues")
	debug := fs.Bool("debug", def.Debug, "write debug log to the log dir")
	logDir := fs.String("log-dir", def.LogDir, "debug log directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "tps":
			cfg.TickRate = *tps
		case "max-tps":
			cfg.MaxTickRate = *maxTPS
		case "speed-step":
			cfg.SpeedStep = *speedStep
		case "victory":
			cfg.VictoryScore = *victory
		case "mode":
			m, err := config.ParseMode(*mode)
			if err != nil {
				visitErr = errors.Join(visitErr, err)
			}
			cfg.Mode = m
		case "on-end":
			a, err := config.ParseEndAction(*onEnd)
			if err != nil {
				visitErr = errors.Join(visitErr, err)
			}
			cfg.OnEnd = a
		case "restart-delay":
			cfg.RestartDelay.Duration = *restartDelay
		case "enemy-warmup":
			cfg.Enemy.Warmup.Duration = *warmup
		case "seed":
			cfg.Seed = *seed
		case "sound":
			cfg.Sound = *sound
		case "debug":
			cfg.Debug = *debug
		case "log-dir":
			cfg.LogDir = *logDir
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
