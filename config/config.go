// Package config holds the immutable run configuration and its TOML/flag loading
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrUnknownEndAction = errors.New("unknown end action")
)

// Mode selects who steers the snake
type Mode uint8

const (
	ModeManual Mode = iota
	ModeAuto
)

func (m Mode) String() string {
	if m == ModeAuto {
		return "auto"
	}
	return "manual"
}

// ParseMode accepts "manual" or "auto"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return ModeManual, nil
	case "auto", "autopilot":
		return ModeAuto, nil
	}
	return ModeManual, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// EndAction is what the loop does once a run ends
type EndAction uint8

const (
	EndRestart EndAction = iota
	EndExit
)

func (a EndAction) String() string {
	if a == EndExit {
		return "exit"
	}
	return "restart"
}

// ParseEndAction accepts "restart" or "exit"
func ParseEndAction(s string) (EndAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restart":
		return EndRestart, nil
	case "exit":
		return EndExit, nil
	}
	return EndRestart, fmt.Errorf("%w: %q", ErrUnknownEndAction, s)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML
func (a *EndAction) UnmarshalText(text []byte) error {
	v, err := ParseEndAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Duration decodes TOML strings like "10s" or "1500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// EnemyConfig tunes the one-shot enemy worm
type EnemyConfig struct {
	Warmup        Duration `toml:"warmup"`
	LifetimeTicks int      `toml:"lifetime_ticks"`
	MoveInterval  int      `toml:"move_interval_ticks"`
	SpawnAttempts int      `toml:"spawn_attempts"`
}

// Config is fixed at startup and never mutated by the simulation
type Config struct {
	Width        int `toml:"width"`
	Height       int `toml:"height"`
	TickRate     int `toml:"tick_rate"`
	MaxTickRate  int `toml:"max_tick_rate"`
	SpeedStep    int `toml:"speed_step"` // Score points per +1 tick rate, 0 disables the ramp
	VictoryScore int `toml:"victory_score"`

	Enemy EnemyConfig `toml:"enemy"`

	Mode         Mode      `toml:"mode"`
	OnEnd        EndAction `toml:"on_end"`
	RestartDelay Duration  `toml:"restart_delay"`

	// Seed 0 picks a time-based seed at startup
	Seed uint64 `toml:"seed"`

	Sound  bool   `toml:"sound"`
	Debug  bool   `toml:"debug"`
	LogDir string `toml:"log_dir"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Width:        parameter.GridWidth,
		Height:       parameter.GridHeight,
		TickRate:     parameter.TickRate,
		MaxTickRate:  parameter.MaxTickRate,
		SpeedStep:    parameter.SpeedStepScore,
		VictoryScore: parameter.VictoryScore,
		Enemy: EnemyConfig{
			Warmup:        Duration{parameter.EnemyWarmup},
			LifetimeTicks: parameter.EnemyLifetimeTicks,
			MoveInterval:  parameter.EnemyMoveIntervalTicks,
			SpawnAttempts: parameter.EnemySpawnAttempts,
		},
		Mode:         ModeManual,
		OnEnd:        EndRestart,
		RestartDelay: Duration{parameter.RestartDelay},
		Sound:        true,
		LogDir:       parameter.LogDir,
	}
}

// Load reads a TOML file over the defaults; an empty path returns the defaults
// Keys the Config does not know are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Width < parameter.MinGridSide || c.Height < parameter.MinGridSide:
		return fmt.Errorf("%w: grid %dx%d smaller than %d", ErrInvalidConfig, c.Width, c.Height, parameter.MinGridSide)
	case c.VictoryScore < 1 || c.VictoryScore >= c.Width*c.Height:
		return fmt.Errorf("%w: victory_score %d outside [1,%d)", ErrInvalidConfig, c.VictoryScore, c.Width*c.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalidConfig)
	case c.MaxTickRate < c.TickRate:
		return fmt.Errorf("%w: max_tick_rate %d below tick_rate %d", ErrInvalidConfig, c.MaxTickRate, c.TickRate)
	case c.SpeedStep < 0:
		return fmt.Errorf("%w: speed_step must not be negative", ErrInvalidConfig)
	case c.Enemy.Warmup.Duration < 0:
		return fmt.Errorf("%w: enemy.warmup must not be negative", ErrInvalidConfig)
	case c.Enemy.LifetimeTicks <= 0 || c.Enemy.MoveInterval <= 0 || c.Enemy.SpawnAttempts <= 0:
		return fmt.Errorf("%w: enemy timings and attempts must be positive", ErrInvalidConfig)
	case c.RestartDelay.Duration < 0:
		return fmt.Errorf("%w: restart_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Grid returns the board geometry
func (c *Config) Grid() grid.Grid {
	return grid.New(c.Width, c.Height)
}

// GameConfig extracts the per-game simulation settings
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Grid:               c.Grid(),
		VictoryScore:       c.VictoryScore,
		EnemyWarmup:        c.Enemy.Warmup.Duration,
		EnemyLifetime:      c.Enemy.LifetimeTicks,
		EnemyMoveInterval:  c.Enemy.MoveInterval,
		EnemySpawnAttempts: c.Enemy.SpawnAttempts,
	}
}

// TickInterval converts a tick rate into the wait between ticks
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}
