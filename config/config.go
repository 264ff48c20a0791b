// Package config loads the game configuration from YAML and builds the logger.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/scoring"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    Window    `yaml:"window"`
	Arena     Arena     `yaml:"arena"`
	Gameplay  Gameplay  `yaml:"gameplay"`
	HUD       HUD       `yaml:"hud"`
	Highscore Highscore `yaml:"highscore"`
	Log       Log       `yaml:"log"`
}

type Window struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type Arena struct {
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	BlockSize     float32 `yaml:"block_size"`
	Margin        float32 `yaml:"margin"`
	PreviewMargin float32 `yaml:"preview_margin"`
}

// Gameplay holds the simulation timing. All durations are in ticks.
type Gameplay struct {
	TPS                  int    `yaml:"tps"`
	StartingDescentTicks int    `yaml:"starting_descent_ticks"`
	AccelerationEvery    int    `yaml:"acceleration_every"`
	DescentTicksFloor    int    `yaml:"descent_ticks_floor"`
	RemovalSchedule      []int  `yaml:"removal_schedule"`
	PauseShuffleTicks    int    `yaml:"pause_shuffle_ticks"`
	Seed                 uint64 `yaml:"seed"`
}

type HUD struct {
	GoBlinkTicks      int `yaml:"go_blink_ticks"`
	SpeedUpBlinkTicks int `yaml:"speedup_blink_ticks"`
	Blinks            int `yaml:"blinks"`
}

type Highscore struct {
	// DataDir overrides the user data directory.
	DataDir string `yaml:"data_dir"`
	Dir     string `yaml:"dir"`
	File    string `yaml:"file"`
}

type Log struct {
	Mode string `yaml:"mode"`
}

// Default returns the standard 9x18 game at 60 ticks per second.
func Default() Config {
	return Config{
		Window: Window{Title: "Color Columns", Width: 400, Height: 600},
		Arena: Arena{
			Columns:       9,
			Rows:          18,
			BlockSize:     23,
			Margin:        30,
			PreviewMargin: 23*2 + 4,
		},
		Gameplay: Gameplay{
			TPS:                  60,
			StartingDescentTicks: 45,
			AccelerationEvery:    9,
			DescentTicksFloor:    18,
			RemovalSchedule:      append([]int(nil), board.DefaultBlinkSchedule[:]...),
			PauseShuffleTicks:    8,
		},
		HUD: HUD{GoBlinkTicks: 18, SpeedUpBlinkTicks: 15, Blinks: 3},
		Highscore: Highscore{
			Dir:  scoring.DefaultDir,
			File: scoring.DefaultFile,
		},
		Log: Log{Mode: string(ModeDev)},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Arena.Columns >= board.MinRunLength, "arena.columns must be at least %d, got %d", board.MinRunLength, c.Arena.Columns)
	check(c.Arena.Rows >= board.MinRunLength, "arena.rows must be at least %d, got %d", board.MinRunLength, c.Arena.Rows)
	check(c.Arena.BlockSize > 0, "arena.block_size must be positive")
	check(c.Arena.Margin >= 0, "arena.margin must not be negative")
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive")

	g := c.Gameplay
	check(g.TPS > 0, "gameplay.tps must be positive")
	check(g.StartingDescentTicks > 0, "gameplay.starting_descent_ticks must be positive")
	check(g.DescentTicksFloor > 0, "gameplay.descent_ticks_floor must be positive")
	check(g.DescentTicksFloor <= g.StartingDescentTicks, "gameplay.descent_ticks_floor (%d) exceeds starting_descent_ticks (%d)", g.DescentTicksFloor, g.StartingDescentTicks)
	check(g.AccelerationEvery > 0, "gameplay.acceleration_every must be positive")
	check(g.PauseShuffleTicks > 0, "gameplay.pause_shuffle_ticks must be positive")
	check(len(g.RemovalSchedule) == len(board.BlinkSchedule{}), "gameplay.removal_schedule needs %d entries, got %d", len(board.BlinkSchedule{}), len(g.RemovalSchedule))
	for i, t := range g.RemovalSchedule {
		check(t > 0, "gameplay.removal_schedule[%d] must be positive", i)
	}

	check(c.HUD.GoBlinkTicks > 0 && c.HUD.SpeedUpBlinkTicks > 0, "hud blink ticks must be positive")
	check(c.HUD.Blinks >= 0, "hud.blinks must not be negative")
	check(c.Highscore.Dir != "" && c.Highscore.File != "", "highscore.dir and highscore.file are required")

	switch LogMode(c.Log.Mode) {
	case ModeDev, ModeProd, ModeSilence:
	default:
		check(false, "log.mode %q is not one of dev, prod, silence", c.Log.Mode)
	}

	return errors.Join(errs...)
}

// Geometry returns the arena layout.
func (c Config) Geometry() board.Geometry {
	a := c.Arena
	return board.NewGeometry(a.Columns, a.Rows, a.BlockSize, c.Window.Width, c.Window.Height, a.Margin, a.PreviewMargin)
}

// BlinkSchedule returns the removal animation timing.
func (g Gameplay) BlinkSchedule() board.BlinkSchedule {
	var s board.BlinkSchedule
	copy(s[:], g.RemovalSchedule)
	return s
}

// Store returns the high score file store.
func (c Config) Store(logger *slog.Logger) *scoring.FileStore {
	return scoring.NewFileStore(c.Highscore.DataDir, c.Highscore.Dir, c.Highscore.File, logger)
}
