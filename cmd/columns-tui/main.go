// Command columns-tui runs the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/colorcolumns/config"
	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/sound"
	"github.com/plus3/colorcolumns/stages"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	seed := flag.Uint64("seed", 0, "random seed (0 keeps the configured seed)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *seed, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Gameplay.Seed = seed
	}
	if cfg.Gameplay.Seed == 0 {
		cfg.Gameplay.Seed = uint64(time.Now().UnixNano())
	}

	// The terminal is owned by the game; logs only go out in prod mode.
	mode := config.LogMode(cfg.Log.Mode)
	if mode == config.ModeDev {
		mode = config.ModeSilence
	}
	logger := config.NewLogger(mode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	opts := playing.OptionsFrom(cfg, cfg.Store(logger), logger)
	director := stages.NewDirector(playing.New(opts), logger)

	speaker := sound.NewSpeaker()
	if err := speaker.Init(); err != nil {
		logger.Warn("audio unavailable, running silently", "error", err)
	}
	defer speaker.Close()

	scheduler := engine.NewScheduler()
	scheduler.Register(director)
	scheduler.Register(&sound.Player{Source: director, Sink: speaker, Muted: mute, Logger: logger})
	scheduler.Register(NewTerminalRenderer(screen, director, opts.Geometry))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan input.Event, 16)
	go pollEvents(screen, events, cancel)

	interval := time.Second / time.Duration(cfg.Gameplay.TPS)
	err = scheduler.Run(ctx, interval, events)
	if errors.Is(err, context.Canceled) {
		director.Close()
		return nil
	}
	return err
}

// pollEvents translates terminal events until the screen is finalized. Ctrl+C
// cancels the game loop.
func pollEvents(screen tcell.Screen, events chan<- input.Event, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventFocus:
			if !ev.Focused {
				events <- input.LostFocus
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				cancel()
				return
			}
			if e := keyEvent(ev); e != input.None {
				events <- e
			}
		}
	}
}

func keyEvent(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyEnter:
		return input.Enter
	case tcell.KeyEscape:
		return input.Escape
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyRune:
		// FromKey folds case, so Shift and Caps Lock do not change the mapping.
		return input.FromKey(string(ev.Rune()))
	}
	return input.None
}
