// Command colorcolumns runs the game in a desktop window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/colorcolumns/config"
	"github.com/plus3/colorcolumns/debugui"
	debugui_ebiten "github.com/plus3/colorcolumns/debugui/ebiten"
	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/snapshot"
	"github.com/plus3/colorcolumns/sound"
	"github.com/plus3/colorcolumns/stages"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	seed := flag.Uint64("seed", 0, "random seed (0 keeps the configured seed)")
	replay := flag.String("replay", "", "snapshot file seeding the pile of the first game")
	logMode := flag.String("log", "", "log mode: dev, prod or silence")
	debug := flag.Bool("debug", false, "show the debug overlay")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Gameplay.Seed = *seed
	}
	if cfg.Gameplay.Seed == 0 {
		cfg.Gameplay.Seed = uint64(time.Now().UnixNano())
	}
	if *logMode != "" {
		cfg.Log.Mode = *logMode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := config.NewLogger(config.LogMode(cfg.Log.Mode))
	slog.SetDefault(logger)

	opts := playing.OptionsFrom(cfg, cfg.Store(logger), logger)
	if *replay != "" {
		pile, err := snapshot.Load(*replay, opts.Geometry, opts.Palette)
		if err != nil {
			logger.Error("cannot load replay", "path", *replay, "error", err)
			os.Exit(1)
		}
		opts.Replay = pile
	}

	director := stages.NewDirector(playing.New(opts), logger)

	scheduler := engine.NewScheduler()
	scheduler.Register(director)

	speaker := sound.NewSpeaker()
	if err := speaker.Init(); err != nil {
		logger.Warn("audio unavailable, running silently", "error", err)
	}
	defer speaker.Close()
	player := &sound.Player{Source: director, Sink: speaker, Muted: *mute, Logger: logger}
	scheduler.Register(player)

	w, h := int(cfg.Window.Width), int(cfg.Window.Height)
	app := &App{
		director:  director,
		scheduler: scheduler,
		renderer:  newRenderer(opts.Geometry, w),
		dt:        1.0 / float64(cfg.Gameplay.TPS),
		width:     w,
		height:    h,
		focused:   true,
	}

	if *debug {
		app.backend = debugui_ebiten.NewImguiBackend(cfg.Window.Title, w, h)
		app.overlay = &debugui.System{Enabled: true}
		app.perf = debugui.NewPerformanceStats(120)
		app.timer = debugui.NewFrameTimer()
		inspector := &debugui.GameInspector{Director: director, Logger: logger, Muted: &player.Muted}
		app.overlay.Add("game", inspector.Render)
		app.overlay.Add("performance", func() {
			app.perf.Render(scheduler.GetStats(), app.timer.GetDeltaTime())
		})
		scheduler.Register(app.overlay)
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Gameplay.TPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting", "seed", cfg.Gameplay.Seed, "tps", cfg.Gameplay.TPS, "debug", *debug)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// App implements ebiten.Game around the scheduler.
type App struct {
	director  *stages.Director
	scheduler *engine.Scheduler
	renderer  *renderer
	latch     input.Latch
	dt        float64
	width     int
	height    int
	focused   bool

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.System
	perf    *debugui.PerformanceStats
	timer   *debugui.FrameTimer
}

func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.director.Close()
		return ebiten.Termination
	}

	focused := ebiten.IsFocused()
	if a.focused && !focused {
		a.latch.Set(input.LostFocus)
	}
	a.focused = focused

	var ev input.Event
	if a.overlay == nil || !a.overlay.Input.WantCaptureKeyboard {
		ev = readInput(&a.latch)
	} else {
		ev = a.latch.Take()
	}

	if a.backend != nil {
		a.backend.BeginFrame()
	}
	running := a.scheduler.Once(a.dt, ev)
	if a.backend != nil {
		a.backend.EndFrame()
	}

	if !running {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.draw(screen, a.director)
	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}
