// Package stages switches between the screens of the application: the main menu, the
// game itself and the informational pages.
package stages

import (
	"log/slog"

	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
)

// Key identifies a stage.
type Key int

const (
	MainMenu Key = iota
	Playing
	HowToPlay
	About

	keyCount
)

var keyNames = [keyCount]string{
	MainMenu:  "MainMenu",
	Playing:   "Playing",
	HowToPlay: "HowToPlay",
	About:     "About",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Key(?)"
	}
	return keyNames[k]
}

// Stage is one screen. Update returns the stage to show next, or false to quit the
// application.
type Stage interface {
	Update(ev input.Event) (Key, bool)
}

// Director routes input to the current stage and follows its transitions.
type Director struct {
	stages  [keyCount]Stage
	current Key
	closed  bool
	cues    playing.Cue
	logger  *slog.Logger

	menu *Menu
	game *playing.Game
}

// NewDirector starts at the main menu.
func NewDirector(game *playing.Game, logger *slog.Logger) *Director {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Director{
		menu:   NewMenu(),
		game:   game,
		logger: logger,
	}
	d.stages[MainMenu] = d.menu
	d.stages[Playing] = &playingStage{game: game}
	d.stages[HowToPlay] = HowToPlayPage()
	d.stages[About] = AboutPage()
	return d
}

// Execute runs one tick of the current stage and asks the scheduler to stop when the
// application should quit.
func (d *Director) Execute(frame *engine.Frame) {
	if !d.Update(frame.Event) {
		frame.Commands.Quit()
	}
}

// Update runs one tick. It returns false when the application should quit.
func (d *Director) Update(ev input.Event) bool {
	d.cues = 0
	if d.closed {
		return false
	}

	from := d.current
	next, ok := d.stages[from].Update(ev)
	if from == Playing {
		d.cues = d.game.Cues()
	}
	if !ok {
		d.logger.Info("quit requested", "stage", from)
		d.closed = true
		return false
	}
	if next != from {
		d.logger.Debug("stage change", "from", from, "to", next)
		d.current = next
	}
	return true
}

// Close is called when the host window closes. A running game gets the chance to
// save its high score once.
func (d *Director) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.current == Playing {
		d.stages[Playing].Update(input.SaveScoreOnQuit)
	}
}

// Closed reports whether the application is quitting.
func (d *Director) Closed() bool {
	return d.closed
}

// Current returns the active stage.
func (d *Director) Current() Key {
	return d.current
}

// Cues returns the game cues of the last tick, if the game ran during it.
func (d *Director) Cues() playing.Cue {
	return d.cues
}

// Menu returns the main menu.
func (d *Director) Menu() *Menu {
	return d.menu
}

// Game returns the game played in the Playing stage.
func (d *Director) Game() *playing.Game {
	return d.game
}

// Page returns the informational page for k, or nil.
func (d *Director) Page(k Key) *Page {
	p, _ := d.stages[k].(*Page)
	return p
}

type playingStage struct {
	game *playing.Game
}

func (s *playingStage) Update(ev input.Event) (Key, bool) {
	if s.game.Update(ev) == playing.QuitToMenu {
		return MainMenu, true
	}
	return Playing, true
}
