package playing

import (
	"log/slog"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/config"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/scoring"
)

// Options configures a Game.
type Options struct {
	Geometry board.Geometry
	Palette  board.Palette
	Gameplay config.Gameplay
	HUD      config.HUD
	Store    scoring.Store
	Logger   *slog.Logger

	// Replay seeds the pile of the first game.
	Replay *board.Pile
}

// OptionsFrom fills Options from a configuration.
func OptionsFrom(cfg config.Config, store scoring.Store, logger *slog.Logger) Options {
	return Options{
		Geometry: cfg.Geometry(),
		Palette:  board.DefaultPalette(),
		Gameplay: cfg.Gameplay,
		HUD:      cfg.HUD,
		Store:    store,
		Logger:   logger,
	}
}

// Game owns every piece of a running game. It is not safe for concurrent use.
type Game struct {
	geo      board.Geometry
	gameplay config.Gameplay
	schedule board.BlinkSchedule
	store    scoring.Store
	logger   *slog.Logger
	replay   *board.Pile

	state       State
	pausedState State
	ticks       int
	pauseTicks  int
	tick        int

	factory        *board.Factory
	next           *board.Cargo
	cargo          *board.Cargo
	descendingOver bool
	pile           *board.Pile
	matching       *board.Matching
	scoring        *scoring.Scoring
	pausedBlocks   []board.Block

	descentTicks      int
	landed            int
	maxSpeedAnnounced bool

	hud    hud
	popups []Popup
	cues   Cue
}

// withDefaults fills every unset option from config.Default.
func (o Options) withDefaults() Options {
	def := config.Default()
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Store == nil {
		o.Store = scoring.NewMemoryStore(0)
	}
	if len(o.Palette) == 0 {
		o.Palette = board.DefaultPalette()
	}
	if o.Geometry.Columns == 0 || o.Geometry.Rows == 0 {
		o.Geometry = def.Geometry()
	}

	g, dg := &o.Gameplay, def.Gameplay
	if g.TPS <= 0 {
		g.TPS = dg.TPS
	}
	if g.StartingDescentTicks <= 0 {
		g.StartingDescentTicks = dg.StartingDescentTicks
	}
	if g.DescentTicksFloor <= 0 {
		g.DescentTicksFloor = min(dg.DescentTicksFloor, g.StartingDescentTicks)
	}
	if g.AccelerationEvery <= 0 {
		g.AccelerationEvery = dg.AccelerationEvery
	}
	if g.PauseShuffleTicks <= 0 {
		g.PauseShuffleTicks = dg.PauseShuffleTicks
	}
	if len(g.RemovalSchedule) == 0 {
		g.RemovalSchedule = dg.RemovalSchedule
	}

	if o.HUD == (config.HUD{}) {
		o.HUD = def.HUD
	}
	if o.HUD.GoBlinkTicks <= 0 {
		o.HUD.GoBlinkTicks = def.HUD.GoBlinkTicks
	}
	if o.HUD.SpeedUpBlinkTicks <= 0 {
		o.HUD.SpeedUpBlinkTicks = def.HUD.SpeedUpBlinkTicks
	}
	return o
}

// New creates a game in the Uninitialized state. Unset options take their default
// values.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		geo:      opts.Geometry,
		gameplay: opts.Gameplay,
		schedule: opts.Gameplay.BlinkSchedule(),
		store:    opts.Store,
		logger:   opts.Logger,
		replay:   opts.Replay,
		factory:  board.NewFactory(opts.Geometry, opts.Palette, opts.Gameplay.Seed),
		pile:     board.NewPile(opts.Geometry),
		scoring:  scoring.New(0),
		hud:      hud{cfg: opts.HUD},
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logger.Debug("playing state", "from", g.state, "to", s)
	g.state = s
}

// Update advances the game by one tick with the event received during it.
func (g *Game) Update(ev input.Event) Signal {
	g.cues = 0
	g.tick++
	g.hud.tick()
	g.popups = tickPopups(g.popups)

	if ev == input.SaveScoreOnQuit {
		if g.state.Active() {
			g.saveHighscore()
		}
		return Continue
	}

	switch g.state {
	case Uninitialized:
		g.newGame()
	case Ready:
		g.updateReady(ev)
	case DescendingCargo:
		g.updateDescending(ev)
	case HandlingMatches:
		g.updateMatches(ev)
	case Pause:
		g.updatePause(ev)
	case GameOver:
		g.updateGameOver(ev)
	case QuittingToMainMenu:
		g.setState(Uninitialized)
		return QuitToMenu
	}
	return Continue
}

func (g *Game) newGame() {
	highscore := g.store.Load()
	g.scoring = scoring.New(highscore)

	g.ticks = 0
	g.pauseTicks = 0
	g.next = g.factory.NextCargo()
	g.cargo = nil
	g.descendingOver = false
	g.pile = board.NewPile(g.geo)
	g.matching = nil
	g.pausedBlocks = nil
	g.descentTicks = g.gameplay.StartingDescentTicks
	g.landed = 0
	g.maxSpeedAnnounced = false
	g.popups = nil

	g.hud.set(InfoReady)
	g.setState(Ready)

	if g.replay != nil {
		g.pile, g.replay = g.replay, nil
		if m := g.pile.SearchForMatches(); !m.Empty() {
			g.matching = board.NewMatching(m, g.pile, g.schedule)
			g.hud.set(InfoNone)
			g.setState(HandlingMatches)
		}
		g.logger.Info("replaying from snapshot", "state", g.state)
	}
}

func (g *Game) updateReady(ev input.Event) {
	if !g.hud.info.Visible() {
		g.hud.set(InfoReady)
	}
	if g.next == nil {
		g.next = g.factory.NextCargo()
	}

	switch ev {
	case input.Enter:
		g.hud.set(InfoGo)
		g.setState(DescendingCargo)
	case input.Escape:
		g.quitToMainMenu()
	}
}

func (g *Game) updateDescending(ev input.Event) {
	g.ticks++
	if ev == input.Escape || ev == input.LostFocus {
		g.pause()
		return
	}

	step := g.ticks%g.descentTicks == 0
	if step && g.cargo == nil {
		g.beginNextCargoDescent()
	}
	if g.cargo == nil {
		return
	}

	atBottom := g.cargo.IsAtBottom(g.pile)
	if step && atBottom {
		g.descendingOver = true
	}

	if !g.descendingOver {
		switch ev {
		case input.Right:
			g.cargo.MoveRight(g.pile)
		case input.Left:
			g.cargo.MoveLeft(g.pile)
		case input.Up:
			g.cargo.RearrangeUp()
		case input.Down:
			g.cargo.RearrangeDown()
		case input.Drop:
			g.cargo.Drop(g.pile)
			g.descendingOver = true
		}
	}

	if step && !g.descendingOver {
		g.cargo.DescendOneStep(g.pile)
	}

	if g.descendingOver {
		g.land()
	}
}

func (g *Game) beginNextCargoDescent() {
	g.cargo = g.next
	g.factory.PutInArena(g.cargo)
	g.next = g.factory.NextCargo()
	g.descendingOver = false
	g.cues |= CueCargoSpawned
}

func (g *Game) land() {
	remaining := g.pile.TakeCargo(g.cargo)
	g.cargo = nil
	g.descendingOver = false
	g.cues |= CueCargoLanded

	if remaining < 0 {
		g.gameOver()
		return
	}
	g.accelerate()

	m := g.pile.SearchForMatches()
	if m.Empty() {
		if remaining == 0 {
			g.gameOver()
		}
		return
	}

	g.matching = board.NewMatching(m, g.pile, g.schedule)
	g.cues |= CueMatch
	g.ticks = 0
	g.setState(HandlingMatches)
}

// accelerate shortens the descent interval every few landed cargoes, down to the floor.
func (g *Game) accelerate() {
	g.landed++
	if g.landed%g.gameplay.AccelerationEvery != 0 || g.descentTicks <= g.gameplay.DescentTicksFloor {
		return
	}

	g.descentTicks--
	g.cues |= CueSpeedUp
	g.logger.Debug("speed up", "descent_ticks", g.descentTicks, "landed", g.landed)

	if g.descentTicks == g.gameplay.DescentTicksFloor && !g.maxSpeedAnnounced {
		g.maxSpeedAnnounced = true
		g.cues |= CueMaxSpeed
		g.hud.set(InfoMaxSpeed)
		return
	}
	g.hud.set(InfoSpeedUp)
}

func (g *Game) updateMatches(ev input.Event) {
	g.ticks++
	if ev == input.Escape || ev == input.LostFocus {
		g.pause()
		return
	}

	if g.matching == nil {
		g.ticks = 0
		g.setState(DescendingCargo)
		return
	}
	if !g.matching.Blink(g.ticks) {
		return
	}

	full := g.matching.Remove(g.pile)
	g.cues |= CueCleared

	lengths, chain := g.matching.ScoringData()
	points := g.scoring.UpdateFromMatches(lengths, chain)
	g.popups = append(g.popups, Popup{Points: points, Pos: g.matching.Anchor(), Alpha: 1})
	if g.scoring.IsNewHighscore {
		g.cues |= CueNewHighscore
	}
	if g.scoring.IsNewMaxCombo {
		g.cues |= CueNewMaxCombo
	}

	if next := g.pile.SearchForMatches(); !next.Empty() {
		g.matching.NewChainedMatch(next, g.pile)
		g.cues |= CueChain
		g.ticks = 0
		return
	}

	g.matching = nil
	g.ticks = 0
	if full {
		g.gameOver()
		return
	}
	g.setState(DescendingCargo)
}

func (g *Game) pause() {
	g.pausedBlocks = g.visibleBlocks()
	g.shuffle()
	g.hud.set(InfoPaused)
	g.pausedState = g.state
	g.pauseTicks = 0
	g.cues |= CuePaused
	g.setState(Pause)
}

func (g *Game) shuffle() {
	for i := range g.pausedBlocks {
		g.factory.Recolor(&g.pausedBlocks[i])
	}
}

func (g *Game) updatePause(ev input.Event) {
	g.pauseTicks++
	if g.pauseTicks%g.gameplay.PauseShuffleTicks == 0 {
		g.shuffle()
	}

	switch ev {
	case input.Enter:
		g.pausedBlocks = nil
		g.hud.set(InfoNone)
		g.cues |= CueResumed
		g.setState(g.pausedState)
	case input.Escape:
		g.quitToMainMenu()
	}
}

func (g *Game) updateGameOver(ev input.Event) {
	switch ev {
	case input.Enter:
		g.newGame()
	case input.Escape:
		g.quitToMainMenu()
	}
}

func (g *Game) gameOver() {
	g.saveHighscore()
	g.hud.set(InfoGameOver)
	g.cues |= CueGameOver
	g.setState(GameOver)
	g.logger.Info("game over", "score", g.scoring.Score, "max_combo", g.scoring.MaxCombo, "landed", g.landed)
}

func (g *Game) saveHighscore() {
	if g.scoring.Save(g.store) {
		g.logger.Info("new high score", "score", g.scoring.Score)
	}
}

func (g *Game) quitToMainMenu() {
	if g.state.Active() {
		g.saveHighscore()
	}
	g.cargo = nil
	g.matching = nil
	g.pausedBlocks = nil
	g.pile = board.NewPile(g.geo)
	g.hud.set(InfoNone)
	g.setState(QuittingToMainMenu)
}
