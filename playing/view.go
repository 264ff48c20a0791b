package playing

import (
	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/scoring"
)

// View is everything a renderer needs to draw one frame.
type View struct {
	State State
	Tick  int

	// Blocks are drawn in order: next cargo preview, descending cargo, pile, matched blocks.
	// While paused they are the scrambled snapshot instead.
	Blocks []board.Block
	// Indicators are drawn instead of the matched blocks on odd animation stages.
	Indicators []board.Indicator

	Info   Info
	Popups []Popup

	Score     int
	MaxCombo  int
	Highscore int
	// NewMaxCombo and NewHighscore are set by the scoring event that reached a new
	// record and cleared by the next one.
	NewMaxCombo  bool
	NewHighscore bool
	// BeatsHighscore stays set for the rest of the game once the score passes the
	// high score it started with.
	BeatsHighscore bool

	Chain        int
	BlinkStage   int
	DescentTicks int
	Landed       int
}

// View captures the current frame.
func (g *Game) View() View {
	v := View{
		State:          g.state,
		Tick:           g.tick,
		Info:           g.hud.info,
		Popups:         append([]Popup(nil), g.popups...),
		Score:          g.scoring.Score,
		MaxCombo:       g.scoring.MaxCombo,
		Highscore:      g.scoring.Highscore,
		NewMaxCombo:    g.scoring.MaxCombo > 0 && g.scoring.IsNewMaxCombo,
		NewHighscore:   g.scoring.IsNewHighscore,
		BeatsHighscore: g.scoring.BeatsHighscore(),
		DescentTicks:   g.descentTicks,
		Landed:         g.landed,
	}

	if g.pausedBlocks != nil {
		v.Blocks = append([]board.Block(nil), g.pausedBlocks...)
		return v
	}

	v.Blocks = g.visibleBlocks()
	if g.matching != nil {
		v.Chain = g.matching.Chain()
		v.BlinkStage = g.matching.Stage
		if !g.matching.ShowsBlocks() {
			v.Blocks = v.Blocks[:len(v.Blocks)-len(g.matching.Blocks())]
			v.Indicators = append([]board.Indicator(nil), g.matching.Indicators()...)
		}
	}
	return v
}

// visibleBlocks lists every block currently on screen.
func (g *Game) visibleBlocks() []board.Block {
	var blocks []board.Block
	if g.next != nil {
		blocks = append(blocks, g.next.VisibleBlocks()...)
	}
	if g.cargo != nil {
		blocks = append(blocks, g.cargo.VisibleBlocks()...)
	}
	blocks = append(blocks, g.pile.Blocks()...)
	if g.matching != nil {
		blocks = append(blocks, g.matching.Blocks()...)
	}
	return blocks
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Cues returns what happened during the last tick.
func (g *Game) Cues() Cue {
	return g.cues
}

// Pile returns the settled blocks. The pile is replaced when a new game starts.
func (g *Game) Pile() *board.Pile {
	return g.pile
}

// Cargo returns the descending cargo, or nil between cargoes.
func (g *Game) Cargo() *board.Cargo {
	return g.cargo
}

// Next returns the preview cargo.
func (g *Game) Next() *board.Cargo {
	return g.next
}

// Scoring returns the score of the current game.
func (g *Game) Scoring() *scoring.Scoring {
	return g.scoring
}

// DescentTicks returns the current number of ticks between descent steps.
func (g *Game) DescentTicks() int {
	return g.descentTicks
}

// Landed returns the number of cargoes that landed in the current game.
func (g *Game) Landed() int {
	return g.landed
}
