package main

import (
	"math/rand/v2"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
)

// Bot plays one game. For every cargo it picks the lowest column, a random
// arrangement, walks the cargo there and drops it.
type Bot struct {
	game *playing.Game
	rng  *rand.Rand

	cargo   *board.Cargo
	target  int
	rotate  int
	lastCol int
	stuck   bool

	// Counted over the whole game.
	longestChain int
	matches      int
}

func NewBot(game *playing.Game, seed uint64) *Bot {
	return &Bot{
		game: game,
		rng:  rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
	}
}

// Execute feeds the bot's move of this tick to the game and stops the scheduler on
// game over.
func (b *Bot) Execute(frame *engine.Frame) {
	b.game.Update(b.next())

	cues := b.game.Cues()
	if cues.Has(playing.CueMatch) {
		b.matches++
	}
	if cues.Has(playing.CueCleared) {
		b.longestChain = max(b.longestChain, 1)
	}
	if cues.Has(playing.CueChain) {
		b.longestChain = max(b.longestChain, b.game.View().Chain)
	}
	if b.game.State() == playing.GameOver {
		frame.Commands.Quit()
	}
}

func (b *Bot) next() input.Event {
	switch b.game.State() {
	case playing.Ready, playing.Pause:
		return input.Enter
	case playing.DescendingCargo:
	default:
		return input.None
	}

	c := b.game.Cargo()
	if c == nil {
		return input.None
	}
	if c != b.cargo {
		b.plan(c)
	}

	if b.rotate > 0 {
		b.rotate--
		return input.Up
	}
	if c.Column == b.target || b.stuck {
		return input.Drop
	}

	// A move that did not change the column is blocked by a higher pile.
	if c.Column == b.lastCol {
		b.stuck = true
		return input.Drop
	}
	b.lastCol = c.Column
	if c.Column < b.target {
		return input.Right
	}
	return input.Left
}

func (b *Bot) plan(c *board.Cargo) {
	b.cargo = c
	b.rotate = b.rng.IntN(board.CargoSize)
	b.stuck = false
	b.lastCol = board.NoColumn

	tops := b.game.Pile().ColumnTops()
	var best []int
	lowest := 0
	for col, top := range tops {
		switch {
		case len(best) == 0 || top.Row < lowest:
			best = append(best[:0], col)
			lowest = top.Row
		case top.Row == lowest:
			best = append(best, col)
		}
	}
	b.target = best[b.rng.IntN(len(best))]
}
