package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/colorcolumns/input"
)

var keyEvents = []struct {
	key   ebiten.Key
	event input.Event
}{
	{ebiten.KeyEnter, input.Enter},
	{ebiten.KeyNumpadEnter, input.Enter},
	{ebiten.KeyEscape, input.Escape},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeyD, input.Right},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyA, input.Left},
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyW, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyS, input.Down},
	{ebiten.KeySpace, input.Drop},
}

// readInput returns the event of this tick. Keys pressed in the same tick overwrite
// each other in table order.
func readInput(latch *input.Latch) input.Event {
	for _, k := range keyEvents {
		if inpututil.IsKeyJustPressed(k.key) {
			latch.Set(k.event)
		}
	}
	return latch.Take()
}
