package engine

import "github.com/plus3/colorcolumns/input"

// Frame is the per-tick context handed to every system.
type Frame struct {
	// Tick counts frames since the scheduler was created, starting at 1.
	Tick      uint64
	DeltaTime float64
	// Event is the single input event delivered during this tick.
	Event    input.Event
	Commands *Commands
}

func newFrame(tick uint64, dt float64, ev input.Event, commands *Commands) *Frame {
	return &Frame{
		Tick:      tick,
		DeltaTime: dt,
		Event:     ev,
		Commands:  commands,
	}
}
