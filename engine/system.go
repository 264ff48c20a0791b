// Package engine drives tick-based systems at a fixed rate and records how long each
// of them takes.
package engine

// System is one step of the game loop. Systems can keep their own state between
// frames.
type System interface {
	Execute(frame *Frame)
}
