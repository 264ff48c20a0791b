// Package input defines the discrete events delivered to the game once per tick.
package input

import "strings"

// Event is a single player or host event. The zero value means no input this tick.
type Event int

const (
	None Event = iota
	Enter
	Escape
	LostFocus
	SaveScoreOnQuit
	Right
	Left
	Up
	Down
	Drop
)

var names = [...]string{
	None:            "None",
	Enter:           "Enter",
	Escape:          "Escape",
	LostFocus:       "LostFocus",
	SaveScoreOnQuit: "SaveScoreOnQuit",
	Right:           "Right",
	Left:            "Left",
	Up:              "Up",
	Down:            "Down",
	Drop:            "Drop",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(names) {
		return "Event(?)"
	}
	return names[e]
}

// Keys maps lower-case key names to events. Arrow keys and WASD steer, space drops.
var Keys = map[string]Event{
	"enter":  Enter,
	"return": Enter,
	"escape": Escape,
	"esc":    Escape,
	"right":  Right,
	"d":      Right,
	"left":   Left,
	"a":      Left,
	"up":     Up,
	"w":      Up,
	"down":   Down,
	"s":      Down,
	"space":  Drop,
	" ":      Drop,
}

// FromKey maps a key name to an event, None for unmapped keys. Names are matched
// case-insensitively, so shifted letters steer too.
func FromKey(name string) Event {
	return Keys[strings.ToLower(name)]
}

// Latch holds the most recent event until it is taken. Later events overwrite earlier
// ones, so at most one event reaches each tick. The zero value is ready to use.
type Latch struct {
	pending Event
}

// Set records an event. None does not clear a pending event.
func (l *Latch) Set(e Event) {
	if e != None {
		l.pending = e
	}
}

// Take returns the pending event and clears it.
func (l *Latch) Take() Event {
	e := l.pending
	l.pending = None
	return e
}
