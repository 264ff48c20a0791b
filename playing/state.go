// Package playing runs one game of Color Columns: the cargo descent, matching,
// scoring and the state machine tying them together. It is advanced one tick at a
// time with at most one input event per tick and never renders anything itself.
package playing

// State is the phase of the game.
type State int

const (
	// Uninitialized means a fresh game must be set up on the next tick.
	Uninitialized State = iota
	Ready
	DescendingCargo
	HandlingMatches
	Pause
	GameOver
	QuittingToMainMenu
)

var stateNames = [...]string{
	Uninitialized:      "Uninitialized",
	Ready:              "Ready",
	DescendingCargo:    "DescendingCargo",
	HandlingMatches:    "HandlingMatches",
	Pause:              "Pause",
	GameOver:           "GameOver",
	QuittingToMainMenu: "QuittingToMainMenu",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Active reports whether a game is in progress, i.e. the score may still change.
func (s State) Active() bool {
	return s == DescendingCargo || s == HandlingMatches || s == Pause
}

// Signal tells the host what to do after a tick.
type Signal int

const (
	Continue Signal = iota
	// QuitToMenu asks the host to leave the game screen.
	QuitToMenu
)

// Cue flags notable things that happened during the last tick.
type Cue uint16

const (
	CueCargoSpawned Cue = 1 << iota
	CueCargoLanded
	CueMatch
	CueChain
	CueCleared
	CueSpeedUp
	CueMaxSpeed
	CueGameOver
	CuePaused
	CueResumed
	CueNewHighscore
	CueNewMaxCombo
)

// Has reports whether every flag of other is set.
func (c Cue) Has(other Cue) bool {
	return c&other == other
}
