package playing

import (
	"image/color"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/config"
)

// InfoKind identifies the banner shown above the arena.
type InfoKind int

const (
	InfoNone InfoKind = iota
	InfoReady
	InfoGo
	InfoPaused
	InfoGameOver
	InfoSpeedUp
	InfoMaxSpeed
)

var (
	colorBlack     = color.RGBA{A: 255}
	colorLightGray = color.RGBA{R: 255, G: 255, B: 255, A: 102}
)

type infoStyle struct {
	text         string
	instructions string
	color        color.RGBA
	blinkColor   color.RGBA
	blinking     bool
	fades        bool
}

var infoStyles = map[InfoKind]infoStyle{
	InfoReady: {
		text:         "Ready...",
		instructions: "'Enter' to start\n'Esc' to main menu",
		color:        board.Yellow.RGBA(),
	},
	InfoGo: {
		text:         "Go!!!",
		instructions: "Press 'Esc' to pause",
		color:        colorBlack,
		blinkColor:   board.Green.RGBA(),
		blinking:     true,
		fades:        true,
	},
	InfoPaused: {
		text:         "Paused",
		instructions: "'Enter' to continue\n'Esc' to exit to main menu",
		color:        colorLightGray,
	},
	InfoGameOver: {
		text:         "Game Over",
		instructions: "'Enter' for a new game\n'Esc' to main menu",
		color:        board.Red.RGBA(),
	},
	InfoSpeedUp: {
		text:       "Speed up!",
		color:      colorBlack,
		blinkColor: board.Cyan.RGBA(),
		blinking:   true,
	},
	InfoMaxSpeed: {
		text:       "Max speed!",
		color:      colorBlack,
		blinkColor: board.Red.RGBA(),
		blinking:   true,
	},
}

// instructionFade is how much the instruction text alpha drops per tick once the
// banner stopped blinking.
const instructionFade = 0.001

// Info is the banner state handed to renderers. Timing is exposed as plain data.
type Info struct {
	Kind         InfoKind
	Text         string
	Instructions string
	Color        color.RGBA

	// Ticks counts the ticks since the banner was shown.
	Ticks int
	// Blinks counts completed blinks.
	Blinks int
	// InstructionsAlpha goes from 1 to 0 while a fading banner disappears.
	InstructionsAlpha float32
}

// Visible reports whether a banner is shown.
func (i Info) Visible() bool {
	return i.Kind != InfoNone
}

type hud struct {
	cfg  config.HUD
	info Info
}

func (h *hud) set(kind InfoKind) {
	style := infoStyles[kind]
	h.info = Info{
		Kind:              kind,
		Text:              style.text,
		Instructions:      style.instructions,
		Color:             style.color,
		InstructionsAlpha: 1,
	}
}

func (h *hud) period(kind InfoKind) int {
	if kind == InfoGo {
		return h.cfg.GoBlinkTicks
	}
	return h.cfg.SpeedUpBlinkTicks
}

// tick advances blinking and fading. A blinking banner alternates between its two
// colors every period; a blink completes when it returns to its base color.
func (h *hud) tick() {
	style := infoStyles[h.info.Kind]
	if !style.blinking {
		return
	}
	h.info.Ticks++

	if h.info.Blinks < h.cfg.Blinks {
		if h.info.Ticks%h.period(h.info.Kind) == 0 {
			if h.info.Color == style.color {
				h.info.Color = style.blinkColor
			} else {
				h.info.Color = style.color
				h.info.Blinks++
			}
		}
		return
	}

	if !style.fades {
		h.set(InfoNone)
		return
	}
	h.info.InstructionsAlpha -= instructionFade
	if h.info.InstructionsAlpha <= 0 {
		h.set(InfoNone)
	}
}

// Popup is the floating text showing the points of one scoring event.
type Popup struct {
	Points int
	Pos    board.Point
	Alpha  float32
}

const (
	popupRise  = 0.5
	popupDrift = 0.05
	popupFade  = 0.015
)

// tickPopups moves every popup and drops the faded ones.
func tickPopups(popups []Popup) []Popup {
	kept := popups[:0]
	for _, p := range popups {
		if p.Alpha <= 0 {
			continue
		}
		p.Pos.X += popupDrift
		p.Pos.Y -= popupRise
		p.Alpha -= popupFade
		kept = append(kept, p)
	}
	return kept
}
