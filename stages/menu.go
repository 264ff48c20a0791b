package stages

import (
	"image/color"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/input"
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label  string
	Target Key
	Color  color.RGBA
}

// DefaultMenuItems are the entries of the main menu, top to bottom.
var DefaultMenuItems = []MenuItem{
	{Label: "Play", Target: Playing, Color: board.Green.RGBA()},
	{Label: "How to play", Target: HowToPlay, Color: board.Yellow.RGBA()},
	{Label: "About", Target: About, Color: board.Blue.RGBA()},
}

const (
	indicatorAcceleration = 0.001
	indicatorThreshold    = 0.75
)

// Menu is the main menu. The selected item is marked by two blocks that repeatedly
// fade in.
type Menu struct {
	Items    []MenuItem
	selected int

	alpha     float32
	increment float32
}

func NewMenu() *Menu {
	return &Menu{Items: DefaultMenuItems}
}

func (m *Menu) Update(ev input.Event) (Key, bool) {
	prev := m.selected
	switch ev {
	case input.Down:
		m.selected = (m.selected + 1) % len(m.Items)
	case input.Up:
		m.selected = (m.selected + len(m.Items) - 1) % len(m.Items)
	case input.Enter:
		return m.Items[m.selected].Target, true
	case input.Escape:
		return MainMenu, false
	}

	if m.selected != prev || m.alpha >= indicatorThreshold {
		m.alpha = 0
		m.increment = 0
	} else {
		m.increment += indicatorAcceleration
		m.alpha += m.increment
	}
	return MainMenu, true
}

// Selected returns the index of the selected item.
func (m *Menu) Selected() int {
	return m.selected
}

// IndicatorAlpha returns the opacity of the selection blocks.
func (m *Menu) IndicatorAlpha() float32 {
	return m.alpha
}
