package stages

import (
	"image/color"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/input"
)

// Section is a block of text on a page.
type Section struct {
	Color color.RGBA
	Lines []string
}

// Page is a static screen that returns to the main menu on Enter or Escape.
type Page struct {
	Key      Key
	Title    string
	Sections []Section
}

func (p *Page) Update(ev input.Event) (Key, bool) {
	if ev == input.Enter || ev == input.Escape {
		return MainMenu, true
	}
	return p.Key, true
}

// HowToPlayPage lists the controls and the scoring rules.
func HowToPlayPage() *Page {
	return &Page{
		Key:   HowToPlay,
		Title: "How to play",
		Sections: []Section{
			{
				Color: board.Red.RGBA(),
				Lines: []string{
					"Right:         RIGHT / D",
					"Left:          LEFT / A",
					"Shuffle up:    UP / W",
					"Shuffle down:  DOWN / S",
					"Drop:          SPACE",
				},
			},
			{
				Color: board.Yellow.RGBA(),
				Lines: []string{
					"Points are gained by matching",
					"same-colored blocks in all 4",
					"directions.",
					"",
					"The more matched blocks in a",
					"line, the more points gained.",
					"",
					"Points are multiplied by the",
					"number of sequential cascading",
					"matches.",
				},
			},
		},
	}
}

// AboutPage describes the game.
func AboutPage() *Page {
	return &Page{
		Key:   About,
		Title: "About",
		Sections: []Section{
			{
				Color: board.Blue.RGBA(),
				Lines: []string{
					"A remake of various old,",
					"\"classic\" columns-like games.",
				},
			},
		},
	}
}
