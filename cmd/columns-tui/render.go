package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/stages"
)

// Each block is drawn two cells wide and one cell high.
const cellsPerBlock = 2

var (
	defaultStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(18, 18, 24)).Foreground(tcell.ColorWhite)
	borderStyle  = defaultStyle.Foreground(tcell.NewRGBColor(90, 90, 110))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TerminalRenderer draws the current stage after every tick.
type TerminalRenderer struct {
	screen   tcell.Screen
	director *stages.Director
	geo      board.Geometry
	printer  *message.Printer

	// Screen cell of the arena's top-left corner.
	arenaX, arenaY int
}

func NewTerminalRenderer(screen tcell.Screen, director *stages.Director, geo board.Geometry) *TerminalRenderer {
	return &TerminalRenderer{
		screen:   screen,
		director: director,
		geo:      geo,
		printer:  message.NewPrinter(language.English),
		arenaX:   24,
		arenaY:   5,
	}
}

func (r *TerminalRenderer) Execute(frame *engine.Frame) {
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	switch r.director.Current() {
	case stages.MainMenu:
		r.drawMenu(r.director.Menu())
	case stages.Playing:
		r.drawGame(r.director.Game().View())
	default:
		if p := r.director.Page(r.director.Current()); p != nil {
			r.drawPage(p)
		}
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func (r *TerminalRenderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max((w-runewidth.StringWidth(s))/2, 0), y, s, style)
}

func (r *TerminalRenderer) drawMenu(m *stages.Menu) {
	r.centered(3, "C O L O R   C O L U M N S", defaultStyle.Bold(true))
	for i, item := range m.Items {
		label := strings.ToUpper(item.Label)
		style := defaultStyle.Foreground(rgb(item.Color))
		if i == m.Selected() {
			label = "■ " + label + " ■"
			style = style.Bold(true)
		}
		r.centered(7+i*2, label, style)
	}
	r.centered(15, "Enter / Esc and Up / Down", defaultStyle.Dim(true))
}

func (r *TerminalRenderer) drawPage(p *stages.Page) {
	r.centered(2, strings.ToUpper(p.Title), defaultStyle.Bold(true))
	y := 4
	for _, s := range p.Sections {
		style := defaultStyle.Foreground(rgb(s.Color))
		for _, line := range s.Lines {
			r.centered(y, line, style)
			y++
		}
		y++
	}
	r.centered(y+1, "Esc / Enter to go back", defaultStyle.Dim(true))
}

// cell maps a pixel position of the game geometry to a screen cell.
func (r *TerminalRenderer) cell(p board.Point) (int, int) {
	a := r.geo.Arena
	col := int(math.Floor(float64((p.X - a.X) / r.geo.BlockSize)))
	row := int(math.Floor(float64((p.Y - a.Y) / r.geo.BlockSize)))
	return r.arenaX + col*cellsPerBlock, r.arenaY + row
}

func (r *TerminalRenderer) drawGame(v playing.View) {
	r.drawArenaBorder()

	for _, b := range v.Blocks {
		x, y := r.cell(board.Point{X: b.Rect.X, Y: b.Rect.Y})
		style := defaultStyle.Background(rgb(b.Color.RGBA()))
		for i := range cellsPerBlock {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
	}

	for _, ind := range v.Indicators {
		x0, y0 := r.cell(ind.From)
		x1, y1 := r.cell(ind.To)
		style := defaultStyle.Foreground(rgb(ind.Color.RGBA()))
		r.drawLine(x0, y0, x1, y1, style)
	}

	scores := []struct {
		title string
		value int
		mark  bool
		color color.RGBA
	}{
		{"SCORE", v.Score, false, board.Green.RGBA()},
		{"MAX COMBO", v.MaxCombo, v.NewMaxCombo, board.Blue.RGBA()},
		{"HIGHSCORE", max(v.Highscore, v.Score), v.BeatsHighscore, board.Red.RGBA()},
	}
	for i, s := range scores {
		y := r.arenaY + 5 + i*3
		r.drawText(2, y, s.title, defaultStyle.Foreground(rgb(s.color)).Bold(true))
		value := r.printer.Sprintf("%d", s.value)
		if s.mark {
			value += " *"
		}
		r.drawText(2, y+1, value, defaultStyle)
	}

	if v.Info.Visible() {
		r.drawText(r.arenaX, 1, v.Info.Text, defaultStyle.Foreground(rgb(v.Info.Color)).Bold(true))
		if v.Info.InstructionsAlpha > 0.2 {
			for i, line := range strings.Split(v.Info.Instructions, "\n") {
				r.drawText(r.arenaX, 2+i, line, defaultStyle.Dim(true))
			}
		}
	}

	for _, p := range v.Popups {
		x, y := r.cell(p.Pos)
		r.drawText(x, y, fmt.Sprintf("+%d", p.Points), defaultStyle.Bold(true))
	}
}

func (r *TerminalRenderer) drawArenaBorder() {
	w := r.geo.Columns * cellsPerBlock
	h := r.geo.Rows
	left, right := r.arenaX-1, r.arenaX+w
	bottom := r.arenaY + h
	for y := r.arenaY; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *TerminalRenderer) drawLine(x0, y0, x1, y1 int, style tcell.Style) {
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + (x1-x0)*i/steps
			y = y0 + (y1-y0)*i/steps
		}
		r.screen.SetContent(x, y, '•', nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
