package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/stages"
)

// debugPrint glyphs are 6x16 pixels.
const (
	glyphW = 6
	lineH  = 16
)

var (
	background  = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	arenaBorder = color.RGBA{R: 90, G: 90, B: 110, A: 255}
)

type renderer struct {
	geo     board.Geometry
	width   int
	printer *message.Printer
}

func newRenderer(geo board.Geometry, width int) *renderer {
	return &renderer{
		geo:     geo,
		width:   width,
		printer: message.NewPrinter(language.English),
	}
}

func (r *renderer) draw(screen *ebiten.Image, d *stages.Director) {
	screen.Fill(background)

	switch d.Current() {
	case stages.MainMenu:
		r.drawMenu(screen, d.Menu())
	case stages.Playing:
		r.drawGame(screen, d.Game().View())
	default:
		if p := d.Page(d.Current()); p != nil {
			r.drawPage(screen, p)
		}
	}
}

func (r *renderer) centered(screen *ebiten.Image, s string, y int) {
	x := (r.width - len(s)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, s, max(x, 0), y)
}

func (r *renderer) drawMenu(screen *ebiten.Image, m *stages.Menu) {
	r.centered(screen, "COLOR COLUMNS", 120)

	for i, item := range m.Items {
		y := 250 + i*60
		label := strings.ToUpper(item.Label)
		r.centered(screen, label, y)
		if i != m.Selected() {
			continue
		}

		c := item.Color
		c.A = uint8(255 * min(1, m.IndicatorAlpha()/0.75))
		half := float32(len(label)*glyphW) / 2
		mid := float32(r.width) / 2
		vector.DrawFilledRect(screen, mid-half-22, float32(y)+2, 12, 12, c, false)
		vector.DrawFilledRect(screen, mid+half+10, float32(y)+2, 12, 12, c, false)
	}

	r.centered(screen, "Navigate with Enter / Escape and Up / Down", 520)
}

func (r *renderer) drawPage(screen *ebiten.Image, p *stages.Page) {
	r.centered(screen, strings.ToUpper(p.Title), 60)
	y := 120
	for _, s := range p.Sections {
		for _, line := range s.Lines {
			ebitenutil.DebugPrintAt(screen, line, 40, y)
			y += lineH
		}
		y += lineH
	}
	r.centered(screen, "Esc / Enter to go back", 540)
}

func (r *renderer) drawGame(screen *ebiten.Image, v playing.View) {
	arena := r.geo.Arena
	vector.StrokeRect(screen, arena.X-1, arena.Y-1, arena.W+2, arena.H+2, 1, arenaBorder, false)

	for _, b := range v.Blocks {
		vector.DrawFilledRect(screen, b.Rect.X+1, b.Rect.Y+1, b.Rect.W-2, b.Rect.H-2, b.Color.RGBA(), false)
	}
	for _, ind := range v.Indicators {
		vector.StrokeLine(screen, ind.From.X, ind.From.Y, ind.To.X, ind.To.Y, 3, ind.Color.RGBA(), true)
	}

	r.drawScores(screen, v)

	if v.Info.Visible() {
		ebitenutil.DebugPrintAt(screen, v.Info.Text, int(arena.X), int(arena.Y)-100)
		if v.Info.InstructionsAlpha > 0.2 {
			for i, line := range strings.Split(v.Info.Instructions, "\n") {
				ebitenutil.DebugPrintAt(screen, line, int(arena.X), int(arena.Y)-80+i*lineH)
			}
		}
	}

	for _, p := range v.Popups {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("+%d", p.Points), int(p.Pos.X), int(p.Pos.Y))
	}
}

func (r *renderer) drawScores(screen *ebiten.Image, v playing.View) {
	x := 12
	y := int(r.geo.Arena.Y) + 3*int(r.geo.BlockSize) + 30

	labels := []struct {
		title string
		value int
		mark  bool
		color color.RGBA
	}{
		{"SCORE", v.Score, false, board.Green.RGBA()},
		{"MAX COMBO", v.MaxCombo, v.NewMaxCombo, board.Blue.RGBA()},
		{"HIGHSCORE", max(v.Highscore, v.Score), v.BeatsHighscore, board.Red.RGBA()},
	}
	for i, l := range labels {
		value := r.printer.Sprintf("%d", l.value)
		if l.mark {
			value += " *"
		}
		vector.DrawFilledRect(screen, float32(x), float32(y+i*3*lineH+4), 8, 8, l.color, false)
		ebitenutil.DebugPrintAt(screen, l.title, x+12, y+i*3*lineH)
		ebitenutil.DebugPrintAt(screen, value, x+12, y+i*3*lineH+lineH)
	}
}
