package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/config"
)

func TestGoBannerBlinksThenFades(t *testing.T) {
	h := hud{cfg: config.HUD{GoBlinkTicks: 18, SpeedUpBlinkTicks: 15, Blinks: 3}}
	h.set(InfoGo)

	for range 17 {
		h.tick()
	}
	assert.Equal(t, colorBlack, h.info.Color)
	h.tick()
	assert.Equal(t, board.Green.RGBA(), h.info.Color)
	h.tick()
	assert.Equal(t, board.Green.RGBA(), h.info.Color)

	for range 18*6 - 19 {
		h.tick()
	}
	assert.Equal(t, 3, h.info.Blinks)
	assert.Equal(t, colorBlack, h.info.Color)
	assert.Equal(t, float32(1), h.info.InstructionsAlpha)

	h.tick()
	assert.InDelta(t, 0.999, h.info.InstructionsAlpha, 1e-6)

	for range 2000 {
		h.tick()
	}
	assert.False(t, h.info.Visible())
}

func TestSpeedUpBannerDisappearsAfterBlinking(t *testing.T) {
	h := hud{cfg: config.HUD{GoBlinkTicks: 18, SpeedUpBlinkTicks: 15, Blinks: 3}}
	h.set(InfoSpeedUp)

	for range 15 * 6 {
		h.tick()
	}
	assert.True(t, h.info.Visible())
	h.tick()
	assert.False(t, h.info.Visible())
}

func TestStaticBannerDoesNotChange(t *testing.T) {
	h := hud{cfg: config.HUD{GoBlinkTicks: 18, SpeedUpBlinkTicks: 15, Blinks: 3}}
	h.set(InfoPaused)
	before := h.info
	for range 500 {
		h.tick()
	}
	assert.Equal(t, before, h.info)
}

func TestPopupsRiseAndFade(t *testing.T) {
	popups := []Popup{{Points: 3, Pos: board.Point{X: 10, Y: 100}, Alpha: 1}}
	popups = tickPopups(popups)
	assert.InDelta(t, 99.5, popups[0].Pos.Y, 1e-4)
	assert.InDelta(t, 10.05, popups[0].Pos.X, 1e-4)
	assert.InDelta(t, 0.985, popups[0].Alpha, 1e-4)

	for range 100 {
		popups = tickPopups(popups)
	}
	assert.Empty(t, popups)
}
