package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/stages"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-3)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 1e-3)
}

func TestDisabledSystemQueuesNothing(t *testing.T) {
	rendered := 0
	s := &System{}
	s.Add("counter", func() { rendered++ })

	scheduler := engine.NewScheduler()
	scheduler.Register(s)
	scheduler.Once(1.0/60, input.None)

	assert.Zero(t, rendered)
	assert.Equal(t, InputState{}, s.Input)
}

func TestSummary(t *testing.T) {
	lines := Summary(stages.Playing, playing.View{
		State:        playing.HandlingMatches,
		Tick:         120,
		DescentTicks: 40,
		Landed:       6,
		Chain:        2,
		BlinkStage:   3,
		Score:        9,
		MaxCombo:     9,
		Highscore:    30,
	})

	assert.Equal(t, []string{
		"Stage: Playing",
		"State: HandlingMatches",
		"Tick: 120",
		"Descent interval: 40 ticks",
		"Landed cargoes: 6",
		"Chain: 2 (stage 3)",
		"Score: 9  Max combo: 9  High score: 30",
		"Blocks: 0  Popups: 0",
	}, lines)
}
