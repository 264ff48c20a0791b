package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/colorcolumns/config"
)

// newSimulator uses a shallow arena so that games end quickly.
func newSimulator(workers int) *Simulator {
	cfg := config.Default()
	cfg.Arena.Rows = 8
	return &Simulator{
		Config:  cfg,
		Workers: workers,
		Budget:  200_000,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBotPlaysToGameOver(t *testing.T) {
	res := newSimulator(1).PlayOne(7)

	assert.True(t, res.Finished, "game did not end within %d ticks", res.Ticks)
	assert.Greater(t, res.Landed, 0)
	assert.Less(t, res.Ticks, uint64(200_000))
	if res.Score > 0 {
		assert.GreaterOrEqual(t, res.LongestChain, 1)
		assert.GreaterOrEqual(t, res.MaxCombo, 3)
	}
}

func TestGamesAreDeterministic(t *testing.T) {
	sim := newSimulator(4)
	results, _ := sim.Run(8, 100)
	require.Len(t, results, 8)

	for i, res := range results {
		assert.Equal(t, uint64(100+i), res.Seed)
		assert.Equal(t, res, sim.PlayOne(res.Seed))
	}
}

func TestBudgetStopsEndlessGames(t *testing.T) {
	sim := newSimulator(1)
	sim.Budget = 100
	res := sim.PlayOne(1)
	assert.False(t, res.Finished)
	assert.Equal(t, uint64(100), res.Ticks)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2, 5})
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.5811, s.Std, 1e-4)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.P50)
	assert.Equal(t, 5.0, s.P99)
	assert.Less(t, s.CILow, s.Mean)
	assert.Greater(t, s.CIHigh, s.Mean)

	one := Summarize([]float64{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Zero(t, one.Std)

	assert.Equal(t, Stats{}, Summarize(nil))
}

func TestReport(t *testing.T) {
	results := []Result{
		{Seed: 1, Score: 1200, MaxCombo: 30, LongestChain: 2, Landed: 40, Ticks: 5000, Finished: true},
		{Seed: 2, Score: 300, MaxCombo: 9, LongestChain: 1, Landed: 25, Ticks: 3000, Finished: true},
		{Seed: 3, Score: 0, Landed: 10, Ticks: 1000},
	}
	report := NewReport(results, 3, 2, 1, 5000, time.Second)

	assert.Equal(t, 2, report.Finished)
	assert.Equal(t, uint64(9000), report.TotalTicks)
	assert.Equal(t, 30, report.BestCombo)
	assert.Equal(t, 2, report.LongestChain)
	assert.Equal(t, uint64(1), report.BestSeed)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Total Ticks:** 9,000")
	assert.Contains(t, out, "**Games Over:** 2 of 3")
	assert.Contains(t, out, "| Max    |")
	assert.Contains(t, out, "Landed Cargoes")
}
