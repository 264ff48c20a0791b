package board_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/snapshot"
)

// pileFrom builds a pile on the default geometry from its lowest rows, top row first.
func pileFrom(t testing.TB, rows ...string) *board.Pile {
	t.Helper()
	geo := board.DefaultGeometry()
	empty := strings.TrimSpace(strings.Repeat(". ", geo.Columns))

	lines := make([]string, 0, geo.Rows)
	for range geo.Rows - len(rows) {
		lines = append(lines, empty)
	}
	lines = append(lines, rows...)

	p, err := snapshot.ParseString(strings.Join(lines, "\n"), geo, board.DefaultPalette())
	require.NoError(t, err)
	return p
}

// cargoIn returns a cargo with the given colors (top first) resting above column col.
func cargoIn(t testing.TB, f *board.Factory, p *board.Pile, col int, colors ...board.Color) *board.Cargo {
	t.Helper()
	c := f.NextCargo()
	f.PutInArena(c)
	for c.Column > col {
		c.MoveLeft(p)
	}
	for c.Column < col {
		c.MoveRight(p)
	}
	require.Equal(t, col, c.Column)
	for i, color := range colors {
		c.Blocks[i].Color = color
	}
	return c
}
