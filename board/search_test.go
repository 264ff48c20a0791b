package board_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/plus3/colorcolumns/board"
)

func describe(m board.Matches) []string {
	var lines []string
	for dir, run := range m.All() {
		parts := []string{dir.String(), run.Color.String()}
		for _, c := range run.Cells {
			parts = append(parts, fmt.Sprintf("%d,%d", c.Col, c.Row))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

func TestSearchForMatchesFixtures(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/matches.txtar")
	require.NoError(t, err)

	grids := map[string]string{}
	wants := map[string][]string{}
	var names []string
	for _, f := range ar.Files {
		name, kind, _ := strings.Cut(f.Name, ".")
		body := strings.TrimRight(string(f.Data), "\n")
		switch kind {
		case "grid":
			grids[name] = body
			names = append(names, name)
		case "want":
			if body != "" {
				wants[name] = strings.Split(body, "\n")
			}
		}
	}
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p := pileFrom(t, strings.Split(grids[name], "\n")...)
			got := describe(p.SearchForMatches())
			assert.Equal(t, wants[name], got)
		})
	}
}

func TestSearchNeverReturnsShortRuns(t *testing.T) {
	for seed := range uint64(50) {
		p := randomPile(t, seed)
		for dir, run := range p.SearchForMatches().All() {
			if run.Len() < board.MinRunLength {
				t.Errorf("seed %d: %s run of length %d", seed, dir, run.Len())
			}
			for _, c := range run.Cells {
				b, ok := p.At(c)
				if !ok {
					t.Fatalf("seed %d: run includes empty cell %v", seed, c)
				}
				if b.Color.Code != run.Color.Code {
					t.Errorf("seed %d: cell %v has color %s in a %s run", seed, c, b.Color, run.Color)
				}
			}
		}
	}
}

func TestSearchFullBoardDiagonals(t *testing.T) {
	// Every diagonal of a monochrome board is a run; 9x18 has 22 slash and 22 backslash
	// diagonals of length >= 3.
	p := board.NewPile(board.DefaultGeometry())
	for col := range 9 {
		for range 18 {
			require.NoError(t, p.Place(col, board.Red))
		}
	}

	m := p.SearchForMatches()
	assert.Len(t, m[board.Vertical], 9)
	assert.Len(t, m[board.Horizontal], 18)
	assert.Len(t, m[board.DiagonalSlash], 22)
	assert.Len(t, m[board.DiagonalBackslash], 22)

	for _, run := range m[board.DiagonalSlash] {
		for i := 1; i < run.Len(); i++ {
			assert.Equal(t, run.Cells[i-1].Col+1, run.Cells[i].Col)
			assert.Equal(t, run.Cells[i-1].Row+1, run.Cells[i].Row)
		}
	}
	for _, run := range m[board.DiagonalBackslash] {
		for i := 1; i < run.Len(); i++ {
			assert.Equal(t, run.Cells[i-1].Col-1, run.Cells[i].Col)
			assert.Equal(t, run.Cells[i-1].Row+1, run.Cells[i].Row)
		}
	}
}

func BenchmarkSearchForMatches(b *testing.B) {
	p := randomPile(b, 7)
	b.ResetTimer()
	for b.Loop() {
		p.SearchForMatches()
	}
}
