package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/plus3/colorcolumns/board"
	"github.com/plus3/colorcolumns/snapshot"
)

func TestParseArchive(t *testing.T) {
	ar, err := txtar.ParseFile("testdata/snapshots.txtar")
	require.NoError(t, err)

	geo := board.NewGeometry(4, 5, 10, 100, 100, 10, 20)
	for _, f := range ar.Files {
		t.Run(f.Name, func(t *testing.T) {
			p, err := snapshot.ParseString(string(f.Data), geo, board.DefaultPalette())
			switch {
			case strings.HasPrefix(f.Name, "ok/"):
				require.NoError(t, err)
				assert.Equal(t, normalize(string(f.Data)), snapshot.Format(p))
			case strings.HasPrefix(f.Name, "dimensions/"):
				assert.ErrorIs(t, err, snapshot.ErrDimensions)
			case strings.HasPrefix(f.Name, "color/"):
				assert.ErrorIs(t, err, snapshot.ErrUnknownColor)
			case strings.HasPrefix(f.Name, "floating/"):
				assert.ErrorIs(t, err, snapshot.ErrFloatingBlock)
			default:
				t.Fatalf("unexpected fixture %s", f.Name)
			}
		})
	}
}

// normalize collapses the whitespace between cells to single spaces.
func normalize(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		sb.WriteString(strings.Join(fields, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestParseColumnTops(t *testing.T) {
	geo := board.NewGeometry(4, 5, 10, 100, 100, 10, 20)
	p, err := snapshot.ParseString(`
		. . . .
		. . . .
		R . . .
		G . Y .
		B . M .
	`, geo, board.DefaultPalette())
	require.NoError(t, err)

	tops := p.ColumnTops()
	assert.Equal(t, []int{2, -1, 1, -1}, []int{tops[0].Row, tops[1].Row, tops[2].Row, tops[3].Row})
	assert.Equal(t, geo.RowY(2), tops[0].Y)
	assert.Equal(t, geo.Arena.Bottom(), tops[1].Y)

	b, ok := p.At(board.Coord{Col: 2, Row: 1})
	require.True(t, ok)
	assert.Equal(t, board.Yellow.Code, b.Color.Code)
	assert.Equal(t, geo.CellRect(board.Coord{Col: 2, Row: 1}), b.Rect)
}

func TestParseErrorLocation(t *testing.T) {
	geo := board.NewGeometry(3, 3, 10, 100, 100, 10, 20)
	_, err := snapshot.ParseString(". . .\n. . .\nR X .\n", geo, board.DefaultPalette())

	var perr *snapshot.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 2, perr.Cell)
	assert.Contains(t, err.Error(), "line 3, cell 2")
}

func TestSearchAfterLoad(t *testing.T) {
	// Horizontal run of four in row 0, columns 2-5.
	rows := make([]string, 0, 18)
	for range 17 {
		rows = append(rows, ". . . . . . . . .")
	}
	rows = append(rows, "B G Y Y Y Y M . .")

	path := filepath.Join(t.TempDir(), "snapshot.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644))

	p, err := snapshot.Load(path, board.DefaultGeometry(), board.DefaultPalette())
	require.NoError(t, err)

	m := p.SearchForMatches()
	require.Equal(t, 1, m.Count())
	require.Len(t, m[board.Horizontal], 1)
	assert.Equal(t, []board.Coord{{Col: 2}, {Col: 3}, {Col: 4}, {Col: 5}}, m[board.Horizontal][0].Cells)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := snapshot.Load(filepath.Join(t.TempDir(), "nope"), board.DefaultGeometry(), board.DefaultPalette())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
