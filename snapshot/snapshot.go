// Package snapshot reads and writes text pictures of a pile.
//
// A snapshot has one line per grid row, top row first. Cells are separated by
// whitespace; each cell is a color code or '.' for an empty slot:
//
//	. . . . . . . . .
//	. . R . . . . . .
//	G G R B B B B . Y
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/plus3/colorcolumns/board"
)

var (
	// ErrDimensions is returned when the snapshot grid size differs from the arena's.
	ErrDimensions = errors.New("snapshot dimensions do not match the arena")
	// ErrUnknownColor is returned for a cell code that is not in the palette.
	ErrUnknownColor = errors.New("unknown color code")
	// ErrFloatingBlock is returned for a block with an empty cell below it.
	ErrFloatingBlock = errors.New("block above an empty cell")
)

// ParseError locates a failure inside the snapshot text. Line and Cell are 1-based;
// Line counts from the top of the text.
type ParseError struct {
	Line int
	Cell int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Cell == 0 {
		return fmt.Sprintf("snapshot line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("snapshot line %d, cell %d: %v", e.Line, e.Cell, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse builds a pile from snapshot text.
func Parse(r io.Reader, geo board.Geometry, palette board.Palette) (*board.Pile, error) {
	var lines [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if len(lines) != geo.Rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensions, len(lines), geo.Rows)
	}

	grid := make([][]rune, geo.Rows)
	for i, fields := range lines {
		if len(fields) != geo.Columns {
			return nil, &ParseError{
				Line: i + 1,
				Err:  fmt.Errorf("%w: got %d columns, want %d", ErrDimensions, len(fields), geo.Columns),
			}
		}
		row := geo.Rows - 1 - i
		grid[row] = make([]rune, geo.Columns)
		for col, f := range fields {
			code, size := utf8.DecodeRuneInString(f)
			if size != len(f) {
				return nil, &ParseError{Line: i + 1, Cell: col + 1, Err: fmt.Errorf("%w: %q", ErrUnknownColor, f)}
			}
			grid[row][col] = code
		}
	}

	p := board.NewPile(geo)
	for col := 0; col < geo.Columns; col++ {
		gap := false
		for row := 0; row < geo.Rows; row++ {
			code := grid[row][col]
			line := geo.Rows - row
			if code == board.NoBlockCode {
				gap = true
				continue
			}
			color, ok := palette.ByCode(code)
			if !ok {
				return nil, &ParseError{Line: line, Cell: col + 1, Err: fmt.Errorf("%w: %q", ErrUnknownColor, code)}
			}
			if gap {
				return nil, &ParseError{Line: line, Cell: col + 1, Err: ErrFloatingBlock}
			}
			if err := p.Place(col, color); err != nil {
				return nil, &ParseError{Line: line, Cell: col + 1, Err: err}
			}
		}
	}
	return p, nil
}

// ParseString is Parse over a string.
func ParseString(s string, geo board.Geometry, palette board.Palette) (*board.Pile, error) {
	return Parse(strings.NewReader(s), geo, palette)
}

// Load reads a snapshot file.
func Load(path string, geo board.Geometry, palette board.Palette) (*board.Pile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	p, err := Parse(f, geo, palette)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Format renders a pile in snapshot form.
func Format(p *board.Pile) string {
	return p.String()
}
