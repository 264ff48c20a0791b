package board

import "iter"

// MinRunLength is the shortest sequence of equal colors that counts as a match.
const MinRunLength = 3

// Direction is the axis along which a match run lies.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	DiagonalSlash
	DiagonalBackslash
)

// Directions lists every direction in search order.
var Directions = [...]Direction{Vertical, Horizontal, DiagonalSlash, DiagonalBackslash}

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case DiagonalSlash:
		return "slash"
	case DiagonalBackslash:
		return "backslash"
	default:
		return "unknown"
	}
}

// Run is a sequence of at least MinRunLength same-colored cells, in scan order.
type Run struct {
	Color Color
	Cells []Coord
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// First returns the cell where the scan entered the run.
func (r Run) First() Coord {
	return r.Cells[0]
}

// Last returns the cell where the scan left the run.
func (r Run) Last() Coord {
	return r.Cells[len(r.Cells)-1]
}

// Matches groups match runs by direction.
type Matches map[Direction][]Run

// Empty reports whether no run was found.
func (m Matches) Empty() bool {
	for _, runs := range m {
		if len(runs) > 0 {
			return false
		}
	}
	return true
}

// Count returns the total number of runs.
func (m Matches) Count() int {
	n := 0
	for _, runs := range m {
		n += len(runs)
	}
	return n
}

// All yields every run in direction order, then scan order.
func (m Matches) All() iter.Seq2[Direction, Run] {
	return func(yield func(Direction, Run) bool) {
		for _, d := range Directions {
			for _, r := range m[d] {
				if !yield(d, r) {
					return
				}
			}
		}
	}
}

type cell struct {
	coord Coord
	color Color
	ok    bool
}

// collector accumulates the current run along one line of the scan.
type collector struct {
	matches Matches
	dir     Direction
	run     []cell
}

func (c *collector) flush() {
	if len(c.run) >= MinRunLength {
		cells := make([]Coord, len(c.run))
		for i, r := range c.run {
			cells[i] = r.coord
		}
		c.matches[c.dir] = append(c.matches[c.dir], Run{Color: c.run[0].color, Cells: cells})
	}
	c.run = c.run[:0]
}

func (c *collector) push(next cell) {
	if !next.ok {
		c.flush()
		return
	}
	if n := len(c.run); n > 0 && c.run[n-1].color.Code != next.color.Code {
		c.flush()
	}
	c.run = append(c.run, next)
}

func (p *Pile) cellAt(col, row int) cell {
	b := p.cells[col][row]
	if b == nil {
		return cell{coord: Coord{Col: col, Row: row}}
	}
	return cell{coord: Coord{Col: col, Row: row}, color: b.Color, ok: true}
}

// line feeds the cells from (col, row) stepping by (dc, dr) until the grid edge.
func (p *Pile) line(c *collector, col, row, dc, dr int) {
	for col >= 0 && col < p.geo.Columns && row >= 0 && row < p.geo.Rows {
		c.push(p.cellAt(col, row))
		col += dc
		row += dr
	}
	c.flush()
}

// SearchForMatches scans the grid in all four directions and returns every run of
// MinRunLength or more equal colors.
func (p *Pile) SearchForMatches() Matches {
	m := Matches{}
	c := &collector{matches: m, run: make([]cell, 0, 8)}
	cols, rows := p.geo.Columns, p.geo.Rows

	// Columns are contiguous from the floor, so only color changes break a run.
	c.dir = Vertical
	for col := 0; col < cols; col++ {
		top := p.tops[col].Row
		if top < MinRunLength-1 {
			continue
		}
		for row := top; row >= 0; row-- {
			c.push(p.cellAt(col, row))
		}
		c.flush()
	}

	// Rows above the topmost column top are empty.
	c.dir = Horizontal
	for row := 0; row <= p.TopmostRow(); row++ {
		p.line(c, 0, row, 1, 0)
	}

	c.dir = DiagonalSlash
	for row := rows - MinRunLength; row >= 0; row-- {
		p.line(c, 0, row, 1, 1)
	}
	for col := 1; col < cols-(MinRunLength-1); col++ {
		p.line(c, col, 0, 1, 1)
	}

	c.dir = DiagonalBackslash
	for col := MinRunLength - 1; col < cols; col++ {
		p.line(c, col, 0, -1, 1)
	}
	for row := 1; row < rows-(MinRunLength-1); row++ {
		p.line(c, cols-1, row, -1, 1)
	}

	return m
}
