package board

import (
	"fmt"
	"strings"
)

// ColumnTop caches the highest occupied row of a column and the pixel Y of its top edge.
// An empty column has Row -1 and Y equal to the arena bottom.
type ColumnTop struct {
	Row int
	Y   float32
}

// Pile is the grid of settled blocks, stored column-major.
type Pile struct {
	geo   Geometry
	cells [][]*Block
	tops  []ColumnTop
}

// NewPile creates an empty pile for the given geometry.
func NewPile(geo Geometry) *Pile {
	p := &Pile{
		geo:   geo,
		cells: make([][]*Block, geo.Columns),
		tops:  make([]ColumnTop, geo.Columns),
	}
	for col := range p.cells {
		p.cells[col] = make([]*Block, geo.Rows)
		p.setTop(col, -1)
	}
	return p
}

// Geometry returns the layout the pile was created with.
func (p *Pile) Geometry() Geometry {
	return p.geo
}

// ColumnTop returns the cached top of a column.
func (p *Pile) ColumnTop(col int) ColumnTop {
	return p.tops[col]
}

// ColumnTops returns a copy of every column top.
func (p *Pile) ColumnTops() []ColumnTop {
	return append([]ColumnTop(nil), p.tops...)
}

// At returns the block stored in a cell.
func (p *Pile) At(c Coord) (Block, bool) {
	if !p.geo.InBounds(c) {
		return Block{}, false
	}
	b := p.cells[c.Col][c.Row]
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// Place stacks a block of the given color on top of a column. It returns an error
// when the column is already full.
func (p *Pile) Place(col int, color Color) error {
	if col < 0 || col >= p.geo.Columns {
		return fmt.Errorf("column %d out of range [0, %d)", col, p.geo.Columns)
	}
	row := p.tops[col].Row + 1
	if row >= p.geo.Rows {
		return fmt.Errorf("column %d is full", col)
	}
	c := Coord{Col: col, Row: row}
	p.cells[col][row] = &Block{Color: color, Rect: p.geo.CellRect(c)}
	p.setTop(col, row)
	return nil
}

// TakeCargo commits a landed cargo to its column, bottom block first. Blocks that do
// not fit below the arena ceiling are discarded. The result is the number of free
// cells the column had before insertion minus the cargo size; a negative value means
// the cargo did not fit.
func (p *Pile) TakeCargo(c *Cargo) int {
	if c.Column == NoColumn {
		panic("board: cargo has no column")
	}
	col := c.Column
	top := p.tops[col].Row

	spaces := p.geo.Rows - 1 - top
	inc := min(CargoSize, spaces)
	for i := CargoSize - 1; i >= CargoSize-inc; i-- {
		top++
		b := Block{Color: c.Blocks[i].Color, Rect: p.geo.CellRect(Coord{Col: col, Row: top})}
		p.cells[col][top] = &b
	}
	p.setTop(col, top)

	return spaces - CargoSize
}

// TopmostRow returns the highest occupied row over all columns, or -1 for an empty pile.
func (p *Pile) TopmostRow() int {
	row := -1
	for _, t := range p.tops {
		row = max(row, t.Row)
	}
	return row
}

// IsFull reports whether any column reaches the arena ceiling.
func (p *Pile) IsFull() bool {
	return p.TopmostRow() >= p.geo.Rows-1
}

// ExtractMatchingBlocks takes the blocks at the given cells out of the grid and returns
// them. Column tops are left untouched until RemoveMatches runs.
func (p *Pile) ExtractMatchingBlocks(cells []Coord) []Block {
	blocks := make([]Block, 0, len(cells))
	for _, c := range cells {
		if b := p.cells[c.Col][c.Row]; b != nil {
			blocks = append(blocks, *b)
			p.cells[c.Col][c.Row] = nil
		}
	}
	return blocks
}

// RemoveMatches clears the given cells and lets the blocks above them fall into the
// freed space. Cells must be unique. It reports whether the pile is full afterwards.
func (p *Pile) RemoveMatches(cells []Coord) bool {
	rowsByCol := make([][]int, p.geo.Columns)
	for _, c := range cells {
		rowsByCol[c.Col] = append(rowsByCol[c.Col], c.Row)
		p.cells[c.Col][c.Row] = nil
	}

	for col, rows := range rowsByCol {
		if len(rows) == 0 {
			continue
		}
		p.compact(col, rows)
	}

	return p.IsFull()
}

func (p *Pile) compact(col int, rows []int) {
	lowest := rows[0]
	for _, r := range rows[1:] {
		lowest = min(lowest, r)
	}

	column := p.cells[col]
	empty := 0
	for row := lowest; row <= p.tops[col].Row; row++ {
		b := column[row]
		column[row] = nil
		if b == nil {
			empty++
			continue
		}
		b.Rect = p.geo.CellRect(Coord{Col: col, Row: row - empty})
		column[row-empty] = b
	}

	p.setTop(col, p.tops[col].Row-len(rows))
}

// setTop caches the top of a column. Y is taken from the row so that it compares
// exactly with any other position derived from the same geometry.
func (p *Pile) setTop(col, row int) {
	p.tops[col] = ColumnTop{Row: row, Y: p.geo.RowY(row)}
}

// Blocks returns every settled block, column by column from the floor up.
func (p *Pile) Blocks() []Block {
	n := 0
	for _, t := range p.tops {
		n += t.Row + 1
	}

	blocks := make([]Block, 0, n)
	for col, t := range p.tops {
		for row := 0; row <= t.Row; row++ {
			if b := p.cells[col][row]; b != nil {
				blocks = append(blocks, *b)
			}
		}
	}
	return blocks
}

// String renders the grid top row first, one color code per cell separated by spaces.
func (p *Pile) String() string {
	var sb strings.Builder
	for row := p.geo.Rows - 1; row >= 0; row-- {
		for col := 0; col < p.geo.Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if b := p.cells[col][row]; b != nil {
				sb.WriteRune(b.Color.Code)
			} else {
				sb.WriteRune(NoBlockCode)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
