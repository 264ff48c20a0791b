package board

// CargoSize is the number of blocks in a cargo.
const CargoSize = 3

// NoColumn marks a cargo that has not been placed in the arena yet.
const NoColumn = -1

// Cargo is the falling piece: three stacked blocks. Blocks[0] is the top block and
// Blocks[2] the bottom one.
type Cargo struct {
	geo Geometry

	Blocks [CargoSize]Block
	Rect   Rect
	Column int

	// bottom is the grid row of Blocks[CargoSize-1]. Rows at or above geo.Rows lie
	// behind the arena ceiling.
	bottom int
}

// MoveRight shifts the cargo one column to the right unless the pile in that column
// reaches above the cargo's bottom edge.
func (c *Cargo) MoveRight(p *Pile) {
	c.shift(p, 1)
}

// MoveLeft is the mirror of MoveRight.
func (c *Cargo) MoveLeft(p *Pile) {
	c.shift(p, -1)
}

func (c *Cargo) shift(p *Pile, dir int) {
	if c.Column == NoColumn {
		return
	}
	col := c.Column + dir
	if col < 0 || col >= c.geo.Columns {
		return
	}
	if c.bottom <= p.ColumnTop(col).Row {
		return
	}

	x := c.geo.ColumnX(col)
	c.Column = col
	c.Rect.X = x
	for i := range c.Blocks {
		c.Blocks[i].Rect.X = x
	}
}

// RearrangeUp rotates the colors one place up; the top color wraps to the bottom.
func (c *Cargo) RearrangeUp() {
	top := c.Blocks[0].Color
	c.Blocks[0].Color = c.Blocks[1].Color
	c.Blocks[1].Color = c.Blocks[2].Color
	c.Blocks[2].Color = top
}

// RearrangeDown rotates the colors one place down; the bottom color wraps to the top.
func (c *Cargo) RearrangeDown() {
	bottom := c.Blocks[2].Color
	c.Blocks[2].Color = c.Blocks[1].Color
	c.Blocks[1].Color = c.Blocks[0].Color
	c.Blocks[0].Color = bottom
}

// DescendOneStep moves the cargo one block down unless it already rests on the pile.
// It reports whether the cargo rests on the pile afterwards.
func (c *Cargo) DescendOneStep(p *Pile) bool {
	if !c.IsAtBottom(p) {
		c.setRow(c.bottom - 1)
	}
	return c.IsAtBottom(p)
}

// Drop snaps the cargo onto the pile of its column.
func (c *Cargo) Drop(p *Pile) {
	c.setRow(p.ColumnTop(c.Column).Row + 1)
}

// IsAtBottom reports whether the cargo's bottom block rests on the pile of its column.
func (c *Cargo) IsAtBottom(p *Pile) bool {
	return c.bottom == p.ColumnTop(c.Column).Row+1
}

// BottomRow returns the grid row of the bottom block.
func (c *Cargo) BottomRow() int {
	return c.bottom
}

// setRow moves the cargo so that its bottom block sits in row. Pixel positions are
// always recomputed from the row, never accumulated.
func (c *Cargo) setRow(row int) {
	c.bottom = row
	c.Rect.Y = c.geo.RowY(row + CargoSize - 1)
	for i := range c.Blocks {
		c.Blocks[i].Rect.Y = c.geo.RowY(row + CargoSize - 1 - i)
	}
}

// VisibleBlocks returns the blocks a renderer should draw. A preview cargo is fully
// visible; a descending one only shows blocks that have entered the arena.
func (c *Cargo) VisibleBlocks() []Block {
	if c.Column == NoColumn {
		return append([]Block(nil), c.Blocks[:]...)
	}

	visible := make([]Block, 0, CargoSize)
	for i, b := range c.Blocks {
		if c.bottom+CargoSize-1-i < c.geo.Rows {
			visible = append(visible, b)
		}
	}
	return visible
}
