package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/colorcolumns/board"
)

func TestFactory(t *testing.T) {
	geo := board.DefaultGeometry()

	t.Run("preview position", func(t *testing.T) {
		f := board.NewFactory(geo, board.DefaultPalette(), 3)
		c := f.NextCargo()
		assert.Equal(t, board.NoColumn, c.Column)
		assert.Equal(t, float32(163-50), c.Rect.X)
		assert.Equal(t, float32(156), c.Rect.Y)
		assert.Equal(t, float32(69), c.Rect.H)
		for i, b := range c.Blocks {
			assert.Equal(t, c.Rect.Y+float32(i)*23, b.Rect.Y)
		}
		assert.Len(t, c.VisibleBlocks(), 3)
	})

	t.Run("placed above the arena", func(t *testing.T) {
		f := board.NewFactory(geo, board.DefaultPalette(), 3)
		c := f.NextCargo()
		f.PutInArena(c)
		assert.GreaterOrEqual(t, c.Column, 0)
		assert.Less(t, c.Column, geo.Columns)
		assert.Equal(t, geo.ColumnX(c.Column), c.Rect.X)
		assert.Equal(t, geo.Arena.Top(), c.Rect.Bottom())
		assert.Empty(t, c.VisibleBlocks())
	})

	t.Run("same seed same cargoes", func(t *testing.T) {
		a := board.NewFactory(geo, board.DefaultPalette(), 42)
		b := board.NewFactory(geo, board.DefaultPalette(), 42)
		for range 20 {
			ca, cb := a.NextCargo(), b.NextCargo()
			a.PutInArena(ca)
			b.PutInArena(cb)
			assert.Equal(t, ca.Blocks, cb.Blocks)
			assert.Equal(t, ca.Column, cb.Column)
		}
	})

	t.Run("recolor always changes color", func(t *testing.T) {
		f := board.NewFactory(geo, board.DefaultPalette(), 9)
		b := board.Block{Color: board.Red}
		for range 100 {
			prev := b.Color
			f.Recolor(&b)
			assert.NotEqual(t, prev.Code, b.Color.Code)
		}
	})
}

func TestCargoDescent(t *testing.T) {
	geo := board.DefaultGeometry()
	f := board.NewFactory(geo, board.DefaultPalette(), 5)
	p := board.NewPile(geo)
	c := cargoIn(t, f, p, 4)

	for i := 1; i < geo.Rows; i++ {
		require.False(t, c.DescendOneStep(p), "step %d", i)
		assert.Len(t, c.VisibleBlocks(), min(i, 3))
	}
	assert.True(t, c.DescendOneStep(p))
	assert.True(t, c.IsAtBottom(p))

	bottom := c.Rect.Bottom()
	assert.True(t, c.DescendOneStep(p))
	assert.Equal(t, bottom, c.Rect.Bottom())
	assert.Equal(t, geo.Arena.Bottom(), bottom)
}

func TestCargoDrop(t *testing.T) {
	geo := board.DefaultGeometry()
	f := board.NewFactory(geo, board.DefaultPalette(), 5)
	p := board.NewPile(geo)
	fillColumn(t, p, 2, 5)

	c := cargoIn(t, f, p, 2)
	assert.False(t, c.IsAtBottom(p))
	c.Drop(p)
	assert.True(t, c.IsAtBottom(p))
	assert.Equal(t, geo.RowY(4), c.Rect.Bottom())
	for i, b := range c.Blocks {
		assert.Equal(t, geo.RowY(7-i), b.Rect.Y)
	}
}

func TestCargoMovement(t *testing.T) {
	geo := board.DefaultGeometry()
	f := board.NewFactory(geo, board.DefaultPalette(), 5)

	t.Run("stays inside the arena", func(t *testing.T) {
		p := board.NewPile(geo)
		c := cargoIn(t, f, p, 0)
		c.MoveLeft(p)
		assert.Equal(t, 0, c.Column)

		for range geo.Columns + 3 {
			c.MoveRight(p)
		}
		assert.Equal(t, geo.Columns-1, c.Column)
		assert.Equal(t, geo.ColumnX(geo.Columns-1), c.Rect.X)
		for _, b := range c.Blocks {
			assert.Equal(t, c.Rect.X, b.Rect.X)
		}
	})

	t.Run("blocked by a taller neighbour", func(t *testing.T) {
		p := board.NewPile(geo)
		fillColumn(t, p, 1, 6)
		c := cargoIn(t, f, p, 0)
		c.Drop(p)

		c.MoveRight(p)
		assert.Equal(t, 0, c.Column)

		for !c.IsAtBottom(p) {
			c.DescendOneStep(p)
		}
		c.MoveRight(p)
		assert.Equal(t, 0, c.Column)
	})

	t.Run("passes above a neighbour", func(t *testing.T) {
		p := board.NewPile(geo)
		fillColumn(t, p, 1, 6)
		c := cargoIn(t, f, p, 0)
		for range 9 {
			c.DescendOneStep(p)
		}
		// The cargo bottom is at row 9's floor, above column 1's top.
		c.MoveRight(p)
		assert.Equal(t, 1, c.Column)
	})

	t.Run("never overlaps the pile", func(t *testing.T) {
		p := randomPile(t, 11)
		c := cargoIn(t, f, p, 4)
		moves := []func(*board.Pile){c.MoveLeft, c.MoveRight, c.MoveRight, c.MoveLeft}
		for step := range 200 {
			moves[step%len(moves)](p)
			if step%3 == 0 {
				c.DescendOneStep(p)
			}
			assert.LessOrEqual(t, c.Rect.Bottom(), p.ColumnTop(c.Column).Y)
			assert.GreaterOrEqual(t, c.Column, 0)
			assert.Less(t, c.Column, geo.Columns)
		}
	})
}

func TestCargoRearrange(t *testing.T) {
	geo := board.DefaultGeometry()
	f := board.NewFactory(geo, board.DefaultPalette(), 5)
	p := board.NewPile(geo)
	c := cargoIn(t, f, p, 3, board.Red, board.Green, board.Blue)
	rect := c.Blocks[0].Rect

	codes := func() string {
		return string([]rune{c.Blocks[0].Color.Code, c.Blocks[1].Color.Code, c.Blocks[2].Color.Code})
	}

	c.RearrangeUp()
	assert.Equal(t, "GBR", codes())
	c.RearrangeUp()
	assert.Equal(t, "BRG", codes())
	c.RearrangeDown()
	c.RearrangeDown()
	assert.Equal(t, "RGB", codes())
	c.RearrangeDown()
	assert.Equal(t, "BRG", codes())
	assert.Equal(t, rect, c.Blocks[0].Rect)
}

func TestCargoLandsOnFractionalGeometry(t *testing.T) {
	geo := board.NewGeometry(9, 18, 23.3, 400, 600, 30.7, 50)
	f := board.NewFactory(geo, board.DefaultPalette(), 5)
	p := board.NewPile(geo)
	fillColumn(t, p, 6, 4)

	for _, col := range []int{2, 6} {
		c := cargoIn(t, f, p, col)
		landed := false
		for range geo.Rows + 1 {
			if c.DescendOneStep(p) {
				landed = true
				break
			}
		}
		require.True(t, landed, "cargo in column %d never landed", col)
		assert.Equal(t, p.ColumnTop(col).Row+1, c.BottomRow())
		assert.Equal(t, geo.RowY(c.BottomRow()), c.Blocks[2].Rect.Y)

		require.GreaterOrEqual(t, p.TakeCargo(c), 0)
		top := p.ColumnTop(col)
		assert.Equal(t, geo.RowY(top.Row), top.Y)
		for row := 0; row <= top.Row; row++ {
			b, ok := p.At(board.Coord{Col: col, Row: row})
			require.True(t, ok)
			assert.Equal(t, geo.CellRect(board.Coord{Col: col, Row: row}), b.Rect)
		}
	}

	t.Run("drop and removal stay on the grid", func(t *testing.T) {
		c := cargoIn(t, f, p, 6)
		c.Drop(p)
		assert.True(t, c.IsAtBottom(p))
		p.TakeCargo(c)

		full := p.RemoveMatches([]board.Coord{{Col: 6, Row: 0}, {Col: 6, Row: 2}})
		assert.False(t, full)
		top := p.ColumnTop(6)
		assert.Equal(t, 7, top.Row)
		assert.Equal(t, geo.RowY(7), top.Y)
		for row := 0; row <= top.Row; row++ {
			b, ok := p.At(board.Coord{Col: 6, Row: row})
			require.True(t, ok)
			assert.Equal(t, geo.RowY(row), b.Rect.Y)
		}
	})
}
