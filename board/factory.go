package board

import "math/rand/v2"

// Factory creates cargoes with random colors. It owns its random source.
type Factory struct {
	geo     Geometry
	palette Palette
	rng     *rand.Rand
}

// NewFactory returns a factory seeded deterministically from seed.
func NewFactory(geo Geometry, palette Palette, seed uint64) *Factory {
	if len(palette) < 2 {
		panic("board: palette needs at least two colors")
	}
	return &Factory{
		geo:     geo,
		palette: palette,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (f *Factory) randomColor() Color {
	return f.palette[f.rng.IntN(len(f.palette))]
}

// NextCargo creates a cargo in the preview position to the left of the arena.
func (f *Factory) NextCargo() *Cargo {
	size := f.geo.BlockSize
	x := f.geo.Arena.Left() - f.geo.PreviewMargin
	y := f.geo.Arena.Top()

	c := &Cargo{
		geo:    f.geo,
		Rect:   Rect{X: x, Y: y, W: size, H: size * CargoSize},
		Column: NoColumn,
	}
	for i := range c.Blocks {
		c.Blocks[i] = Block{
			Color: f.randomColor(),
			Rect:  Rect{X: x, Y: y + float32(i)*size, W: size, H: size},
		}
	}
	return c
}

// PutInArena moves a preview cargo above a random column of the arena, fully hidden
// behind the arena's top edge.
func (f *Factory) PutInArena(c *Cargo) {
	col := f.rng.IntN(f.geo.Columns)
	x := f.geo.ColumnX(col)

	c.Column = col
	c.Rect.X = x
	for i := range c.Blocks {
		c.Blocks[i].Rect.X = x
	}
	c.setRow(f.geo.Rows)
}

// Recolor gives a block a random color different from its current one.
func (f *Factory) Recolor(b *Block) {
	for {
		c := f.randomColor()
		if c.Code != b.Color.Code {
			b.Color = c
			return
		}
	}
}
