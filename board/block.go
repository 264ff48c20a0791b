package board

// Block is a single colored square.
type Block struct {
	Color Color
	Rect  Rect
}

// Coord addresses a grid cell. Columns run left to right, rows bottom to top.
type Coord struct {
	Col int
	Row int
}

func (c Coord) key() uint32 {
	return uint32(c.Col)<<16 | uint32(c.Row)&0xffff
}
