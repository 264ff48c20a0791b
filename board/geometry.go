package board

// Rect is an axis-aligned rectangle in pixel space. Y grows downward.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Point is a pixel position.
type Point struct {
	X, Y float32
}

// Geometry describes the arena layout: grid size, block size and where the grid sits on screen.
// Game logic compares grid rows and columns; pixel positions are derived from them for
// drawing only, so any positive block size works.
type Geometry struct {
	Columns   int
	Rows      int
	BlockSize float32

	// Arena is the pixel rectangle of the grid.
	Arena Rect

	// PreviewMargin is the distance between the arena's left edge and the next-cargo preview.
	PreviewMargin float32
}

// NewGeometry places a columns x rows grid in the bottom-right corner of a window,
// margin pixels away from both edges.
func NewGeometry(columns, rows int, blockSize, windowWidth, windowHeight, margin, previewMargin float32) Geometry {
	w := float32(columns) * blockSize
	h := float32(rows) * blockSize
	return Geometry{
		Columns:       columns,
		Rows:          rows,
		BlockSize:     blockSize,
		Arena:         Rect{X: windowWidth - w - margin, Y: windowHeight - h - margin, W: w, H: h},
		PreviewMargin: previewMargin,
	}
}

// DefaultGeometry is the 9x18 arena in a 400x600 window.
func DefaultGeometry() Geometry {
	const blockSize = 23
	return NewGeometry(9, 18, blockSize, 400, 600, 30, blockSize*2+4)
}

// ColumnX returns the left pixel edge of a column.
func (g Geometry) ColumnX(col int) float32 {
	return g.Arena.Left() + g.BlockSize*float32(col)
}

// RowY returns the top pixel edge of a row. Row 0 is the floor.
func (g Geometry) RowY(row int) float32 {
	return g.Arena.Bottom() - g.BlockSize*float32(row+1)
}

// CellRect returns the pixel rectangle of a grid cell.
func (g Geometry) CellRect(c Coord) Rect {
	return Rect{X: g.ColumnX(c.Col), Y: g.RowY(c.Row), W: g.BlockSize, H: g.BlockSize}
}

// CellCenter returns the center point of a grid cell.
func (g Geometry) CellCenter(c Coord) Point {
	return Point{
		X: g.ColumnX(c.Col) + g.BlockSize/2,
		Y: g.RowY(c.Row) + g.BlockSize/2,
	}
}

// InBounds reports whether a coordinate lies inside the grid.
func (g Geometry) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Columns && c.Row >= 0 && c.Row < g.Rows
}
