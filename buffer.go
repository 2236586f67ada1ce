// Package speedtui is a terminal cell-buffer rendering engine. Callers mutate
// a back Buffer once per frame, diff it against the Buffer holding the
// previously displayed frame, and write the resulting escape stream to the
// terminal. The engine performs no I/O of its own
package speedtui

import "errors"

var (
	// ErrInvalidDimension is returned when a Buffer is constructed or
	// resized with a non-positive width or height
	ErrInvalidDimension = errors.New("width and height must be positive")
	// ErrDimensionMismatch is returned by CopyFrom when the source Buffer
	// has a different size
	ErrDimensionMismatch = errors.New("buffer dimensions do not match")
)

// Buffer is a fixed-size grid of Cells representing one terminal frame. The
// backing store is a single flat row-major array indexed as y*width+x, fully
// populated with live cells. A Buffer has no internal synchronization: one
// render loop per Buffer pair
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer returns a Buffer of width x height default cells
func NewBuffer(width int, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  newCells(width * height),
	}
	return b, nil
}

func newCells(n int) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = DefaultCell()
	}
	return cells
}

// Size returns the width and height of the Buffer in cells
func (b *Buffer) Size() (width int, height int) {
	return b.width, b.height
}

// SetCell places a cell at col, row. Writes outside the Buffer are discarded:
// callers routinely issue writes against a size that may be mid-resize
func (b *Buffer) SetCell(col int, row int, cell Cell) {
	if col < 0 || row < 0 {
		return
	}
	if col >= b.width {
		return
	}
	if row >= b.height {
		return
	}
	b.cells[row*b.width+col] = cell
}

// Cell returns the cell at col, row. The second return is false when the
// coordinates are outside the Buffer
func (b *Buffer) Cell(col int, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= b.width || row >= b.height {
		return Cell{}, false
	}
	return b.cells[row*b.width+col], true
}

// Clear resets every cell to the default state in place
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// Resize reallocates the Buffer at the new size. Cell values in the
// overlapping rectangle are retained; the remainder of the new area is
// default. Content outside the new bounds is discarded
func (b *Buffer) Resize(width int, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimension
	}
	cells := newCells(width * height)
	minW := min(width, b.width)
	minH := min(height, b.height)
	for row := 0; row < minH; row += 1 {
		for col := 0; col < minW; col += 1 {
			cells[row*width+col] = b.cells[row*b.width+col]
		}
	}
	b.width = width
	b.height = height
	b.cells = cells
	return nil
}

// Fill sets every cell in the rectangle [col, col+w) x [row, row+h) to cell.
// The rectangle is clamped to the Buffer bounds, not rejected
func (b *Buffer) Fill(col int, row int, w int, h int, cell Cell) {
	for y := row; y < row+h; y += 1 {
		for x := col; x < col+w; x += 1 {
			b.SetCell(x, y, cell)
		}
	}
}

// CopyFrom value-copies every cell from src into b in place, with no
// reallocation. This is how a front buffer is made to match a back buffer
// after a frame is flushed
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src.width != b.width || src.height != b.height {
		return ErrDimensionMismatch
	}
	copy(b.cells, src.cells)
	return nil
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
