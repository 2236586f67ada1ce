package speedtui

// Cell is the full display state of one terminal cell: a single fixed-width
// code point plus colors and attributes. Cells are plain comparable values;
// two cells are equal iff all four fields are equal. The zero rune renders as
// a space
type Cell struct {
	Character  rune
	Foreground Color
	Background Color
	Attributes AttributeMask
}

// DefaultCell returns a cell holding a space with default colors and no
// attributes
func DefaultCell() Cell {
	return Cell{Character: ' '}
}

// Reset restores the cell to the default state in place
func (c *Cell) Reset() {
	c.Character = ' '
	c.Foreground = 0
	c.Background = 0
	c.Attributes = 0
}

// sameStyle reports whether two cells share foreground, background, and
// attributes. The characters may differ
func (c Cell) sameStyle(other Cell) bool {
	return c.Foreground == other.Foreground &&
		c.Background == other.Background &&
		c.Attributes == other.Attributes
}
