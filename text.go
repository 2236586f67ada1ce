package speedtui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Characters converts a string into a slice of runes suitable to assign to
// cells, one per grapheme cluster. Cells hold a single fixed-width code
// point, so only the first rune of a multi-rune cluster is kept
func Characters(s string) []rune {
	chars := []rune{}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Runes()[0])
	}
	return chars
}

// Segment is a block of text sharing one style
type Segment struct {
	Text       string
	Foreground Color
	Background Color
	Attributes AttributeMask
}

// Print writes segments of text into the buffer starting at col, row. Text
// wraps at the buffer edge, line breaks begin a new row at the starting
// column, and anything past the bottom row is discarded. Wide characters
// advance the column by their display width. Print returns the position
// after the last character written
func Print(b *Buffer, col int, row int, segs ...Segment) (endCol int, endRow int) {
	width, height := b.Size()
	start := col
	for _, seg := range segs {
		for _, char := range Characters(seg.Text) {
			if row >= height {
				return col, row
			}
			if char == '\n' {
				col = start
				row += 1
				continue
			}
			w := runewidth.RuneWidth(char)
			if w == 0 {
				w = 1
			}
			if col+w > width {
				col = start
				row += 1
				if row >= height {
					return col, row
				}
			}
			b.SetCell(col, row, Cell{
				Character:  char,
				Foreground: seg.Foreground,
				Background: seg.Background,
				Attributes: seg.Attributes,
			})
			col += w
		}
	}
	return col, row
}
