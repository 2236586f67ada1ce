package speedtui

import (
	"fmt"
	"strings"
)

// Diff compares b, the desired next frame, against prev, the frame the
// terminal currently displays, and returns the escape stream that transforms
// the displayed frame into b. A nil prev means no frame is known; cells
// outside prev's bounds are likewise unknown. Unknown cells compare as
// default, so fresh or newly exposed regions redraw all of their visible
// content and nothing else.
//
// Foreground, background, attribute, and cursor state are tracked across the
// whole call, starting from terminal defaults. The caller is responsible for
// the terminal actually being in that state when the stream is written; see
// Renderer, which resets styling after every flush
func (b *Buffer) Diff(prev *Buffer) string {
	var (
		fg        Color
		bg        Color
		attr      AttributeMask
		cursorCol = -1
		cursorRow = -1
		out       strings.Builder
	)
	for row := 0; row < b.height; row += 1 {
		for col := 0; col < b.width; {
			next := b.cells[row*b.width+col]
			if next == prevCell(prev, col, row) {
				col += 1
				continue
			}

			// Extend the change into a run: identically styled
			// cells that each also differ from their own previous
			// cell share one style prefix. Runs never cross a row
			// boundary
			end := col + 1
			for end < b.width {
				cell := b.cells[row*b.width+end]
				if !cell.sameStyle(next) {
					break
				}
				if cell == prevCell(prev, end, row) {
					break
				}
				end += 1
			}

			if cursorCol != col || cursorRow != row {
				fmt.Fprintf(&out, cup, row+1, col+1)
				cursorCol = col
				cursorRow = row
			}

			if next.Attributes != attr {
				if attr != 0 {
					// There is no primitive to clear a
					// single attribute, so any change away
					// from a non-empty set resets
					// everything, colors included
					out.WriteString(sgrReset)
					fg = 0
					bg = 0
				}
				if next.Attributes&AttrBold != 0 {
					out.WriteString(boldSet)
				}
				if next.Attributes&AttrUnderline != 0 {
					out.WriteString(underlineSet)
				}
				if next.Attributes&AttrItalic != 0 {
					out.WriteString(italicSet)
				}
				attr = next.Attributes
			}

			if next.Foreground != fg {
				fg = next.Foreground
				ps := fg.Params()
				switch len(ps) {
				case 0:
					out.WriteString(setfDefault)
				case 3:
					fmt.Fprintf(&out, setrgbf, ps[0], ps[1], ps[2])
				}
			}

			if next.Background != bg {
				bg = next.Background
				ps := bg.Params()
				switch len(ps) {
				case 0:
					out.WriteString(setbDefault)
				case 3:
					fmt.Fprintf(&out, setrgbb, ps[0], ps[1], ps[2])
				}
			}

			for i := col; i < end; i += 1 {
				switch ch := b.cells[row*b.width+i].Character; ch {
				case 0:
					out.WriteRune(' ')
				default:
					out.WriteRune(ch)
				}
			}
			cursorCol += end - col
			col = end
		}
	}
	return out.String()
}

// prevCell is the single bounds-checked lookup covering both the nil-previous
// and smaller-previous cases
func prevCell(prev *Buffer, col int, row int) Cell {
	if prev == nil {
		return DefaultCell()
	}
	cell, ok := prev.Cell(col, row)
	if !ok {
		return DefaultCell()
	}
	return cell
}
