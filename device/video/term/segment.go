package term

import "pixos/device/video/display"

// TextSegment is a horizontal run of consecutive cells sharing one style,
// ready to be drawn with a single text-drawing call.
type TextSegment struct {
	Text     string
	Position display.Position

	Foreground    TextColor
	Background    TextColor
	Underline     bool
	Strikethrough bool
}

// Style returns the cell style the segment was accumulated under.
func (s TextSegment) Style() CellStyle {
	var attr Attributes
	if s.Underline {
		attr |= AttrUnderline
	}
	if s.Strikethrough {
		attr |= AttrStrikethrough
	}
	return CellStyle{Color: NewColorCode(s.Foreground, s.Background), Attr: attr}
}

// BuildSegments scans a region of the terminal grid row-major and coalesces
// consecutive same-style cells into segments. A run already accumulating
// only breaks when the next cell's style differs AND the run's own style is
// the blank marker; runs carrying any visible style absorb style changes,
// keeping the first styled cell's attributes for the whole run. Runs never
// span rows.
func BuildSegments(t *Terminal, region Region) []TextSegment {
	var segments []TextSegment

	endRow := region.Y + region.Height
	endCol := region.X + region.Width
	if endRow > t.height {
		endRow = t.height
	}
	if endCol > t.width {
		endCol = t.width
	}

	for row := region.Y; row < endRow; row++ {
		var (
			run   []byte
			style CellStyle
			start uint32
		)

		for col := region.X; col < endCol; col++ {
			cell := t.CellAt(row, col)

			if len(run) == 0 {
				style = cell.Style()
				start = col
				run = append(run, cell.Char())
				continue
			}

			if cell.Style() != style && style == blankStyle {
				segments = append(segments, makeSegment(run, row, start, style))
				style = cell.Style()
				start = col
				run = run[:0]
			}
			run = append(run, cell.Char())
		}

		if len(run) != 0 {
			segments = append(segments, makeSegment(run, row, start, style))
		}
	}

	return segments
}

func makeSegment(run []byte, row, col uint32, style CellStyle) TextSegment {
	return TextSegment{
		Text:          string(run),
		Position:      display.Position{X: col, Y: row},
		Foreground:    style.Color.Foreground(),
		Background:    style.Color.Background(),
		Underline:     style.Attr&AttrUnderline != 0,
		Strikethrough: style.Attr&AttrStrikethrough != 0,
	}
}
