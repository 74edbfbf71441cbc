package term

import "pixos/device/video/display"

// TabWidth is the number of columns a tab advances the cursor by.
const TabWidth = 4

// ScrollDir defines a scroll direction.
type ScrollDir uint8

// The supported scroll directions.
const (
	ScrollUp ScrollDir = iota
	ScrollDown
)

// Terminal is a fixed-size grid of packed character cells plus a cursor and
// the ambient style applied to subsequent writes. Every mutation marks the
// affected cells dirty; the text display driver consumes the dirty state to
// decide what to repaint.
type Terminal struct {
	width  uint32
	height uint32

	cells []ScreenChar
	dirty *DirtyTracker

	cursor display.Position

	// Ambient style state for subsequent writes.
	fg   TextColor
	bg   TextColor
	attr Attributes
}

// NewTerminal creates a terminal grid with the given character dimensions.
// Every cell starts blank and every dirty bit starts set so the first
// render pass paints the whole grid.
func NewTerminal(width, height uint32) *Terminal {
	t := &Terminal{
		width:  width,
		height: height,
		cells:  make([]ScreenChar, width*height),
		dirty:  NewDirtyTracker(width, height),
		fg:     White,
		bg:     Black,
	}

	blank := NewScreenChar(' ', NewColorCode(Black, Black), 0)
	for i := range t.cells {
		t.cells[i] = blank
	}
	t.dirty.InitRedraw()

	return t
}

// Size returns the grid dimensions in characters.
func (t *Terminal) Size() display.Size {
	return display.Size{Width: t.width, Height: t.height}
}

// Dirty exposes the terminal's dirty tracker.
func (t *Terminal) Dirty() *DirtyTracker {
	return t.dirty
}

// CellAt returns the packed cell at the given grid coordinates.
func (t *Terminal) CellAt(row, col uint32) ScreenChar {
	return t.cells[row*t.width+col]
}

// SetTextColor updates the foreground color applied to subsequent writes.
func (t *Terminal) SetTextColor(c TextColor) {
	t.fg = c
}

// SetBackgroundColor updates the background color applied to subsequent
// writes.
func (t *Terminal) SetBackgroundColor(c TextColor) {
	t.bg = c
}

// SetUnderline toggles the underline attribute for subsequent writes.
func (t *Terminal) SetUnderline(on bool) {
	t.setAttr(AttrUnderline, on)
}

// SetStrikethrough toggles the strikethrough attribute for subsequent
// writes.
func (t *Terminal) SetStrikethrough(on bool) {
	t.setAttr(AttrStrikethrough, on)
}

func (t *Terminal) setAttr(a Attributes, on bool) {
	if on {
		t.attr |= a
	} else {
		t.attr &^= a
	}
}

// MoveCursor places the cursor. The position is not clamped here; the write
// path wraps and scrolls as needed before any cell access.
func (t *Terminal) MoveCursor(pos display.Position) {
	t.cursor = pos
}

// CursorPosition returns the current cursor position.
func (t *Terminal) CursorPosition() display.Position {
	return t.cursor
}

// WriteChar writes a single character at the cursor. Line feeds move the
// cursor to the start of the next row (scrolling at the bottom), carriage
// returns reset the column, tabs advance the column by TabWidth. Any other
// character lands in the cursor cell with the ambient style and advances
// the cursor; characters outside the renderable range are substituted at
// write time.
func (t *Terminal) WriteChar(ch byte) {
	switch ch {
	case '\n':
		t.newline()
	case '\r':
		t.cursor.X = 0
	case '\t':
		t.cursor.X += TabWidth
	default:
		if ch < 0x20 || ch == 0x7F {
			ch = '?'
		}

		if t.cursor.X >= t.width {
			t.newline()
		}
		// The cursor row can sit below the grid after repeated newlines or
		// an explicit move; scroll until the row is addressable again.
		for t.cursor.Y >= t.height {
			t.Scroll(1, ScrollUp)
		}

		idx := t.cursor.Y*t.width + t.cursor.X
		t.cells[idx] = NewScreenChar(ch, NewColorCode(t.fg, t.bg), t.attr)
		t.dirty.Mark(t.cursor.Y, t.cursor.X)
		t.cursor.X++
	}
}

// WriteString writes every byte of s through WriteChar.
func (t *Terminal) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		t.WriteChar(s[i])
	}
}

// WriteLine writes s, pads the remainder of the row with blanks in the
// ambient style and moves to the next line.
func (t *Terminal) WriteLine(s string) {
	t.WriteString(s)
	for t.cursor.X < t.width {
		t.WriteChar(' ')
	}
	t.WriteChar('\n')
}

// Write implements io.Writer so formatted output can be printed straight
// into the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	for _, b := range p {
		t.WriteChar(b)
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (t *Terminal) WriteByte(b byte) error {
	t.WriteChar(b)
	return nil
}

// ClearCell resets one cell to a blank glyph carrying the ambient
// background as both foreground and background, so a cleared cell renders
// as a solid block of background color.
func (t *Terminal) ClearCell(row, col uint32) {
	if row >= t.height || col >= t.width {
		return
	}

	t.cells[row*t.width+col] = NewScreenChar(' ', NewColorCode(t.bg, t.bg), 0)
	t.dirty.Mark(row, col)
}

// ClearBuffer clears every cell and resets the cursor to the origin.
func (t *Terminal) ClearBuffer() {
	for row := uint32(0); row < t.height; row++ {
		for col := uint32(0); col < t.width; col++ {
			t.ClearCell(row, col)
		}
	}
	t.cursor = display.Position{}
}

// Scroll shifts the grid contents by the given number of lines. Scrolling
// by zero lines is a no-op; scrolling by the grid height or more degrades
// to a full clear. Scrolling up drags the cursor up with the content
// (saturating at the top row); scrolling down leaves the cursor in place.
func (t *Terminal) Scroll(lines uint32, dir ScrollDir) {
	if lines == 0 {
		return
	}

	if lines >= t.height {
		t.ClearBuffer()
		return
	}

	switch dir {
	case ScrollUp:
		for row := uint32(0); row < t.height-lines; row++ {
			t.copyRow(row+lines, row)
		}
		for row := t.height - lines; row < t.height; row++ {
			t.clearRow(row)
		}

		if t.cursor.Y > lines {
			t.cursor.Y -= lines
		} else {
			t.cursor.Y = 0
		}
	case ScrollDown:
		// Walk bottom-up so source rows are read before being overwritten.
		for row := t.height - 1; row >= lines; row-- {
			t.copyRow(row-lines, row)
		}
		for row := uint32(0); row < lines; row++ {
			t.clearRow(row)
		}
	}
}

// newline moves the cursor to the start of the next row, scrolling the grid
// up when the cursor leaves the bottom.
func (t *Terminal) newline() {
	t.cursor.X = 0
	t.cursor.Y++
	for t.cursor.Y >= t.height {
		t.Scroll(1, ScrollUp)
	}
}

// copyRow copies a whole row and marks the destination row dirty.
func (t *Terminal) copyRow(src, dst uint32) {
	copy(t.cells[dst*t.width:(dst+1)*t.width], t.cells[src*t.width:(src+1)*t.width])
	t.dirty.MarkRow(dst)
}

// clearRow blanks a newly exposed row.
func (t *Terminal) clearRow(row uint32) {
	for col := uint32(0); col < t.width; col++ {
		t.ClearCell(row, col)
	}
}
