package term

import (
	"testing"

	"pixos/device/video/display"
)

// gridString renders the terminal characters as one string per row, which
// keeps expectations in the tests readable.
func gridString(term *Terminal) []string {
	var rows []string
	for row := uint32(0); row < term.height; row++ {
		line := make([]byte, term.width)
		for col := uint32(0); col < term.width; col++ {
			line[col] = term.CellAt(row, col).Char()
		}
		rows = append(rows, string(line))
	}
	return rows
}

func TestTerminalWrite(t *testing.T) {
	term := NewTerminal(6, 3)
	term.Dirty().Clear()

	term.WriteString("Hi\r\n\tok")

	expGrid := []string{
		"Hi    ",
		"    ok",
		"      ",
	}

	for row, exp := range gridString(term) {
		if exp != expGrid[row] {
			t.Errorf("row %d: expected %q; got %q", row, expGrid[row], exp)
		}
	}

	if pos := term.CursorPosition(); pos.X != 6 || pos.Y != 1 {
		t.Fatalf("expected cursor at (6, 1); got (%d, %d)", pos.X, pos.Y)
	}
}

func TestTerminalWriteMarksDirty(t *testing.T) {
	term := NewTerminal(8, 4)
	term.Dirty().Clear()

	term.MoveCursor(display.Position{X: 2, Y: 1})
	term.WriteChar('x')

	for row := uint32(0); row < 4; row++ {
		for col := uint32(0); col < 8; col++ {
			expDirty := row == 1 && col == 2
			if got := term.Dirty().IsDirty(row, col); got != expDirty {
				t.Errorf("cell (%d, %d): expected dirty %t; got %t", row, col, expDirty, got)
			}
		}
	}
}

func TestTerminalWriteSubstitution(t *testing.T) {
	term := NewTerminal(4, 2)

	term.WriteChar(0x01)
	term.WriteChar(0x7F)

	if got := term.CellAt(0, 0).Char(); got != '?' {
		t.Fatalf("expected control byte to render as '?'; got %q", got)
	}
	if got := term.CellAt(0, 1).Char(); got != '?' {
		t.Fatalf("expected DEL to render as '?'; got %q", got)
	}
}

func TestTerminalWrap(t *testing.T) {
	term := NewTerminal(4, 3)

	term.WriteString("abcdef")

	expGrid := []string{
		"abcd",
		"ef  ",
		"    ",
	}

	for row, exp := range gridString(term) {
		if exp != expGrid[row] {
			t.Errorf("row %d: expected %q; got %q", row, expGrid[row], exp)
		}
	}
}

func TestTerminalScrollOnBottom(t *testing.T) {
	term := NewTerminal(4, 3)

	term.WriteString("one\ntwo\nthr\nfou")

	expGrid := []string{
		"two ",
		"thr ",
		"fou ",
	}

	for row, exp := range gridString(term) {
		if exp != expGrid[row] {
			t.Errorf("row %d: expected %q; got %q", row, expGrid[row], exp)
		}
	}

	if pos := term.CursorPosition(); pos.Y != 2 {
		t.Fatalf("expected cursor on the bottom row; got row %d", pos.Y)
	}
}

func TestTerminalWriteLine(t *testing.T) {
	term := NewTerminal(6, 3)
	term.SetBackgroundColor(Blue)

	term.WriteLine("ab")

	if got := gridString(term)[0]; got != "ab    " {
		t.Fatalf("expected padded row %q; got %q", "ab    ", got)
	}

	// The padding cells carry the ambient style, not the blank marker.
	if got := term.CellAt(0, 5).Color().Background(); got != Blue {
		t.Fatalf("expected padding background Blue; got %d", got)
	}
	if pos := term.CursorPosition(); pos.X != 0 || pos.Y != 1 {
		t.Fatalf("expected cursor at (0, 1); got (%d, %d)", pos.X, pos.Y)
	}
}

func TestTerminalClearCell(t *testing.T) {
	term := NewTerminal(4, 2)
	term.SetBackgroundColor(Green)
	term.WriteChar('x')
	term.Dirty().Clear()

	term.ClearCell(0, 0)

	cell := term.CellAt(0, 0)
	if got := cell.Char(); got != ' ' {
		t.Fatalf("expected cleared cell to hold a space; got %q", got)
	}
	// A cleared cell renders as a solid block: ambient background used for
	// both color nibbles.
	if got := cell.Color(); got != NewColorCode(Green, Green) {
		t.Fatalf("expected color code %d; got %d", NewColorCode(Green, Green), got)
	}
	if !term.Dirty().IsDirty(0, 0) {
		t.Fatal("expected cleared cell to be marked dirty")
	}

	// Out-of-range coordinates are ignored.
	term.ClearCell(9, 9)
}

func TestTerminalClearBuffer(t *testing.T) {
	term := NewTerminal(4, 3)
	term.WriteString("abc\ndef")

	term.ClearBuffer()

	for row := uint32(0); row < 3; row++ {
		for col := uint32(0); col < 4; col++ {
			if got := term.CellAt(row, col).Char(); got != ' ' {
				t.Fatalf("cell (%d, %d): expected space; got %q", row, col, got)
			}
			if !term.Dirty().IsDirty(row, col) {
				t.Fatalf("cell (%d, %d): expected dirty after clear", row, col)
			}
		}
	}

	if pos := term.CursorPosition(); pos.X != 0 || pos.Y != 0 {
		t.Fatalf("expected cursor at origin; got (%d, %d)", pos.X, pos.Y)
	}
}

func TestTerminalScroll(t *testing.T) {
	fill := func() *Terminal {
		term := NewTerminal(3, 4)
		term.WriteString("aaa")
		term.WriteString("bbb")
		term.WriteString("ccc")
		term.WriteString("ddd")
		return term
	}

	specs := []struct {
		descr   string
		lines   uint32
		dir     ScrollDir
		expGrid []string
	}{
		{"up by one", 1, ScrollUp, []string{"bbb", "ccc", "ddd", "   "}},
		{"up by two", 2, ScrollUp, []string{"ccc", "ddd", "   ", "   "}},
		{"down by one", 1, ScrollDown, []string{"   ", "aaa", "bbb", "ccc"}},
		{"down by two", 2, ScrollDown, []string{"   ", "   ", "aaa", "bbb"}},
		{"by zero", 0, ScrollUp, []string{"aaa", "bbb", "ccc", "ddd"}},
		{"by full height", 4, ScrollUp, []string{"   ", "   ", "   ", "   "}},
		{"past full height", 9, ScrollDown, []string{"   ", "   ", "   ", "   "}},
	}

	for specIndex, spec := range specs {
		term := fill()
		term.Scroll(spec.lines, spec.dir)

		for row, got := range gridString(term) {
			if got != spec.expGrid[row] {
				t.Errorf("[spec %d] %s: row %d: expected %q; got %q",
					specIndex, spec.descr, row, spec.expGrid[row], got)
			}
		}
	}
}

func TestTerminalScrollCursor(t *testing.T) {
	term := NewTerminal(3, 4)
	term.MoveCursor(display.Position{X: 1, Y: 3})

	term.Scroll(2, ScrollUp)
	if pos := term.CursorPosition(); pos.Y != 1 {
		t.Fatalf("expected cursor row 1 after scrolling up by 2; got %d", pos.Y)
	}

	term.Scroll(2, ScrollUp)
	if pos := term.CursorPosition(); pos.Y != 0 {
		t.Fatalf("expected cursor row to saturate at 0; got %d", pos.Y)
	}

	term.MoveCursor(display.Position{X: 1, Y: 1})
	term.Scroll(1, ScrollDown)
	if pos := term.CursorPosition(); pos.Y != 1 {
		t.Fatalf("expected cursor row unchanged by scroll down; got %d", pos.Y)
	}
}

func TestTerminalScrollMarksDirty(t *testing.T) {
	term := NewTerminal(3, 4)
	term.Dirty().Clear()

	term.Scroll(1, ScrollUp)

	for row := uint32(0); row < 4; row++ {
		for col := uint32(0); col < 3; col++ {
			if !term.Dirty().IsDirty(row, col) {
				t.Fatalf("cell (%d, %d): expected dirty after scroll", row, col)
			}
		}
	}
}

func TestTerminalAsWriter(t *testing.T) {
	term := NewTerminal(8, 2)

	n, err := term.Write([]byte("ok"))
	if err != nil || n != 2 {
		t.Fatalf("expected (2, nil); got (%d, %v)", n, err)
	}
	if err = term.WriteByte('!'); err != nil {
		t.Fatalf("expected nil error; got %v", err)
	}

	if got := gridString(term)[0]; got != "ok!     " {
		t.Fatalf("expected %q; got %q", "ok!     ", got)
	}
}

func TestTerminalStyleState(t *testing.T) {
	term := NewTerminal(8, 2)
	term.SetTextColor(Yellow)
	term.SetBackgroundColor(Blue)
	term.SetUnderline(true)
	term.SetStrikethrough(true)
	term.SetStrikethrough(false)

	term.WriteChar('x')

	cell := term.CellAt(0, 0)
	if got := cell.Color(); got != NewColorCode(Yellow, Blue) {
		t.Fatalf("expected color code %d; got %d", NewColorCode(Yellow, Blue), got)
	}
	if got := cell.Attr(); got != AttrUnderline {
		t.Fatalf("expected attributes %d; got %d", AttrUnderline, got)
	}
}
