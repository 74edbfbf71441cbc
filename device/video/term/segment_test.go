package term

import (
	"testing"

	"pixos/device/video/display"
)

// setCell places a fully specified cell, bypassing the cursor path.
func setCell(t *Terminal, row, col uint32, ch byte, fg, bg TextColor, attr Attributes) {
	t.cells[row*t.width+col] = NewScreenChar(ch, NewColorCode(fg, bg), attr)
}

func TestBuildSegmentsCoalescing(t *testing.T) {
	term := NewTerminal(5, 1)
	setCell(term, 0, 2, 'A', White, Black, 0)
	setCell(term, 0, 3, 'B', Yellow, Blue, 0)

	segments := BuildSegments(term, Region{display.Position{}, display.Size{Width: 5, Height: 1}})

	// The leading blank run breaks when the styled cell arrives; the styled
	// run then absorbs both the style change at 'B' and the trailing blank,
	// keeping the first styled cell's attributes for the whole run.
	expSegments := []TextSegment{
		{Text: "  ", Position: display.Position{X: 0, Y: 0}, Foreground: Black, Background: Black},
		{Text: "AB ", Position: display.Position{X: 2, Y: 0}, Foreground: White, Background: Black},
	}

	if len(segments) != len(expSegments) {
		t.Fatalf("expected %d segments; got %d: %+v", len(expSegments), len(segments), segments)
	}
	for i, exp := range expSegments {
		if segments[i] != exp {
			t.Errorf("segment %d: expected %+v; got %+v", i, exp, segments[i])
		}
	}
}

func TestBuildSegmentsRowBoundary(t *testing.T) {
	term := NewTerminal(3, 2)
	for row := uint32(0); row < 2; row++ {
		for col := uint32(0); col < 3; col++ {
			setCell(term, row, col, 'x', White, Black, 0)
		}
	}

	segments := BuildSegments(term, Region{display.Position{}, display.Size{Width: 3, Height: 2}})

	if len(segments) != 2 {
		t.Fatalf("expected one segment per row; got %d segments", len(segments))
	}
	for row, seg := range segments {
		if seg.Text != "xxx" || seg.Position.Y != uint32(row) || seg.Position.X != 0 {
			t.Errorf("row %d: unexpected segment %+v", row, seg)
		}
	}
}

func TestBuildSegmentsAttributes(t *testing.T) {
	term := NewTerminal(4, 1)
	setCell(term, 0, 0, 'a', Red, Black, AttrUnderline)
	setCell(term, 0, 1, 'b', Red, Black, AttrUnderline)
	setCell(term, 0, 2, 'c', Red, Black, AttrUnderline|AttrStrikethrough)
	setCell(term, 0, 3, 'd', Red, Black, AttrUnderline)

	segments := BuildSegments(term, Region{display.Position{}, display.Size{Width: 4, Height: 1}})

	// Attribute changes inside a styled run do not break it.
	if len(segments) != 1 {
		t.Fatalf("expected a single segment; got %d", len(segments))
	}

	seg := segments[0]
	if seg.Text != "abcd" {
		t.Fatalf("expected segment text %q; got %q", "abcd", seg.Text)
	}
	if !seg.Underline || seg.Strikethrough {
		t.Fatalf("expected the first cell's attributes; got %+v", seg)
	}

	style := seg.Style()
	if style.Color != NewColorCode(Red, Black) || style.Attr != AttrUnderline {
		t.Fatalf("unexpected segment style %+v", style)
	}
}

func TestBuildSegmentsClipsRegion(t *testing.T) {
	term := NewTerminal(4, 2)
	setCell(term, 0, 0, 'a', White, Black, 0)

	// The region extends past the grid on both axes; the scan must clamp.
	segments := BuildSegments(term, Region{
		display.Position{X: 0, Y: 0},
		display.Size{Width: 10, Height: 10},
	})

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments; got %d", len(segments))
	}
	if segments[0].Text != "a   " {
		t.Fatalf("expected first segment %q; got %q", "a   ", segments[0].Text)
	}
}

func TestDirtyRenderRoundTrip(t *testing.T) {
	term := NewTerminal(80, 25)
	term.Dirty().Clear()

	term.SetTextColor(LightGreen)
	term.WriteString("HELLO")

	regions := term.Dirty().DirtyRegions()
	if len(regions) != 1 {
		t.Fatalf("expected one dirty region; got %d", len(regions))
	}

	expRegion := Region{display.Position{}, display.Size{Width: 5, Height: 1}}
	if regions[0] != expRegion {
		t.Fatalf("expected region %+v; got %+v", expRegion, regions[0])
	}

	segments := BuildSegments(term, regions[0])
	if len(segments) != 1 {
		t.Fatalf("expected one segment; got %d", len(segments))
	}

	exp := TextSegment{
		Text:       "HELLO",
		Position:   display.Position{X: 0, Y: 0},
		Foreground: LightGreen,
		Background: Black,
	}
	if segments[0] != exp {
		t.Fatalf("expected segment %+v; got %+v", exp, segments[0])
	}
}
