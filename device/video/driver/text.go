package driver

import (
	"io"

	"pixos/device/video/display"
	"pixos/device/video/display/font"
	"pixos/device/video/term"
	"pixos/kernel"
	"pixos/kernel/kfmt"
)

var (
	errMissingFont    = &kernel.Error{Module: "driver", Message: "text driver activated without a usable font"}
	errScreenTooSmall = &kernel.Error{Module: "driver", Message: "screen smaller than a single font cell"}
)

// Text renders a character-cell terminal onto the display. The terminal
// grid is allocated on activation, sized to however many font cells fit on
// screen, and torn down when the driver is switched away. While active the
// driver installs the terminal as the kernel log sink, so boot messages
// accumulated before activation are replayed onto the screen.
type Text struct {
	font *font.Font

	api      display.API
	handle   *display.Handle
	terminal *term.Terminal
	prevSink io.Writer
}

// NewText creates a text display driver that rasterizes glyphs with the
// given font.
func NewText(f *font.Font) *Text {
	return &Text{font: f}
}

// DriverName implements device.Driver.
func (*Text) DriverName() string {
	return "text_display"
}

// DriverVersion implements device.Driver.
func (*Text) DriverVersion() (major, minor, patch uint16) {
	return 0, 1, 0
}

// Activate implements Driver. It acquires the display, allocates the
// terminal grid and installs the terminal as the kernel log sink.
func (t *Text) Activate(handle *display.Handle) *kernel.Error {
	if t.font == nil || len(t.font.Data) == 0 {
		return errMissingFont
	}

	api, err := handle.Acquire()
	if err != nil {
		return err
	}

	info := api.Info()
	cols := info.Width / t.font.GlyphWidth
	rows := info.Height / t.font.GlyphHeight
	if cols == 0 || rows == 0 {
		handle.Release()
		return errScreenTooSmall
	}

	t.api = api
	t.handle = handle
	t.terminal = term.NewTerminal(cols, rows)

	t.prevSink = kfmt.GetOutputSink()
	kfmt.SetOutputSink(t.terminal)

	return nil
}

// Deactivate implements Driver. It restores the previous log sink,
// releases the display and drops the terminal grid.
func (t *Text) Deactivate() {
	if t.handle == nil {
		return
	}

	kfmt.SetOutputSink(t.prevSink)
	t.handle.Release()
	t.api = nil
	t.handle = nil
	t.terminal = nil
	t.prevSink = nil
}

// Terminal returns the active terminal grid, or nil when the driver is
// inactive.
func (t *Text) Terminal() *term.Terminal {
	return t.terminal
}

// Size returns the terminal grid dimensions in characters.
func (t *Text) Size() display.Size {
	if t.terminal == nil {
		return display.Size{}
	}
	return t.terminal.Size()
}

// DrawAll runs a render pass: extract the dirty regions, coalesce each
// into text segments, rasterize them and publish the frame.
func (t *Text) DrawAll() *kernel.Error {
	if t.terminal == nil {
		return errDriverInactive
	}

	regions := t.terminal.Dirty().DirtyRegions()
	if len(regions) == 0 {
		return nil
	}

	for _, region := range regions {
		for _, seg := range term.BuildSegments(t.terminal, region) {
			if err := t.drawSegment(seg); err != nil {
				return err
			}
		}
	}

	if err := t.api.Swap(); err != nil {
		return err
	}

	// A buffered display hands back a zeroed shadow buffer after the swap.
	// Repaint the full grid into it so the shadow mirrors the published
	// frame and the next pass can stay incremental.
	if t.api.Buffered() {
		return t.repaintAll()
	}

	return nil
}

// repaintAll rasterizes the whole grid without touching the dirty state or
// publishing a frame.
func (t *Text) repaintAll() *kernel.Error {
	size := t.terminal.Size()
	full := term.Region{Size: size}

	for _, seg := range term.BuildSegments(t.terminal, full) {
		if err := t.drawSegment(seg); err != nil {
			return err
		}
	}

	return nil
}

// drawSegment rasterizes one coalesced run of same-style cells with a
// single text draw call.
func (t *Text) drawSegment(seg term.TextSegment) *kernel.Error {
	bg := seg.Background.RGB()
	style := display.TextStyle{
		Foreground:    seg.Foreground.RGB(),
		Background:    &bg,
		Font:          t.font,
		Underline:     seg.Underline,
		Strikethrough: seg.Strikethrough,
	}

	pos := display.Position{
		X: seg.Position.X * t.font.GlyphWidth,
		Y: seg.Position.Y * t.font.GlyphHeight,
	}

	return t.api.DrawText(seg.Text, pos, style)
}

// Clear wipes the terminal grid and publishes a solid-color frame; the
// next render pass repaints every cell.
func (t *Text) Clear(c display.Color) *kernel.Error {
	if t.terminal == nil {
		return errDriverInactive
	}

	t.api.Clear(c)
	t.terminal.ClearBuffer()
	return t.api.Swap()
}
