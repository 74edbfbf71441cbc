package driver

import (
	"pixos/device/video/display"
	"pixos/device/video/display/font"
	"pixos/kernel"
)

var (
	panicBackground = display.Color{R: 0, G: 0, B: 128}
	panicForeground = display.Color{R: 255, G: 255, B: 255}
)

const panicBanner = "Kernel Panic"

// Dummy is the minimal display driver: a framebuffer pass-through with no
// state beyond the acquired display. Its only job is rendering the panic
// screen, so it must stay usable even when the text driver's own
// invariants are violated.
type Dummy struct {
	font *font.Font

	api    display.API
	handle *display.Handle
}

// NewDummy creates a dummy display driver that renders panic text with the
// given font.
func NewDummy(f *font.Font) *Dummy {
	return &Dummy{font: f}
}

// DriverName implements device.Driver.
func (*Dummy) DriverName() string {
	return "dummy_display"
}

// DriverVersion implements device.Driver.
func (*Dummy) DriverVersion() (major, minor, patch uint16) {
	return 0, 1, 0
}

// Activate implements Driver.
func (d *Dummy) Activate(handle *display.Handle) *kernel.Error {
	api, err := handle.Acquire()
	if err != nil {
		return err
	}

	d.api = api
	d.handle = handle
	return nil
}

// Deactivate implements Driver.
func (d *Dummy) Deactivate() {
	if d.handle == nil {
		return
	}

	d.handle.Release()
	d.api = nil
	d.handle = nil
}

// DrawPanic paints the panic screen: a solid background with the banner
// and the supplied message in plain text. The background under each glyph
// is left untouched so the call cannot fail on background rendering.
func (d *Dummy) DrawPanic(message string) *kernel.Error {
	if d.api == nil {
		return errDriverInactive
	}

	d.api.Clear(panicBackground)

	style := display.TextStyle{
		Foreground: panicForeground,
		Font:       d.font,
	}

	origin := display.Position{X: d.font.GlyphWidth, Y: d.font.GlyphHeight}
	if err := d.api.DrawText(panicBanner, origin, style); err != nil {
		return err
	}

	origin.Y += 2 * d.font.GlyphHeight
	if err := d.api.DrawText(message, origin, style); err != nil {
		return err
	}

	return d.api.Swap()
}
