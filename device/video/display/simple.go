package display

import "pixos/kernel"

var errDrawSizeMismatch = &kernel.Error{Module: "display", Message: "draw buffer length does not match the framebuffer length"}

// Simple is an unbuffered display: draw operations mutate the physical
// framebuffer directly and Swap is a no-op. Partial draws are therefore
// immediately visible; displays that need tear-free publishing use Buffered
// instead.
type Simple struct {
	fb *Framebuffer
}

// NewSimple creates an unbuffered display over the supplied framebuffer
// memory.
func NewSimple(buf []uint8, info Info) (*Simple, *kernel.Error) {
	fb, err := NewFramebuffer(buf, info)
	if err != nil {
		return nil, err
	}

	return &Simple{fb: fb}, nil
}

// Draw blits a whole frame into the physical framebuffer.
func (d *Simple) Draw(buf []byte) *kernel.Error {
	if len(buf) != len(d.fb.buf) {
		return errDrawSizeMismatch
	}

	copy(d.fb.buf, buf)
	return nil
}

// DrawText renders a string directly onto the physical framebuffer.
func (d *Simple) DrawText(text string, pos Position, style TextStyle) *kernel.Error {
	return drawText(d.fb, text, pos, style)
}

// SetPixel writes a single pixel to the physical framebuffer.
func (d *Simple) SetPixel(pos Position, c Color) {
	d.fb.SetPixel(pos, c)
}

// Clear overwrites the physical framebuffer with the given color.
func (d *Simple) Clear(c Color) {
	d.fb.Clear(c)
}

// Swap is a no-op on an unbuffered display.
func (d *Simple) Swap() *kernel.Error {
	return nil
}

// Info returns the framebuffer geometry descriptor.
func (d *Simple) Info() Info {
	return d.fb.Info()
}

// Buffered reports that this display is not double-buffered.
func (d *Simple) Buffered() bool {
	return false
}
