package display

import "pixos/kernel"

var errSwapSizeMismatch = &kernel.Error{Module: "display", Message: "shadow and framebuffer lengths diverged on swap"}

// Buffered is a double-buffered display: draw operations target an
// internally owned shadow buffer and Swap publishes the whole shadow buffer
// to the physical framebuffer in one pass. Between two swaps, partial draws
// are only ever observable through the shadow buffer.
type Buffered struct {
	fb     *Framebuffer
	shadow *Framebuffer
}

// NewBuffered creates a double-buffered display over the supplied
// framebuffer memory. The shadow buffer is allocated here and lives exactly
// as long as the display instance.
func NewBuffered(buf []uint8, info Info) (*Buffered, *kernel.Error) {
	fb, err := NewFramebuffer(buf, info)
	if err != nil {
		return nil, err
	}

	// The shadow framebuffer shares the physical geometry so both buffers
	// are equal length by construction.
	shadow, err := NewFramebuffer(make([]uint8, len(fb.buf)), info)
	if err != nil {
		return nil, err
	}

	return &Buffered{fb: fb, shadow: shadow}, nil
}

// Draw blits a whole frame into the shadow buffer.
func (d *Buffered) Draw(buf []byte) *kernel.Error {
	if len(buf) != len(d.shadow.buf) {
		return errDrawSizeMismatch
	}

	copy(d.shadow.buf, buf)
	return nil
}

// DrawText renders a string onto the shadow buffer.
func (d *Buffered) DrawText(text string, pos Position, style TextStyle) *kernel.Error {
	return drawText(d.shadow, text, pos, style)
}

// SetPixel writes a single pixel to the shadow buffer.
func (d *Buffered) SetPixel(pos Position, c Color) {
	d.shadow.SetPixel(pos, c)
}

// Clear overwrites the shadow buffer with the given color.
func (d *Buffered) Clear(c Color) {
	d.shadow.Clear(c)
}

// Swap copies the shadow buffer over the physical framebuffer and resets
// the shadow buffer to zero. A length mismatch between the two buffers is
// impossible by construction; detecting one means memory corruption.
func (d *Buffered) Swap() *kernel.Error {
	if len(d.fb.buf) != len(d.shadow.buf) {
		return errSwapSizeMismatch
	}

	copy(d.fb.buf, d.shadow.buf)
	for i := range d.shadow.buf {
		d.shadow.buf[i] = 0
	}

	return nil
}

// Info returns the framebuffer geometry descriptor.
func (d *Buffered) Info() Info {
	return d.fb.Info()
}

// Buffered reports that this display is double-buffered.
func (d *Buffered) Buffered() bool {
	return true
}
