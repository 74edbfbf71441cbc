package display

import "pixos/kernel"

var (
	errUnsupportedFormat = &kernel.Error{Module: "display", Message: "unsupported pixel format"}
	errBufferTooSmall    = &kernel.Error{Module: "display", Message: "framebuffer smaller than the geometry it describes"}
)

// Framebuffer wraps a raw byte buffer together with its geometry descriptor
// and converts logical pixel writes into the correct byte pattern for the
// pixel format in use. It borrows the buffer for its entire lifetime and
// never reallocates it.
type Framebuffer struct {
	buf  []uint8
	info Info
}

// NewFramebuffer validates the geometry descriptor against the supplied
// buffer and returns a framebuffer for it. Unsupported pixel formats and
// undersized buffers are configuration errors the caller cannot recover
// from.
func NewFramebuffer(buf []uint8, info Info) (*Framebuffer, *kernel.Error) {
	switch info.Format {
	case FormatRGB, FormatBGR, FormatGray:
	default:
		return nil, errUnsupportedFormat
	}

	if len(buf) < info.BufferSize() {
		return nil, errBufferTooSmall
	}

	return &Framebuffer{buf: buf, info: info}, nil
}

// Info returns the framebuffer geometry descriptor.
func (fb *Framebuffer) Info() Info {
	return fb.info
}

// Bytes exposes the underlying byte buffer.
func (fb *Framebuffer) Bytes() []uint8 {
	return fb.buf
}

// SetPixel writes the color at the given pixel position. Writes outside the
// visible area are dropped.
func (fb *Framebuffer) SetPixel(pos Position, c Color) {
	if pos.X >= fb.info.Width || pos.Y >= fb.info.Height {
		return
	}

	offset := int((pos.Y*fb.info.Stride + pos.X) * fb.info.BytesPerPixel)
	fb.setPixelAt(offset, c)
}

// Clear overwrites every pixel, including any stride padding, with the given
// color.
func (fb *Framebuffer) Clear(c Color) {
	bpp := int(fb.info.BytesPerPixel)
	for offset := 0; offset < fb.info.BufferSize(); offset += bpp {
		fb.setPixelAt(offset, c)
	}
}

// setPixelAt encodes the color into the bytes at offset according to the
// active pixel format. The grayscale reduction divides each channel by 3
// before summing; the result differs from a proper luma weighting but is
// kept bit-compatible with the reference framebuffer contract.
func (fb *Framebuffer) setPixelAt(offset int, c Color) {
	switch fb.info.Format {
	case FormatRGB:
		fb.buf[offset] = c.R
		fb.buf[offset+1] = c.G
		fb.buf[offset+2] = c.B
	case FormatBGR:
		fb.buf[offset] = c.B
		fb.buf[offset+1] = c.G
		fb.buf[offset+2] = c.R
	case FormatGray:
		fb.buf[offset] = c.R/3 + c.G/3 + c.B/3
	}
}
