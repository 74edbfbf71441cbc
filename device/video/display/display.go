// Package display implements the framebuffer compositor layer: it turns
// logical pixel and text operations into physical-format byte writes and
// publishes composed frames through an explicit swap contract.
package display

import (
	"pixos/device/video/display/font"
	"pixos/kernel"
)

// PixelFormat describes the byte encoding of a single pixel in the
// framebuffer.
type PixelFormat uint8

// The list of pixel formats handed to us by the bootloader.
const (
	// FormatRGB stores one byte each for red, green and blue, in that order.
	FormatRGB PixelFormat = iota

	// FormatBGR stores one byte each for blue, green and red, in that order.
	FormatBGR

	// FormatGray stores a single luminance byte per pixel.
	FormatGray

	// FormatUnknown is any other layout; it cannot be driven.
	FormatUnknown
)

// String returns the name of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatBGR:
		return "bgr"
	case FormatGray:
		return "gray"
	default:
		return "unknown"
	}
}

// Position describes a location on the display or the terminal grid.
type Position struct {
	X uint32
	Y uint32
}

// Size describes the dimensions of a display or a region on it.
type Size struct {
	Width  uint32
	Height uint32
}

// Color describes a 24-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Info describes the geometry and pixel layout of a framebuffer. It is
// handed to the display layer by the boot collaborator together with the
// raw framebuffer memory.
type Info struct {
	// Display dimensions in pixels.
	Width  uint32
	Height uint32

	// Stride is the number of pixels per scanline. It may exceed Width
	// when the hardware pads scanlines.
	Stride uint32

	// BytesPerPixel is the byte footprint of a single pixel.
	BytesPerPixel uint32

	// Format selects the byte layout used when encoding a color.
	Format PixelFormat
}

// BufferSize returns the number of framebuffer bytes covered by this
// geometry.
func (info Info) BufferSize() int {
	return int(info.Height * info.Stride * info.BytesPerPixel)
}

// TextStyle bundles the styling parameters for a text draw call.
type TextStyle struct {
	Foreground Color

	// Background is the fill color behind the glyph. A nil background
	// leaves non-glyph pixels untouched.
	Background *Color

	Font *font.Font

	Underline     bool
	Strikethrough bool
}

// API is the contract implemented by all displays. Draw operations target
// the back buffer on buffered displays and the physical framebuffer on
// unbuffered ones; Swap publishes the composed frame either way.
type API interface {
	// Draw blits a whole pre-composed frame. The buffer length must match
	// the framebuffer length exactly.
	Draw(buf []byte) *kernel.Error

	// DrawText renders a string at the given pixel position.
	DrawText(text string, pos Position, style TextStyle) *kernel.Error

	// SetPixel writes a single pixel.
	SetPixel(pos Position, c Color)

	// Clear overwrites every pixel with the given color.
	Clear(c Color)

	// Swap publishes the changes made since the last swap.
	Swap() *kernel.Error

	// Info returns the framebuffer geometry descriptor.
	Info() Info

	// Buffered reports whether draw operations are double-buffered.
	Buffered() bool
}
