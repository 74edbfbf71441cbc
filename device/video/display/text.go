package display

import (
	"pixos/device/video/display/font"
	"pixos/kernel"
)

var errNoFont = &kernel.Error{Module: "display", Message: "text draw call without a usable font"}

// drawText renders a string onto the target framebuffer, advancing one font
// cell per character. Text is clipped at the framebuffer edges.
func drawText(fb *Framebuffer, text string, pos Position, style TextStyle) *kernel.Error {
	f := style.Font
	if f == nil || len(f.Data) == 0 {
		return errNoFont
	}

	for i := 0; i < len(text); i++ {
		drawGlyph(fb, text[i], pos, style)
		pos.X += f.GlyphWidth
	}

	return nil
}

// drawGlyph blits a single glyph bitmap. Each bitmap row is BytesPerRow
// bytes with the most significant bit of the first byte mapping to the
// leftmost pixel; set bits select the foreground color, clear bits the
// background (or no write, for a transparent background).
func drawGlyph(fb *Framebuffer, ch byte, pos Position, style TextStyle) {
	f := style.Font

	glyph := uint32(ch)
	if int(glyph) >= f.GlyphCount() {
		glyph = uint32(font.MissingGlyph)
		if int(glyph) >= f.GlyphCount() {
			return
		}
	}

	var (
		dataOffset    = glyph * f.BytesPerRow * f.GlyphHeight
		underlineY    = f.GlyphHeight - 1
		strikeY       = f.GlyphHeight / 2
		x, y          uint32
		mask, rowData uint8
	)

	for y = 0; y < f.GlyphHeight; y, dataOffset = y+1, dataOffset+f.BytesPerRow {
		rowOffset := dataOffset
		rowData = f.Data[rowOffset]
		mask = 1 << 7

		decorated := (style.Underline && y == underlineY) ||
			(style.Strikethrough && y == strikeY)

		for x = 0; x < f.GlyphWidth; x, mask = x+1, mask>>1 {
			if mask == 0 {
				rowOffset++
				rowData = f.Data[rowOffset]
				mask = 1 << 7
			}

			at := Position{X: pos.X + x, Y: pos.Y + y}
			switch {
			case decorated || rowData&mask != 0:
				fb.SetPixel(at, style.Foreground)
			case style.Background != nil:
				fb.SetPixel(at, *style.Background)
			}
		}
	}
}
