// Package font describes the fixed bitmap fonts the display layer can
// render with. The package only carries font metadata and bitmap storage;
// producing the bitmaps themselves is the job of an external font provider.
package font

// MissingGlyph is the glyph index substituted when a font does not cover a
// requested character.
const MissingGlyph byte = '?'

// DefaultName is the font used when nothing else has been requested.
const DefaultName = "9x18"

// Font describes a fixed-cell bitmap font.
type Font struct {
	// The name of the font. Bold and italic variants carry a "b"/"i"
	// suffix.
	Name string

	// The size of each glyph cell in pixels.
	GlyphWidth  uint32
	GlyphHeight uint32

	// BytesPerRow is the number of bytes describing one row of a glyph.
	BytesPerRow uint32

	// Data holds the font bitmap: GlyphCount consecutive glyphs of
	// BytesPerRow*GlyphHeight bytes each, one bit per pixel with the most
	// significant bit leftmost. A font without data carries metadata only
	// and cannot be rendered.
	Data []byte
}

// GlyphCount returns the number of glyphs covered by the font bitmap.
func (f *Font) GlyphCount() int {
	if f.BytesPerRow == 0 || f.GlyphHeight == 0 {
		return 0
	}
	return len(f.Data) / int(f.BytesPerRow*f.GlyphHeight)
}

// WithBitmap returns a copy of the font descriptor with the supplied bitmap
// attached.
func (f Font) WithBitmap(data []byte) *Font {
	f.Data = data
	return &f
}

// availableFonts lists the supported font cell geometries. The descriptors
// are fixed; bitmaps get attached by the font provider via WithBitmap.
var availableFonts = []*Font{
	{Name: "6x9", GlyphWidth: 6, GlyphHeight: 9, BytesPerRow: 1},
	{Name: "6x10", GlyphWidth: 6, GlyphHeight: 10, BytesPerRow: 1},
	{Name: "6x12", GlyphWidth: 6, GlyphHeight: 12, BytesPerRow: 1},
	{Name: "6x13", GlyphWidth: 6, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "6x13b", GlyphWidth: 6, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "6x13i", GlyphWidth: 6, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "7x13", GlyphWidth: 7, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "7x13b", GlyphWidth: 7, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "7x13i", GlyphWidth: 7, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "7x14", GlyphWidth: 7, GlyphHeight: 14, BytesPerRow: 1},
	{Name: "7x14b", GlyphWidth: 7, GlyphHeight: 14, BytesPerRow: 1},
	{Name: "8x13", GlyphWidth: 8, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "8x13b", GlyphWidth: 8, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "8x13i", GlyphWidth: 8, GlyphHeight: 13, BytesPerRow: 1},
	{Name: "9x15", GlyphWidth: 9, GlyphHeight: 15, BytesPerRow: 2},
	{Name: "9x15b", GlyphWidth: 9, GlyphHeight: 15, BytesPerRow: 2},
	{Name: "9x18", GlyphWidth: 9, GlyphHeight: 18, BytesPerRow: 2},
	{Name: "9x18b", GlyphWidth: 9, GlyphHeight: 18, BytesPerRow: 2},
	{Name: "10x20", GlyphWidth: 10, GlyphHeight: 20, BytesPerRow: 2},
}

// List returns the available font descriptors.
func List() []*Font {
	return availableFonts
}

// FindByName looks up a font descriptor by name. If the font is not found
// then the function returns nil.
func FindByName(name string) *Font {
	for _, f := range availableFonts {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// Default returns the default font descriptor.
func Default() *Font {
	return FindByName(DefaultName)
}

// BestFit returns the font whose cell size maps the given screen dimensions
// closest to a standard 80x25 character grid. Ties resolve to the earlier
// (smaller) font in the list.
func BestFit(screenWidth, screenHeight uint32) *Font {
	const (
		wantColumns = 80
		wantRows    = 25
	)

	var (
		best      *Font
		bestDelta uint32
	)

	for _, f := range availableFonts {
		cols := screenWidth / f.GlyphWidth
		rows := screenHeight / f.GlyphHeight

		delta := absDelta(cols, wantColumns) + absDelta(rows, wantRows)
		if best == nil || delta < bestDelta {
			best = f
			bestDelta = delta
		}
	}

	return best
}

func absDelta(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
