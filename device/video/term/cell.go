// Package term implements the character-cell model behind the text display
// driver: a fixed grid of packed cells, a cursor, per-cell dirty tracking
// and the coalescing of dirty cells into minimal text draw segments.
package term

import "pixos/device/video/display"

// TextColor indexes the fixed 16-entry terminal palette.
type TextColor uint8

// The terminal palette.
const (
	Black TextColor = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// textPalette maps every palette index to its RGB value. Blue and LightBlue
// intentionally resolve to the same navy tone; the table reproduces the
// reference palette as-is.
var textPalette = [16]display.Color{
	Black:      {R: 0, G: 0, B: 0},
	Blue:       {R: 0, G: 0, B: 128},
	Green:      {R: 0, G: 128, B: 0},
	Cyan:       {R: 0, G: 128, B: 128},
	Red:        {R: 128, G: 0, B: 0},
	Magenta:    {R: 128, G: 0, B: 128},
	Brown:      {R: 165, G: 42, B: 42},
	LightGray:  {R: 192, G: 192, B: 192},
	DarkGray:   {R: 128, G: 128, B: 128},
	LightBlue:  {R: 0, G: 0, B: 128},
	LightGreen: {R: 0, G: 255, B: 0},
	LightCyan:  {R: 0, G: 255, B: 255},
	LightRed:   {R: 255, G: 0, B: 0},
	Pink:       {R: 255, G: 0, B: 255},
	Yellow:     {R: 255, G: 255, B: 0},
	White:      {R: 255, G: 255, B: 255},
}

// RGB resolves the palette index to its RGB value.
func (c TextColor) RGB() display.Color {
	return textPalette[c&0x0F]
}

// ColorCode packs a foreground (low nibble) and background (high nibble)
// palette index into one byte.
type ColorCode uint8

// NewColorCode packs a foreground/background color pair.
func NewColorCode(fg, bg TextColor) ColorCode {
	return ColorCode(uint8(bg)<<4 | uint8(fg)&0x0F)
}

// Foreground returns the foreground palette index.
func (c ColorCode) Foreground() TextColor {
	return TextColor(c & 0x0F)
}

// Background returns the background palette index.
func (c ColorCode) Background() TextColor {
	return TextColor(c >> 4)
}

// Invert swaps the foreground and background nibbles.
func (c ColorCode) Invert() ColorCode {
	return c<<4 | c>>4
}

// Attributes is a bit set of per-cell style flags.
type Attributes uint8

// The supported cell attributes.
const (
	AttrUnderline Attributes = 1 << iota
	AttrStrikethrough
)

// ScreenChar packs a character, its color code and its attributes into one
// word: the character occupies bits 0-7, the color code bits 8-15 and the
// attributes bits 16-23.
type ScreenChar uint32

// NewScreenChar packs a cell value.
func NewScreenChar(ch byte, color ColorCode, attr Attributes) ScreenChar {
	return ScreenChar(ch) | ScreenChar(color)<<8 | ScreenChar(attr)<<16
}

// Char returns the character stored in the cell.
func (sc ScreenChar) Char() byte {
	return byte(sc)
}

// Color returns the packed color code stored in the cell.
func (sc ScreenChar) Color() ColorCode {
	return ColorCode(sc >> 8)
}

// Attr returns the attributes stored in the cell.
func (sc ScreenChar) Attr() Attributes {
	return Attributes(sc >> 16)
}

// Style returns the color code and attributes as one comparable pair.
func (sc ScreenChar) Style() CellStyle {
	return CellStyle{Color: sc.Color(), Attr: sc.Attr()}
}

// CellStyle is the visual style of a cell without its character.
type CellStyle struct {
	Color ColorCode
	Attr  Attributes
}

// blankStyle is the style of cells that have never been written: black on
// black with no attributes. The segment builder treats it as the only style
// worth breaking a run for.
var blankStyle = CellStyle{Color: NewColorCode(Black, Black)}

// IsBlank reports whether the style is the untouched black-on-black marker.
func (cs CellStyle) IsBlank() bool {
	return cs == blankStyle
}
