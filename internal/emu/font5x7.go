package emu

import "pixos/device/video/display/font"

// glyphPatterns is a compact 5x7 bitmap font for the printable ASCII range.
// An 'X' marks a set pixel. Characters without an entry render as empty
// cells.
var glyphPatterns = map[byte][7]string{
	'!':  {"..X..", "..X..", "..X..", "..X..", "..X..", ".....", "..X.."},
	'"':  {".X.X.", ".X.X.", ".X.X.", ".....", ".....", ".....", "....."},
	'#':  {".X.X.", ".X.X.", "XXXXX", ".X.X.", "XXXXX", ".X.X.", ".X.X."},
	'$':  {"..X..", ".XXXX", "X.X..", ".XXX.", "..X.X", "XXXX.", "..X.."},
	'%':  {"XX...", "XX..X", "...X.", "..X..", ".X...", "X..XX", "...XX"},
	'&':  {".XX..", "X..X.", "X.X..", ".X...", "X.X.X", "X..X.", ".XX.X"},
	'\'': {"..X..", "..X..", "..X..", ".....", ".....", ".....", "....."},
	'(':  {"...X.", "..X..", ".X...", ".X...", ".X...", "..X..", "...X."},
	')':  {".X...", "..X..", "...X.", "...X.", "...X.", "..X..", ".X..."},
	'*':  {".....", "X.X.X", ".XXX.", "XXXXX", ".XXX.", "X.X.X", "....."},
	'+':  {".....", "..X..", "..X..", "XXXXX", "..X..", "..X..", "....."},
	',':  {".....", ".....", ".....", ".....", ".XX..", "..X..", ".X..."},
	'-':  {".....", ".....", ".....", "XXXXX", ".....", ".....", "....."},
	'.':  {".....", ".....", ".....", ".....", ".....", ".XX..", ".XX.."},
	'/':  {".....", "....X", "...X.", "..X..", ".X...", "X....", "....."},
	'0':  {".XXX.", "X...X", "X..XX", "X.X.X", "XX..X", "X...X", ".XXX."},
	'1':  {"..X..", ".XX..", "..X..", "..X..", "..X..", "..X..", ".XXX."},
	'2':  {".XXX.", "X...X", "....X", "...X.", "..X..", ".X...", "XXXXX"},
	'3':  {".XXX.", "X...X", "....X", "..XX.", "....X", "X...X", ".XXX."},
	'4':  {"...X.", "..XX.", ".X.X.", "X..X.", "XXXXX", "...X.", "...X."},
	'5':  {"XXXXX", "X....", "XXXX.", "....X", "....X", "X...X", ".XXX."},
	'6':  {".XXX.", "X....", "X....", "XXXX.", "X...X", "X...X", ".XXX."},
	'7':  {"XXXXX", "....X", "...X.", "..X..", ".X...", ".X...", ".X..."},
	'8':  {".XXX.", "X...X", "X...X", ".XXX.", "X...X", "X...X", ".XXX."},
	'9':  {".XXX.", "X...X", "X...X", ".XXXX", "....X", "....X", ".XXX."},
	':':  {".....", ".XX..", ".XX..", ".....", ".XX..", ".XX..", "....."},
	';':  {".....", ".XX..", ".XX..", ".....", ".XX..", "..X..", ".X..."},
	'<':  {"...X.", "..X..", ".X...", "X....", ".X...", "..X..", "...X."},
	'=':  {".....", ".....", "XXXXX", ".....", "XXXXX", ".....", "....."},
	'>':  {".X...", "..X..", "...X.", "....X", "...X.", "..X..", ".X..."},
	'?':  {".XXX.", "X...X", "....X", "...X.", "..X..", ".....", "..X.."},
	'@':  {".XXX.", "X...X", "X.XXX", "X.X.X", "X.XXX", "X....", ".XXX."},
	'A':  {".XXX.", "X...X", "X...X", "XXXXX", "X...X", "X...X", "X...X"},
	'B':  {"XXXX.", "X...X", "X...X", "XXXX.", "X...X", "X...X", "XXXX."},
	'C':  {".XXX.", "X...X", "X....", "X....", "X....", "X...X", ".XXX."},
	'D':  {"XXXX.", "X...X", "X...X", "X...X", "X...X", "X...X", "XXXX."},
	'E':  {"XXXXX", "X....", "X....", "XXXX.", "X....", "X....", "XXXXX"},
	'F':  {"XXXXX", "X....", "X....", "XXXX.", "X....", "X....", "X...."},
	'G':  {".XXX.", "X...X", "X....", "X.XXX", "X...X", "X...X", ".XXXX"},
	'H':  {"X...X", "X...X", "X...X", "XXXXX", "X...X", "X...X", "X...X"},
	'I':  {".XXX.", "..X..", "..X..", "..X..", "..X..", "..X..", ".XXX."},
	'J':  {"..XXX", "...X.", "...X.", "...X.", "...X.", "X..X.", ".XX.."},
	'K':  {"X...X", "X..X.", "X.X..", "XX...", "X.X..", "X..X.", "X...X"},
	'L':  {"X....", "X....", "X....", "X....", "X....", "X....", "XXXXX"},
	'M':  {"X...X", "XX.XX", "X.X.X", "X.X.X", "X...X", "X...X", "X...X"},
	'N':  {"X...X", "XX..X", "X.X.X", "X..XX", "X...X", "X...X", "X...X"},
	'O':  {".XXX.", "X...X", "X...X", "X...X", "X...X", "X...X", ".XXX."},
	'P':  {"XXXX.", "X...X", "X...X", "XXXX.", "X....", "X....", "X...."},
	'Q':  {".XXX.", "X...X", "X...X", "X...X", "X.X.X", "X..X.", ".XX.X"},
	'R':  {"XXXX.", "X...X", "X...X", "XXXX.", "X.X..", "X..X.", "X...X"},
	'S':  {".XXXX", "X....", "X....", ".XXX.", "....X", "....X", "XXXX."},
	'T':  {"XXXXX", "..X..", "..X..", "..X..", "..X..", "..X..", "..X.."},
	'U':  {"X...X", "X...X", "X...X", "X...X", "X...X", "X...X", ".XXX."},
	'V':  {"X...X", "X...X", "X...X", "X...X", "X...X", ".X.X.", "..X.."},
	'W':  {"X...X", "X...X", "X...X", "X.X.X", "X.X.X", "XX.XX", "X...X"},
	'X':  {"X...X", "X...X", ".X.X.", "..X..", ".X.X.", "X...X", "X...X"},
	'Y':  {"X...X", "X...X", ".X.X.", "..X..", "..X..", "..X..", "..X.."},
	'Z':  {"XXXXX", "....X", "...X.", "..X..", ".X...", "X....", "XXXXX"},
	'[':  {".XXX.", ".X...", ".X...", ".X...", ".X...", ".X...", ".XXX."},
	'\\': {".....", "X....", ".X...", "..X..", "...X.", "....X", "....."},
	']':  {".XXX.", "...X.", "...X.", "...X.", "...X.", "...X.", ".XXX."},
	'^':  {"..X..", ".X.X.", "X...X", ".....", ".....", ".....", "....."},
	'_':  {".....", ".....", ".....", ".....", ".....", ".....", "XXXXX"},
	'`':  {".X...", "..X..", "...X.", ".....", ".....", ".....", "....."},
	'a':  {".....", ".....", ".XXX.", "....X", ".XXXX", "X...X", ".XXXX"},
	'b':  {"X....", "X....", "XXXX.", "X...X", "X...X", "X...X", "XXXX."},
	'c':  {".....", ".....", ".XXX.", "X....", "X....", "X...X", ".XXX."},
	'd':  {"....X", "....X", ".XXXX", "X...X", "X...X", "X...X", ".XXXX"},
	'e':  {".....", ".....", ".XXX.", "X...X", "XXXXX", "X....", ".XXX."},
	'f':  {"..XX.", ".X..X", ".X...", "XXX..", ".X...", ".X...", ".X..."},
	'g':  {".....", ".XXXX", "X...X", "X...X", ".XXXX", "....X", ".XXX."},
	'h':  {"X....", "X....", "XXXX.", "X...X", "X...X", "X...X", "X...X"},
	'i':  {"..X..", ".....", ".XX..", "..X..", "..X..", "..X..", ".XXX."},
	'j':  {"...X.", ".....", "..XX.", "...X.", "...X.", "X..X.", ".XX.."},
	'k':  {"X....", "X....", "X..X.", "X.X..", "XX...", "X.X..", "X..X."},
	'l':  {".XX..", "..X..", "..X..", "..X..", "..X..", "..X..", ".XXX."},
	'm':  {".....", ".....", "XX.X.", "X.X.X", "X.X.X", "X.X.X", "X.X.X"},
	'n':  {".....", ".....", "XXXX.", "X...X", "X...X", "X...X", "X...X"},
	'o':  {".....", ".....", ".XXX.", "X...X", "X...X", "X...X", ".XXX."},
	'p':  {".....", "XXXX.", "X...X", "X...X", "XXXX.", "X....", "X...."},
	'q':  {".....", ".XXXX", "X...X", "X...X", ".XXXX", "....X", "....X"},
	'r':  {".....", ".....", "X.XX.", "XX..X", "X....", "X....", "X...."},
	's':  {".....", ".....", ".XXXX", "X....", ".XXX.", "....X", "XXXX."},
	't':  {".X...", ".X...", "XXX..", ".X...", ".X...", ".X..X", "..XX."},
	'u':  {".....", ".....", "X...X", "X...X", "X...X", "X...X", ".XXXX"},
	'v':  {".....", ".....", "X...X", "X...X", "X...X", ".X.X.", "..X.."},
	'w':  {".....", ".....", "X...X", "X...X", "X.X.X", "X.X.X", ".X.X."},
	'x':  {".....", ".....", "X...X", ".X.X.", "..X..", ".X.X.", "X...X"},
	'y':  {".....", "X...X", "X...X", ".XXXX", "....X", "X...X", ".XXX."},
	'z':  {".....", ".....", "XXXXX", "...X.", "..X..", ".X...", "XXXXX"},
	'{':  {"...X.", "..X..", "..X..", ".X...", "..X..", "..X..", "...X."},
	'|':  {"..X..", "..X..", "..X..", "..X..", "..X..", "..X..", "..X.."},
	'}':  {".X...", "..X..", "..X..", "...X.", "..X..", "..X..", ".X..."},
	'~':  {".....", ".X...", "X.X.X", "...X.", ".....", ".....", "....."},
}

// hostFont attaches bitmap data to a font descriptor by scaling the 5x7
// glyph patterns to the descriptor's cell size with nearest-neighbor
// sampling, so any of the fixed font geometries can be rendered on the
// host.
func hostFont(f *font.Font) *font.Font {
	glyphSize := f.BytesPerRow * f.GlyphHeight
	data := make([]byte, 128*int(glyphSize))

	for ch := byte(' '); ch < 0x7F; ch++ {
		pattern, ok := glyphPatterns[ch]
		if !ok {
			continue
		}

		base := uint32(ch) * glyphSize
		for y := uint32(0); y < f.GlyphHeight; y++ {
			row := pattern[y*7/f.GlyphHeight]
			for x := uint32(0); x < f.GlyphWidth; x++ {
				if row[x*5/f.GlyphWidth] != 'X' {
					continue
				}
				data[base+y*f.BytesPerRow+x/8] |= 1 << (7 - x%8)
			}
		}
	}

	return f.WithBitmap(data)
}
