// Package font holds the built-in pixel glyph bitmaps for the clock face.
// Glyphs are 5x3 binary grids packed into the lower 15 bits of a uint16,
// row-major from the top-left, with the most significant bit unused.
package font

import (
	"errors"
	"fmt"
	"math/bits"
)

// Glyph dimensions in pixels
const (
	GlyphRows = 5
	GlyphCols = 3
)

// ErrUnknownGlyph is returned when a glyph id is not in the font table
var ErrUnknownGlyph = errors.New("font: unknown glyph")

// Glyph is one renderable symbol as an immutable fixed-size bitmap
type Glyph struct {
	id   rune
	bits uint16
}

// ID returns the symbol this glyph renders
func (g Glyph) ID() rune { return g.id }

// Rows returns the bitmap height in pixels
func (g Glyph) Rows() int { return GlyphRows }

// Cols returns the bitmap width in pixels
func (g Glyph) Cols() int { return GlyphCols }

// Pixel reports whether the pixel at (row, col) is on.
// Out-of-range coordinates read as off.
func (g Glyph) Pixel(row, col int) bool {
	if row < 0 || row >= GlyphRows || col < 0 || col >= GlyphCols {
		return false
	}
	// Bit 14 is the top-left pixel, bit 0 the bottom-right
	return g.bits&(1<<(14-(row*GlyphCols+col))) != 0
}

// OnCount returns the number of on pixels in the bitmap
func (g Glyph) OnCount() int {
	return bits.OnesCount16(g.bits)
}

// glyphTable maps symbol runes to packed bitmaps. Layout per digit is shown
// as 5 rows of 3, 'x' on, '.' off.
var glyphTable = map[rune]uint16{
	// xxx | x.x | x.x | x.x | xxx
	'0': 0b0111101101101111,
	// .x. | xx. | .x. | .x. | xxx
	'1': 0b0010110010010111,
	// xxx | ..x | xxx | x.. | xxx
	'2': 0b0111001111100111,
	// xxx | ..x | xxx | ..x | xxx
	'3': 0b0111001111001111,
	// x.x | x.x | xxx | ..x | ..x
	'4': 0b0101101111001001,
	// xxx | x.. | xxx | ..x | xxx
	'5': 0b0111100111001111,
	// xxx | x.. | xxx | x.x | xxx
	'6': 0b0111100111101111,
	// xxx | ..x | ..x | ..x | ..x
	'7': 0b0111001001001001,
	// xxx | x.x | xxx | x.x | xxx
	'8': 0b0111101111101111,
	// xxx | x.x | xxx | ..x | xxx
	'9': 0b0111101111001111,
	// ... | .x. | ... | .x. | ...
	':': 0b0000010000010000,
	// blank separator
	' ': 0b0000000000000000,
	// .x. | x.x | xxx | x.x | x.x
	'A': 0b0010101111101101,
	// xxx | x.x | xxx | x.. | x..
	'P': 0b0111101111100100,
	// x.x | xxx | x.x | x.x | x.x
	'M': 0b0101111101101101,
}

// Font resolves symbol runes to glyph bitmaps. Construct with New; the
// table is fixed at build time and immutable afterward.
type Font struct {
	glyphs map[rune]Glyph
}

// New creates a font instance from the built-in table
func New() *Font {
	f := &Font{glyphs: make(map[rune]Glyph, len(glyphTable))}
	for id, packed := range glyphTable {
		f.glyphs[id] = Glyph{id: id, bits: packed}
	}
	return f
}

// Glyph returns the bitmap for the given symbol.
// Asking for a symbol outside the table is a programming error and
// reports ErrUnknownGlyph.
func (f *Font) Glyph(id rune) (Glyph, error) {
	g, ok := f.glyphs[id]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, id)
	}
	return g, nil
}

// Has reports whether the font defines a glyph for the symbol
func (f *Font) Has(id rune) bool {
	_, ok := f.glyphs[id]
	return ok
}
