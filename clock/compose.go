package clock

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pixclock/font"
	"github.com/lixenwraith/pixclock/render"
)

// Options controls clock face layout
type Options struct {
	// ShowSeconds adds a second colon group
	ShowSeconds bool

	// Military selects 24-hour time and drops the AM/PM suffix
	Military bool

	// Center overrides OriginRow/OriginCol with a computed centered origin
	Center bool

	// Top-left cell of the clock face when not centered
	OriginRow int
	OriginCol int

	// Terminal cells per glyph pixel. The defaults (1 row, 2 cols)
	// compensate for the roughly 2:1 cell aspect ratio.
	PixelRows int
	PixelCols int
}

// withDefaults clamps scale factors to at least one cell per pixel
func (o Options) withDefaults() Options {
	if o.PixelRows < 1 {
		o.PixelRows = 1
	}
	if o.PixelCols < 1 {
		o.PixelCols = 2
	}
	return o
}

// Composer lays a clock face onto a canvas each frame. Resampled glyph
// grids are cached per dimension since the face reuses the same dozen
// symbols every second.
type Composer struct {
	font  *font.Font
	opts  Options
	cache map[cacheKey]*render.CoverageGrid
}

type cacheKey struct {
	id         rune
	rows, cols int
}

// NewComposer creates a composer over an explicit font instance
func NewComposer(f *font.Font, opts Options) *Composer {
	return &Composer{
		font:  f,
		opts:  opts.withDefaults(),
		cache: make(map[cacheKey]*render.CoverageGrid),
	}
}

// symbolCount returns how many glyph slots the face occupies
func (c *Composer) symbolCount() int {
	n := 5
	if c.opts.ShowSeconds {
		n += 3
	}
	if !c.opts.Military {
		n += 3
	}
	return n
}

// glyphCells returns one glyph's footprint in cells
func (c *Composer) glyphCells() (rows, cols int) {
	return font.GlyphRows * c.opts.PixelRows, font.GlyphCols * c.opts.PixelCols
}

// faceCells returns the full face footprint in cells, including the
// one-pixel-wide gap between symbols
func (c *Composer) faceCells() (rows, cols int) {
	glyphRows, glyphCols := c.glyphCells()
	n := c.symbolCount()
	return glyphRows, n*glyphCols + (n-1)*c.opts.PixelCols
}

// Fits reports whether the face fits a terminal of the given dimensions
// at the configured origin (or centered)
func (c *Composer) Fits(rows, cols int) bool {
	faceRows, faceCols := c.faceCells()
	if c.opts.Center {
		return rows >= faceRows && cols >= faceCols
	}
	return rows-c.opts.OriginRow >= faceRows && cols-c.opts.OriginCol >= faceCols
}

// origin resolves the face's top-left cell for a canvas of the given size
func (c *Composer) origin(rows, cols int) (row, col int) {
	if !c.opts.Center {
		return c.opts.OriginRow, c.opts.OriginCol
	}
	faceRows, faceCols := c.faceCells()
	return (rows - faceRows) / 2, (cols - faceCols) / 2
}

// Compose renders the time onto the canvas. Symbols that extend past the
// canvas are clipped by the canvas itself; composing never fails for size
// reasons, only for symbols missing from the font.
func (c *Composer) Compose(now time.Time, cv *render.Canvas) error {
	glyphRows, glyphCols := c.glyphCells()
	row, col := c.origin(cv.Rows(), cv.Cols())

	for _, id := range Slice(now, c.opts.ShowSeconds, c.opts.Military) {
		grid, err := c.grid(id, glyphRows, glyphCols)
		if err != nil {
			return fmt.Errorf("compose clock face: %w", err)
		}
		cv.Place(id, grid, row, col)
		col += glyphCols + c.opts.PixelCols
	}
	return nil
}

// grid returns the resampled coverage grid for a symbol, cached
func (c *Composer) grid(id rune, rows, cols int) (*render.CoverageGrid, error) {
	key := cacheKey{id: id, rows: rows, cols: cols}
	if g, ok := c.cache[key]; ok {
		return g, nil
	}

	glyph, err := c.font.Glyph(id)
	if err != nil {
		return nil, err
	}
	g, err := render.Resample(glyph, rows, cols)
	if err != nil {
		return nil, err
	}
	c.cache[key] = g
	return g, nil
}
