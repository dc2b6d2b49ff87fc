// Package render is the pixel-to-cell pipeline: it resamples glyph bitmaps
// onto the terminal cell grid with fractional coverage, composes them on a
// canvas, and drives minimal diff-based screen updates.
package render

// CoverageGrid holds per-cell coverage fractions in [0,1] produced by
// Resample. Row-major, immutable once returned.
type CoverageGrid struct {
	rows, cols int
	v          []float64
}

// Rows returns the grid height in cells
func (g *CoverageGrid) Rows() int { return g.rows }

// Cols returns the grid width in cells
func (g *CoverageGrid) Cols() int { return g.cols }

// At returns the coverage fraction at (row, col)
func (g *CoverageGrid) At(row, col int) float64 {
	return g.v[row*g.cols+col]
}
