package render

import (
	"errors"
	"math"
)

// ErrInvalidDestination is returned for a zero-sized resample target
var ErrInvalidDestination = errors.New("render: destination must be at least 1x1")

// Bitmap is a read-only binary pixel grid. font.Glyph satisfies it; tests
// supply synthetic bitmaps directly.
type Bitmap interface {
	Rows() int
	Cols() int
	Pixel(row, col int) bool
}

// Resample maps a glyph bitmap onto a destRows x destCols cell grid using
// area-averaging (box) resampling. Each destination cell covers a rectangle
// in source pixel space; its coverage is the on-pixel area inside that
// rectangle divided by the rectangle area. Handles both downsampling
// (several source pixels blend into one cell) and upsampling (one source
// pixel spans several cells at full coverage). Values are not rounded;
// quantization to shade runes happens at the canvas layer.
func Resample(g Bitmap, destRows, destCols int) (*CoverageGrid, error) {
	if destRows < 1 || destCols < 1 {
		return nil, ErrInvalidDestination
	}

	srcRows := g.Rows()
	srcCols := g.Cols()
	rowScale := float64(srcRows) / float64(destRows)
	colScale := float64(srcCols) / float64(destCols)

	out := &CoverageGrid{
		rows: destRows,
		cols: destCols,
		v:    make([]float64, destRows*destCols),
	}

	for r := 0; r < destRows; r++ {
		r0 := float64(r) * rowScale
		r1 := float64(r+1) * rowScale
		for c := 0; c < destCols; c++ {
			c0 := float64(c) * colScale
			c1 := float64(c+1) * colScale
			out.v[r*destCols+c] = boxCoverage(g, r0, r1, c0, c1)
		}
	}

	return out, nil
}

// boxCoverage integrates on-pixel area over the source-space rectangle
// [r0,r1) x [c0,c1) and normalizes by the rectangle area. Pixels outside
// the bitmap contribute zero, so regions clipped at the edges darken
// toward off rather than erroring.
func boxCoverage(g Bitmap, r0, r1, c0, c1 float64) float64 {
	area := (r1 - r0) * (c1 - c0)
	if area <= 0 {
		return 0
	}

	sum := 0.0
	for sr := int(math.Floor(r0)); sr < int(math.Ceil(r1)); sr++ {
		if sr < 0 || sr >= g.Rows() {
			continue
		}
		rowOverlap := math.Min(r1, float64(sr+1)) - math.Max(r0, float64(sr))
		if rowOverlap <= 0 {
			continue
		}
		for sc := int(math.Floor(c0)); sc < int(math.Ceil(c1)); sc++ {
			if sc < 0 || sc >= g.Cols() {
				continue
			}
			if !g.Pixel(sr, sc) {
				continue
			}
			colOverlap := math.Min(c1, float64(sc+1)) - math.Max(c0, float64(sc))
			if colOverlap > 0 {
				sum += rowOverlap * colOverlap
			}
		}
	}

	return sum / area
}
