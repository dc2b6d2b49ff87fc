package render

// cell is one canvas position: composed coverage plus the identity tag of
// the glyph that produced it. Tag 0 is background.
type cell struct {
	coverage float64
	tag      rune
}

// Canvas is the compositing surface coverage grids are placed onto before a
// frame is diffed against the previous one. Owned exclusively by its user
// for the frame; the driver only reads it.
type Canvas struct {
	cells []cell
	rows  int
	cols  int
}

// NewCanvas creates a cleared canvas with the given dimensions
func NewCanvas(rows, cols int) *Canvas {
	return &Canvas{
		cells: make([]cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Rows returns the canvas height in cells
func (cv *Canvas) Rows() int { return cv.rows }

// Cols returns the canvas width in cells
func (cv *Canvas) Cols() int { return cv.cols }

// At returns the coverage and tag at (row, col)
func (cv *Canvas) At(row, col int) (coverage float64, tag rune) {
	c := cv.cells[row*cv.cols+col]
	return c.coverage, c.tag
}

// Place writes a coverage grid onto the canvas with its top-left at
// (originRow, originCol), overwriting prior content at overlapping cells.
// Grid cells that fall outside canvas bounds are dropped silently; partial
// visibility at the terminal edges is expected. Cells that resolve to zero
// coverage drop the tag so the diff treats them as background.
func (cv *Canvas) Place(tag rune, grid *CoverageGrid, originRow, originCol int) {
	for r := 0; r < grid.Rows(); r++ {
		row := originRow + r
		if row < 0 || row >= cv.rows {
			continue
		}
		for c := 0; c < grid.Cols(); c++ {
			col := originCol + c
			if col < 0 || col >= cv.cols {
				continue
			}
			cov := grid.At(r, c)
			dst := &cv.cells[row*cv.cols+col]
			dst.coverage = cov
			if cov > 0 {
				dst.tag = tag
			} else {
				dst.tag = 0
			}
		}
	}
}

// Clear resets all cells to zero coverage, no tag, using exponential copy
func (cv *Canvas) Clear() {
	if len(cv.cells) == 0 {
		return
	}
	cv.cells[0] = cell{}
	for filled := 1; filled < len(cv.cells); filled *= 2 {
		copy(cv.cells[filled:], cv.cells[:filled])
	}
}

// Resize adjusts canvas dimensions, reallocating only if capacity is
// insufficient. Contents are cleared.
func (cv *Canvas) Resize(rows, cols int) {
	size := rows * cols
	if cap(cv.cells) < size {
		cv.cells = make([]cell, size)
	} else {
		cv.cells = cv.cells[:size]
	}
	cv.rows = rows
	cv.cols = cols
	cv.Clear()
}
