package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixclock/terminal"
)

// Driver lifecycle states
type driverState uint8

const (
	stateUninitialized driverState = iota
	stateReady
	stateRendering
	stateShutdown
)

var (
	// ErrNotReady is returned when a frame is requested before the driver
	// is constructed via NewDriver
	ErrNotReady = errors.New("render: driver not ready")

	// ErrShutdown is returned for any operation after Shutdown
	ErrShutdown = errors.New("render: driver is shut down")
)

// StyleFunc resolves the terminal style for a glyph tag and shade band.
// Must be pure: the diff assumes identical (tag, band) always yields the
// same style.
type StyleFunc func(tag rune, band int) tcell.Style

// Driver owns the frame lifecycle. Each frame it sizes the canvas to the
// terminal, hands the canvas to the caller for composition, then writes
// only the cells whose quantized rune or tag changed since the last
// successfully flushed frame.
type Driver struct {
	screen terminal.Screen
	style  StyleFunc

	canvas *Canvas

	// Last successfully drawn frame, quantized. Replaced wholesale after
	// each successful flush; never advanced on a failed frame so the next
	// frame naturally retries the same deltas.
	snapshot  []snapCell
	scratch   []snapCell
	snapValid bool

	state driverState
}

// snapCell is one snapshot position: the quantized rune and the glyph tag
// that was drawn there
type snapCell struct {
	ch  rune
	tag rune
}

// NewDriver allocates the canvas and frame snapshot sized to the screen's
// reported dimensions and enters the Ready state. The screen handle is the
// driver's sole reference to the terminal; no package-level state.
func NewDriver(screen terminal.Screen, style StyleFunc) *Driver {
	cols, rows := screen.Size()
	size := rows * cols
	return &Driver{
		screen:   screen,
		style:    style,
		canvas:   NewCanvas(rows, cols),
		snapshot: make([]snapCell, size),
		scratch:  make([]snapCell, size),
		state:    stateReady,
	}
}

// Frame runs one render iteration:
//  1. query terminal dimensions; on change resize the canvas and treat
//     every cell as dirty for this frame,
//  2. clear the canvas and let compose populate it,
//  3. diff against the snapshot and write only changed cells,
//  4. flush, and only then replace the snapshot.
//
// Any error abandons the frame with the snapshot untouched; canvas content
// is rebuilt from scratch next frame, so no state is corrupted.
func (d *Driver) Frame(compose func(*Canvas) error) error {
	switch d.state {
	case stateReady:
	case stateShutdown:
		return ErrShutdown
	default:
		return ErrNotReady
	}
	d.state = stateRendering
	defer func() { d.state = stateReady }()

	cols, rows := d.screen.Size()
	if rows != d.canvas.Rows() || cols != d.canvas.Cols() {
		d.canvas.Resize(rows, cols)
		d.resizeSnapshot(rows * cols)
		d.screen.Sync()
	}

	d.canvas.Clear()
	if err := compose(d.canvas); err != nil {
		return err
	}

	// Diff and emit draw ops. The scratch buffer accumulates the quantized
	// frame so the snapshot can be swapped in wholesale after a clean flush.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cov, tag := d.canvas.At(r, c)
			band := QuantizeBand(cov)
			next := snapCell{ch: shadeRunes[band], tag: tag}
			idx := r*cols + c
			d.scratch[idx] = next

			if d.snapValid && d.snapshot[idx] == next {
				continue
			}
			if err := d.screen.SetCell(c, r, next.ch, d.style(tag, band)); err != nil {
				return err
			}
		}
	}

	if err := d.screen.Show(); err != nil {
		return err
	}

	d.snapshot, d.scratch = d.scratch, d.snapshot
	d.snapValid = true
	return nil
}

// Shutdown releases the canvas and snapshot. Irreversible; any further
// Frame call reports ErrShutdown.
func (d *Driver) Shutdown() {
	d.state = stateShutdown
	d.canvas = nil
	d.snapshot = nil
	d.scratch = nil
	d.snapValid = false
}

// resizeSnapshot reallocates diff buffers for new dimensions and
// invalidates the snapshot so the whole grid redraws once
func (d *Driver) resizeSnapshot(size int) {
	if cap(d.snapshot) < size {
		d.snapshot = make([]snapCell, size)
		d.scratch = make([]snapCell, size)
	} else {
		d.snapshot = d.snapshot[:size]
		d.scratch = d.scratch[:size]
	}
	d.snapValid = false
}
