// Package terminal provides the screen collaborator the render driver draws
// through. The concrete implementation wraps tcell; the Screen interface is
// what the core consumes so tests can substitute a recording fake.
package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Screen is the minimal terminal surface the render pipeline needs:
// current dimensions, single-cell writes, and a commit.
type Screen interface {
	// Size returns the best-known terminal dimensions in cells
	Size() (cols, rows int)

	// SetCell stages one cell write. Out-of-range coordinates are a
	// caller bug, not a valid call.
	SetCell(col, row int, r rune, style tcell.Style) error

	// Show commits staged writes to the visible display
	Show() error

	// Sync forces a full repaint on the next Show
	Sync()

	// Fini restores terminal state. Safe to call multiple times
	Fini()
}

// TcellScreen adapts a tcell.Screen to the Screen contract and owns its
// lifecycle: alternate screen, hidden cursor, cleared on init.
type TcellScreen struct {
	s tcell.Screen
}

// New initializes a tcell-backed screen
func New() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.Clear()
	return &TcellScreen{s: s}, nil
}

// NewSimulation creates a screen backed by tcell's in-memory simulation,
// for tests. The returned SimulationScreen allows inspecting cell content.
func NewSimulation(cols, rows int) (*TcellScreen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		return nil, nil, err
	}
	sim.SetSize(cols, rows)
	return &TcellScreen{s: sim}, sim, nil
}

// Size returns current terminal dimensions
func (t *TcellScreen) Size() (cols, rows int) {
	return t.s.Size()
}

// SetCell stages a single-width rune with the given style
func (t *TcellScreen) SetCell(col, row int, r rune, style tcell.Style) error {
	t.s.SetContent(col, row, r, nil, style)
	return nil
}

// Show flushes staged content to the display
func (t *TcellScreen) Show() error {
	t.s.Show()
	return nil
}

// Sync forces a full screen repaint
func (t *TcellScreen) Sync() {
	t.s.Sync()
}

// Fini restores the terminal. Safe to call more than once
func (t *TcellScreen) Fini() {
	t.s.Fini()
}

// PollEvent blocks until the next input or resize event.
// Not part of the core-facing Screen contract; the driver loop in cmd uses it.
func (t *TcellScreen) PollEvent() tcell.Event {
	return t.s.PollEvent()
}
