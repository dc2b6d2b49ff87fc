package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/pixclock/font"
	"github.com/lixenwraith/pixclock/render"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, time.August, 31, hour, min, sec, 0, time.UTC)
}

func TestSlice(t *testing.T) {
	cases := []struct {
		name        string
		now         time.Time
		showSeconds bool
		military    bool
		want        string
	}{
		{"morning 12h", at(9, 5, 0), false, false, "09:05 AM"},
		{"afternoon 12h", at(13, 34, 0), false, false, "01:34 PM"},
		{"noon 12h", at(12, 0, 0), false, false, "12:00 PM"},
		{"midnight 12h", at(0, 0, 0), false, false, "12:00 AM"},
		{"military", at(13, 34, 0), false, true, "13:34"},
		{"military midnight", at(0, 7, 0), false, true, "00:07"},
		{"seconds 12h", at(23, 59, 58), true, false, "11:59:58 PM"},
		{"seconds military", at(23, 59, 58), true, true, "23:59:58"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := string(Slice(c.now, c.showSeconds, c.military))
			if got != c.want {
				t.Errorf("Expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestComposerFaceCells(t *testing.T) {
	f := font.New()

	cases := []struct {
		name     string
		opts     Options
		wantRows int
		wantCols int
	}{
		// 5 symbols, one pixel-width gap between each
		{"military 1x1", Options{Military: true, PixelRows: 1, PixelCols: 1}, 5, 5*3 + 4},
		{"military 2x2", Options{Military: true, PixelRows: 2, PixelCols: 2}, 10, 5*6 + 4*2},
		// 8 symbols with seconds
		{"seconds 1x1", Options{Military: true, ShowSeconds: true, PixelRows: 1, PixelCols: 1}, 5, 8*3 + 7},
		// 8 symbols in 12-hour mode (space + two letters)
		{"12h 1x1", Options{PixelRows: 1, PixelCols: 1}, 5, 8*3 + 7},
		// 11 symbols with both
		{"12h seconds 1x1", Options{ShowSeconds: true, PixelRows: 1, PixelCols: 1}, 5, 11*3 + 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			comp := NewComposer(f, c.opts)
			rows, cols := comp.faceCells()
			if rows != c.wantRows || cols != c.wantCols {
				t.Errorf("Expected %dx%d face, got %dx%d", c.wantRows, c.wantCols, rows, cols)
			}
		})
	}
}

func TestComposerFits(t *testing.T) {
	f := font.New()
	comp := NewComposer(f, Options{Military: true, Center: true, PixelRows: 1, PixelCols: 1})

	if !comp.Fits(5, 19) {
		t.Error("Expected exact-size terminal to fit")
	}
	if comp.Fits(4, 19) {
		t.Error("Expected short terminal not to fit")
	}
	if comp.Fits(5, 18) {
		t.Error("Expected narrow terminal not to fit")
	}

	offset := NewComposer(f, Options{Military: true, OriginRow: 2, OriginCol: 3, PixelRows: 1, PixelCols: 1})
	if !offset.Fits(7, 22) {
		t.Error("Expected offset face to fit with room for the origin")
	}
	if offset.Fits(6, 22) {
		t.Error("Expected offset face not to fit when origin eats the margin")
	}
}

func TestComposeCentered(t *testing.T) {
	f := font.New()
	comp := NewComposer(f, Options{Military: true, Center: true, PixelRows: 1, PixelCols: 1})
	cv := render.NewCanvas(21, 41)

	if err := comp.Compose(at(13, 34, 0), cv); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// Face is 5x19, so centered origin is (8, 11). '1' has an off pixel at
	// its top-left and an on pixel beside it.
	if cov, _ := cv.At(8, 11); cov != 0 {
		t.Errorf("Expected off pixel at face origin, got coverage %v", cov)
	}
	cov, tag := cv.At(8, 12)
	if cov != 1.0 {
		t.Errorf("Expected on pixel at (8,12), got coverage %v", cov)
	}
	if tag != '1' {
		t.Errorf("Expected tag '1' at (8,12), got %q", tag)
	}

	// Colon dot: third symbol starts at col 11+2*(3+1)=19, dot at row offset 1, col offset 1
	cov, tag = cv.At(9, 20)
	if cov != 1.0 || tag != ':' {
		t.Errorf("Expected colon dot at (9,20), got coverage %v tag %q", cov, tag)
	}

	// Nothing above or left of the face
	if cov, _ := cv.At(7, 11); cov != 0 {
		t.Errorf("Expected empty row above face, got coverage %v", cov)
	}
}

func TestComposeClipsAtEdges(t *testing.T) {
	f := font.New()
	comp := NewComposer(f, Options{Military: true, OriginRow: 3, OriginCol: 30, PixelRows: 1, PixelCols: 1})
	cv := render.NewCanvas(5, 32)

	// Face extends far past the right edge; must not error
	if err := comp.Compose(at(13, 34, 0), cv); err != nil {
		t.Fatalf("Expected clipped compose to succeed, got %v", err)
	}
}

func TestComposeScaled(t *testing.T) {
	f := font.New()
	comp := NewComposer(f, Options{Military: true, PixelRows: 2, PixelCols: 2})
	cv := render.NewCanvas(12, 40)

	if err := comp.Compose(at(11, 11, 0), cv); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// '1' top row pixel (0,1) doubles to cells (0..1, 2..3)
	for r := 0; r < 2; r++ {
		for c := 2; c < 4; c++ {
			if cov, _ := cv.At(r, c); cov != 1.0 {
				t.Errorf("Expected scaled on pixel at (%d,%d), got coverage %v", r, c, cov)
			}
		}
	}
}

func TestQuartz(t *testing.T) {
	var ticks atomic.Int32
	q := NewQuartz(func(time.Time) { ticks.Add(1) }, time.UTC)

	q.Start()
	// The first update fires immediately on start
	deadline := time.Now().Add(500 * time.Millisecond)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if ticks.Load() == 0 {
		t.Fatal("Expected an immediate tick on start")
	}

	q.Stop()
	settled := ticks.Load()
	time.Sleep(120 * time.Millisecond)
	if ticks.Load() != settled {
		t.Error("Expected no ticks after stop")
	}

	// Stop is idempotent
	q.Stop()
}
