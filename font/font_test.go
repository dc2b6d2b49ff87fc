package font

import (
	"errors"
	"testing"
)

func TestGlyphLookup(t *testing.T) {
	f := New()

	for _, id := range []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ' ', 'A', 'P', 'M'} {
		g, err := f.Glyph(id)
		if err != nil {
			t.Fatalf("Expected glyph %q to exist, got error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Expected glyph id %q, got %q", id, g.ID())
		}
		if g.Rows() != GlyphRows || g.Cols() != GlyphCols {
			t.Errorf("Expected %dx%d bitmap for %q, got %dx%d", GlyphRows, GlyphCols, id, g.Rows(), g.Cols())
		}
	}
}

func TestUnknownGlyph(t *testing.T) {
	f := New()

	_, err := f.Glyph('Z')
	if err == nil {
		t.Fatal("Expected error for undefined glyph")
	}
	if !errors.Is(err, ErrUnknownGlyph) {
		t.Errorf("Expected ErrUnknownGlyph, got %v", err)
	}
	if f.Has('Z') {
		t.Error("Expected Has('Z') to be false")
	}
}

func TestGlyphPixels(t *testing.T) {
	f := New()

	// '1' bitmap:
	// .x.
	// xx.
	// .x.
	// .x.
	// xxx
	one, err := f.Glyph('1')
	if err != nil {
		t.Fatalf("Glyph('1') failed: %v", err)
	}

	expected := [GlyphRows][GlyphCols]bool{
		{false, true, false},
		{true, true, false},
		{false, true, false},
		{false, true, false},
		{true, true, true},
	}

	for r := 0; r < GlyphRows; r++ {
		for c := 0; c < GlyphCols; c++ {
			if one.Pixel(r, c) != expected[r][c] {
				t.Errorf("Expected '1' pixel (%d,%d) = %v, got %v", r, c, expected[r][c], one.Pixel(r, c))
			}
		}
	}

	if got := one.OnCount(); got != 8 {
		t.Errorf("Expected '1' to have 8 on pixels, got %d", got)
	}
}

func TestPixelOutOfRange(t *testing.T) {
	f := New()
	g, _ := f.Glyph('8')

	cases := [][2]int{{-1, 0}, {0, -1}, {GlyphRows, 0}, {0, GlyphCols}}
	for _, c := range cases {
		if g.Pixel(c[0], c[1]) {
			t.Errorf("Expected out-of-range pixel (%d,%d) to read off", c[0], c[1])
		}
	}
}

func TestSpaceIsEmpty(t *testing.T) {
	f := New()
	sp, err := f.Glyph(' ')
	if err != nil {
		t.Fatalf("Glyph(' ') failed: %v", err)
	}
	if sp.OnCount() != 0 {
		t.Errorf("Expected space glyph to be empty, got %d on pixels", sp.OnCount())
	}
}
