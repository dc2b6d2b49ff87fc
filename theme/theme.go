// Package theme maps glyph tags and shade bands to terminal styles.
// Each theme has an ink color per symbol class; lower shade bands render
// with reduced luminance so partially covered cells read as dimmer ink.
package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pixclock/render"
)

// Luminance multiplier per shade band. Band 0 is blank; its style is the
// default background regardless.
var bandLum = [render.NumBands]float64{0, 0.55, 0.70, 0.85, 1.0}

// Theme is an immutable set of ink colors for the clock face
type Theme struct {
	name   string
	digit  colorful.Color
	colon  colorful.Color
	suffix colorful.Color

	// Styles are precomputed per (class, band) at construction so StyleFor
	// stays pure and allocation-free on the render path
	digitStyles  [render.NumBands]tcell.Style
	colonStyles  [render.NumBands]tcell.Style
	suffixStyles [render.NumBands]tcell.Style
}

// Name returns the theme's registry name
func (t *Theme) Name() string { return t.name }

// StyleFor resolves the terminal style for a glyph tag at a shade band.
// Deterministic: identical inputs always yield identical styles.
func (t *Theme) StyleFor(tag rune, band int) tcell.Style {
	if band < 0 {
		band = 0
	}
	if band >= render.NumBands {
		band = render.NumBands - 1
	}
	if tag == 0 || band == 0 {
		return tcell.StyleDefault
	}
	switch {
	case tag >= '0' && tag <= '9':
		return t.digitStyles[band]
	case tag == ':':
		return t.colonStyles[band]
	default:
		// AM/PM letters and anything unclassified
		return t.suffixStyles[band]
	}
}

func newTheme(name string, digitHex, colonHex, suffixHex string) *Theme {
	t := &Theme{
		name:   name,
		digit:  mustHex(digitHex),
		colon:  mustHex(colonHex),
		suffix: mustHex(suffixHex),
	}
	for band := 1; band < render.NumBands; band++ {
		t.digitStyles[band] = inkStyle(t.digit, band)
		t.colonStyles[band] = inkStyle(t.colon, band)
		t.suffixStyles[band] = inkStyle(t.suffix, band)
	}
	return t
}

// mustHex parses a built-in hex color; the table is fixed at build time
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// inkStyle darkens the ink toward the band's luminance and converts to a
// tcell foreground style
func inkStyle(ink colorful.Color, band int) tcell.Style {
	h, s, l := ink.Hsl()
	c := colorful.Hsl(h, s, l*bandLum[band]).Clamped()
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// registry of built-in themes, keyed by the -color flag value. Digit ink is
// the theme color, colon slightly muted, AM/PM suffix dimmer still.
var registry = map[string]*Theme{
	"green":   newTheme("green", "#33ff66", "#29cc52", "#1f9940"),
	"red":     newTheme("red", "#ff4040", "#cc3333", "#992626"),
	"blue":    newTheme("blue", "#4080ff", "#3366cc", "#264d99"),
	"cyan":    newTheme("cyan", "#33e0e0", "#29b3b3", "#1f8686"),
	"magenta": newTheme("magenta", "#e040e0", "#b333b3", "#862686"),
	"yellow":  newTheme("yellow", "#e6d933", "#b8ad29", "#8a821f"),
	"white":   newTheme("white", "#e6e6e6", "#b8b8b8", "#8a8a8a"),
}

// Lookup returns the named theme, or an error listing the valid names
func Lookup(name string) (*Theme, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown color %q (valid: %v)", name, Names())
	}
	return t, nil
}

// Default is the theme used when none is requested, matching the original
// green phosphor look
func Default() *Theme { return registry["green"] }

// Names returns the registered theme names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
