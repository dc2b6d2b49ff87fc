// Package audio provides optional tick and chime tones for the clock.
// Audio is strictly best-effort: initialization failure disables it and
// the clock runs silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	tickFreq  = 880.0
	chimeFreq = 440.0

	tickDuration  = 30 * time.Millisecond
	chimeDuration = 350 * time.Millisecond
)

// Chimer plays short sine tones through the system speaker
type Chimer struct {
	sampleRate beep.SampleRate
	enabled    bool
}

// NewChimer initializes the speaker. On failure the returned chimer is
// silent and the error is informational.
func NewChimer() (*Chimer, error) {
	c := &Chimer{sampleRate: beep.SampleRate(44100)}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled = true
	return c, nil
}

// Enabled reports whether the speaker initialized
func (c *Chimer) Enabled() bool { return c.enabled }

// Tick plays a short high blip, for second ticks
func (c *Chimer) Tick() {
	c.play(tickFreq, tickDuration)
}

// Chime plays a longer low tone, for the top of the hour
func (c *Chimer) Chime() {
	c.play(chimeFreq, chimeDuration)
}

func (c *Chimer) play(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(d), sine))
}
