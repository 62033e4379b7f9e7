package game

import "github.com/vovakirdan/dragonslair/internal/core"

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeIn
	fadeOut
)

// Fade is the black screen-transition overlay: alpha climbs to 255 and
// falls back to 0 at a fixed speed per tick.
type Fade struct {
	speed int
	alpha int
	phase fadePhase
}

// NewFade returns an idle fade moving speed alpha units per tick.
func NewFade(speed int) Fade {
	return Fade{speed: core.Max(1, speed)}
}

// Start begins a new transition from a clear screen.
func (f *Fade) Start() {
	f.alpha = 0
	f.phase = fadeIn
}

// Tick advances the ramp.
func (f *Fade) Tick() {
	switch f.phase {
	case fadeIn:
		f.alpha += f.speed
		if f.alpha >= 255 {
			f.alpha = 255
			f.phase = fadeOut
		}
	case fadeOut:
		f.alpha -= f.speed
		if f.alpha <= 0 {
			f.alpha = 0
			f.phase = fadeNone
		}
	}
}

// Active reports whether a transition is running.
func (f Fade) Active() bool { return f.phase != fadeNone }

// Alpha returns the overlay opacity.
func (f Fade) Alpha() uint8 { return uint8(f.alpha) }

// Draw covers the screen with the overlay.
func (f Fade) Draw(c core.Canvas) {
	if f.alpha == 0 {
		return
	}
	c.FillRect(core.NewRect(0, 0, core.WorldWidth, core.WorldHeight), core.ColorBlack.WithAlpha(f.Alpha()))
}
