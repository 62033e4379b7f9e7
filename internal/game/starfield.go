package game

import (
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/core"
)

const starCount = 100

type star struct {
	x, y  float64
	speed float64
}

// Starfield is the drifting background of the menu screens.
type Starfield struct {
	rng   *rand.Rand
	stars []star
}

// NewStarfield scatters stars over the screen.
func NewStarfield(rng *rand.Rand) *Starfield {
	sf := &Starfield{rng: rng, stars: make([]star, starCount)}
	for i := range sf.stars {
		sf.stars[i] = star{
			x:     rng.Float64() * core.WorldWidth,
			y:     rng.Float64() * core.WorldHeight,
			speed: 0.5 + rng.Float64()*1.5,
		}
	}
	return sf
}

// Tick moves every star left, wrapping at the edge.
func (sf *Starfield) Tick() {
	for i := range sf.stars {
		st := &sf.stars[i]
		st.x -= st.speed
		if st.x < 0 {
			st.x = core.WorldWidth
			st.y = sf.rng.Float64() * core.WorldHeight
		}
	}
}

// Draw renders the stars, faster ones brighter.
func (sf *Starfield) Draw(c core.Canvas) {
	for _, st := range sf.stars {
		b := uint8(core.ClampF(100+st.speed*70, 0, 255))
		c.FillCircle(core.Pt(int(st.x), int(st.y)), 1, core.RGB(b, b, b))
	}
}
