package particles

import "github.com/vovakirdan/dragonslair/internal/core"

// Ambience is a recurring spawn of background particles over an area,
// such as embers over lava or smoke from a chimney.
type Ambience struct {
	Count    int
	Chance   float64 // probability of spawning at all on a call; 0 means always
	Area     core.Rect
	Color    core.Color
	VelX     Range
	VelY     Range
	Size     float64
	Lifetime int
}

// Ambient spawns one round of the ambience.
func (f *Field) Ambient(a Ambience) {
	if a.Chance > 0 && f.rng.Float64() >= a.Chance {
		return
	}
	for i := 0; i < a.Count; i++ {
		pos := core.V(
			f.uniform(Range{float64(a.Area.X), float64(a.Area.Right())}),
			f.uniform(Range{float64(a.Area.Y), float64(a.Area.Bottom())}),
		)
		vel := core.V(f.uniform(a.VelX), f.uniform(a.VelY))
		f.Spawn(pos, a.Color, vel, a.Size, a.Lifetime)
	}
}
