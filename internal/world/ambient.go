package world

import (
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

var fullArea = core.NewRect(0, 0, core.WorldWidth, core.WorldHeight)

// Ambience returns the background particles a region emits on each ambient
// beat. Regions without weather return nothing.
func (k Kind) Ambience() []particles.Ambience {
	switch k {
	case Volcano:
		return []particles.Ambience{{
			Count: 3, Area: core.NewRect(0, 200, core.WorldWidth, core.WorldHeight-200),
			Color: core.RGB(255, 100, 0),
			VelX:  particles.Range{Min: -0.5, Max: 0.5}, VelY: particles.Range{Min: -1, Max: -0.5},
			Size: 2, Lifetime: 40,
		}}
	case Forest:
		return []particles.Ambience{{
			Count: 2, Area: fullArea,
			Color: core.RGB(0, 255, 0),
			VelX:  particles.Range{Min: -0.3, Max: 0.3}, VelY: particles.Range{Min: -0.5, Max: -0.2},
			Size: 1, Lifetime: 30,
		}}
	case Desert:
		return []particles.Ambience{{
			Count: 4, Area: fullArea,
			Color: core.RGB(255, 255, 200),
			VelX:  particles.Range{Min: -1, Max: 1}, VelY: particles.Range{Min: -0.3, Max: 0.3},
			Size: 1, Lifetime: 25,
		}}
	case Town:
		return []particles.Ambience{{
			Count: 2, Area: core.NewRect(50, 50, core.WorldWidth-100, 100),
			Color: core.RGB(200, 200, 200),
			VelX:  particles.Range{Min: -0.2, Max: 0.2}, VelY: particles.Range{Min: -1, Max: -0.5},
			Size: 2, Lifetime: 35,
		}}
	default:
		return nil
	}
}

// AmbientInterval returns the ticks between ambient beats for a region.
func (k Kind) AmbientInterval(base int) int {
	if k.IsTown() {
		return core.Max(1, base/2)
	}
	return base
}

// chimneySmoke is one puff from a town chimney, rolled every tick.
func chimneySmoke(at core.Point) particles.Ambience {
	return particles.Ambience{
		Count: 1, Chance: 0.3, Area: core.NewRect(at.X, at.Y, 1, 1),
		Color: core.RGB(100, 100, 100),
		VelX:  particles.Range{Min: -0.2, Max: 0.2}, VelY: particles.Range{Min: -1, Max: -0.5},
		Size: 4, Lifetime: 60,
	}
}
