// Package particles implements short-lived visual motes used for hit sparks,
// spell beams and region ambience.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/core"
)

// DefaultCapacity bounds the number of live particles in a Field.
const DefaultCapacity = 2048

// Particle is one mote. Age counts ticks since it was spawned.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Color    core.Color
	Size     float64
	Age      int
	Lifetime int
}

// life returns the remaining fraction of the particle's life, 1 when fresh.
func (p Particle) life() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return 1 - float64(p.Age)/float64(p.Lifetime)
}

// Alpha returns the opacity for the current age, decaying linearly to zero.
func (p Particle) Alpha() uint8 {
	return uint8(math.Max(0, math.Min(255, 255*p.life())))
}

// Radius returns the drawn radius for the current age.
func (p Particle) Radius() float64 {
	return math.Max(0, p.Size*p.life())
}

// Field is a pool of particles. When full, spawning drops the oldest particle.
type Field struct {
	particles []Particle
	capacity  int
	rng       *rand.Rand
}

// NewField creates a field holding at most capacity particles.
// A capacity of zero or less uses DefaultCapacity.
func NewField(capacity int, rng *rand.Rand) *Field {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Field{capacity: capacity, rng: rng}
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Capacity returns the maximum number of live particles.
func (f *Field) Capacity() int {
	return f.capacity
}

// Particles returns the live particles. The slice must not be modified.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Spawn adds one particle. Particles with no lifetime are ignored.
func (f *Field) Spawn(pos core.Vec2, color core.Color, vel core.Vec2, size float64, lifetime int) {
	if lifetime <= 0 {
		return
	}
	if len(f.particles) >= f.capacity {
		// Particles are appended in spawn order, so the head is the oldest.
		copy(f.particles, f.particles[1:])
		f.particles = f.particles[:len(f.particles)-1]
	}
	f.particles = append(f.particles, Particle{
		Pos:      pos,
		Vel:      vel,
		Color:    color,
		Size:     size,
		Lifetime: lifetime,
	})
}

// Tick moves every particle by its velocity, ages it, and drops the expired.
func (f *Field) Tick() {
	live := f.particles[:0]
	for _, p := range f.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Age++
		if p.Age >= p.Lifetime {
			continue
		}
		live = append(live, p)
	}
	f.particles = live
}

// Clear removes all particles.
func (f *Field) Clear() {
	f.particles = f.particles[:0]
}

// Draw renders every particle that is still visible.
func (f *Field) Draw(c core.Canvas) {
	f.DrawOffset(c, core.Point{})
}

// DrawOffset renders particles translated by offset, for screen shake.
func (f *Field) DrawOffset(c core.Canvas, offset core.Point) {
	for _, p := range f.particles {
		r := int(p.Radius())
		if r <= 0 {
			continue
		}
		c.FillCircle(p.Pos.Point().Add(offset), r, p.Color.WithAlpha(p.Alpha()))
	}
}

// Range is an inclusive float interval.
type Range struct {
	Min, Max float64
}

func (f *Field) uniform(r Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + f.rng.Float64()*(r.Max-r.Min)
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min, Max int
}

func (f *Field) intn(r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + f.rng.Intn(r.Max-r.Min+1)
}

// Burst describes a radial explosion.
type Burst struct {
	Count    int
	Size     Range
	Speed    Range
	Lifetime IntRange
}

// DefaultBurst is the explosion used for hits.
var DefaultBurst = Burst{
	Count:    20,
	Size:     Range{2, 5},
	Speed:    Range{1, 3},
	Lifetime: IntRange{20, 40},
}

// Explosion scatters particles from center in uniformly random directions.
func (f *Field) Explosion(center core.Vec2, color core.Color, b Burst) {
	for i := 0; i < b.Count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		vel := core.FromAngle(angle, f.uniform(b.Speed))
		f.Spawn(center, color, vel, f.uniform(b.Size), f.intn(b.Lifetime))
	}
}

// Stream describes a beam of puffs between two points.
type Stream struct {
	PerStep  int     // puffs spawned at each step
	StepLen  float64 // distance between steps in pixels
	Size     Range
	Drift    float64 // maximum speed of each puff on either axis
	Lifetime int
}

// DefaultStream is the beam used for spells.
var DefaultStream = Stream{
	PerStep:  2,
	StepLen:  5,
	Size:     Range{2, 4},
	Drift:    0.2,
	Lifetime: 15,
}

// Beam scatters small puffs along the line from p1 to p2.
func (f *Field) Beam(p1, p2 core.Vec2, color core.Color, s Stream) {
	if s.StepLen <= 0 {
		s.StepLen = DefaultStream.StepLen
	}
	dist := p2.Sub(p1).Len()
	steps := int(math.Max(1, dist/s.StepLen))
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		at := p1.Add(p2.Sub(p1).Scale(t))
		for j := 0; j < s.PerStep; j++ {
			vel := core.V(f.uniform(Range{-s.Drift, s.Drift}), f.uniform(Range{-s.Drift, s.Drift}))
			f.Spawn(at, color, vel, f.uniform(s.Size), s.Lifetime)
		}
	}
}
