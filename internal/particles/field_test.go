package particles

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dragonslair/internal/core"
)

func newTestField(capacity int) *Field {
	return NewField(capacity, rand.New(rand.NewSource(42)))
}

func TestSpawnAndTick(t *testing.T) {
	f := newTestField(0)
	f.Spawn(core.V(10, 10), core.ColorRed, core.V(1, -2), 4, 3)

	f.Tick()
	p := f.Particles()[0]
	if p.Pos != core.V(11, 8) || p.Age != 1 {
		t.Errorf("after one tick particle = %+v, expected pos (11, 8) age 1", p)
	}

	f.Tick()
	if f.Len() != 1 {
		t.Fatalf("Len() = %d after 2 of 3 ticks, expected 1", f.Len())
	}
	f.Tick()
	if f.Len() != 0 {
		t.Errorf("Len() = %d after lifetime elapsed, expected 0", f.Len())
	}
}

func TestSpawnIgnoresZeroLifetime(t *testing.T) {
	f := newTestField(0)
	f.Spawn(core.V(0, 0), core.ColorRed, core.V(0, 0), 4, 0)
	if f.Len() != 0 {
		t.Errorf("Len() = %d, expected zero-lifetime particle to be dropped", f.Len())
	}
}

func TestCapacityDropsOldest(t *testing.T) {
	f := newTestField(3)
	for i := 0; i < 5; i++ {
		f.Spawn(core.V(float64(i), 0), core.ColorRed, core.V(0, 0), 1, 10)
	}

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected capacity 3", f.Len())
	}
	if got := f.Particles()[0].Pos.X; got != 2 {
		t.Errorf("oldest surviving particle X = %f, expected 2", got)
	}
	if f.Capacity() != 3 {
		t.Errorf("Capacity() = %d, expected 3", f.Capacity())
	}
}

func TestDecay(t *testing.T) {
	p := Particle{Size: 10, Lifetime: 4}

	tests := []struct {
		age    int
		alpha  uint8
		radius float64
	}{
		{0, 255, 10},
		{1, 191, 7.5},
		{2, 127, 5},
		{4, 0, 0},
	}

	for _, tc := range tests {
		p.Age = tc.age
		if got := p.Alpha(); got != tc.alpha {
			t.Errorf("Alpha() at age %d = %d, expected %d", tc.age, got, tc.alpha)
		}
		if got := p.Radius(); got != tc.radius {
			t.Errorf("Radius() at age %d = %f, expected %f", tc.age, got, tc.radius)
		}
	}
}

func TestDrawSkipsInvisible(t *testing.T) {
	f := newTestField(0)
	f.Spawn(core.V(5, 5), core.ColorGold, core.V(0, 0), 6, 10)
	f.Spawn(core.V(5, 5), core.ColorGold, core.V(0, 0), 0.5, 10)

	var rec core.Recorder
	f.Draw(&rec)

	if rec.Count("circle") != 1 {
		t.Fatalf("drew %d circles, expected 1 (sub-pixel particle skipped)", rec.Count("circle"))
	}
	if got := rec.Commands[0]; got.Radius != 6 || got.Color.A != 255 {
		t.Errorf("fresh particle drawn as %+v, expected radius 6 solid", got)
	}

	rec.Reset()
	f.DrawOffset(&rec, core.Pt(3, -2))
	if got := rec.Commands[0].Points[0]; got != core.Pt(8, 3) {
		t.Errorf("DrawOffset() center = %v, expected (8, 3)", got)
	}
}

func TestExplosion(t *testing.T) {
	f := newTestField(0)
	b := Burst{Count: 40, Size: Range{3, 7}, Speed: Range{1, 5}, Lifetime: IntRange{15, 30}}
	f.Explosion(core.V(100, 100), core.ColorOrange, b)

	if f.Len() != 40 {
		t.Fatalf("Len() = %d, expected 40", f.Len())
	}
	for _, p := range f.Particles() {
		speed := p.Vel.Len()
		if speed < 1-1e-9 || speed > 5+1e-9 {
			t.Errorf("particle speed %f outside [1, 5]", speed)
		}
		if p.Size < 3 || p.Size > 7 {
			t.Errorf("particle size %f outside [3, 7]", p.Size)
		}
		if p.Lifetime < 15 || p.Lifetime > 30 {
			t.Errorf("particle lifetime %d outside [15, 30]", p.Lifetime)
		}
		if p.Pos != core.V(100, 100) {
			t.Errorf("particle spawned at %v, expected center", p.Pos)
		}
	}
}

func TestBeam(t *testing.T) {
	f := newTestField(0)
	f.Beam(core.V(0, 0), core.V(100, 0), core.ColorPurple, DefaultStream)

	// 100px at one step per 5px, two puffs each.
	if f.Len() != 40 {
		t.Fatalf("Len() = %d, expected 40", f.Len())
	}
	for _, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 100 || p.Pos.Y != 0 {
			t.Errorf("beam puff at %v, expected on the segment", p.Pos)
		}
	}

	f.Clear()
	f.Beam(core.V(5, 5), core.V(5, 5), core.ColorPurple, DefaultStream)
	if f.Len() != DefaultStream.PerStep {
		t.Errorf("zero-length beam spawned %d, expected one step", f.Len())
	}
}

func TestAmbient(t *testing.T) {
	f := newTestField(0)
	area := core.NewRect(0, 200, 1000, 500)
	f.Ambient(Ambience{Count: 3, Area: area, Color: core.ColorOrange, VelY: Range{-1, -0.5}, Size: 2, Lifetime: 40})

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", f.Len())
	}
	for _, p := range f.Particles() {
		if p.Pos.Y < 200 || p.Pos.Y > 700 {
			t.Errorf("ember at %v outside its area", p.Pos)
		}
		if p.Vel.Y > -0.5 || p.Vel.Y < -1 {
			t.Errorf("ember velocity %v should rise", p.Vel)
		}
	}

	never := Ambience{Count: 5, Chance: 1e-12, Area: area, Size: 1, Lifetime: 10}
	for i := 0; i < 100; i++ {
		f.Ambient(never)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, expected near-zero chance to spawn nothing", f.Len())
	}
}
