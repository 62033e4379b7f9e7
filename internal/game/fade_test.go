package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

func TestFadeRamp(t *testing.T) {
	f := NewFade(100)
	if f.Active() {
		t.Fatal("a new fade should be idle")
	}

	f.Start()
	want := []uint8{100, 200, 255, 155, 55, 0}
	for i, w := range want {
		f.Tick()
		if got := f.Alpha(); got != w {
			t.Errorf("tick %d: Alpha() = %d, expected %d", i+1, got, w)
		}
	}
	if f.Active() {
		t.Error("the fade should be done")
	}
}

func TestFadeDraw(t *testing.T) {
	rec := &core.Recorder{}
	f := NewFade(0)
	f.Draw(rec)
	if n := rec.Count("fill_rect"); n != 0 {
		t.Errorf("idle fade drew %d rects, expected 0", n)
	}

	f.Start()
	f.Tick()
	f.Draw(rec)
	if n := rec.Count("fill_rect"); n != 1 {
		t.Errorf("running fade drew %d rects, expected 1", n)
	}
}

func TestStarfieldWraps(t *testing.T) {
	s := NewStarfield(rand.New(rand.NewSource(1)))
	for i := 0; i < 5000; i++ {
		s.Tick()
	}
	for i, st := range s.stars {
		if st.x < 0 || st.x > core.WorldWidth {
			t.Fatalf("star %d at x = %v, expected inside the screen", i, st.x)
		}
	}
}

func TestCutsceneScenes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fx := particles.NewField(64, rng)
	c := NewCutscene(5)

	for i := 0; i < 5; i++ {
		c.Tick(fx, rng)
	}
	if c.Scene() != 1 {
		t.Errorf("Scene() = %d, expected 1", c.Scene())
	}
	for i := 0; i < 10; i++ {
		c.Tick(fx, rng)
	}
	if !c.Done() {
		t.Error("three scenes should be done")
	}
}
