package game

import (
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

const cutsceneScenes = 3

// Text fade pacing within a scene.
const (
	textAppearTicks    = 120
	textDisappearTicks = 180
	textAppearSpeed    = 3
	textDisappearSpeed = 2
	sceneCloseTicks    = 60
	closeSpeed         = 5
)

var (
	introLines = []string{
		"LONG AGO, IN THE KINGDOM OF PIXELONIA,",
		"AN ANCIENT EVIL AWOKE FROM ITS SLUMBER.",
		"THE DRAGON MALAKOR, RULER OF SHADOWS,",
		"THREATENED TO PLUNGE THE WORLD INTO DARKNESS.",
	}
	dragonLines = []string{
		"THE DRAGON MALAKOR RAVAGED THE LAND,",
		"BURNING VILLAGES AND TERRIFYING THE PEOPLE.",
		"THE KING CALLED FOR HEROES TO RISE UP",
		"AND CHALLENGE THE ANCIENT EVIL.",
	}
	storyLines = []string{
		"YOUR QUEST BEGINS...",
		"",
		"THE KINGDOM OF PIXELONIA NEEDS A HERO.",
		"MALAKOR THE TERRIBLE HAS RETURNED,",
		"AND ONLY YOU CAN STOP HIM.",
		"",
		"TRAVEL THROUGH PERILOUS LANDS,",
		"BATTLE FIERCE MONSTERS,",
		"AND GATHER POWERFUL ARTIFACTS.",
		"",
		"YOUR JOURNEY LEADS TO THE DRAGON'S LAIR,",
		"WHERE THE FINAL CONFRONTATION AWAITS.",
		"",
		"CHOOSE YOUR HERO WISELY,",
		"FOR THE FATE OF THE KINGDOM RESTS IN YOUR HANDS.",
	}
	fireColors = []core.Color{
		core.RGB(255, 100, 0), core.RGB(255, 200, 0), core.RGB(255, 50, 0),
	}
	parchment = core.RGB(200, 180, 120)
	ink       = core.RGB(60, 40, 20)
)

// Cutscene is the three-scene story shown before character select.
type Cutscene struct {
	sceneTicks int
	scene      int
	timer      int
	textAlpha  int
	closeAlpha int
	scrollY    int
}

// NewCutscene starts the first scene. Each scene lasts sceneTicks.
func NewCutscene(sceneTicks int) Cutscene {
	return Cutscene{sceneTicks: core.Max(1, sceneTicks), scrollY: core.WorldHeight}
}

// Scene returns the index of the showing scene.
func (c Cutscene) Scene() int { return c.scene }

// Done reports whether every scene has played.
func (c Cutscene) Done() bool { return c.scene >= cutsceneScenes }

// Tick advances the scene timer, the text fades and the scene effects.
func (c *Cutscene) Tick(fx *particles.Field, rng *rand.Rand) {
	if c.Done() {
		return
	}
	c.timer++
	switch {
	case c.timer < textAppearTicks:
		c.textAlpha = core.Min(255, c.textAlpha+textAppearSpeed)
	case c.timer > textDisappearTicks:
		c.textAlpha = core.Max(0, c.textAlpha-textDisappearSpeed)
	}
	if c.timer > c.sceneTicks-sceneCloseTicks {
		c.closeAlpha = core.Min(255, c.closeAlpha+closeSpeed)
	}

	switch c.scene {
	case 1:
		if c.timer%5 == 0 {
			fx.Spawn(
				core.V(rng.Float64()*core.WorldWidth, -10),
				fireColors[rng.Intn(len(fireColors))],
				core.V(rng.Float64()-0.5, 1+rng.Float64()*2),
				float64(3+rng.Intn(5)),
				40+rng.Intn(41),
			)
		}
	case 2:
		c.scrollY--
		if c.scrollY < -600 {
			c.scrollY = core.WorldHeight
		}
	}

	if c.timer >= c.sceneTicks {
		c.scene++
		c.timer = 0
		c.textAlpha = 0
		c.closeAlpha = 0
	}
}

// Draw renders the showing scene.
func (c Cutscene) Draw(cv core.Canvas, stars *Starfield, fx *particles.Field, ticks int) {
	text := core.ColorText.WithAlpha(uint8(c.textAlpha))
	mid := core.WorldWidth / 2
	switch c.scene {
	case 0:
		cv.Clear(core.ColorNight)
		stars.Draw(cv)
		cv.Text(core.Pt(mid+3, 83), "DRAGON'S LAIR", core.RGB(150, 0, 0), core.AlignCenter)
		cv.Text(core.Pt(mid, 80), "DRAGON'S LAIR", core.RGB(255, 50, 50), core.AlignCenter)
		cv.Text(core.Pt(mid, 160), "A RETRO RPG ADVENTURE", core.ColorText, core.AlignCenter)
		for i, line := range introLines {
			cv.Text(core.Pt(mid, 250+i*50), line, text, core.AlignCenter)
		}
	case 1:
		cv.Clear(core.RGB(40, 10, 10))
		x := (c.timer * 4) % (core.WorldWidth + 200)
		cv.Sprite(core.SpriteDragonLord, core.NewRect(x-200, 380, 200, 120), core.ColorWhite)
		fx.Draw(cv)
		fire := core.RGB(255, 200, 100).WithAlpha(uint8(c.textAlpha))
		for i, line := range dragonLines {
			cv.Text(core.Pt(mid, 100+i*50), line, fire, core.AlignCenter)
		}
	case 2:
		cv.Clear(parchment)
		page := core.NewRect(50, 50, core.WorldWidth-100, core.WorldHeight-100)
		cv.FillRect(page, core.RGB(180, 150, 100))
		cv.StrokeRect(page, core.RGB(150, 120, 80))
		for i, line := range storyLines {
			y := c.scrollY + i*50
			if y < 60 || y > core.WorldHeight-70 {
				continue
			}
			cv.Text(core.Pt(mid, y), line, ink, core.AlignCenter)
		}
		if c.timer > textDisappearTicks && ticks%60 < 30 {
			cv.Text(core.Pt(mid, core.WorldHeight-80), "PRESS ENTER TO CONTINUE", core.RGB(100, 60, 30), core.AlignCenter)
		}
	}
	if c.closeAlpha > 0 {
		cv.FillRect(core.NewRect(0, 0, core.WorldWidth, core.WorldHeight), core.ColorBlack.WithAlpha(uint8(c.closeAlpha)))
	}
	if ticks%60 < 30 {
		cv.Text(core.Pt(core.WorldWidth-20, core.WorldHeight-40), "Press any key to skip...", core.RGB(200, 200, 200), core.AlignRight)
	}
}
