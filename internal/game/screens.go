package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
)

var (
	startOptions = []string{"START QUEST", "QUIT"}
	overOptions  = []string{"PLAY AGAIN", "BACK TO MENU"}

	titleRed = core.RGB(255, 50, 50)

	classBlurbs = map[combat.Class][]string{
		combat.Warrior: {"THE WARRIOR", "- HIGH HEALTH", "- STRONG ATTACKS", "- GOOD DEFENSE", "- MEDIUM SPEED"},
		combat.Mage:    {"THE MAGE", "- HIGH MANA", "- MAGIC ATTACKS", "- LOW DEFENSE", "- MEDIUM SPEED"},
		combat.Rogue:   {"THE ROGUE", "- BALANCED STATS", "- QUICK ATTACKS", "- AVERAGE DEFENSE", "- HIGH SPEED"},
	}
	classColors = map[combat.Class]core.Color{
		combat.Warrior: core.RGB(0, 255, 0),
		combat.Mage:    core.RGB(0, 200, 255),
		combat.Rogue:   core.RGB(255, 100, 0),
	}
)

// moveCursor steps a cursor over n entries with wraparound.
func moveCursor(cursor, delta, n int) int {
	return ((cursor+delta)%n + n) % n
}

func verticalDelta(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionUp):
		return -1
	case in.Has(core.ActionDown):
		return 1
	}
	return 0
}

func horizontalDelta(in core.InputFrame) int {
	switch {
	case in.Has(core.ActionLeft):
		return -1
	case in.Has(core.ActionRight):
		return 1
	}
	return 0
}

func (m *Machine) updateStartMenu(in core.InputFrame) string {
	if d := verticalDelta(in); d != 0 {
		m.menuCursor = moveCursor(m.menuCursor, d, len(startOptions))
		m.sfx(audio.EffectClick)
	}
	switch {
	case in.Has(core.ActionCancel):
		m.quit = true
	case in.Has(core.ActionConfirm):
		m.sfx(audio.EffectClick)
		if m.menuCursor == 0 {
			return evStart
		}
		m.quit = true
	}
	return ""
}

func (m *Machine) updateCutscene(in core.InputFrame) string {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionCancel) {
		return evFinishCutscene
	}
	m.cutscene.Tick(m.fx, m.rng)
	if m.cutscene.Done() {
		return evFinishCutscene
	}
	return ""
}

func (m *Machine) updateCharacterSelect(in core.InputFrame) (string, []any) {
	if d := horizontalDelta(in); d != 0 {
		m.classCursor = moveCursor(m.classCursor, d, len(combat.Classes))
		m.sfx(audio.EffectClick)
	}
	switch {
	case in.Has(core.ActionCancel):
		return evBack, nil
	case in.Has(core.ActionConfirm):
		m.sfx(audio.EffectClick)
		return evChooseClass, []any{combat.Classes[m.classCursor]}
	}
	return "", nil
}

func (m *Machine) updateGameOver(in core.InputFrame) string {
	if d := verticalDelta(in); d != 0 {
		m.overCursor = moveCursor(m.overCursor, d, len(overOptions))
		m.sfx(audio.EffectClick)
	}
	if in.Has(core.ActionCancel) {
		return evMenu
	}
	if !in.Has(core.ActionConfirm) {
		return ""
	}
	if m.overCursor == 0 {
		return evRestart
	}
	return evMenu
}

// updateVictory returns to the menu once the fanfare has finished and the
// screen has shown for a moment, or at once on confirm.
func (m *Machine) updateVictory(in core.InputFrame) string {
	m.victoryTicks++
	if in.Has(core.ActionConfirm) {
		return evMenu
	}
	if m.victoryTicks >= m.cfg.Screens.VictoryMinTicks && !m.app.Audio.Playing() {
		return evMenu
	}
	return ""
}

func drawOptions(c core.Canvas, options []string, cursor, top int) {
	for i, opt := range options {
		box := core.NewRect(core.WorldWidth/2-120, top+i*80, 240, 60)
		c.FillRect(box, core.ColorPanel)
		edge, color := core.ColorPanelEdge, core.ColorText
		if i == cursor {
			edge, color = core.ColorGold, core.ColorGold
		}
		c.StrokeRect(box, edge)
		c.Text(box.CenterPoint(), opt, color, core.AlignCenter)
	}
}

func (m *Machine) drawStartMenu(c core.Canvas) {
	c.Clear(core.ColorNight)
	m.stars.Draw(c)
	mid := core.WorldWidth / 2
	c.Text(core.Pt(mid, 100), "DRAGON'S LAIR", titleRed, core.AlignCenter)
	c.Text(core.Pt(mid, 160), "A RETRO RPG ADVENTURE", core.ColorText, core.AlignCenter)
	lines := []string{
		"SELECT YOUR HERO AND EMBARK ON A QUEST",
		"DEFEAT THE DRAGON'S MINIONS AND SURVIVE!",
		"",
		"CONTROLS:",
		"ARROWS/WASD - MOVE",
		"ENTER - SELECT",
		"ESC - QUIT",
	}
	for i, line := range lines {
		c.Text(core.Pt(mid, 230+i*30), line, core.ColorText, core.AlignCenter)
	}
	if m.bestScore > 0 {
		c.Text(core.Pt(mid, 450), fmt.Sprintf("BEST SCORE: %d", m.bestScore), core.ColorGold, core.AlignCenter)
	}
	drawOptions(c, startOptions, m.menuCursor, 500)
}

func (m *Machine) drawCharacterSelect(c core.Canvas) {
	c.Clear(core.ColorNight)
	m.stars.Draw(c)
	c.Text(core.Pt(core.WorldWidth/2, 100), "CHOOSE YOUR HERO", core.ColorText, core.AlignCenter)
	for i, class := range combat.Classes {
		x := core.WorldWidth/2 - 400 + i*275
		box := core.NewRect(x, 220, 250, 150)
		color := classColors[class]
		c.FillRect(box, core.ColorPanel)
		if i == m.classCursor {
			c.StrokeRect(box.Inset(-4), core.ColorGold)
		}
		c.StrokeRect(box, color)
		c.Sprite(class.Sprite(), core.NewRect(x+100, 240, 50, 50), core.ColorWhite)
		c.Text(core.Pt(box.CenterPoint().X, 330), strings.ToUpper(class.String()), color, core.AlignCenter)

		stats, err := m.cfg.ClassStats(class)
		if err == nil {
			c.Text(core.Pt(x, 390), fmt.Sprintf("HP %d  MP %d", stats.Health, stats.Mana), core.ColorDim, core.AlignLeft)
			c.Text(core.Pt(x, 415), fmt.Sprintf("STR %d DEF %d SPD %d", stats.Strength, stats.Defense, stats.Speed), core.ColorDim, core.AlignLeft)
		}
		for j, line := range classBlurbs[class] {
			c.Text(core.Pt(x, 460+j*25), line, color, core.AlignLeft)
		}
	}
	c.Text(core.Pt(core.WorldWidth/2, core.WorldHeight-40), "LEFT/RIGHT - CHOOSE   ENTER - START   ESC - BACK", core.ColorDim, core.AlignCenter)
}

func (m *Machine) runStats() []string {
	if m.player == nil {
		return nil
	}
	tickRate := core.Max(1, m.cfg.Display.TickRate)
	return []string{
		fmt.Sprintf("HERO: %s", strings.ToUpper(m.player.Class.String())),
		fmt.Sprintf("LEVEL: %d", m.player.Level),
		fmt.Sprintf("SCORE: %d", m.run.Score),
		fmt.Sprintf("KILLS: %d", m.player.Kills),
		fmt.Sprintf("ITEMS: %d", m.run.Items),
		fmt.Sprintf("TIME: %d SECONDS", m.run.Ticks/tickRate),
	}
}

func (m *Machine) drawGameOver(c core.Canvas) {
	c.Clear(core.ColorNight)
	m.stars.Draw(c)
	mid := core.WorldWidth / 2
	c.Text(core.Pt(mid, 150), "GAME OVER", titleRed, core.AlignCenter)
	stats := m.runStats()
	for i, line := range stats {
		c.Text(core.Pt(mid, 220+i*40), line, core.ColorText, core.AlignCenter)
	}
	drawOptions(c, overOptions, m.overCursor, 240+len(stats)*40)
}

func (m *Machine) drawVictory(c core.Canvas) {
	c.Clear(core.ColorNight)
	m.stars.Draw(c)
	m.fx.Draw(c)
	mid := core.WorldWidth / 2
	c.Text(core.Pt(mid, 120), "VICTORY!", core.ColorGold, core.AlignCenter)
	c.Text(core.Pt(mid, 170), "You defeated the Dragon Lord!", core.ColorText, core.AlignCenter)
	stats := m.runStats()
	for i, line := range stats {
		c.Text(core.Pt(mid, 240+i*40), line, core.ColorText, core.AlignCenter)
	}
	c.Text(core.Pt(mid, 280+len(stats)*40), "Congratulations! You defeated Malakor!", core.ColorGold, core.AlignCenter)
	c.Text(core.Pt(mid, core.WorldHeight-40), "Press ENTER to return to the menu", core.ColorDim, core.AlignCenter)
}
