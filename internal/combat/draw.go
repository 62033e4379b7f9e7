package combat

import (
	"fmt"

	"github.com/vovakirdan/dragonslair/internal/core"
)

// Battle screen layout.
var (
	logBox  = core.NewRect(40, 470, 560, 200)
	menuBox = core.NewRect(620, 470, 340, 200)
	barW    = 160
	barH    = 12
)

const logLines = 4

// Draw renders the battle.
func (s *Session) Draw(c core.Canvas) {
	offset := core.Point{}
	if s.shake.Active() {
		d := s.shake.Remaining()
		if s.ticks%2 == 0 {
			d = -d
		}
		offset = core.Pt(d, 0)
	}

	c.Clear(core.ColorNight)
	c.FillRect(core.NewRect(0, 380, core.WorldWidth, 80), core.ColorPanel)

	s.drawFighter(c, &s.player.Combatant, s.player.Class.Sprite(), PlayerBox, 1, offset)
	s.drawFighter(c, &s.enemy.Combatant, s.enemy.Sprite(), EnemyBox, -1, offset)
	if s.elemental.Active() {
		s.drawElemental(c)
	}

	s.drawBar(c, PlayerBox.X-50, PlayerBox.Y-60, s.player.Name, s.player.HealthFraction(), core.ColorHealth,
		fmt.Sprintf("HP %d/%d", s.player.Health, s.player.MaxHealth))
	s.drawBar(c, PlayerBox.X-50, PlayerBox.Y-30, "", s.player.ManaFraction(), core.ColorMana,
		fmt.Sprintf("MP %d/%d", s.player.Mana, s.player.MaxMana))
	s.drawBar(c, EnemyBox.X-50, EnemyBox.Y-40, s.enemy.Name, s.enemy.HealthFraction(), core.ColorHealth,
		fmt.Sprintf("HP %d/%d", s.enemy.Health, s.enemy.MaxHealth))

	s.fx.DrawOffset(c, offset)
	s.drawLog(c)
	s.drawMenu(c)
	if s.outcome != OutcomeNone {
		s.drawSummary(c)
	}
}

func (s *Session) drawFighter(c core.Canvas, f *Combatant, sprite core.SpriteID, box core.Rect, facing int, offset core.Point) {
	at := box.Moved(box.X+offset.X, box.Y+offset.Y)
	if f.AttackAnim.Active() {
		// lunge forward and back
		p := f.AttackAnim.Progress()
		lunge := int(40 * (1 - 2*abs(p-0.5)))
		at = at.Moved(at.X+facing*lunge, at.Y)
	}
	tint := core.ColorWhite
	if f.HitAnim.Active() && f.HitAnim.Remaining()%2 == 0 {
		tint = core.ColorRed
	}
	if !f.Alive() {
		tint = core.ColorDim
	}
	c.FillCircle(core.Pt(at.CenterPoint().X, at.Bottom()+6), box.W/2, core.ColorShadow.WithAlpha(120))
	c.Sprite(sprite, at, tint)
}

func (s *Session) drawElemental(c core.Canvas) {
	color := s.enemy.Kind.Element.Color()
	center := PlayerBox.CenterPoint()
	r := 10 + int(30*s.elemental.Progress())
	alpha := uint8(255 * (1 - s.elemental.Progress()))
	c.FillCircle(center, r, color.WithAlpha(alpha))
}

func (s *Session) drawBar(c core.Canvas, x, y int, label string, frac float64, fill core.Color, value string) {
	if label != "" {
		c.Text(core.Pt(x, y-16), label, core.ColorText, core.AlignLeft)
	}
	frame := core.NewRect(x, y, barW, barH)
	c.FillRect(frame, core.ColorPanel)
	w := int(float64(barW) * core.ClampF(frac, 0, 1))
	if w > 0 {
		c.FillRect(core.NewRect(x, y, w, barH), fill)
	}
	c.StrokeRect(frame, core.ColorPanelEdge)
	c.Text(core.Pt(x+barW+8, y), value, core.ColorText, core.AlignLeft)
}

func (s *Session) drawLog(c core.Canvas) {
	c.FillRect(logBox, core.ColorPanel)
	c.StrokeRect(logBox, core.ColorPanelEdge)
	for i, line := range s.log.Last(logLines) {
		c.Text(core.Pt(logBox.X+16, logBox.Y+20+i*36), line, core.ColorText, core.AlignLeft)
	}
	if s.log.Waiting() && s.outcome == OutcomeNone {
		c.Text(core.Pt(logBox.Right()-16, logBox.Bottom()-24), "ENTER >", core.ColorGold, core.AlignRight)
	}
}

func (s *Session) drawMenu(c core.Canvas) {
	c.FillRect(menuBox, core.ColorPanel)
	c.StrokeRect(menuBox, core.ColorPanelEdge)
	if !s.idle() {
		msg := "..."
		if s.turn == EnemyTurn {
			msg = "Enemy turn"
		}
		c.Text(menuBox.CenterPoint(), msg, core.ColorDim, core.AlignCenter)
		return
	}
	cellW, cellH := menuBox.W/2, menuBox.H/2
	for i, cmd := range Commands {
		cell := core.NewRect(menuBox.X+(i%2)*cellW, menuBox.Y+(i/2)*cellH, cellW, cellH).Inset(10)
		color := core.ColorText
		if cmd == CommandMagic && s.player.Mana < s.rules.MagicCost {
			color = core.ColorDim
		}
		if i == s.cursor {
			c.FillRect(cell, core.ColorPanelEdge)
			color = core.ColorGold
		}
		c.Text(cell.CenterPoint(), cmd.String(), color, core.AlignCenter)
	}
}

func (s *Session) drawSummary(c core.Canvas) {
	box := core.NewRect(250, 150, 500, 260)
	c.FillRect(box, core.ColorPanel.WithAlpha(230))
	c.StrokeRect(box, core.ColorGold)

	var title string
	var color core.Color
	var lines []string
	switch s.outcome {
	case OutcomeWin:
		title, color = "VICTORY!", core.ColorGold
		lines = append(lines, fmt.Sprintf("Defeated %s", s.enemy.Name))
		if s.reward > 0 {
			lines = append(lines, fmt.Sprintf("+%d EXP", s.reward))
		}
		lines = append(lines, fmt.Sprintf("Level %d  EXP %d/%d", s.player.Level, s.player.Exp, s.player.ExpToLevel))
		if s.player.JustLeveledUp {
			lines = append(lines, "LEVEL UP!")
		}
	case OutcomeLose:
		title, color = "DEFEAT", core.ColorRed
		lines = append(lines, fmt.Sprintf("%s was too strong.", s.enemy.Name))
	case OutcomeEscape:
		title, color = "ESCAPED", core.ColorCyan
		lines = append(lines, "You got away safely.")
	}
	c.Text(core.Pt(box.CenterPoint().X, box.Y+30), title, color, core.AlignCenter)
	for i, line := range lines {
		c.Text(core.Pt(box.CenterPoint().X, box.Y+90+i*34), line, core.ColorText, core.AlignCenter)
	}
	c.Text(core.Pt(box.CenterPoint().X, box.Bottom()-30), "Press ENTER to continue", core.ColorDim, core.AlignCenter)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
