package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
)

// updateOverworld walks the hero, picks up items and turns a collision with
// a wandering monster into an encounter.
func (m *Machine) updateOverworld(in core.InputFrame) (string, []any) {
	if m.player == nil || m.world == nil {
		core.Assert(false, "overworld without a run")
		return "", nil
	}
	if in.Has(core.ActionMenu) {
		m.overview = !m.overview
		m.sfx(audio.EffectClick)
		return "", nil
	}
	if m.overview {
		if in.Has(core.ActionCancel) {
			m.overview = false
		}
		return "", nil
	}
	if in.Has(core.ActionCancel) {
		return evGiveUp, nil
	}

	level := m.player.Level
	dx, dy := in.Direction()
	res := m.world.Move(dx, dy, level)
	if res.Entered != nil {
		x, y := res.Entered.Cell()
		m.log.Debug("entered region", "kind", res.Entered.Kind(), "x", x, "y", y)
	}
	if res.Item != nil {
		restored := m.world.ApplyItem(m.player, *res.Item)
		m.run.Items++
		m.sfx(audio.EffectItem)
		m.fx.Explosion(res.Item.Box.CenterPoint().Vec(), core.ColorGreen, itemBurst)
		m.log.Debug("item picked up", "kind", res.Item.Kind, "restored", restored)
	}
	if res.Enemy != nil {
		enemy := combat.NewEnemy(res.Enemy.Element, res.Enemy.Level, m.cfg.Enemies, m.rng)
		if res.Enemy.Name != "" {
			enemy.Name = res.Enemy.Name
		}
		return evEncounter, []any{enemy}
	}

	m.world.Update(level, m.fx)
	return "", nil
}

func (m *Machine) drawOverworld(c core.Canvas) {
	if m.overview {
		m.world.DrawOverview(c)
		return
	}
	m.world.Draw(c, m.player.Class.Sprite())
	m.fx.Draw(c)
	m.drawHUD(c)
}

// drawHUD is the status panel in the top-left corner.
func (m *Machine) drawHUD(c core.Canvas) {
	p := m.player
	panel := core.NewRect(10, 10, 260, 170)
	c.FillRect(panel, core.ColorPanel.WithAlpha(200))
	c.StrokeRect(panel, core.ColorPanelEdge)

	c.Text(core.Pt(20, 25), fmt.Sprintf("%s  LV %d", strings.ToUpper(p.Class.String()), p.Level), core.ColorGold, core.AlignLeft)
	hudBar(c, 20, 50, "HP", p.HealthFraction(), core.ColorHealth, fmt.Sprintf("%d/%d", p.Health, p.MaxHealth))
	hudBar(c, 20, 75, "MP", p.ManaFraction(), core.ColorMana, fmt.Sprintf("%d/%d", p.Mana, p.MaxMana))
	hudBar(c, 20, 100, "XP", p.ExpFraction(), core.ColorExp, fmt.Sprintf("%d/%d", p.Exp, p.ExpToLevel))
	c.Text(core.Pt(20, 130), fmt.Sprintf("SCORE: %d", m.run.Score), core.ColorText, core.AlignLeft)
	c.Text(core.Pt(150, 130), fmt.Sprintf("KILLS: %d", p.Kills), core.ColorText, core.AlignLeft)
	area := strings.ToUpper(m.world.Current().Kind().String())
	c.Text(core.Pt(20, 155), "AREA: "+area, core.ColorText, core.AlignLeft)

	c.Text(core.Pt(core.WorldWidth/2, core.WorldHeight-20), "ARROWS/WASD - MOVE   M - MAP   ESC - GIVE UP", core.ColorDim, core.AlignCenter)
}

func hudBar(c core.Canvas, x, y int, label string, frac float64, fill core.Color, value string) {
	const w, h = 150, 14
	c.Text(core.Pt(x, y), label, core.ColorText, core.AlignLeft)
	bar := core.NewRect(x+30, y-h/2, w, h)
	c.FillRect(bar, core.ColorBlack)
	if filled := int(core.ClampF(frac, 0, 1) * w); filled > 0 {
		c.FillRect(core.NewRect(bar.X, bar.Y, filled, h), fill)
	}
	c.StrokeRect(bar, core.ColorPanelEdge)
	c.Text(core.Pt(bar.Right()+8, y), value, core.ColorText, core.AlignLeft)
}
