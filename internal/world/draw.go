package world

import (
	"strings"

	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
)

// Draw renders the current region with its entities and the player.
func (m *Map) Draw(c core.Canvas, player core.SpriteID) {
	r := m.Current()
	c.Clear(r.kind.Background())

	grid := r.kind.GridColor()
	g := m.cfg.GridSize
	for x := 0; x <= core.WorldWidth; x += g {
		c.Line(core.Pt(x, 0), core.Pt(x, core.WorldHeight), grid)
	}
	for y := 0; y <= core.WorldHeight; y += g {
		c.Line(core.Pt(0, y), core.Pt(core.WorldWidth, y), grid)
	}

	if r.kind.IsTown() {
		drawTown(c, r)
	}

	for _, it := range r.items {
		c.Sprite(it.Kind.Sprite(), it.Box, core.ColorWhite)
	}
	for _, e := range r.enemies {
		c.Sprite(enemySprite(e.Element), e.Box, e.Element.Color())
	}
	c.Sprite(player, m.PlayerBox(), core.ColorWhite)

	label := strings.ToUpper(r.kind.String())
	c.Text(core.Pt(core.WorldWidth-20, 20), label, core.ColorText, core.AlignRight)
}

func drawTown(c core.Canvas, r *Region) {
	wall := core.RGB(110, 100, 90)
	c.FillRect(townWallLeft, wall)
	c.FillRect(townWallRight, wall)
	c.StrokeRect(townGate, core.ColorGold)
	for _, b := range r.buildings {
		c.Sprite(core.SpriteBuilding, b.Box, b.Color)
		c.Text(core.Pt(b.Box.CenterPoint().X, b.Box.Bottom()+4), b.Name, core.ColorText, core.AlignCenter)
	}
}

func enemySprite(e combat.Element) core.SpriteID {
	switch e {
	case combat.Fiery:
		return core.SpriteEnemyFiery
	case combat.Shadow:
		return core.SpriteEnemyShadow
	default:
		return core.SpriteEnemyIce
	}
}

// DrawOverview renders the 3x3 world map with the player's region highlighted.
func (m *Map) DrawOverview(c core.Canvas) {
	c.Clear(core.ColorNight)
	c.Text(core.Pt(core.WorldWidth/2, 50), "WORLD MAP", core.ColorText, core.AlignCenter)

	const cell = 150
	startX := (core.WorldWidth - Size*cell) / 2
	startY := 150
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			r := m.regions[y][x]
			box := core.NewRect(startX+x*cell, startY+y*cell, cell, cell)
			c.FillRect(box, r.kind.Background())
			edge := core.ColorPanelEdge
			if x == m.cx && y == m.cy {
				edge = core.ColorGold
			}
			c.StrokeRect(box, edge)
			center := box.CenterPoint()
			c.Text(center, strings.ToUpper(r.kind.String()), core.ColorText, core.AlignCenter)
			if r.visited {
				c.Text(core.Pt(center.X, box.Bottom()-20), "VISITED", core.ColorGreen, core.AlignCenter)
			}
		}
	}
	c.FillCircle(core.Pt(startX+m.cx*cell+cell/2, startY+m.cy*cell+cell/2+25), 10, core.ColorGreen)
	c.Text(core.Pt(core.WorldWidth/2, core.WorldHeight-50), "Press M to return", core.ColorDim, core.AlignCenter)
}
