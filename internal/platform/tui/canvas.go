package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/dragonslair/internal/core"
)

// spriteGlyphs is how each sprite looks in a terminal cell.
var spriteGlyphs = map[core.SpriteID]rune{
	core.SpriteWarrior:     'W',
	core.SpriteMage:        'M',
	core.SpriteRogue:       'R',
	core.SpriteEnemyFiery:  'f',
	core.SpriteEnemyShadow: 's',
	core.SpriteEnemyIce:    'i',
	core.SpriteDragon:      'D',
	core.SpriteDragonLord:  'Ж',
	core.SpriteHealthItem:  '+',
	core.SpriteManaItem:    '*',
	core.SpriteBuilding:    '▲',
}

// Canvas draws engine calls into a Screen, scaling world pixels down to
// character cells.
type Canvas struct {
	screen *core.Screen
}

// NewCanvas wraps a screen.
func NewCanvas(s *core.Screen) *Canvas {
	return &Canvas{screen: s}
}

// cellX maps a world x to a column.
func (c *Canvas) cellX(x int) int {
	return int(math.Floor(float64(x) * float64(c.screen.Width()) / core.WorldWidth))
}

// cellY maps a world y to a row.
func (c *Canvas) cellY(y int) int {
	return int(math.Floor(float64(y) * float64(c.screen.Height()) / core.WorldHeight))
}

// cellRect returns the cells a world rect covers, at least one.
func (c *Canvas) cellRect(r core.Rect) core.Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()), c.cellY(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// cellCenter returns the world point at the middle of a cell.
func (c *Canvas) cellCenter(cx, cy int) core.Vec2 {
	return core.V(
		(float64(cx)+0.5)*core.WorldWidth/float64(c.screen.Width()),
		(float64(cy)+0.5)*core.WorldHeight/float64(c.screen.Height()),
	)
}

func (c *Canvas) Clear(bg core.Color) {
	c.screen.FillCell(core.Cell{Rune: ' ', FG: core.ColorText, BG: bg})
}

func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	cr := c.cellRect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			c.screen.Shade(x, y, col)
		}
	}
}

func (c *Canvas) StrokeRect(r core.Rect, col core.Color) {
	cr := c.cellRect(r)
	if cr.W < 2 || cr.H < 2 {
		c.FillRect(r, col)
		return
	}
	right, bottom := cr.Right()-1, cr.Bottom()-1
	for x := cr.X + 1; x < right; x++ {
		c.screen.Plot(x, cr.Y, '─', col)
		c.screen.Plot(x, bottom, '─', col)
	}
	for y := cr.Y + 1; y < bottom; y++ {
		c.screen.Plot(cr.X, y, '│', col)
		c.screen.Plot(right, y, '│', col)
	}
	c.screen.Plot(cr.X, cr.Y, '┌', col)
	c.screen.Plot(right, cr.Y, '┐', col)
	c.screen.Plot(cr.X, bottom, '└', col)
	c.screen.Plot(right, bottom, '┘', col)
}

// FillCircle shades the cells whose centres fall inside the circle. A circle
// smaller than a cell becomes a dot.
func (c *Canvas) FillCircle(center core.Point, radius int, col core.Color) {
	cr := c.cellRect(core.NewRect(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	mid := center.Vec()
	hit := false
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if c.cellCenter(x, y).Sub(mid).Len() <= float64(radius) {
				c.screen.Shade(x, y, col)
				hit = true
			}
		}
	}
	if !hit {
		c.screen.Plot(c.cellX(center.X), c.cellY(center.Y), '•', col)
	}
}

// Line plots a cell path between two points.
func (c *Canvas) Line(from, to core.Point, col core.Color) {
	x0, y0 := c.cellX(from.X), c.cellY(from.Y)
	x1, y1 := c.cellX(to.X), c.cellY(to.Y)
	glyph := '·'
	switch {
	case x0 == x1:
		glyph = '│'
	case y0 == y1:
		glyph = '─'
	}

	dx, dy := core.Abs(x1-x0), -core.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.screen.Plot(x0, y0, glyph, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Polygon shades every cell whose centre lies inside the outline.
func (c *Canvas) Polygon(points []core.Point, col core.Color) {
	if len(points) < 3 {
		return
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = core.Min(minX, p.X), core.Max(maxX, p.X)
		minY, maxY = core.Min(minY, p.Y), core.Max(maxY, p.Y)
	}
	cr := c.cellRect(core.NewRect(minX, minY, maxX-minX, maxY-minY))
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if inside(points, c.cellCenter(x, y)) {
				c.screen.Shade(x, y, col)
			}
		}
	}
}

// inside is the even-odd rule.
func inside(poly []core.Point, p core.Vec2) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i].Vec(), poly[j].Vec()
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func (c *Canvas) Text(at core.Point, text string, col core.Color, align core.Align) {
	x, y := c.cellX(at.X), c.cellY(at.Y)
	n := utf8.RuneCountInString(text)
	switch align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	c.screen.DrawTextColor(x, y, text, col)
}

// Sprite tints the sprite's cells and puts its glyph in the middle.
func (c *Canvas) Sprite(id core.SpriteID, at core.Rect, tint core.Color) {
	glyph, ok := spriteGlyphs[id]
	if !ok {
		glyph = '?'
	}
	cr := c.cellRect(at)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			c.screen.Shade(x, y, tint.WithAlpha(160))
		}
	}
	cx, cy := cr.Center()
	c.screen.Plot(cx, cy, glyph, core.ColorWhite)
}
