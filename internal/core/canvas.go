package core

import "strings"

// Align selects how Canvas.Text positions a string relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// SpriteID names a drawable the platform knows how to render.
type SpriteID string

// Sprites drawn by the engine.
const (
	SpriteWarrior     SpriteID = "player.warrior"
	SpriteMage        SpriteID = "player.mage"
	SpriteRogue       SpriteID = "player.rogue"
	SpriteEnemyFiery  SpriteID = "enemy.fiery"
	SpriteEnemyShadow SpriteID = "enemy.shadow"
	SpriteEnemyIce    SpriteID = "enemy.ice"
	SpriteDragon      SpriteID = "boss.dragon"
	SpriteDragonLord  SpriteID = "boss.final"
	SpriteHealthItem  SpriteID = "item.health"
	SpriteManaItem    SpriteID = "item.mana"
	SpriteBuilding    SpriteID = "town.building"
)

// Canvas is the renderer collaborator. All coordinates are world pixels in a
// WorldWidth x WorldHeight space. The engine only issues draw calls and never
// reads anything back.
type Canvas interface {
	Clear(bg Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	FillCircle(center Point, radius int, c Color)
	Line(from, to Point, c Color)
	Polygon(points []Point, c Color)
	Text(at Point, text string, c Color, align Align)
	Sprite(id SpriteID, at Rect, tint Color)
}

// DrawCommand is one call captured by a Recorder.
type DrawCommand struct {
	Op     string
	Rect   Rect
	Points []Point
	Radius int
	Text   string
	Sprite SpriteID
	Color  Color
}

// Recorder is a Canvas that stores every call. It backs tests and the
// headless snapshot command.
type Recorder struct {
	Commands []DrawCommand
}

// Clear implements Canvas.
func (r *Recorder) Clear(bg Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "clear", Color: bg})
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(rect Rect, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "fill_rect", Rect: rect, Color: c})
}

// StrokeRect implements Canvas.
func (r *Recorder) StrokeRect(rect Rect, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "stroke_rect", Rect: rect, Color: c})
}

// FillCircle implements Canvas.
func (r *Recorder) FillCircle(center Point, radius int, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "circle", Points: []Point{center}, Radius: radius, Color: c})
}

// Line implements Canvas.
func (r *Recorder) Line(from, to Point, c Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "line", Points: []Point{from, to}, Color: c})
}

// Polygon implements Canvas.
func (r *Recorder) Polygon(points []Point, c Color) {
	pts := append([]Point(nil), points...)
	r.Commands = append(r.Commands, DrawCommand{Op: "polygon", Points: pts, Color: c})
}

// Text implements Canvas.
func (r *Recorder) Text(at Point, text string, c Color, _ Align) {
	r.Commands = append(r.Commands, DrawCommand{Op: "text", Points: []Point{at}, Text: text, Color: c})
}

// Sprite implements Canvas.
func (r *Recorder) Sprite(id SpriteID, at Rect, tint Color) {
	r.Commands = append(r.Commands, DrawCommand{Op: "sprite", Rect: at, Sprite: id, Color: tint})
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// HasText reports whether any text command contains substr.
func (r *Recorder) HasText(substr string) bool {
	for _, c := range r.Commands {
		if c.Op == "text" && strings.Contains(c.Text, substr) {
			return true
		}
	}
	return false
}

// HasSprite reports whether the sprite was drawn.
func (r *Recorder) HasSprite(id SpriteID) bool {
	for _, c := range r.Commands {
		if c.Op == "sprite" && c.Sprite == id {
			return true
		}
	}
	return false
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
