// Package world holds the overworld: a 3x3 grid of regions, the enemies and
// items placed in them, and the player's walk between them.
//
// A Region is the only owner of its entities. Callers refer to entities by
// EntityID and remove them through the region, so there is never a second
// list to keep in sync.
package world

import (
	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
)

// Kind is the terrain of a region.
type Kind int

const (
	Mountain Kind = iota
	Forest
	Desert
	Swamp
	Beach
	Volcano
	Glacier
	Town
	Cave
)

// String returns the region name.
func (k Kind) String() string {
	switch k {
	case Mountain:
		return "mountain"
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	case Swamp:
		return "swamp"
	case Beach:
		return "beach"
	case Volcano:
		return "volcano"
	case Glacier:
		return "ice"
	case Town:
		return "town"
	case Cave:
		return "cave"
	default:
		return "unknown"
	}
}

// IsTown reports whether the region is the safe town.
func (k Kind) IsTown() bool {
	return k == Town
}

// Elements returns the enemy elements that roam the region.
func (k Kind) Elements() []combat.Element {
	switch k {
	case Forest, Swamp, Cave:
		return []combat.Element{combat.Shadow, combat.Ice}
	case Mountain:
		return []combat.Element{combat.Fiery, combat.Ice}
	case Desert, Volcano:
		return []combat.Element{combat.Fiery}
	case Glacier:
		return []combat.Element{combat.Ice}
	case Town:
		return nil
	default:
		return combat.Elements
	}
}

// Background returns the ground colour of the region.
func (k Kind) Background() core.Color {
	switch k {
	case Forest:
		return core.RGB(20, 40, 20)
	case Desert:
		return core.RGB(80, 70, 40)
	case Mountain:
		return core.RGB(50, 50, 60)
	case Swamp:
		return core.RGB(25, 35, 25)
	case Volcano:
		return core.RGB(60, 25, 25)
	case Glacier:
		return core.RGB(35, 45, 65)
	case Cave:
		return core.RGB(15, 15, 25)
	case Beach:
		return core.RGB(75, 65, 45)
	case Town:
		return core.RGB(80, 120, 60)
	default:
		return core.ColorNight
	}
}

// GridColor returns the colour of the movement grid lines.
func (k Kind) GridColor() core.Color {
	return k.Background().Scale(1.4)
}

// EntityID is a handle to an enemy or item inside one region.
type EntityID uint64

// Enemy is a monster waiting on the map. It becomes a combat.Enemy when the
// player walks into it.
type Enemy struct {
	ID      EntityID
	Box     core.Rect
	Element combat.Element
	Level   int
	Name    string

	wander core.Countdown
}

// ItemKind is what a pickup restores.
type ItemKind int

const (
	HealthPotion ItemKind = iota
	ManaPotion
)

// String returns the item name.
func (k ItemKind) String() string {
	if k == ManaPotion {
		return "mana potion"
	}
	return "health potion"
}

// Sprite returns the sprite drawn for the item.
func (k ItemKind) Sprite() core.SpriteID {
	if k == ManaPotion {
		return core.SpriteManaItem
	}
	return core.SpriteHealthItem
}

// Item is a pickup lying on the map.
type Item struct {
	ID   EntityID
	Box  core.Rect
	Kind ItemKind
}

// Region is one cell of the world grid.
type Region struct {
	x, y      int
	kind      Kind
	enemies   []Enemy
	items     []Item
	buildings []Building
	smoke     []core.Point
	visited   bool
	nextID    EntityID
}

func newRegion(x, y int, kind Kind) *Region {
	r := &Region{x: x, y: y, kind: kind}
	if kind.IsTown() {
		r.buildings = townBuildings()
		r.smoke = townChimneys()
	}
	return r
}

// Kind returns the region's terrain.
func (r *Region) Kind() Kind { return r.kind }

// Cell returns the region's column and row on the world grid.
func (r *Region) Cell() (int, int) { return r.x, r.y }

// Visited reports whether the player has entered the region.
func (r *Region) Visited() bool { return r.visited }

// WorldPosition returns the region's top-left corner in world pixels.
func (r *Region) WorldPosition() core.Point {
	return core.Pt(r.x*core.WorldWidth, r.y*core.WorldHeight)
}

// Enemies returns the region's enemies. The slice must not be modified.
func (r *Region) Enemies() []Enemy { return r.enemies }

// Items returns the region's items. The slice must not be modified.
func (r *Region) Items() []Item { return r.items }

// Buildings returns the blocking buildings, empty outside the town.
func (r *Region) Buildings() []Building { return r.buildings }

// CheckBuildingCollision reports whether a player-sized box at (x, y) would
// overlap a building.
func (r *Region) CheckBuildingCollision(x, y int) bool {
	return r.blocked(core.NewRect(x, y, PlayerSize, PlayerSize))
}

func (r *Region) blocked(box core.Rect) bool {
	for _, b := range r.buildings {
		if b.Solid && box.Intersects(b.Box) {
			return true
		}
	}
	return false
}

func (r *Region) newID() EntityID {
	r.nextID++
	return r.nextID
}

// AddEnemy places an enemy and returns its handle.
func (r *Region) AddEnemy(e Enemy) EntityID {
	e.ID = r.newID()
	r.enemies = append(r.enemies, e)
	return e.ID
}

// AddItem places an item and returns its handle.
func (r *Region) AddItem(it Item) EntityID {
	it.ID = r.newID()
	r.items = append(r.items, it)
	return it.ID
}

// RemoveEnemy deletes the enemy with the given handle and reports whether it existed.
func (r *Region) RemoveEnemy(id EntityID) bool {
	for i, e := range r.enemies {
		if e.ID == id {
			r.enemies = append(r.enemies[:i], r.enemies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveItem deletes the item with the given handle and reports whether it existed.
func (r *Region) RemoveItem(id EntityID) bool {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// EnemyAt returns the first enemy overlapping box.
func (r *Region) EnemyAt(box core.Rect) (Enemy, bool) {
	for _, e := range r.enemies {
		if e.Box.Intersects(box) {
			return e, true
		}
	}
	return Enemy{}, false
}

// ItemAt returns the first item overlapping box.
func (r *Region) ItemAt(box core.Rect) (Item, bool) {
	for _, it := range r.items {
		if it.Box.Intersects(box) {
			return it, true
		}
	}
	return Item{}, false
}

// clear drops every entity.
func (r *Region) clear() {
	r.enemies = nil
	r.items = nil
	r.visited = false
}
