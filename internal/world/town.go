package world

import "github.com/vovakirdan/dragonslair/internal/core"

// Building is a structure in the town.
type Building struct {
	Name  string
	Box   core.Rect
	Color core.Color
	Solid bool
}

func townBuildings() []Building {
	return []Building{
		{Name: "Town Hall", Box: core.NewRect(400, 380, 200, 140), Color: core.RGB(200, 180, 160), Solid: true},
		{Name: "Shop", Box: core.NewRect(60, 430, 140, 90), Color: core.RGB(180, 160, 200), Solid: true},
		{Name: "Inn", Box: core.NewRect(800, 430, 140, 90), Color: core.RGB(200, 160, 140), Solid: true},
		{Name: "Blacksmith", Box: core.NewRect(100, 570, 120, 80), Color: core.RGB(140, 120, 100), Solid: true},
		{Name: "Library", Box: core.NewRect(780, 570, 120, 80), Color: core.RGB(160, 180, 200), Solid: true},
		{Name: "House", Box: core.NewRect(750, 340, 70, 60), Color: core.RGB(150, 130, 110), Solid: true},
		{Name: "Stall", Box: core.NewRect(450, 530, 100, 50), Color: core.RGB(170, 150, 130), Solid: true},
	}
}

func townChimneys() []core.Point {
	return []core.Point{
		core.Pt(150, 430), // shop
		core.Pt(850, 430), // inn
		core.Pt(180, 570), // blacksmith
		core.Pt(820, 570), // library
	}
}

// Town wall along the top of the town region, with the gate in the middle.
var (
	townWallLeft  = core.NewRect(0, 200, 450, 20)
	townWallRight = core.NewRect(550, 200, 450, 20)
	townGate      = core.NewRect(450, 200, 100, 60)
)

// TownGate is where the player appears on entering the town.
var TownGate = core.Pt(core.WorldWidth/2, 250)
