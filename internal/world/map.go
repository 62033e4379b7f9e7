package world

import (
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

// Grid and entity sizes in world pixels.
const (
	Size       = 3 // regions per side
	PlayerSize = 50
	EnemySize  = 40
	ItemSize   = 30
)

var layout = [Size][Size]Kind{
	{Mountain, Forest, Desert},
	{Swamp, Beach, Volcano},
	{Glacier, Town, Cave},
}

// Config tunes the overworld.
type Config struct {
	GridSize        int `yaml:"grid_size"`
	MoveCooldown    int `yaml:"move_cooldown_ticks"`
	EnemyInterval   int `yaml:"enemy_spawn_ticks"`
	MaxEnemies      int `yaml:"max_enemies"`
	ItemInterval    int `yaml:"item_spawn_ticks"`
	MaxItems        int `yaml:"max_items"`
	InitialEnemies  int `yaml:"initial_enemies"`
	InitialItems    int `yaml:"initial_items"`
	WanderInterval  int `yaml:"wander_ticks"`
	AmbientInterval int `yaml:"ambient_ticks"`
	SpawnMargin     int `yaml:"spawn_margin"`
	HealAmount      int `yaml:"item_heal"`
	ManaAmount      int `yaml:"item_mana"`
}

// DefaultConfig returns the built-in overworld tuning.
func DefaultConfig() Config {
	return Config{
		GridSize:        50,
		MoveCooldown:    10,
		EnemyInterval:   300,
		MaxEnemies:      3,
		ItemInterval:    600,
		MaxItems:        2,
		InitialEnemies:  3,
		InitialItems:    2,
		WanderInterval:  60,
		AmbientInterval: 30,
		SpawnMargin:     100,
		HealAmount:      30,
		ManaAmount:      40,
	}
}

// StepResult says what a movement step ran into.
type StepResult struct {
	Moved   bool
	Entered *Region // set when the step crossed into another region
	Enemy   *Enemy  // enemy walked into, already removed from the region
	Item    *Item   // item picked up, already removed from the region
}

// Map is the 3x3 overworld and the player's place in it.
type Map struct {
	cfg     Config
	rng     *rand.Rand
	regions [Size][Size]*Region
	cx, cy  int
	player  core.Point

	moveCooldown core.Countdown
	enemyTimer   int
	itemTimer    int
	ambientTimer int
	ticks        int
}

// NewMap builds the world and places the player in the centre region.
func NewMap(cfg Config, rng *rand.Rand) *Map {
	if cfg.GridSize <= 0 {
		cfg = DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	m := &Map{cfg: cfg, rng: rng}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			m.regions[y][x] = newRegion(x, y, layout[y][x])
		}
	}
	m.Reset(1)
	return m
}

// Reset discards every entity and puts the player back at the start.
func (m *Map) Reset(level int) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			m.regions[y][x].clear()
		}
	}
	m.cx, m.cy = Size/2, Size/2
	m.player = m.snap(core.Pt(core.WorldWidth/2, core.WorldHeight/2))
	m.moveCooldown.Stop()
	m.enemyTimer, m.itemTimer, m.ambientTimer = 0, 0, 0
	m.enter(level)
}

// Config returns the overworld tuning.
func (m *Map) Config() Config { return m.cfg }

// Current returns the region the player is in.
func (m *Map) Current() *Region { return m.regions[m.cy][m.cx] }

// Region returns the region at a grid cell, or nil outside the world.
func (m *Map) Region(x, y int) *Region {
	if x < 0 || y < 0 || x >= Size || y >= Size {
		return nil
	}
	return m.regions[y][x]
}

// Player returns the player's top-left corner inside the current region.
func (m *Map) Player() core.Point { return m.player }

// PlayerBox returns the player's bounds inside the current region.
func (m *Map) PlayerBox() core.Rect {
	return core.NewRect(m.player.X, m.player.Y, PlayerSize, PlayerSize)
}

func (m *Map) snap(p core.Point) core.Point {
	g := m.cfg.GridSize
	return core.Pt(p.X/g*g, p.Y/g*g)
}

// CanMove reports whether the movement cooldown allows a step.
func (m *Map) CanMove() bool { return !m.moveCooldown.Active() }

// Move walks the player one grid cell. Leaving a region's edge enters the
// neighbour; the world's outer edge stops the player. Town buildings block.
// The step removes whatever enemy or item the player lands on and reports it.
func (m *Map) Move(dx, dy, level int) StepResult {
	var res StepResult
	if (dx == 0 && dy == 0) || m.moveCooldown.Active() {
		return res
	}
	g := m.cfg.GridSize
	next := core.Pt(m.player.X+dx*g, m.player.Y+dy*g)
	cx, cy := m.cx, m.cy

	switch {
	case next.X < 0:
		cx--
		next.X = core.WorldWidth - g
	case next.X+PlayerSize > core.WorldWidth:
		cx++
		next.X = 0
	}
	switch {
	case next.Y < 0:
		cy--
		next.Y = m.snap(core.Pt(0, core.WorldHeight-PlayerSize)).Y
	case next.Y+PlayerSize > core.WorldHeight:
		cy++
		next.Y = 0
	}
	if m.Region(cx, cy) == nil {
		return res
	}

	crossed := cx != m.cx || cy != m.cy
	if !crossed && m.Current().blocked(core.NewRect(next.X, next.Y, PlayerSize, PlayerSize)) {
		return res
	}
	if crossed {
		m.cx, m.cy = cx, cy
		if m.Current().kind.IsTown() {
			next = TownGate
		}
	}
	m.player = next
	m.moveCooldown.Restart(m.cfg.MoveCooldown)
	res.Moved = true

	if crossed {
		m.enemyTimer, m.itemTimer = 0, 0
		m.enter(level)
		res.Entered = m.Current()
	}

	r := m.Current()
	box := m.PlayerBox()
	if e, ok := r.EnemyAt(box); ok {
		r.RemoveEnemy(e.ID)
		res.Enemy = &e
	}
	if it, ok := r.ItemAt(box); ok {
		r.RemoveItem(it.ID)
		res.Item = &it
	}
	return res
}

// enter marks the current region visited, populating it on the first visit.
func (m *Map) enter(level int) {
	r := m.Current()
	if r.visited {
		return
	}
	r.visited = true
	for i := 0; i < m.cfg.InitialEnemies; i++ {
		m.spawnEnemy(r, level)
	}
	for i := 0; i < m.cfg.InitialItems; i++ {
		m.spawnItem(r)
	}
}

// Update advances spawning, wandering, and ambient weather in the current region.
func (m *Map) Update(level int, fx *particles.Field) {
	m.ticks++
	m.moveCooldown.Tick()
	r := m.Current()

	m.enemyTimer++
	if m.enemyTimer >= m.cfg.EnemyInterval {
		m.enemyTimer = 0
		m.spawnEnemy(r, level)
	}
	m.itemTimer++
	if m.itemTimer >= m.cfg.ItemInterval {
		m.itemTimer = 0
		m.spawnItem(r)
	}

	for i := range r.enemies {
		if r.enemies[i].wander.Tick() {
			m.wander(r, &r.enemies[i])
		}
	}

	if fx == nil {
		return
	}
	m.ambientTimer++
	if m.ambientTimer >= r.kind.AmbientInterval(m.cfg.AmbientInterval) {
		m.ambientTimer = 0
		for _, a := range r.kind.Ambience() {
			fx.Ambient(a)
		}
	}
	for _, at := range r.smoke {
		fx.Ambient(chimneySmoke(at))
	}
}

func (m *Map) randomSpot(size int) core.Point {
	margin := m.cfg.SpawnMargin
	x := margin + m.rng.Intn(core.Max(1, core.WorldWidth-2*margin-size))
	y := margin + m.rng.Intn(core.Max(1, core.WorldHeight-2*margin-size))
	return core.Pt(x, y)
}

// spawnEnemy adds an enemy to r unless r is full or the town.
func (m *Map) spawnEnemy(r *Region, level int) bool {
	elements := r.kind.Elements()
	if len(elements) == 0 || len(r.enemies) >= m.cfg.MaxEnemies {
		return false
	}
	for attempt := 0; attempt < 10; attempt++ {
		at := m.randomSpot(EnemySize)
		box := core.NewRect(at.X, at.Y, EnemySize, EnemySize)
		if r.blocked(box) || box.Intersects(m.PlayerBox()) {
			continue
		}
		el := elements[m.rng.Intn(len(elements))]
		e := Enemy{
			Box:     box,
			Element: el,
			Level:   level,
			Name:    combat.EnemyName(el, m.rng),
			wander:  core.NewCountdown(m.cfg.WanderInterval),
		}
		r.AddEnemy(e)
		return true
	}
	return false
}

// spawnItem adds a potion to r unless r is full.
func (m *Map) spawnItem(r *Region) bool {
	if len(r.items) >= m.cfg.MaxItems {
		return false
	}
	for attempt := 0; attempt < 10; attempt++ {
		at := m.randomSpot(ItemSize)
		box := core.NewRect(at.X, at.Y, ItemSize, ItemSize)
		if r.blocked(box) || box.Intersects(m.PlayerBox()) {
			continue
		}
		kind := HealthPotion
		if m.rng.Intn(2) == 1 {
			kind = ManaPotion
		}
		r.AddItem(Item{Box: box, Kind: kind})
		return true
	}
	return false
}

// wander moves an enemy one grid cell in a random direction, staying inside
// the region and off buildings and the player.
func (m *Map) wander(r *Region, e *Enemy) {
	e.wander.Restart(m.cfg.WanderInterval)
	dirs := [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	d := dirs[m.rng.Intn(len(dirs))]
	g := m.cfg.GridSize
	box := e.Box.Moved(e.Box.X+d.X*g, e.Box.Y+d.Y*g)
	if box.X < 0 || box.Y < 0 || box.Right() > core.WorldWidth || box.Bottom() > core.WorldHeight {
		return
	}
	if r.blocked(box) || box.Intersects(m.PlayerBox()) {
		return
	}
	e.Box = box
}

// ApplyItem gives the item's effect to the player and returns the amount restored.
func (m *Map) ApplyItem(p *combat.Player, it Item) int {
	if it.Kind == ManaPotion {
		return p.RestoreMana(m.cfg.ManaAmount)
	}
	return p.Heal(m.cfg.HealAmount)
}

// Ticks returns how many updates the map has run.
func (m *Map) Ticks() int { return m.ticks }
