package combat

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dragonslair/internal/core"
)

// Class is the player's chosen archetype.
type Class int

const (
	Warrior Class = iota
	Mage
	Rogue
)

// Classes lists the selectable classes in menu order.
var Classes = []Class{Warrior, Mage, Rogue}

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Warrior:
		return "Warrior"
	case Mage:
		return "Mage"
	case Rogue:
		return "Rogue"
	default:
		return "Unknown"
	}
}

// ParseClass maps a case-insensitive name to a class.
func ParseClass(name string) (Class, error) {
	for _, c := range Classes {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("combat: unknown class %q", name)
}

// Sprite returns the sprite drawn for the class.
func (c Class) Sprite() core.SpriteID {
	switch c {
	case Mage:
		return core.SpriteMage
	case Rogue:
		return core.SpriteRogue
	default:
		return core.SpriteWarrior
	}
}

// Stats are the starting numbers of a class.
type Stats struct {
	Health   int `yaml:"health"`
	Mana     int `yaml:"mana"`
	Strength int `yaml:"strength"`
	Defense  int `yaml:"defense"`
	Speed    int `yaml:"speed"`
}

// DefaultClassStats returns the built-in class table.
func DefaultClassStats() map[Class]Stats {
	return map[Class]Stats{
		Warrior: {Health: 120, Mana: 50, Strength: 15, Defense: 10, Speed: 7},
		Mage:    {Health: 80, Mana: 120, Strength: 8, Defense: 6, Speed: 8},
		Rogue:   {Health: 100, Mana: 70, Strength: 12, Defense: 8, Speed: 12},
	}
}

// Growth describes leveling: the first threshold, how it grows, and the
// stat gains per level.
type Growth struct {
	BaseExp   int     `yaml:"base_exp"`
	ExpFactor float64 `yaml:"exp_factor"`
	Health    int     `yaml:"health"`
	Mana      int     `yaml:"mana"`
	Strength  int     `yaml:"strength"`
	Defense   int     `yaml:"defense"`
	Speed     int     `yaml:"speed"`
}

// DefaultGrowth returns the built-in leveling curve.
func DefaultGrowth() Growth {
	return Growth{BaseExp: 100, ExpFactor: 1.5, Health: 20, Mana: 15, Strength: 3, Defense: 2, Speed: 1}
}

// Player is the hero: a Combatant with progression and boss bookkeeping.
type Player struct {
	Combatant
	Class      Class
	Level      int
	Exp        int
	ExpToLevel int
	Kills      int

	// JustLeveledUp is set by a level-up and cleared when the game consumes it.
	JustLeveledUp bool
	// BossCooldown blocks another boss until the next level-up.
	BossCooldown bool
	// LastBossLevel is the player level at the last finished boss fight.
	LastBossLevel int

	growth Growth
}

// NewPlayer creates a level 1 hero of the given class.
func NewPlayer(class Class, base Stats, growth Growth) *Player {
	if growth.BaseExp <= 0 {
		growth = DefaultGrowth()
	}
	return &Player{
		Combatant: Combatant{
			Name:      class.String(),
			Health:    base.Health,
			MaxHealth: base.Health,
			Mana:      base.Mana,
			MaxMana:   base.Mana,
			Strength:  base.Strength,
			Defense:   base.Defense,
			Speed:     base.Speed,
		},
		Class:      class,
		Level:      1,
		ExpToLevel: growth.BaseExp,
		growth:     growth,
	}
}

// GainExp adds experience and levels up as many times as it covers.
// Leftover experience carries over. It returns the number of levels gained.
func (p *Player) GainExp(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Exp += amount
	levels := 0
	for p.ExpToLevel > 0 && p.Exp >= p.ExpToLevel {
		p.Exp -= p.ExpToLevel
		p.levelUp()
		levels++
	}
	return levels
}

func (p *Player) levelUp() {
	g := p.growth
	p.Level++
	p.ExpToLevel = int(float64(p.ExpToLevel) * g.ExpFactor)
	p.MaxHealth += g.Health
	p.MaxMana += g.Mana
	p.Strength += g.Strength
	p.Defense += g.Defense
	p.Speed += g.Speed
	p.RestoreAll()
	p.JustLeveledUp = true
	p.BossCooldown = false
}

// ForfeitExp drops the progress towards the next level.
func (p *Player) ForfeitExp() {
	p.Exp = 0
	p.JustLeveledUp = false
}

// ExpFraction returns progress towards the next level, for bars.
func (p *Player) ExpFraction() float64 {
	if p.ExpToLevel <= 0 {
		return 0
	}
	return float64(p.Exp) / float64(p.ExpToLevel)
}
