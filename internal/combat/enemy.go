package combat

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/core"
)

// Element is the elemental affinity of an enemy.
type Element int

const (
	Fiery Element = iota
	Shadow
	Ice
	Dragonfire // bosses
)

// Elements lists the elements regular enemies can have.
var Elements = []Element{Fiery, Shadow, Ice}

// String returns the element name.
func (e Element) String() string {
	switch e {
	case Fiery:
		return "fiery"
	case Shadow:
		return "shadow"
	case Ice:
		return "ice"
	case Dragonfire:
		return "dragonfire"
	default:
		return "unknown"
	}
}

// Color returns the colour used for the element's effects.
func (e Element) Color() core.Color {
	switch e {
	case Fiery:
		return core.ColorOrange
	case Shadow:
		return core.ColorShadow
	case Ice:
		return core.ColorIce
	default:
		return core.ColorRed
	}
}

var enemyNames = map[Element][]string{
	Fiery:  {"Fire Imp", "Lava Sprite", "Magma Beast", "Inferno Hound", "Blaze Fiend", "Hell Hound", "Flame Demon", "Ember Beast"},
	Shadow: {"Dark Shade", "Night Phantom", "Void Walker", "Gloom Stalker", "Shadow Fiend", "Dark Bat", "Shadow Demon", "Void Beast"},
	Ice:    {"Frost Sprite", "Ice Golem", "Blizzard Elemental", "Frozen Wraith", "Chill Specter", "Frost Bat", "Ice Demon", "Frozen Beast"},
}

// KindTag says what sort of enemy a Kind is.
type KindTag int

const (
	KindRegular KindTag = iota
	KindProgressiveBoss
	KindFinalBoss
)

// Kind classifies an enemy once, at construction.
type Kind struct {
	Tag     KindTag
	Element Element
	Tier    int // evolution tier, bosses only
}

// Regular is an ordinary elemental enemy.
func Regular(e Element) Kind {
	return Kind{Tag: KindRegular, Element: e}
}

// ProgressiveBoss is a level-up dragon of the given evolution tier.
func ProgressiveBoss(tier int) Kind {
	return Kind{Tag: KindProgressiveBoss, Element: Dragonfire, Tier: tier}
}

// FinalBoss is Malakor.
func FinalBoss() Kind {
	return Kind{Tag: KindFinalBoss, Element: Dragonfire, Tier: FinalTier}
}

// IsBoss reports whether the kind is any boss.
func (k Kind) IsBoss() bool {
	return k.Tag != KindRegular
}

// IsFinal reports whether the kind is the final boss.
func (k Kind) IsFinal() bool {
	return k.Tag == KindFinalBoss
}

// Enemy is a monster or boss.
type Enemy struct {
	Combatant
	Kind  Kind
	Level int
}

// Sprite returns the sprite drawn for the enemy.
func (e *Enemy) Sprite() core.SpriteID {
	switch {
	case e.Kind.IsFinal():
		return core.SpriteDragonLord
	case e.Kind.IsBoss():
		return core.SpriteDragon
	case e.Kind.Element == Fiery:
		return core.SpriteEnemyFiery
	case e.Kind.Element == Shadow:
		return core.SpriteEnemyShadow
	default:
		return core.SpriteEnemyIce
	}
}

// AttackTicks returns the length of the enemy's attack animation.
func (e *Enemy) AttackTicks() int {
	if e.Kind.IsBoss() {
		return BossAttackAnimTicks
	}
	return AttackAnimTicks
}

// Scaling is how regular enemy stats grow with the player's level.
type Scaling struct {
	HealthMin        int     `yaml:"health_min"`
	HealthMax        int     `yaml:"health_max"`
	HealthPerLevel   int     `yaml:"health_per_level"`
	StrengthMin      int     `yaml:"strength_min"`
	StrengthMax      int     `yaml:"strength_max"`
	StrengthPerLevel int     `yaml:"strength_per_level"`
	SpeedMin         int     `yaml:"speed_min"`
	SpeedMax         int     `yaml:"speed_max"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
}

// DefaultScaling returns the built-in enemy curve.
func DefaultScaling() Scaling {
	return Scaling{
		HealthMin: 20, HealthMax: 30, HealthPerLevel: 5,
		StrengthMin: 5, StrengthMax: 10, StrengthPerLevel: 2,
		SpeedMin: 3, SpeedMax: 6, SpeedPerLevel: 0.5,
	}
}

func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// EnemyName picks a name for an enemy of the given element.
func EnemyName(element Element, rng *rand.Rand) string {
	names := enemyNames[element]
	if len(names) == 0 {
		return element.String() + " monster"
	}
	return names[rng.Intn(len(names))]
}

// NewEnemy rolls a regular enemy of the given element for a player level.
func NewEnemy(element Element, level int, s Scaling, rng *rand.Rand) *Enemy {
	name := EnemyName(element, rng)
	health := between(rng, s.HealthMin, s.HealthMax) + level*s.HealthPerLevel
	return &Enemy{
		Combatant: Combatant{
			Name:      name,
			Health:    health,
			MaxHealth: health,
			Strength:  between(rng, s.StrengthMin, s.StrengthMax) + level*s.StrengthPerLevel,
			Speed:     between(rng, s.SpeedMin, s.SpeedMax) + int(float64(level)*s.SpeedPerLevel),
		},
		Kind:  Regular(element),
		Level: level,
	}
}

// FinalTier is the evolution tier of the final boss.
const FinalTier = 9

var evolutionNames = []string{
	"Young Dragon",
	"Adolescent Dragon",
	"Adult Dragon",
	"Veteran Dragon",
	"Elite Dragon",
	"Champion Dragon",
	"Legendary Dragon",
	"Ancient Dragon",
	"Elder Dragon",
	"Malakor, the Dragon Lord",
}

// EvolutionTier returns the dragon tier met at a player level.
func EvolutionTier(level int, finalLevel int) int {
	switch {
	case level >= finalLevel:
		return FinalTier
	case level < 2:
		return 0
	default:
		return core.Min(level-2, FinalTier-1)
	}
}

// EvolutionName returns the title of a dragon tier.
func EvolutionName(tier int) string {
	return evolutionNames[core.Clamp(tier, 0, len(evolutionNames)-1)]
}

// BossScaling configures the dragons.
type BossScaling struct {
	BaseHealth       int     `yaml:"base_health"`
	HealthPerLevel   int     `yaml:"health_per_level"`
	BaseStrength     int     `yaml:"base_strength"`
	StrengthPerLevel int     `yaml:"strength_per_level"`
	BaseSpeed        int     `yaml:"base_speed"`
	SpeedPerLevel    float64 `yaml:"speed_per_level"`
	FinalLevel       int     `yaml:"final_level"`
	FinalName        string  `yaml:"final_name"`
	Final            Stats   `yaml:"final"`
}

// DefaultBossScaling returns the built-in dragons.
func DefaultBossScaling() BossScaling {
	return BossScaling{
		BaseHealth: 200, HealthPerLevel: 60,
		BaseStrength: 18, StrengthPerLevel: 4,
		BaseSpeed: 6, SpeedPerLevel: 0.5,
		FinalLevel: 10,
		FinalName:  "Malakor, the Dragon",
		Final:      Stats{Health: 400, Strength: 35, Speed: 10},
	}
}

// NewProgressiveBoss creates the dragon that answers a level-up.
func NewProgressiveBoss(level int, b BossScaling) *Enemy {
	health := b.BaseHealth + level*b.HealthPerLevel
	return &Enemy{
		Combatant: Combatant{
			Name:      fmt.Sprintf("Dragon Boss Lv.%d", level),
			Health:    health,
			MaxHealth: health,
			Strength:  b.BaseStrength + level*b.StrengthPerLevel,
			Speed:     b.BaseSpeed + int(float64(level)*b.SpeedPerLevel),
		},
		Kind:  ProgressiveBoss(EvolutionTier(level, b.FinalLevel)),
		Level: level,
	}
}

// NewFinalBoss creates Malakor.
func NewFinalBoss(b BossScaling) *Enemy {
	return &Enemy{
		Combatant: Combatant{
			Name:      b.FinalName,
			Health:    b.Final.Health,
			MaxHealth: b.Final.Health,
			Strength:  b.Final.Strength,
			Speed:     b.Final.Speed,
		},
		Kind:  FinalBoss(),
		Level: b.FinalLevel,
	}
}
