package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Difficulties lists the presets in menu order.
var Difficulties = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// DifficultyScaling is how a preset bends the enemy curve.
type DifficultyScaling struct {
	EnemyHealth   float64 // multiplier on enemy and boss health
	EnemyStrength float64 // multiplier on enemy and boss strength
	SpawnInterval float64 // multiplier on the ticks between enemy spawns
}

// ScalingForPreset returns the multipliers of a difficulty preset.
func ScalingForPreset(preset DifficultyPreset) DifficultyScaling {
	switch preset {
	case DifficultyEasy:
		return DifficultyScaling{EnemyHealth: 0.75, EnemyStrength: 0.8, SpawnInterval: 1.5}
	case DifficultyHard:
		return DifficultyScaling{EnemyHealth: 1.3, EnemyStrength: 1.25, SpawnInterval: 0.7}
	default:
		return DifficultyScaling{EnemyHealth: 1, EnemyStrength: 1, SpawnInterval: 1}
	}
}

// ParseDifficulty maps a name to a preset. An empty name is normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(name))
	for _, d := range Difficulties {
		if p == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyDifficulty scales the enemy, boss and spawn settings by a preset and
// records it. Applying normal leaves the numbers unchanged.
func (c *GameConfig) ApplyDifficulty(preset DifficultyPreset) error {
	p, err := ParseDifficulty(string(preset))
	if err != nil {
		return err
	}
	s := ScalingForPreset(p)

	e := &c.Enemies
	e.HealthMin = scale(e.HealthMin, s.EnemyHealth)
	e.HealthMax = scale(e.HealthMax, s.EnemyHealth)
	e.HealthPerLevel = scale(e.HealthPerLevel, s.EnemyHealth)
	e.StrengthMin = scale(e.StrengthMin, s.EnemyStrength)
	e.StrengthMax = scale(e.StrengthMax, s.EnemyStrength)
	e.StrengthPerLevel = scale(e.StrengthPerLevel, s.EnemyStrength)

	b := &c.Bosses
	b.BaseHealth = scale(b.BaseHealth, s.EnemyHealth)
	b.HealthPerLevel = scale(b.HealthPerLevel, s.EnemyHealth)
	b.BaseStrength = scale(b.BaseStrength, s.EnemyStrength)
	b.StrengthPerLevel = scale(b.StrengthPerLevel, s.EnemyStrength)
	b.Final.Health = scale(b.Final.Health, s.EnemyHealth)
	b.Final.Strength = scale(b.Final.Strength, s.EnemyStrength)

	c.World.EnemyInterval = scale(c.World.EnemyInterval, s.SpawnInterval)
	c.Difficulty = p
	return nil
}

// scale multiplies v by k, rounding, and keeps positive values at least 1.
func scale(v int, k float64) int {
	r := int(math.Round(float64(v) * k))
	if v > 0 && r < 1 {
		return 1
	}
	return r
}
