// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/world"
)

// ErrUnknownClass is returned for a class missing from the class table.
var ErrUnknownClass = errors.New("config: unknown class")

// GameConfig contains all tunable numbers of the game.
type GameConfig struct {
	Display    DisplayConfig           `yaml:"display"`
	Audio      AudioConfig             `yaml:"audio"`
	Battle     combat.Rules            `yaml:"battle"`
	Rewards    RewardsConfig           `yaml:"rewards"`
	Leveling   combat.Growth           `yaml:"leveling"`
	Classes    map[string]combat.Stats `yaml:"classes"`
	Enemies    combat.Scaling          `yaml:"enemies"`
	Bosses     combat.BossScaling      `yaml:"bosses"`
	World      world.Config            `yaml:"world"`
	Particles  ParticlesConfig         `yaml:"particles"`
	Screens    ScreensConfig           `yaml:"screens"`
	Difficulty DifficultyPreset        `yaml:"difficulty"`
}

// DisplayConfig defines the simulation rate and terminal grid.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second
	Width    int `yaml:"width"`     // cells, 0 = terminal width
	Height   int `yaml:"height"`    // cells, 0 = terminal height
}

// AudioConfig defines the synthesizer and mixer settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	BufferMillis int     `yaml:"buffer_ms"`
	MusicVolume  float64 `yaml:"music_volume"` // 0..1
	SFXVolume    float64 `yaml:"sfx_volume"`   // 0..1
}

// RewardsConfig defines what winning a battle grants.
type RewardsConfig struct {
	EnemyExp   int `yaml:"enemy_exp"`
	EnemyScore int `yaml:"enemy_score"`
	BossExp    int `yaml:"boss_exp"`
	BossScore  int `yaml:"boss_score"`
	BossHeal   int `yaml:"boss_heal"`
	BossMana   int `yaml:"boss_mana"`
}

// ParticlesConfig defines the particle pool.
type ParticlesConfig struct {
	Capacity int `yaml:"capacity"`
}

// ScreensConfig defines the pacing of the non-gameplay screens.
type ScreensConfig struct {
	SceneTicks      int `yaml:"scene_ticks"`       // length of one cutscene scene
	FadeSpeed       int `yaml:"fade_speed"`        // alpha change per tick of a transition
	VictoryMinTicks int `yaml:"victory_min_ticks"` // shortest time the victory screen shows
}

// ClassStats returns the starting stats of a class.
func (c GameConfig) ClassStats(class combat.Class) (combat.Stats, error) {
	s, ok := c.Classes[lowerName(class)]
	if !ok {
		return combat.Stats{}, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}
	return s, nil
}

// Validate checks that every value is usable.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Display.TickRate > 0, "display.tick_rate must be positive, got %d", c.Display.TickRate)
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1, "audio.music_volume must be in [0,1], got %v", c.Audio.MusicVolume)
	check(c.Audio.SFXVolume >= 0 && c.Audio.SFXVolume <= 1, "audio.sfx_volume must be in [0,1], got %v", c.Audio.SFXVolume)

	b := c.Battle
	check(b.AttackDelay >= 0, "battle.attack_delay_ticks must not be negative")
	check(b.ActionDelay >= 0, "battle.action_delay_ticks must not be negative")
	check(b.MagicCost >= 0, "battle.magic_cost must not be negative")
	check(b.EscapeChance >= 0 && b.EscapeChance <= 1, "battle.escape_chance must be in [0,1], got %v", b.EscapeChance)
	check(b.DefenseDivisor > 0, "battle.defense_divisor must be positive")

	check(c.Leveling.BaseExp > 0, "leveling.base_exp must be positive")
	check(c.Leveling.ExpFactor >= 1, "leveling.exp_factor must be at least 1, got %v", c.Leveling.ExpFactor)

	for _, class := range combat.Classes {
		s, err := c.ClassStats(class)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		check(s.Health > 0, "classes.%s.health must be positive", lowerName(class))
	}

	check(c.Enemies.HealthMin > 0 && c.Enemies.HealthMax >= c.Enemies.HealthMin, "enemies health range is invalid")
	check(c.Enemies.StrengthMax >= c.Enemies.StrengthMin, "enemies strength range is invalid")
	check(c.Bosses.FinalLevel > 1, "bosses.final_level must be above 1")
	check(c.Bosses.Final.Health > 0, "bosses.final.health must be positive")

	w := c.World
	check(w.GridSize > 0, "world.grid_size must be positive")
	check(w.EnemyInterval > 0 && w.ItemInterval > 0, "world spawn intervals must be positive")
	check(w.WanderInterval > 0, "world.wander_ticks must be positive")

	check(c.Screens.FadeSpeed > 0, "screens.fade_speed must be positive")
	check(c.Screens.SceneTicks > 0, "screens.scene_ticks must be positive")

	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func lowerName(c combat.Class) string {
	return strings.ToLower(c.String())
}
