package config

import (
	_ "embed"

	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/world"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hard-coded configuration. The embedded
// defaults/game.yaml carries the same values.
func DefaultGameConfig() GameConfig {
	classes := make(map[string]combat.Stats)
	for class, stats := range combat.DefaultClassStats() {
		classes[lowerName(class)] = stats
	}
	return GameConfig{
		Display: DisplayConfig{
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			BufferMillis: 100,
			MusicVolume:  0.3,
			SFXVolume:    0.6,
		},
		Battle: combat.DefaultRules(),
		Rewards: RewardsConfig{
			EnemyExp:   25,
			EnemyScore: 10,
			BossExp:    45,
			BossScore:  25,
			BossHeal:   40,
			BossMana:   30,
		},
		Leveling: combat.DefaultGrowth(),
		Classes:  classes,
		Enemies:  combat.DefaultScaling(),
		Bosses:   combat.DefaultBossScaling(),
		World:    world.DefaultConfig(),
		Particles: ParticlesConfig{
			Capacity: 2048,
		},
		Screens: ScreensConfig{
			SceneTicks:      300,
			FadeSpeed:       10,
			VictoryMinTicks: 180,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
