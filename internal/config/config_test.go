package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/dragonslair/internal/combat"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestValidateCatchesBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"tick rate", func(c *GameConfig) { c.Display.TickRate = 0 }},
		{"escape chance", func(c *GameConfig) { c.Battle.EscapeChance = 1.5 }},
		{"defense divisor", func(c *GameConfig) { c.Battle.DefenseDivisor = 0 }},
		{"missing class", func(c *GameConfig) { delete(c.Classes, "mage") }},
		{"volume", func(c *GameConfig) { c.Audio.MusicVolume = -1 }},
		{"difficulty", func(c *GameConfig) { c.Difficulty = "nightmare" }},
		{"grid", func(c *GameConfig) { c.World.GridSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestClassStats(t *testing.T) {
	cfg := DefaultGameConfig()
	s, err := cfg.ClassStats(combat.Rogue)
	if err != nil {
		t.Fatalf("ClassStats(Rogue) error = %v", err)
	}
	if s.Speed != 12 {
		t.Errorf("Rogue speed = %d, expected 12", s.Speed)
	}

	delete(cfg.Classes, "rogue")
	if _, err := cfg.ClassStats(combat.Rogue); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("ClassStats() error = %v, expected ErrUnknownClass", err)
	}
}

func TestLoadCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("battle:\n  escape_chance: 0.5\nworld:\n  max_enemies: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Battle.EscapeChance != 0.5 {
		t.Errorf("EscapeChance = %v, expected 0.5", cfg.Battle.EscapeChance)
	}
	if cfg.World.MaxEnemies != 5 {
		t.Errorf("MaxEnemies = %d, expected 5", cfg.World.MaxEnemies)
	}
	if cfg.Battle.MagicCost != 20 {
		t.Errorf("MagicCost = %d, expected the default 20", cfg.Battle.MagicCost)
	}
	if cfg.Leveling.BaseExp != 100 {
		t.Errorf("BaseExp = %d, expected the default 100", cfg.Leveling.BaseExp)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("battle: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadGameConfig(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("battle:\n  defense_divisor: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadGameConfig(invalid); err == nil {
		t.Error("invalid values should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Bosses.FinalName != "Malakor, the Dragon" {
		t.Errorf("FinalName = %q", cfg.Bosses.FinalName)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.input, got, tt.want)
		}
	}
}

func TestApplyDifficulty(t *testing.T) {
	normal := DefaultGameConfig()
	if err := normal.ApplyDifficulty(DifficultyNormal); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(normal, DefaultGameConfig()) {
		t.Error("normal difficulty should not change the numbers")
	}

	hard := DefaultGameConfig()
	if err := hard.ApplyDifficulty(DifficultyHard); err != nil {
		t.Fatal(err)
	}
	if hard.Enemies.HealthMin <= normal.Enemies.HealthMin {
		t.Errorf("hard HealthMin = %d, expected above %d", hard.Enemies.HealthMin, normal.Enemies.HealthMin)
	}
	if hard.World.EnemyInterval >= normal.World.EnemyInterval {
		t.Errorf("hard EnemyInterval = %d, expected below %d", hard.World.EnemyInterval, normal.World.EnemyInterval)
	}
	if hard.Difficulty != DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", hard.Difficulty)
	}

	easy := DefaultGameConfig()
	if err := easy.ApplyDifficulty(DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	if easy.Bosses.Final.Strength >= normal.Bosses.Final.Strength {
		t.Errorf("easy final boss strength = %d, expected below %d", easy.Bosses.Final.Strength, normal.Bosses.Final.Strength)
	}

	if err := easy.ApplyDifficulty("impossible"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestScaleKeepsPositive(t *testing.T) {
	if got := scale(1, 0.1); got != 1 {
		t.Errorf("scale(1, 0.1) = %d, expected 1", got)
	}
	if got := scale(0, 2); got != 0 {
		t.Errorf("scale(0, 2) = %d, expected 0", got)
	}
	if got := scale(300, 1.5); got != 450 {
		t.Errorf("scale(300, 1.5) = %d, expected 450", got)
	}
}
