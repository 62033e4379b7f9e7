package game

import (
	"testing"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/combat"
)

func TestCueEffects(t *testing.T) {
	tests := []struct {
		cue  combat.Cue
		want audio.Effect
	}{
		{combat.CueAttack, audio.EffectAttack},
		{combat.CueMagic, audio.EffectMagic},
		{combat.CueItem, audio.EffectItem},
		{combat.CueWon, audio.EffectVictory},
		{combat.CueLost, audio.EffectGameOver},
	}
	for _, tt := range tests {
		if got, ok := cueEffects[tt.cue]; !ok || got != tt.want {
			t.Errorf("cueEffects[%d] = %s (%v), expected %s", tt.cue, got, ok, tt.want)
		}
	}

	for c := combat.CueMenuMove; c <= combat.CueLost; c++ {
		if _, ok := cueEffects[c]; !ok {
			t.Errorf("cue %d has no sound", c)
		}
	}
}
