package game

import (
	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

var itemBurst = particles.Burst{
	Count:    12,
	Size:     particles.Range{Min: 2, Max: 4},
	Speed:    particles.Range{Min: 0.5, Max: 2},
	Lifetime: particles.IntRange{Min: 15, Max: 30},
}

var cueEffects = map[combat.Cue]audio.Effect{
	combat.CueMenuMove:    audio.EffectClick,
	combat.CueAttack:      audio.EffectAttack,
	combat.CueMagic:       audio.EffectMagic,
	combat.CueItem:        audio.EffectItem,
	combat.CueHit:         audio.EffectArrow,
	combat.CueEnemyStrike: audio.EffectAttack,
	combat.CueRunFailed:   audio.EffectClick,
	combat.CueEscaped:     audio.EffectClick,
	combat.CueWon:         audio.EffectVictory,
	combat.CueLost:        audio.EffectGameOver,
}

// updateBattle runs the session. Rewards are settled as soon as the outcome
// is known so the summary can show them; the mode changes once the player
// dismisses the summary.
func (m *Machine) updateBattle(in core.InputFrame) string {
	s := m.battle
	if s == nil {
		core.Assert(false, "battle mode without a session")
		return ""
	}
	s.Update(in)
	for _, cue := range s.DrainCues() {
		if e, ok := cueEffects[cue]; ok {
			m.sfx(e)
		}
	}
	if s.Outcome() != combat.OutcomeNone && !m.settled {
		m.exit = m.settle(s)
		m.settled = true
	}
	if !s.Finished() {
		return ""
	}
	return m.exit
}

// settle applies the result of a battle to the run and returns the event
// that leaves battle mode.
func (m *Machine) settle(s *combat.Session) string {
	p := s.Player()
	enemy := s.Enemy()
	boss := enemy.Kind.IsBoss()
	r := m.cfg.Rewards

	switch s.Outcome() {
	case combat.OutcomeWin:
		p.Kills++
		exp, score := r.EnemyExp, r.EnemyScore
		if boss {
			exp, score = r.BossExp, r.BossScore
		}
		s.SetReward(exp)
		if p.GainExp(exp) > 0 {
			m.sfx(audio.EffectLevelUp)
			m.log.Info("level up", "level", p.Level)
		}
		m.run.Score += score
		if boss {
			p.Heal(r.BossHeal)
			p.RestoreMana(r.BossMana)
			m.closeBossFight(p)
		}
		m.log.Info("battle won", "enemy", enemy.Name, "exp", exp, "score", m.run.Score)
		if enemy.Kind.IsFinal() {
			return evSlayFinal
		}
		return evWin

	case combat.OutcomeLose:
		m.log.Info("battle lost", "enemy", enemy.Name)
		return evLose

	case combat.OutcomeEscape:
		if boss {
			m.closeBossFight(p)
		} else {
			p.ForfeitExp()
		}
		m.log.Info("escaped", "enemy", enemy.Name, "boss", boss)
		return evEscape
	}
	core.Assert(false, "settle without an outcome")
	return ""
}

// closeBossFight puts the dragons on cooldown until the next level-up.
func (m *Machine) closeBossFight(p *combat.Player) {
	p.JustLeveledUp = false
	p.BossCooldown = true
	p.LastBossLevel = p.Level
}

// dueBoss consumes a pending level-up and returns the dragon it calls, or
// nil. A boss comes after a level-up past level 1, when not on cooldown and
// above the level of the last boss fought. The final level calls Malakor.
func (m *Machine) dueBoss() *combat.Enemy {
	p := m.player
	if p == nil || !p.JustLeveledUp {
		return nil
	}
	p.JustLeveledUp = false
	if p.Level <= 1 || p.BossCooldown || p.Level <= p.LastBossLevel {
		return nil
	}
	p.BossCooldown = true

	b := m.cfg.Bosses
	var boss *combat.Enemy
	if p.Level >= b.FinalLevel {
		boss = combat.NewFinalBoss(b)
	} else {
		boss = combat.NewProgressiveBoss(p.Level, b)
	}
	m.log.Info("boss appears", "boss", boss.Name, "tier", boss.Kind.Tier,
		"evolution", combat.EvolutionName(boss.Kind.Tier), "level", p.Level)
	return boss
}
