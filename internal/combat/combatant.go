// Package combat holds the fighters and the turn-based battle engine.
//
// A Session borrows one *Player and one *Enemy; every change it makes is
// visible to the owner (the game state machine) without copying back.
package combat

import "github.com/vovakirdan/dragonslair/internal/core"

// Animation lengths in ticks.
const (
	AttackAnimTicks     = 15
	BossAttackAnimTicks = 20
	HitAnimTicks        = 10
)

// Combatant holds what the player and enemies share: vitals, stats and the
// attack/hit animation timers.
type Combatant struct {
	Name      string
	Health    int
	MaxHealth int
	Mana      int
	MaxMana   int
	Strength  int
	Defense   int
	Speed     int // flavour only; turn order is always player then enemy

	AttackAnim core.Countdown
	HitAnim    core.Countdown
}

// Alive reports whether health is above zero.
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// TakeDamage subtracts amount from health, stopping at zero, and returns the
// health actually lost.
func (c *Combatant) TakeDamage(amount int) int {
	if !core.Assert(amount >= 0, "negative damage %d to %s", amount, c.Name) {
		return 0
	}
	lost := core.Min(amount, c.Health)
	c.Health -= lost
	return lost
}

// Heal restores up to amount health without passing MaxHealth and returns
// the health actually gained.
func (c *Combatant) Heal(amount int) int {
	if !core.Assert(amount >= 0, "negative heal %d to %s", amount, c.Name) {
		return 0
	}
	gained := core.Min(amount, c.MaxHealth-c.Health)
	gained = core.Max(0, gained)
	c.Health += gained
	return gained
}

// RestoreMana restores up to amount mana without passing MaxMana.
func (c *Combatant) RestoreMana(amount int) int {
	if !core.Assert(amount >= 0, "negative mana restore %d to %s", amount, c.Name) {
		return 0
	}
	gained := core.Max(0, core.Min(amount, c.MaxMana-c.Mana))
	c.Mana += gained
	return gained
}

// SpendMana pays cost if enough mana is available.
func (c *Combatant) SpendMana(cost int) bool {
	if cost < 0 || c.Mana < cost {
		return false
	}
	c.Mana -= cost
	return true
}

// RestoreAll refills health and mana.
func (c *Combatant) RestoreAll() {
	c.Health = c.MaxHealth
	c.Mana = c.MaxMana
}

// StartAttack plays the attack animation.
func (c *Combatant) StartAttack(ticks int) {
	c.AttackAnim.Restart(ticks)
}

// StartHit plays the hit flash.
func (c *Combatant) StartHit() {
	c.HitAnim.Restart(HitAnimTicks)
}

// Tick advances the animation timers.
func (c *Combatant) Tick() {
	c.AttackAnim.Tick()
	c.HitAnim.Tick()
}

// HealthFraction returns health as a fraction of the maximum, for bars.
func (c *Combatant) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}

// ManaFraction returns mana as a fraction of the maximum.
func (c *Combatant) ManaFraction() float64 {
	if c.MaxMana <= 0 {
		return 0
	}
	return float64(c.Mana) / float64(c.MaxMana)
}
