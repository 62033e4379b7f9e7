package combat

import (
	"math/rand"
	"testing"
)

func TestCombatantHealthBounds(t *testing.T) {
	c := Combatant{Name: "dummy", Health: 50, MaxHealth: 50}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		amount := rng.Intn(40)
		if rng.Intn(2) == 0 {
			c.TakeDamage(amount)
		} else {
			c.Heal(amount)
		}
		if c.Health < 0 || c.Health > c.MaxHealth {
			t.Fatalf("step %d: health = %d, expected within [0, %d]", i, c.Health, c.MaxHealth)
		}
	}
}

func TestCombatantManaBounds(t *testing.T) {
	c := Combatant{Name: "dummy", Mana: 30, MaxMana: 30}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		amount := rng.Intn(25)
		if rng.Intn(2) == 0 {
			c.SpendMana(amount)
		} else {
			c.RestoreMana(amount)
		}
		if c.Mana < 0 || c.Mana > c.MaxMana {
			t.Fatalf("step %d: mana = %d, expected within [0, %d]", i, c.Mana, c.MaxMana)
		}
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		amount    int
		wantLost  int
		wantAlive bool
	}{
		{"partial", 30, 10, 10, true},
		{"exact", 30, 30, 30, false},
		{"overkill", 30, 99, 30, false},
		{"zero", 30, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Combatant{Health: tt.health, MaxHealth: tt.health}
			if got := c.TakeDamage(tt.amount); got != tt.wantLost {
				t.Errorf("TakeDamage(%d) = %d, expected %d", tt.amount, got, tt.wantLost)
			}
			if c.Alive() != tt.wantAlive {
				t.Errorf("Alive() = %v, expected %v", c.Alive(), tt.wantAlive)
			}
		})
	}
}

func TestHealCapsAtMax(t *testing.T) {
	c := Combatant{Health: 90, MaxHealth: 100}
	if got := c.Heal(30); got != 10 {
		t.Errorf("Heal(30) = %d, expected 10", got)
	}
	if c.Health != 100 {
		t.Errorf("Health = %d, expected 100", c.Health)
	}
}

func TestSpendMana(t *testing.T) {
	c := Combatant{Mana: 15, MaxMana: 50}
	if c.SpendMana(20) {
		t.Error("SpendMana(20) with 15 mana should fail")
	}
	if c.Mana != 15 {
		t.Errorf("Mana = %d, expected 15 after a refused spend", c.Mana)
	}
	if !c.SpendMana(15) {
		t.Error("SpendMana(15) with 15 mana should succeed")
	}
	if c.Mana != 0 {
		t.Errorf("Mana = %d, expected 0", c.Mana)
	}
}

func TestAnimationTimers(t *testing.T) {
	c := Combatant{Health: 10, MaxHealth: 10}
	c.StartAttack(AttackAnimTicks)
	c.StartHit()

	for i := 0; i < HitAnimTicks; i++ {
		c.Tick()
	}
	if c.HitAnim.Active() {
		t.Error("hit animation should be over")
	}
	if !c.AttackAnim.Active() {
		t.Error("attack animation should still run")
	}
}

func TestFractions(t *testing.T) {
	c := Combatant{Health: 25, MaxHealth: 100, Mana: 0, MaxMana: 0}
	if got := c.HealthFraction(); got != 0.25 {
		t.Errorf("HealthFraction() = %v, expected 0.25", got)
	}
	if got := c.ManaFraction(); got != 0 {
		t.Errorf("ManaFraction() = %v, expected 0", got)
	}
}
