package combat

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

var (
	idle    = core.InputFrame{}
	confirm = core.InputOf(core.ActionConfirm)
)

func newTestEnemy(health, strength int) *Enemy {
	return &Enemy{
		Combatant: Combatant{Name: "Fire Imp", Health: health, MaxHealth: health, Strength: strength},
		Kind:      Regular(Fiery),
		Level:     1,
	}
}

func newTestSession(t *testing.T, enemyHealth, enemyStrength int, rules Rules) *Session {
	t.Helper()
	s := NewSession(newWarrior(), newTestEnemy(enemyHealth, enemyStrength), rules, rand.New(rand.NewSource(42)), nil)
	if s == nil {
		t.Fatal("NewSession() returned nil")
	}
	return s
}

// step runs n idle updates.
func step(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Update(idle)
	}
}

// settle acknowledges log lines and ticks until the player may choose again
// or the battle ends, giving up after limit updates.
func settle(s *Session, limit int) {
	for i := 0; i < limit; i++ {
		if s.Outcome() != OutcomeNone || s.idle() {
			return
		}
		if s.Log().Waiting() {
			s.Update(confirm)
		} else {
			s.Update(idle)
		}
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())

	if s.Turn() != PlayerTurn {
		t.Errorf("Turn() = %s, expected player", s.Turn())
	}
	if s.Outcome() != OutcomeNone {
		t.Errorf("Outcome() = %s, expected none", s.Outcome())
	}
	want := []string{"Battle started!", "It's your turn!"}
	got := s.Log().Lines()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Log = %v, expected %v", got, want)
	}
	if s.Log().Waiting() {
		t.Error("the opening lines should not wait for acknowledgment")
	}
}

func TestDelayedDamageExactness(t *testing.T) {
	rules := DefaultRules()
	s := newTestSession(t, 30, 8, rules)
	strength := s.Player().Strength

	if !s.ExecuteAttack() {
		t.Fatal("ExecuteAttack() = false, expected true")
	}
	step(s, rules.AttackDelay-1)
	if s.Enemy().Health != 30 {
		t.Fatalf("after %d ticks enemy health = %d, expected 30", rules.AttackDelay-1, s.Enemy().Health)
	}
	step(s, 1)
	if s.Enemy().Health != 30-strength {
		t.Errorf("after %d ticks enemy health = %d, expected %d", rules.AttackDelay, s.Enemy().Health, 30-strength)
	}
}

func TestZeroDelayAppliesImmediately(t *testing.T) {
	rules := DefaultRules()
	rules.AttackDelay = 0
	s := newTestSession(t, 30, 8, rules)

	s.ExecuteAttack()
	if s.Enemy().Health != 15 {
		t.Errorf("enemy health = %d, expected 15", s.Enemy().Health)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestAttackThenCounterAttack(t *testing.T) {
	rules := DefaultRules()
	s := newTestSession(t, 30, 8, rules)
	p := s.Player()

	s.ExecuteAttack()
	if s.Turn() != EnemyTurn {
		t.Errorf("Turn() = %s, expected enemy", s.Turn())
	}
	step(s, rules.AttackDelay)
	if s.Enemy().Health != 15 {
		t.Fatalf("enemy health = %d, expected 15", s.Enemy().Health)
	}
	if !strings.Contains(s.Log().Last(1)[0], "You deal 15 damage!") {
		t.Errorf("last log line = %q", s.Log().Last(1)[0])
	}

	// The enemy waits until the damage line is acknowledged.
	step(s, 5)
	if p.Health != p.MaxHealth {
		t.Fatalf("player took damage before acknowledging: %d", p.Health)
	}

	s.Update(confirm)
	s.Update(idle)

	want := core.Max(1, 8-p.Defense/3)
	if p.Health != p.MaxHealth-want {
		t.Errorf("player health = %d, expected %d", p.Health, p.MaxHealth-want)
	}
	if s.Turn() != PlayerTurn {
		t.Errorf("Turn() = %s, expected player", s.Turn())
	}
	if s.EnemyDamage() != want {
		t.Errorf("EnemyDamage() = %d, expected %d", s.EnemyDamage(), want)
	}
}

func TestEnemyDamageFloor(t *testing.T) {
	s := newTestSession(t, 30, 1, DefaultRules())
	s.Player().Defense = 90
	if got := s.EnemyDamage(); got != 1 {
		t.Errorf("EnemyDamage() = %d, expected 1", got)
	}
}

func TestMagicWithoutMana(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())
	s.Player().Mana = 15

	if s.ExecuteMagic() {
		t.Error("ExecuteMagic() = true, expected false")
	}
	if s.Player().Mana != 15 {
		t.Errorf("Mana = %d, expected 15", s.Player().Mana)
	}
	if s.Turn() != PlayerTurn {
		t.Errorf("Turn() = %s, expected player", s.Turn())
	}
	if !strings.Contains(s.Log().Last(1)[0], "Not enough mana") {
		t.Errorf("last log line = %q, expected a rejection", s.Log().Last(1)[0])
	}
}

func TestMagicDamage(t *testing.T) {
	rules := DefaultRules()
	fx := particles.NewField(0, rand.New(rand.NewSource(1)))
	s := NewSession(newWarrior(), newTestEnemy(100, 8), rules, rand.New(rand.NewSource(1)), fx)

	if !s.ExecuteMagic() {
		t.Fatal("ExecuteMagic() = false, expected true")
	}
	if s.Player().Mana != 50-rules.MagicCost {
		t.Errorf("Mana = %d, expected %d", s.Player().Mana, 50-rules.MagicCost)
	}
	if fx.Len() == 0 {
		t.Error("casting should draw a beam")
	}
	step(s, rules.AttackDelay)
	if s.Enemy().Health != 100-2*15 {
		t.Errorf("enemy health = %d, expected %d", s.Enemy().Health, 100-2*15)
	}
	if !strings.Contains(s.Log().Last(1)[0], "Fireball deals 30 damage!") {
		t.Errorf("last log line = %q", s.Log().Last(1)[0])
	}
}

func TestItemHeals(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())
	p := s.Player()
	p.TakeDamage(50)

	if !s.ExecuteItem() {
		t.Fatal("ExecuteItem() = false, expected true")
	}
	if p.Health != p.MaxHealth-20 {
		t.Errorf("Health = %d, expected %d", p.Health, p.MaxHealth-20)
	}
	if s.Turn() != EnemyTurn {
		t.Errorf("Turn() = %s, expected enemy", s.Turn())
	}

	s2 := newTestSession(t, 30, 8, DefaultRules())
	s2.Player().TakeDamage(10)
	s2.ExecuteItem()
	if s2.Player().Health != s2.Player().MaxHealth {
		t.Errorf("Health = %d, expected capped at %d", s2.Player().Health, s2.Player().MaxHealth)
	}
}

func TestRunOutcomes(t *testing.T) {
	rules := DefaultRules()

	rules.EscapeChance = 1
	s := newTestSession(t, 30, 8, rules)
	if !s.ExecuteRun() {
		t.Error("ExecuteRun() = false, expected true with a certain escape")
	}
	if s.Outcome() != OutcomeEscape {
		t.Errorf("Outcome() = %s, expected escape", s.Outcome())
	}

	rules.EscapeChance = 0
	s = newTestSession(t, 30, 8, rules)
	if s.ExecuteRun() {
		t.Error("ExecuteRun() = true, expected false with no chance")
	}
	if s.Outcome() != OutcomeNone {
		t.Errorf("Outcome() = %s, expected none", s.Outcome())
	}
	if s.Turn() != EnemyTurn {
		t.Errorf("Turn() = %s, expected the enemy to act after a failed run", s.Turn())
	}
}

func TestEscapeProbability(t *testing.T) {
	const trials = 100000
	rng := rand.New(rand.NewSource(2024))
	fx := particles.NewField(16, rng)
	rules := DefaultRules()

	escaped := 0
	for i := 0; i < trials; i++ {
		s := NewSession(newWarrior(), newTestEnemy(30, 8), rules, rng, fx)
		if s.ExecuteRun() {
			escaped++
		}
	}
	rate := float64(escaped) / trials
	if rate < 0.69 || rate > 0.71 {
		t.Errorf("escape rate = %.4f, expected 0.70 +/- 0.01", rate)
	}
}

func TestTurnsAlternate(t *testing.T) {
	s := newTestSession(t, 500, 3, DefaultRules())
	s.Player().MaxHealth = 10000
	s.Player().Health = 10000

	var order []Cue
	for round := 0; round < 10 && s.Outcome() == OutcomeNone; round++ {
		settle(s, 500)
		if s.Outcome() != OutcomeNone {
			break
		}
		s.Update(confirm) // cursor starts on ATTACK
		for _, c := range s.DrainCues() {
			if c == CueAttack || c == CueEnemyStrike {
				order = append(order, c)
			}
		}
		for i := 0; i < 500 && s.Turn() == EnemyTurn && s.Outcome() == OutcomeNone; i++ {
			if s.Log().Waiting() {
				s.Update(confirm)
			} else {
				s.Update(idle)
			}
			for _, c := range s.DrainCues() {
				if c == CueAttack || c == CueEnemyStrike {
					order = append(order, c)
				}
			}
		}
	}

	if len(order) < 10 {
		t.Fatalf("only %d actions recorded: %v", len(order), order)
	}
	for i, c := range order {
		want := CueAttack
		if i%2 == 1 {
			want = CueEnemyStrike
		}
		if c != want {
			t.Fatalf("action %d = %v, expected %v (order %v)", i, c, want, order)
		}
	}
}

func TestWinIsAbsorbing(t *testing.T) {
	rules := DefaultRules()
	s := newTestSession(t, 10, 8, rules)

	s.ExecuteAttack()
	step(s, rules.AttackDelay)
	s.Update(confirm)
	s.Update(idle)
	if s.Outcome() != OutcomeWin {
		t.Fatalf("Outcome() = %s, expected win", s.Outcome())
	}
	if !strings.Contains(s.Log().Last(1)[0], "You defeated the enemy!") {
		t.Errorf("last log line = %q", s.Log().Last(1)[0])
	}

	health := s.Player().Health
	s.Enemy().Health = 50
	s.DrainCues()
	step(s, 200)

	if s.Outcome() != OutcomeWin {
		t.Errorf("Outcome() = %s, expected win to stick", s.Outcome())
	}
	if s.Player().Health != health {
		t.Errorf("player health changed after the battle ended: %d -> %d", health, s.Player().Health)
	}
	for _, c := range s.DrainCues() {
		if c == CueEnemyStrike {
			t.Error("enemy acted after the battle ended")
		}
	}
	if s.ExecuteAttack() {
		t.Error("ExecuteAttack() after the end should be refused")
	}
}

func TestLose(t *testing.T) {
	s := newTestSession(t, 500, 8, DefaultRules())
	s.Player().Health = 1

	s.ExecuteItem()
	s.Player().Health = 1
	settle(s, 500)
	if s.Outcome() != OutcomeLose {
		t.Errorf("Outcome() = %s, expected lose", s.Outcome())
	}
	if s.Player().Health != 0 {
		t.Errorf("player health = %d, expected 0", s.Player().Health)
	}
}

func TestDeadPlayerCannotAct(t *testing.T) {
	s := newTestSession(t, 500, 8, DefaultRules())
	s.Player().Health = 1
	s.ExecuteItem()
	s.Player().Health = 1

	// Stop on the first tick after the lethal strike that would take input.
	for i := 0; i < 500; i++ {
		if !s.Player().Alive() && !s.Log().Waiting() {
			break
		}
		if s.Log().Waiting() {
			s.Update(confirm)
		} else {
			s.Update(idle)
		}
	}
	if s.Player().Alive() {
		t.Fatal("the enemy strike should have been lethal")
	}
	if s.idle() {
		t.Error("idle() = true for a dead player, expected false")
	}

	s.cursor = int(CommandItem)
	s.Update(confirm)
	if s.Player().Health != 0 {
		t.Errorf("player health = %d after confirm, expected 0", s.Player().Health)
	}
	if s.Outcome() != OutcomeLose {
		t.Errorf("Outcome() = %s, expected lose", s.Outcome())
	}
	if s.ExecuteItem() {
		t.Error("ExecuteItem() for a dead player should be refused")
	}
}

func TestSimultaneousKnockOutIsWin(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())
	s.Enemy().Health = 0
	s.Player().Health = 0

	s.Update(idle)
	if s.Outcome() != OutcomeWin {
		t.Errorf("Outcome() = %s, expected win", s.Outcome())
	}
}

func TestFinishedAfterConfirm(t *testing.T) {
	rules := DefaultRules()
	rules.EscapeChance = 1
	s := newTestSession(t, 30, 8, rules)

	s.ExecuteRun()
	step(s, 10)
	if s.Finished() {
		t.Fatal("Finished() before confirm")
	}
	s.Update(confirm)
	if !s.Finished() {
		t.Error("Finished() = false after confirm, expected true")
	}
}

func TestMenuNavigation(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())

	moves := []struct {
		action core.Action
		want   Command
	}{
		{core.ActionRight, CommandMagic},
		{core.ActionDown, CommandRun},
		{core.ActionLeft, CommandItem},
		{core.ActionUp, CommandAttack},
		{core.ActionLeft, CommandRun},
		{core.ActionUp, CommandMagic},
	}
	for _, m := range moves {
		s.Update(core.InputOf(m.action))
		if s.Cursor() != m.want {
			t.Errorf("after %s cursor = %s, expected %s", m.action, s.Cursor(), m.want)
		}
	}
	cues := s.DrainCues()
	if len(cues) != len(moves) {
		t.Errorf("got %d cues, expected %d menu moves", len(cues), len(moves))
	}
}

func TestMenuConfirmExecutes(t *testing.T) {
	s := newTestSession(t, 30, 8, DefaultRules())
	s.Update(core.InputOf(core.ActionDown)) // ITEM
	s.Update(confirm)

	if s.Turn() != EnemyTurn {
		t.Errorf("Turn() = %s, expected enemy after using an item", s.Turn())
	}
	found := false
	for _, c := range s.DrainCues() {
		if c == CueItem {
			found = true
		}
	}
	if !found {
		t.Error("expected an item cue")
	}
}

func TestDraw(t *testing.T) {
	s := newTestSession(t, 10, 8, DefaultRules())
	s.SetReward(25)
	rec := &core.Recorder{}

	s.Draw(rec)
	if !rec.HasSprite(core.SpriteWarrior) || !rec.HasSprite(core.SpriteEnemyFiery) {
		t.Error("both fighters should be drawn")
	}
	if !rec.HasText("ATTACK") || !rec.HasText("RUN") {
		t.Error("menu should be drawn")
	}

	s.Enemy().Health = 0
	s.Update(idle)
	rec.Reset()
	s.Draw(rec)
	if !rec.HasText("VICTORY!") || !rec.HasText("+25 EXP") {
		t.Error("victory summary should be drawn")
	}
}
