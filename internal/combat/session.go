package combat

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
)

// Rules are the battle tuning numbers.
type Rules struct {
	AttackDelay     int     `yaml:"attack_delay_ticks"`  // ticks between a player action and its damage
	ActionDelay     int     `yaml:"action_delay_ticks"`  // pause after each resolved turn
	MagicCost       int     `yaml:"magic_cost"`          // mana per spell
	MagicMultiplier int     `yaml:"magic_multiplier"`    // spell damage = strength * multiplier
	PotionHeal      int     `yaml:"potion_heal"`         // health restored by Item
	EscapeChance    float64 `yaml:"escape_chance"`       // probability Run succeeds
	DefenseDivisor  int     `yaml:"defense_divisor"`     // enemy damage = strength - defense/divisor
	ElementalTicks  int     `yaml:"elemental_cue_ticks"` // length of the enemy's elemental effect
}

// DefaultRules returns the built-in tuning.
func DefaultRules() Rules {
	return Rules{
		AttackDelay:     30,
		ActionDelay:     30,
		MagicCost:       20,
		MagicMultiplier: 2,
		PotionHeal:      30,
		EscapeChance:    0.7,
		DefenseDivisor:  3,
		ElementalTicks:  20,
	}
}

// Turn is whose move it is.
type Turn int

const (
	PlayerTurn Turn = iota
	EnemyTurn
)

// String returns the turn name.
func (t Turn) String() string {
	if t == EnemyTurn {
		return "enemy"
	}
	return "player"
}

// Outcome is how a battle ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeEscape
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeEscape:
		return "escape"
	default:
		return "none"
	}
}

// Command is an entry of the battle menu, laid out as a 2x2 grid.
type Command int

const (
	CommandAttack Command = iota
	CommandMagic
	CommandItem
	CommandRun
)

// Commands in menu order.
var Commands = []Command{CommandAttack, CommandMagic, CommandItem, CommandRun}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case CommandAttack:
		return "ATTACK"
	case CommandMagic:
		return "MAGIC"
	case CommandItem:
		return "ITEM"
	case CommandRun:
		return "RUN"
	default:
		return "?"
	}
}

// Cause tags what produced a pending damage entry.
type Cause int

const (
	CauseAttack Cause = iota
	CauseMagic
)

// PendingDamage is damage waiting for its animation to finish.
type PendingDamage struct {
	Target *Combatant
	Amount int
	Cause  Cause
	Delay  core.Countdown
}

// Cue is a presentation event for the owner, such as a sound effect.
type Cue int

const (
	CueMenuMove Cue = iota
	CueAttack
	CueMagic
	CueItem
	CueHit
	CueEnemyStrike
	CueRunFailed
	CueEscaped
	CueWon
	CueLost
)

// Battle layout in world pixels.
var (
	PlayerBox = core.NewRect(200, 300, 60, 60)
	EnemyBox  = core.NewRect(700, 250, 60, 60)
)

// Session is one battle between the player and an enemy.
type Session struct {
	player *Player
	enemy  *Enemy
	rules  Rules
	rng    *rand.Rand
	fx     *particles.Field

	turn      Turn
	outcome   Outcome
	finished  bool
	pending   []PendingDamage
	log       Log
	cooldown  core.Countdown
	elemental core.Countdown
	shake     core.Countdown
	cursor    int
	reward    int
	cues      []Cue
	ticks     int
}

// NewSession starts a battle. Player and enemy are borrowed, not copied.
// A nil rng or field gets a private one.
func NewSession(player *Player, enemy *Enemy, rules Rules, rng *rand.Rand, fx *particles.Field) *Session {
	if !core.Assert(player != nil && enemy != nil, "battle needs a player and an enemy") {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if fx == nil {
		fx = particles.NewField(particles.DefaultCapacity, rng)
	}
	if rules.DefenseDivisor <= 0 {
		rules.DefenseDivisor = 1
	}
	s := &Session{
		player: player,
		enemy:  enemy,
		rules:  rules,
		rng:    rng,
		fx:     fx,
		turn:   PlayerTurn,
	}
	s.log.lines = []string{"Battle started!", "It's your turn!"}
	return s
}

// Player returns the borrowed player.
func (s *Session) Player() *Player { return s.player }

// Enemy returns the borrowed enemy.
func (s *Session) Enemy() *Enemy { return s.enemy }

// Turn returns whose move it is.
func (s *Session) Turn() Turn { return s.turn }

// Outcome returns the result, OutcomeNone while the fight goes on.
func (s *Session) Outcome() Outcome { return s.outcome }

// Finished reports whether the outcome is set and the player dismissed the summary.
func (s *Session) Finished() bool { return s.finished }

// Log returns the narration.
func (s *Session) Log() *Log { return &s.log }

// Cursor returns the highlighted menu entry.
func (s *Session) Cursor() Command { return Command(s.cursor) }

// Pending returns the number of damage entries still timing.
func (s *Session) Pending() int { return len(s.pending) }

// IsBoss reports whether the enemy is a boss.
func (s *Session) IsBoss() bool { return s.enemy.Kind.IsBoss() }

// SetReward sets the experience shown on the victory summary.
func (s *Session) SetReward(exp int) { s.reward = exp }

// DrainCues returns and clears the presentation events raised since the last call.
func (s *Session) DrainCues() []Cue {
	cues := s.cues
	s.cues = nil
	return cues
}

func (s *Session) cue(c Cue) {
	s.cues = append(s.cues, c)
}

// Update advances the battle by one tick.
func (s *Session) Update(in core.InputFrame) {
	s.ticks++
	s.player.Tick()
	s.enemy.Tick()
	s.fx.Tick()
	s.shake.Tick()
	s.elemental.Tick()

	s.tickPending()
	if s.outcome == OutcomeNone && len(s.pending) == 0 && !s.log.Waiting() && s.checkTerminal() {
		return
	}
	if s.handleInput(in) {
		return
	}

	if s.outcome != OutcomeNone {
		return
	}
	if s.cooldown.Active() {
		s.cooldown.Tick()
		return
	}
	if len(s.pending) > 0 || s.log.Waiting() {
		return
	}
	if s.checkTerminal() {
		return
	}
	if s.turn == EnemyTurn {
		s.enemyTurn()
	}
}

// handleInput applies the frame's input and reports whether it consumed it.
func (s *Session) handleInput(in core.InputFrame) bool {
	switch {
	case s.outcome != OutcomeNone:
		if in.Has(core.ActionConfirm) && !s.finished {
			s.log.Ack()
			s.finished = true
			return true
		}
	case s.log.Waiting():
		if in.Has(core.ActionConfirm) {
			s.log.Ack()
			return true
		}
	case s.idle():
		return s.handleMenu(in)
	}
	return false
}

func (s *Session) handleMenu(in core.InputFrame) bool {
	n := len(Commands)
	prev := s.cursor
	switch {
	case in.Has(core.ActionRight):
		s.cursor = (s.cursor + 1) % n
	case in.Has(core.ActionLeft):
		s.cursor = (s.cursor - 1 + n) % n
	case in.Has(core.ActionDown):
		s.cursor = (s.cursor + 2) % n
	case in.Has(core.ActionUp):
		s.cursor = (s.cursor - 2 + n) % n
	case in.Has(core.ActionConfirm):
		s.Choose(Command(s.cursor))
		return true
	default:
		return false
	}
	if s.cursor != prev {
		s.cue(CueMenuMove)
	}
	return true
}

// idle reports whether the player may pick a command.
func (s *Session) idle() bool {
	return s.ready() && !s.cooldown.Active() && len(s.pending) == 0 && !s.log.Waiting()
}

// ready reports whether a player action may execute. A side at zero health
// never acts, even before the terminal check has recorded the outcome.
func (s *Session) ready() bool {
	return s.outcome == OutcomeNone && s.turn == PlayerTurn &&
		s.player.Alive() && s.enemy.Alive()
}

// Choose executes a menu command and reports whether it took the turn.
func (s *Session) Choose(c Command) bool {
	if !s.ready() {
		return false
	}
	switch c {
	case CommandAttack:
		return s.ExecuteAttack()
	case CommandMagic:
		return s.ExecuteMagic()
	case CommandItem:
		return s.ExecuteItem()
	case CommandRun:
		s.ExecuteRun()
		return true
	}
	return false
}

// ExecuteAttack strikes for the player's strength once the attack animation lands.
func (s *Session) ExecuteAttack() bool {
	if !s.ready() {
		return false
	}
	s.log.Add("You attack!")
	s.player.StartAttack(AttackAnimTicks)
	s.enqueue(&s.enemy.Combatant, s.player.Strength, CauseAttack)
	s.cue(CueAttack)
	s.endPlayerTurn()
	return true
}

// ExecuteMagic casts a fireball for double strength. Without enough mana the
// cast is refused in the log and the turn is kept.
func (s *Session) ExecuteMagic() bool {
	if !s.ready() {
		return false
	}
	if !s.player.SpendMana(s.rules.MagicCost) {
		s.log.Add(fmt.Sprintf("Not enough mana! (%d/%d)", s.player.Mana, s.rules.MagicCost))
		return false
	}
	s.log.Add("You cast Fireball!")
	s.player.StartAttack(AttackAnimTicks)
	s.fx.Beam(PlayerBox.CenterPoint().Vec(), EnemyBox.CenterPoint().Vec(), core.ColorOrange, particles.DefaultStream)
	s.enqueue(&s.enemy.Combatant, s.player.Strength*s.rules.MagicMultiplier, CauseMagic)
	s.cue(CueMagic)
	s.endPlayerTurn()
	return true
}

// ExecuteItem drinks a potion.
func (s *Session) ExecuteItem() bool {
	if !s.ready() {
		return false
	}
	healed := s.player.Heal(s.rules.PotionHeal)
	s.log.Add(fmt.Sprintf("You used a health potion! Restored %d HP.", healed))
	s.fx.Explosion(PlayerBox.CenterPoint().Vec(), core.ColorGreen, particles.Burst{
		Count: 15, Size: particles.Range{Min: 2, Max: 4}, Speed: particles.Range{Min: 0.5, Max: 2}, Lifetime: particles.IntRange{Min: 20, Max: 30},
	})
	s.cue(CueItem)
	s.endPlayerTurn()
	return true
}

// ExecuteRun tries to flee and reports whether it worked. A failed attempt
// hands the turn to the enemy.
func (s *Session) ExecuteRun() bool {
	if !s.ready() {
		return false
	}
	if s.rng.Float64() < s.rules.EscapeChance {
		s.log.Add("You successfully escaped!")
		s.setOutcome(OutcomeEscape)
		s.cue(CueEscaped)
		return true
	}
	s.log.Add("Escape failed! The enemy attacks!")
	s.cue(CueRunFailed)
	s.endPlayerTurn()
	return false
}

func (s *Session) endPlayerTurn() {
	s.turn = EnemyTurn
	s.cooldown.Restart(s.rules.ActionDelay)
}

func (s *Session) enqueue(target *Combatant, amount int, cause Cause) {
	p := PendingDamage{Target: target, Amount: amount, Cause: cause, Delay: core.NewCountdown(s.rules.AttackDelay)}
	if !p.Delay.Active() {
		s.apply(p)
		return
	}
	s.pending = append(s.pending, p)
}

// tickPending counts every entry down and applies the ones that mature, in
// the order they were queued.
func (s *Session) tickPending() {
	if len(s.pending) == 0 || s.outcome != OutcomeNone {
		return
	}
	var matured []PendingDamage
	kept := s.pending[:0]
	for _, p := range s.pending {
		if p.Delay.Tick() {
			matured = append(matured, p)
			continue
		}
		kept = append(kept, p)
	}
	s.pending = kept
	for _, p := range matured {
		s.apply(p)
	}
}

func (s *Session) apply(p PendingDamage) {
	dealt := p.Target.TakeDamage(p.Amount)
	center := EnemyBox.CenterPoint().Vec()
	switch p.Cause {
	case CauseMagic:
		s.log.Add(fmt.Sprintf("Fireball deals %d damage!", dealt))
		s.fx.Explosion(center, core.ColorOrange, particles.Burst{
			Count: 40, Size: particles.Range{Min: 3, Max: 7}, Speed: particles.Range{Min: 1, Max: 5}, Lifetime: particles.IntRange{Min: 15, Max: 30},
		})
	default:
		s.log.Add(fmt.Sprintf("You deal %d damage!", dealt))
		s.fx.Explosion(center, core.ColorWhite, particles.Burst{
			Count: 12, Size: particles.Range{Min: 2, Max: 4}, Speed: particles.Range{Min: 1, Max: 3}, Lifetime: particles.IntRange{Min: 10, Max: 20},
		})
	}
	p.Target.StartHit()
	s.shake.Restart(5)
	s.cue(CueHit)
}

// EnemyDamage returns what the enemy's strike does to the player.
func (s *Session) EnemyDamage() int {
	return core.Max(1, s.enemy.Strength-s.player.Defense/s.rules.DefenseDivisor)
}

func (s *Session) enemyTurn() {
	dmg := s.EnemyDamage()
	s.player.TakeDamage(dmg)
	s.enemy.StartAttack(s.enemy.AttackTicks())
	s.player.StartHit()
	s.shake.Restart(5)
	s.elemental.Restart(s.rules.ElementalTicks)
	s.log.Add(fmt.Sprintf("%s attacks for %d damage!", s.enemy.Name, dmg))
	s.cue(CueEnemyStrike)

	s.turn = PlayerTurn
	if s.player.Alive() {
		s.log.Add("It's your turn!")
	}
	s.cooldown.Restart(s.rules.ActionDelay)
}

// checkTerminal ends the battle when a side is down. The enemy is checked
// first, so a simultaneous knock-out counts as a win.
func (s *Session) checkTerminal() bool {
	switch {
	case !s.enemy.Alive():
		s.log.Add("You defeated the enemy!")
		s.setOutcome(OutcomeWin)
		s.cue(CueWon)
	case !s.player.Alive():
		s.log.Add("You were defeated...")
		s.setOutcome(OutcomeLose)
		s.cue(CueLost)
	default:
		return false
	}
	return true
}

func (s *Session) setOutcome(o Outcome) {
	if !core.Assert(s.outcome == OutcomeNone, "battle outcome %s overwritten with %s", s.outcome, o) {
		return
	}
	s.outcome = o
	s.pending = nil
	s.cooldown.Stop()
}
