package game

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/dragonslair/internal/audio"
	"github.com/vovakirdan/dragonslair/internal/combat"
	"github.com/vovakirdan/dragonslair/internal/config"
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/particles"
	"github.com/vovakirdan/dragonslair/internal/storage"
	"github.com/vovakirdan/dragonslair/internal/world"
)

// Machine is the game. The platform calls Step once per tick and Draw once
// per frame; everything else happens inside.
type Machine struct {
	app   AppContext
	cfg   config.GameConfig
	log   *log.Logger
	fsm   *fsm.FSM
	rng   *rand.Rand
	fx    *particles.Field
	stars *Starfield
	fade  Fade
	ticks int
	quit  bool

	// Menus.
	menuCursor  int
	classCursor int
	overCursor  int
	cutscene    Cutscene
	bestScore   int

	// The current run. player is nil between runs.
	run      Run
	player   *combat.Player
	world    *world.Map
	overview bool

	// Battle. exit is the event to fire once the summary is dismissed.
	battle  *combat.Session
	settled bool
	exit    string

	victoryTicks int
}

// Run is the bookkeeping of one game from class choice to its end.
type Run struct {
	ID       string
	Class    combat.Class
	Score    int
	Items    int
	Ticks    int
	Recorded bool
}

// NewMachine creates a game sitting on the start menu.
func NewMachine(app AppContext) *Machine {
	if app.SessionID == "" {
		app.SessionID = uuid.NewString()
	}
	cfg := app.Config
	rng := rand.New(rand.NewSource(app.Seed))
	m := &Machine{
		app:   app,
		cfg:   cfg,
		log:   app.logger().With("session", app.SessionID),
		rng:   rng,
		fx:    particles.NewField(cfg.Particles.Capacity, rng),
		stars: NewStarfield(rng),
		fade:  NewFade(cfg.Screens.FadeSpeed),
	}
	m.fsm = fsm.NewFSM(
		state(ModeStartMenu),
		transitions,
		fsm.Callbacks{
			"enter_state":                         m.onEnterState,
			"leave_" + state(ModeBattle):          m.onLeaveBattle,
			"before_" + evChooseClass:             m.onChooseClass,
			"before_" + evEncounter:               m.onEncounter,
			"enter_" + state(ModeStartMenu):       m.onEnterStartMenu,
			"enter_" + state(ModeOpeningCutscene): m.onEnterCutscene,
			"enter_" + state(ModeCharacterSelect): m.onEnterCharacterSelect,
			"enter_" + state(ModeGameOver):        m.onEnterGameOver,
			"enter_" + state(ModeVictory):         m.onEnterVictory,
		},
	)
	m.refreshBestScore()
	m.applyMood()
	return m
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode { return Mode(m.fsm.Current()) }

// Quit reports whether the player asked to leave the program.
func (m *Machine) Quit() bool { return m.quit }

// Player returns the hero of the current run, or nil.
func (m *Machine) Player() *combat.Player { return m.player }

// Battle returns the running battle, or nil.
func (m *Machine) Battle() *combat.Session { return m.battle }

// World returns the map of the current run, or nil.
func (m *Machine) World() *world.Map { return m.world }

// CurrentRun returns the bookkeeping of the current or last run.
func (m *Machine) CurrentRun() Run { return m.run }

// Step advances the game by one tick.
func (m *Machine) Step(in core.InputFrame) {
	m.ticks++
	if in.Has(core.ActionQuit) {
		m.quit = true
		return
	}
	m.stars.Tick()
	if m.Mode() != ModeBattle {
		// the session ticks the shared field itself
		m.fx.Tick()
	}
	m.fade.Tick()
	if m.player != nil && (m.Mode() == ModeOverworld || m.Mode() == ModeBattle) {
		m.run.Ticks++
	}

	event, args := m.update(in)
	m.fire(event, args...)

	// A level-up earned in the battle that just ended calls its dragon at once.
	if m.Mode() == ModeOverworld {
		if boss := m.dueBoss(); boss != nil {
			m.fire(evEncounter, boss)
		}
	}
	m.applyMood()
}

func (m *Machine) update(in core.InputFrame) (string, []any) {
	switch m.Mode() {
	case ModeStartMenu:
		return m.updateStartMenu(in), nil
	case ModeOpeningCutscene:
		return m.updateCutscene(in), nil
	case ModeCharacterSelect:
		return m.updateCharacterSelect(in)
	case ModeOverworld:
		return m.updateOverworld(in)
	case ModeBattle:
		return m.updateBattle(in), nil
	case ModeGameOver:
		return m.updateGameOver(in), nil
	case ModeVictory:
		return m.updateVictory(in), nil
	}
	core.Assert(false, "unknown mode %q", m.Mode())
	return "", nil
}

// fire requests a transition. An empty event is no request.
func (m *Machine) fire(event string, args ...any) {
	if event == "" {
		return
	}
	if err := m.fsm.Event(context.Background(), event, args...); err != nil {
		m.log.Warn("transition rejected", "event", event, "mode", m.Mode(), "error", err)
	}
}

// mood derives the music for the current mode and context.
func (m *Machine) mood() audio.Mood {
	mode := m.Mode()
	inTown := mode == ModeOverworld && m.world != nil && m.world.Current().Kind().IsTown()
	boss := mode == ModeBattle && m.battle != nil && m.battle.IsBoss()
	return MoodFor(mode, inTown, boss)
}

func (m *Machine) applyMood() {
	m.app.Audio.SetMood(m.mood())
}

func (m *Machine) sfx(e audio.Effect) {
	m.app.Audio.PlayEffect(e)
}

func (m *Machine) onEnterState(_ context.Context, e *fsm.Event) {
	m.log.Info("mode changed", "from", e.Src, "to", e.Dst, "event", e.Event)
	m.fade.Start()
	m.overview = false
	// The mode changed, so the music is asked for unconditionally; the
	// director ignores a repeat of the mood already playing.
	m.applyMood()
}

func (m *Machine) onLeaveBattle(context.Context, *fsm.Event) {
	m.battle = nil
	m.settled = false
	m.exit = ""
}

func (m *Machine) onEnterStartMenu(context.Context, *fsm.Event) {
	m.menuCursor = 0
	m.player = nil
	m.world = nil
	m.fx.Clear()
	m.refreshBestScore()
}

func (m *Machine) onEnterCutscene(context.Context, *fsm.Event) {
	m.cutscene = NewCutscene(m.cfg.Screens.SceneTicks)
}

func (m *Machine) onEnterCharacterSelect(context.Context, *fsm.Event) {
	m.classCursor = 0
}

// onChooseClass starts a fresh run for the class passed with the event.
func (m *Machine) onChooseClass(_ context.Context, e *fsm.Event) {
	class, ok := eventArg[combat.Class](e)
	if !ok {
		e.Cancel()
		return
	}
	m.newRun(class)
}

// onEncounter opens a battle against the enemy passed with the event.
func (m *Machine) onEncounter(_ context.Context, e *fsm.Event) {
	enemy, ok := eventArg[*combat.Enemy](e)
	if !ok || m.player == nil {
		e.Cancel()
		return
	}
	m.battle = combat.NewSession(m.player, enemy, m.cfg.Battle, m.rng, m.fx)
	m.settled = false
	m.exit = ""
	m.log.Info("battle started", "enemy", enemy.Name, "boss", enemy.Kind.IsBoss(), "level", m.player.Level)
}

func (m *Machine) onEnterGameOver(_ context.Context, e *fsm.Event) {
	m.overCursor = 0
	m.sfx(audio.EffectGameOver)
	outcome := storage.OutcomeDefeat
	if e.Event == evGiveUp {
		outcome = storage.OutcomeQuit
	}
	m.recordRun(outcome)
}

func (m *Machine) onEnterVictory(context.Context, *fsm.Event) {
	m.victoryTicks = 0
	m.sfx(audio.EffectVictory)
	m.recordRun(storage.OutcomeVictory)
}

func eventArg[T any](e *fsm.Event) (T, bool) {
	var zero T
	if len(e.Args) == 0 {
		return zero, false
	}
	v, ok := e.Args[0].(T)
	return v, ok
}

// newRun resets everything a game carries for the chosen class.
func (m *Machine) newRun(class combat.Class) {
	stats, err := m.cfg.ClassStats(class)
	if err != nil {
		m.log.Warn("class missing from config, using built-in stats", "class", class, "error", err)
		stats = combat.DefaultClassStats()[class]
	}
	m.player = combat.NewPlayer(class, stats, m.cfg.Leveling)
	m.world = world.NewMap(m.cfg.World, m.rng)
	m.world.Reset(m.player.Level)
	m.fx.Clear()
	m.run = Run{ID: uuid.NewString(), Class: class}
	m.log.Info("run started", "run", m.run.ID, "class", class)
}

// recordRun writes the finished run to the hall of fame once.
func (m *Machine) recordRun(outcome storage.Outcome) {
	if m.player == nil || m.run.Recorded {
		return
	}
	m.run.Recorded = true
	if m.app.Store == nil {
		return
	}
	rec := storage.Run{
		ID:      m.run.ID,
		Class:   m.player.Class.String(),
		Level:   m.player.Level,
		Score:   m.run.Score,
		Kills:   m.player.Kills,
		Outcome: outcome,
		Ticks:   m.run.Ticks,
	}
	if _, err := m.app.Store.SaveRun(rec); err != nil {
		m.log.Warn("cannot record run", "run", m.run.ID, "error", err)
		return
	}
	m.log.Info("run recorded", "run", m.run.ID, "outcome", outcome, "score", rec.Score, "level", rec.Level)
}

func (m *Machine) refreshBestScore() {
	if m.app.Store == nil {
		return
	}
	best, err := m.app.Store.BestScore()
	if err != nil {
		m.log.Warn("cannot read best score", "error", err)
		return
	}
	m.bestScore = best
}
