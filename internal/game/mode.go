package game

import (
	"github.com/looplab/fsm"

	"github.com/vovakirdan/dragonslair/internal/audio"
)

// Mode is the top-level screen the game is on. The values are the state
// names of the transition table.
type Mode string

const (
	ModeStartMenu       Mode = "start_menu"
	ModeOpeningCutscene Mode = "opening_cutscene"
	ModeCharacterSelect Mode = "character_select"
	ModeOverworld       Mode = "overworld"
	ModeBattle          Mode = "battle"
	ModeGameOver        Mode = "game_over"
	ModeVictory         Mode = "victory"
)

// Modes lists every mode.
var Modes = []Mode{
	ModeStartMenu, ModeOpeningCutscene, ModeCharacterSelect,
	ModeOverworld, ModeBattle, ModeGameOver, ModeVictory,
}

// Transition events. Mode handlers return one of these and Step fires it.
const (
	evStart          = "start"
	evFinishCutscene = "finish_cutscene"
	evBack           = "back"
	evChooseClass    = "choose_class"
	evEncounter      = "encounter"
	evGiveUp         = "give_up"
	evWin            = "win"
	evEscape         = "escape"
	evSlayFinal      = "slay_final"
	evLose           = "lose"
	evRestart        = "restart"
	evMenu           = "menu"
)

func state(m Mode) string { return string(m) }

// transitions is the whole mode graph.
var transitions = fsm.Events{
	{Name: evStart, Src: []string{state(ModeStartMenu)}, Dst: state(ModeOpeningCutscene)},
	{Name: evFinishCutscene, Src: []string{state(ModeOpeningCutscene)}, Dst: state(ModeCharacterSelect)},
	{Name: evBack, Src: []string{state(ModeCharacterSelect)}, Dst: state(ModeStartMenu)},
	{Name: evChooseClass, Src: []string{state(ModeCharacterSelect)}, Dst: state(ModeOverworld)},
	{Name: evEncounter, Src: []string{state(ModeOverworld)}, Dst: state(ModeBattle)},
	{Name: evGiveUp, Src: []string{state(ModeOverworld)}, Dst: state(ModeGameOver)},
	{Name: evWin, Src: []string{state(ModeBattle)}, Dst: state(ModeOverworld)},
	{Name: evEscape, Src: []string{state(ModeBattle)}, Dst: state(ModeOverworld)},
	{Name: evSlayFinal, Src: []string{state(ModeBattle)}, Dst: state(ModeVictory)},
	{Name: evLose, Src: []string{state(ModeBattle)}, Dst: state(ModeGameOver)},
	{Name: evRestart, Src: []string{state(ModeGameOver)}, Dst: state(ModeCharacterSelect)},
	{Name: evMenu, Src: []string{state(ModeGameOver), state(ModeVictory)}, Dst: state(ModeStartMenu)},
}

// MoodFor derives the music for a mode. inTown and boss only matter in the
// overworld and in battle respectively.
func MoodFor(mode Mode, inTown, boss bool) audio.Mood {
	switch mode {
	case ModeOverworld:
		if inTown {
			return audio.MoodTown
		}
		return audio.MoodOverworld
	case ModeBattle:
		if boss {
			return audio.MoodBoss
		}
		return audio.MoodBattle
	case ModeVictory:
		return audio.MoodVictory
	case ModeGameOver:
		return audio.MoodDefeat
	default:
		return audio.MoodMenu
	}
}
