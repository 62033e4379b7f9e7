package game

import "github.com/vovakirdan/dragonslair/internal/core"

// Draw renders the current mode and the transition overlay.
func (m *Machine) Draw(c core.Canvas) {
	switch m.Mode() {
	case ModeStartMenu:
		m.drawStartMenu(c)
	case ModeOpeningCutscene:
		m.cutscene.Draw(c, m.stars, m.fx, m.ticks)
	case ModeCharacterSelect:
		m.drawCharacterSelect(c)
	case ModeOverworld:
		if m.player != nil && m.world != nil {
			m.drawOverworld(c)
		}
	case ModeBattle:
		if m.battle != nil {
			m.battle.Draw(c)
		}
	case ModeGameOver:
		m.drawGameOver(c)
	case ModeVictory:
		m.drawVictory(c)
	}
	m.fade.Draw(c)
}
