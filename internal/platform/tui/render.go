package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragonslair/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per colour pair seen on screen.
type styleCache map[colorPair]lipgloss.Style

func (sc styleCache) style(p colorPair) lipgloss.Style {
	if st, ok := sc[p]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg.Hex())).
		Background(lipgloss.Color(p.bg.Hex()))
	sc[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styles.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
