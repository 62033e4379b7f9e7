package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragonslair/internal/config"
	"github.com/vovakirdan/dragonslair/internal/core"
	"github.com/vovakirdan/dragonslair/internal/game"
)

// helpHeight is the footer line below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.Machine.
type Model struct {
	machine    *game.Machine
	screen     *core.Screen
	canvas     *Canvas
	styles     styleCache
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model around a machine. The playfield takes the whole
// terminal except the help footer.
func NewModel(machine *game.Machine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(core.Max(1, cfg.ScreenW), core.Max(1, cfg.ScreenH-helpHeight))
	h := help.New()
	h.Width = cfg.ScreenW
	return Model{
		machine:    machine,
		screen:     screen,
		canvas:     NewCanvas(screen),
		styles:     styleCache{},
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Several keys may
// arrive between ticks; they all land in the same frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize keeps the playfield the size of the terminal. The world is
// scaled, so the game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(core.Max(1, msg.Width), core.Max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the machine once with the collected input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.machine.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.machine.Quit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under the user directory.
func (m *Model) saveScreenshot() {
	m.paint()

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.machine.Mode(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// paint draws the machine into the screen buffer.
func (m *Model) paint() {
	m.screen.Clear()
	m.machine.Draw(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.paint()
	return renderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *game.Machine, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(machine, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
