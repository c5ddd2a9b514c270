package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
)

// Model runs a single game full screen, without the hub chrome.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	keys     KeyMap
	theme    Theme
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game. A zero seed is replaced by the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	return &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		input:  core.NewInputFrame(),
		state:  game.State(),
		keys:   DefaultKeyMap(),
		theme:  NewTheme(nil),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			m.saveScreenshot()
			return m, nil
		}
		m.keys.MapKeyToFrame(msg, &m.input)

	case tea.WindowSizeMsg:
		if msg.Width != m.config.ScreenW || msg.Height != m.config.ScreenH {
			m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
			m.screen.Resize(msg.Width, msg.Height)
			m.game.Reset(m.config)
		}

	case TickMsg:
		prev := m.state
		m.state = m.game.Step(m.input).State
		m.input.Clear()
		if m.state.GameOver && !prev.GameOver {
			m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score)
		}
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text to
// ~/.gamehub/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".gamehub", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.theme.RenderScreen(m.screen)
}

// Run plays one game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
