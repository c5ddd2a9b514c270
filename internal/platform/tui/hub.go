package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	"github.com/vovakirdan/gamehub/internal/registry"
	"github.com/vovakirdan/gamehub/internal/snippets"
)

// chromeRows is the space taken by the tab bar (two rows with its rule),
// the status line and the help line.
const chromeRows = 4

// snippetsTitle labels the code snippets tab.
const snippetsTitle = "Pro Projects"

// HubOptions configures a hub.
type HubOptions struct {
	Runtime   core.RuntimeConfig
	Renderer  *lipgloss.Renderer // nil for the local terminal
	Clipboard io.Writer          // receives OSC 52 sequences; nil disables copy
	Term      string             // TERM of the output, for tmux/screen wrapping
	Logger    *log.Logger        // nil discards

	// DisableDownload keeps d from writing files. Set for SSH sessions,
	// where the download dir is on the server.
	DisableDownload bool
}

// tab is one game and its private screen. Each tab keeps its state while
// another tab is active.
type tab struct {
	game   registry.Game
	screen *core.Screen
	state  core.GameState
}

// snippetResultMsg reports the outcome of a download.
type snippetResultMsg struct {
	status string
	err    error
}

// HubModel is the tabbed shell: one tab per game plus the snippets tab.
// Only the active game is stepped; the others are frozen.
type HubModel struct {
	tabs   []tab
	active int // index into tabs, or len(tabs) for the snippets tab

	showSnippets bool
	catalog      []snippets.Snippet
	snipCursor   int
	snipStatus   string
	snipFailed   bool
	downloadDir  string
	noDownload   bool

	runtime   core.RuntimeConfig
	input     core.InputFrame
	keys      KeyMap
	help      help.Model
	theme     Theme
	clipboard io.Writer
	term      string
	logger    *log.Logger
	width     int
	height    int
	quitting  bool
}

// NewHub creates a hub with the tabs listed in hub.yaml.
func NewHub(opts HubOptions) (*HubModel, error) {
	cfg, err := config.LoadHub()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := &HubModel{
		showSnippets: cfg.Snippets,
		catalog:      snippets.List(),
		downloadDir:  cfg.DownloadDir,
		noDownload:   opts.DisableDownload,
		runtime:      rt,
		input:        core.NewInputFrame(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        NewTheme(opts.Renderer),
		clipboard:    opts.Clipboard,
		term:         opts.Term,
		logger:       logger,
		width:        rt.ScreenW,
		height:       rt.ScreenH,
	}

	area := m.gameArea()
	for _, id := range cfg.Tabs {
		g, err := registry.Create(id)
		if err != nil {
			return nil, fmt.Errorf("hub tab: %w", err)
		}
		g.Reset(area)
		m.tabs = append(m.tabs, tab{
			game:   g,
			screen: core.NewScreen(area.ScreenW, area.ScreenH),
			state:  g.State(),
		})
	}
	if len(m.tabs) == 0 && !m.showSnippets {
		return nil, errors.New("hub has no tabs")
	}
	m.selectTab(0)
	return m, nil
}

// gameArea is the runtime config handed to games: the window minus the
// hub chrome.
func (m *HubModel) gameArea() core.RuntimeConfig {
	rt := m.runtime
	rt.ScreenW = max(m.width, 1)
	rt.ScreenH = max(m.height-chromeRows, 1)
	return rt
}

// tabCount includes the snippets tab when enabled.
func (m *HubModel) tabCount() int {
	if m.showSnippets {
		return len(m.tabs) + 1
	}
	return len(m.tabs)
}

// onSnippets reports whether the snippets tab is active.
func (m *HubModel) onSnippets() bool {
	return m.active == len(m.tabs)
}

// Active returns the index of the active tab.
func (m *HubModel) Active() int { return m.active }

// ActiveGame returns the game in the active tab, or nil on the snippets
// tab.
func (m *HubModel) ActiveGame() registry.Game {
	if m.onSnippets() {
		return nil
	}
	return m.tabs[m.active].game
}

// Titles returns the tab labels in order.
func (m *HubModel) Titles() []string {
	titles := make([]string, 0, m.tabCount())
	for _, t := range m.tabs {
		titles = append(titles, t.game.Title())
	}
	if m.showSnippets {
		titles = append(titles, snippetsTitle)
	}
	return titles
}

func (m *HubModel) selectTab(i int) {
	n := m.tabCount()
	if n == 0 {
		return
	}
	m.active = core.Wrap(i, n)
	m.input.Clear()
	m.keys.SetSnippetMode(m.onSnippets())
}

// Init starts the tick loop.
func (m *HubModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages.
func (m *HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.runtime.TickRate)

	case snippetResultMsg:
		if msg.err != nil {
			m.logger.Error("snippet download failed", "error", msg.err)
			m.setSnipStatus("Error: "+msg.err.Error(), true)
		} else {
			m.setSnipStatus(msg.status, false)
		}
		return m, nil
	}
	return m, nil
}

func (m *HubModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(m.active + 1)
		return nil
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(m.active - 1)
		return nil
	}

	// 1-9 jump straight to a tab.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= m.tabCount() {
		m.selectTab(n - 1)
		return nil
	}

	if m.onSnippets() {
		return m.handleSnippetKey(msg)
	}
	m.keys.MapKeyToFrame(msg, &m.input)
	return nil
}

func (m *HubModel) handleSnippetKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.snipCursor = core.Clamp(m.snipCursor-1, 0, len(m.catalog)-1)
	case key.Matches(msg, m.keys.Down):
		m.snipCursor = core.Clamp(m.snipCursor+1, 0, len(m.catalog)-1)
	case key.Matches(msg, m.keys.Download):
		if m.noDownload {
			m.setSnipStatus("Download is not available over SSH, use c to copy", false)
			return nil
		}
		return m.downloadCmd(m.catalog[m.snipCursor])
	case key.Matches(msg, m.keys.Copy):
		m.copySnippet(m.catalog[m.snipCursor])
	}
	return nil
}

func (m *HubModel) setSnipStatus(status string, failed bool) {
	m.snipStatus, m.snipFailed = status, failed
}

func (m *HubModel) downloadCmd(s snippets.Snippet) tea.Cmd {
	dir, logger := m.downloadDir, m.logger
	return func() tea.Msg {
		path, err := snippets.Save(s, dir)
		if err != nil {
			return snippetResultMsg{err: err}
		}
		logger.Info("snippet saved", "snippet", s.Name, "path", path)
		return snippetResultMsg{status: "Saved " + path}
	}
}

// copySnippet writes the OSC 52 sequence in a single write. It must run
// from Update, on the program's event loop.
func (m *HubModel) copySnippet(s snippets.Snippet) {
	if m.clipboard == nil {
		m.setSnipStatus("Clipboard not available here, use d to download", false)
		return
	}
	if err := snippets.Copy(m.clipboard, s, m.term); err != nil {
		m.logger.Error("snippet copy failed", "snippet", s.Name, "error", err)
		m.setSnipStatus("Error: "+err.Error(), true)
		return
	}
	m.logger.Info("snippet copied", "snippet", s.Name)
	m.setSnipStatus("Copied "+s.File+" to the clipboard", false)
}

// handleResize resizes every tab. Games are restarted for the new size
// only when the playfield actually changed.
func (m *HubModel) handleResize(w, h int) {
	m.help.Width = w
	if w == m.width && h == m.height {
		return
	}
	m.width, m.height = w, h
	area := m.gameArea()
	for i := range m.tabs {
		t := &m.tabs[i]
		t.screen.Resize(area.ScreenW, area.ScreenH)
		t.game.Reset(area)
		t.state = t.game.State()
	}
}

// step advances the active game with the input gathered since the last
// tick.
func (m *HubModel) step() {
	if m.onSnippets() {
		return
	}
	t := &m.tabs[m.active]
	t.state = t.game.Step(m.input).State
	m.input.Clear()
}

// View renders the tab bar, the active tab, a status line and help.
func (m *HubModel) View() string {
	if m.quitting {
		return ""
	}

	var body, status string
	statusStyle := m.theme.Status
	if m.onSnippets() {
		body = m.snippetsView()
		status = m.snipStatus
		if m.snipFailed {
			statusStyle = m.theme.Error
		}
	} else {
		t := &m.tabs[m.active]
		t.game.Render(t.screen)
		body = m.theme.RenderScreen(t.screen)
		status = t.game.Controls()
		if t.state.Status != "" {
			status = t.state.Status + "  |  " + status
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		body,
		statusStyle.Render(status),
		m.help.View(m.keys),
	)
}

func (m *HubModel) tabBar() string {
	titles := m.Titles()
	parts := make([]string, len(titles))
	for i, title := range titles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if i == m.active {
			parts[i] = m.theme.ActiveTab.Render(label)
		} else {
			parts[i] = m.theme.Tab.Render(label)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return m.theme.TabBar.Width(max(m.width, lipgloss.Width(bar))).Render(bar)
}

func (m *HubModel) snippetsView() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render(snippetsTitle + ": downloads and instructions"))
	sb.WriteString("\n\n")
	for i, s := range m.catalog {
		cursor := "  "
		name := s.Title
		if i == m.snipCursor {
			cursor = "> "
			name = m.theme.Selected.Render(name)
		}
		sb.WriteString(cursor + name + "\n")
		sb.WriteString("    " + m.theme.Dim.Render(s.Description) + "\n")
		sb.WriteString("    " + m.theme.Dim.Render("./"+s.File) + "\n\n")
	}

	out := sb.String()
	lines := strings.Count(out, "\n")
	if pad := m.height - chromeRows - lines; pad > 0 {
		out += strings.Repeat("\n", pad)
	}
	return strings.TrimSuffix(out, "\n")
}

// RunHub starts the hub on the local terminal.
func RunHub(opts HubOptions) error {
	m, err := NewHub(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
