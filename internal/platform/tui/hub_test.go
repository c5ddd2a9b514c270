package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamehub/internal/config"
	"github.com/vovakirdan/gamehub/internal/core"
	_ "github.com/vovakirdan/gamehub/internal/games/runner"
	_ "github.com/vovakirdan/gamehub/internal/games/shooter"
	_ "github.com/vovakirdan/gamehub/internal/games/slots"
	_ "github.com/vovakirdan/gamehub/internal/games/snake"
	"github.com/vovakirdan/gamehub/internal/games/tictactoe"
	"github.com/vovakirdan/gamehub/internal/games/tictactoe/engine"
)

// newHub builds a hub whose downloads land in a temp dir.
func newHub(t *testing.T, clipboard *bytes.Buffer) (*HubModel, string) {
	t.Helper()
	var opts HubOptions
	if clipboard != nil {
		opts.Clipboard = clipboard
		opts.Term = "xterm-256color"
	}
	return newHubWith(t, opts)
}

func newHubWith(t *testing.T, opts HubOptions) (*HubModel, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgDir := t.TempDir()
	downloads := filepath.Join(t.TempDir(), "downloads")
	hubYAML := "download_dir: " + downloads + "\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "hub.yaml"), []byte(hubYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	config.SetOptions(config.Options{Dir: cfgDir})
	t.Cleanup(func() { config.SetOptions(config.Options{}) })

	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 28, TickRate: 60, Seed: 1}
	m, err := NewHub(opts)
	if err != nil {
		t.Fatal(err)
	}
	return m, downloads
}

func press(m *HubModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func tick(m *HubModel, n int) {
	for i := 0; i < n; i++ {
		m.Update(TickMsg{})
	}
}

func TestHubTabOrder(t *testing.T) {
	m, _ := newHub(t, nil)
	want := []string{"Shooter", "Snake", "Slots", "Tic-tac-toe", "Geometry Dash", "Pro Projects"}
	if got := m.Titles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Titles() = %v, want %v", got, want)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.Active())
	}
}

func TestHubTabNavigation(t *testing.T) {
	m, _ := newHub(t, nil)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Active() != 1 {
		t.Errorf("after tab: %d, want 1", m.Active())
	}

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Active() != 5 {
		t.Errorf("shift+tab should wrap to the last tab, got %d", m.Active())
	}

	press(m, runeKey("4"))
	if got := m.ActiveGame(); got == nil || got.ID() != "tictactoe" {
		t.Errorf("key 4 should open tic-tac-toe, got %v", got)
	}

	press(m, runeKey("9"))
	if m.Active() != 3 {
		t.Error("a number past the last tab should be ignored")
	}
}

func TestHubKeepsStatePerTab(t *testing.T) {
	m, _ := newHub(t, nil)
	press(m, runeKey("4"))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	tick(m, 1)

	ttt := m.ActiveGame().(*tictactoe.Game)
	if ttt.Board()[4] != engine.MarkFirst {
		t.Fatalf("enter should place X in the center:\n%s", ttt.Board())
	}

	press(m, runeKey("2"))
	tick(m, 120)
	press(m, runeKey("4"))

	if m.ActiveGame() != ttt {
		t.Fatal("switching tabs replaced the game instance")
	}
	b := ttt.Board()
	if b[4] != engine.MarkFirst || len(engine.EmptyPositions(b)) != 8 {
		t.Errorf("tic-tac-toe advanced while inactive:\n%s", b)
	}
}

func TestHubSnippetDownload(t *testing.T) {
	m, downloads := newHub(t, nil)
	press(m, runeKey("6"))
	if m.ActiveGame() != nil {
		t.Fatal("tab 6 should be the snippets tab")
	}

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := press(m, runeKey("d"))
	if cmd == nil {
		t.Fatal("d should return a download command")
	}
	m.Update(cmd())

	path := filepath.Join(downloads, "Snake.java")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snippet not saved: %v", err)
	}
	if !strings.Contains(m.snipStatus, "Snake.java") {
		t.Errorf("status = %q", m.snipStatus)
	}
}

func TestHubSnippetCopy(t *testing.T) {
	var clip bytes.Buffer
	m, _ := newHub(t, &clip)
	press(m, runeKey("6"))

	if cmd := press(m, runeKey("c")); cmd != nil {
		t.Error("copy should write from Update, not from a command")
	}
	if !strings.HasPrefix(clip.String(), "\x1b]52;") {
		t.Errorf("clipboard got %q", clip.String())
	}
	if !strings.Contains(m.snipStatus, "PlayerController.cs") {
		t.Errorf("status = %q", m.snipStatus)
	}
}

func TestHubCopyWithoutClipboard(t *testing.T) {
	m, _ := newHub(t, nil)
	press(m, runeKey("6"))
	press(m, runeKey("c"))
	if !strings.Contains(m.snipStatus, "not available") {
		t.Errorf("status = %q", m.snipStatus)
	}
}

func TestHubDownloadDisabled(t *testing.T) {
	var clip bytes.Buffer
	m, downloads := newHubWith(t, HubOptions{Clipboard: &clip, Term: "xterm", DisableDownload: true})
	press(m, runeKey("6"))

	if cmd := press(m, runeKey("d")); cmd != nil {
		t.Fatal("d should not start a download when downloads are disabled")
	}
	if !strings.Contains(m.snipStatus, "not available over SSH") {
		t.Errorf("status = %q", m.snipStatus)
	}
	if _, err := os.Stat(downloads); !os.IsNotExist(err) {
		t.Errorf("download dir should not be created, stat err = %v", err)
	}

	press(m, runeKey("c"))
	if !strings.HasPrefix(clip.String(), "\x1b]52;") {
		t.Errorf("copy should still work, clipboard got %q", clip.String())
	}
}

func TestHubView(t *testing.T) {
	m, _ := newHub(t, nil)
	view := m.View()
	for _, want := range []string{"Shooter", "Pro Projects", "Score: 0", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(m, runeKey("6"))
	if view := m.View(); !strings.Contains(view, "Java (Swing)") {
		t.Error("snippets tab should list the catalog")
	}
}

func TestHubQuit(t *testing.T) {
	m, _ := newHub(t, nil)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
