package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamehub/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", runeKey(" "), core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"m", runeKey("m"), core.ActionMode},
		{"r", runeKey("r"), core.ActionRestart},
		{"p", runeKey("p"), core.ActionPause},
		{"unbound", runeKey("z"), core.ActionNone},
		{"tab is not a game key", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestSnippetModeDisablesSteering(t *testing.T) {
	km := DefaultKeyMap()
	km.SetSnippetMode(true)

	if got := km.MapKey(runeKey("d")); got != core.ActionNone {
		t.Errorf("d mapped to %v in snippet mode, want download only", got)
	}
	if !km.Download.Enabled() || !km.Copy.Enabled() {
		t.Error("snippet bindings should be enabled")
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyDown}); got != core.ActionDown {
		t.Errorf("down = %v, list navigation should stay enabled", got)
	}

	km.SetSnippetMode(false)
	if km.Download.Enabled() {
		t.Error("download should be disabled on game tabs")
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if !km.MapKeyToFrame(runeKey(" "), &frame) {
		t.Fatal("space should be a game key")
	}
	if !frame.Has(core.ActionFire) {
		t.Error("frame missing Fire")
	}
	if km.MapKeyToFrame(runeKey("z"), &frame) {
		t.Error("z should not be a game key")
	}
}
