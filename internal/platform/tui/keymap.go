package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gamehub/internal/core"
)

// KeyMap holds every binding of the hub. Game bindings translate to core
// actions; the rest drive the shell itself.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Mode    key.Binding
	Restart key.Binding
	Pause   key.Binding

	NextTab  key.Binding
	PrevTab  key.Binding
	Download key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings. Snippet bindings start
// disabled and are switched on by the Pro Projects tab.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire/jump/spin"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.SetSnippetMode(false)
	return km
}

// SetSnippetMode switches between game bindings and the snippet list
// bindings. In snippet mode "d" downloads instead of steering.
func (k *KeyMap) SetSnippetMode(on bool) {
	k.Download.SetEnabled(on)
	k.Copy.SetEnabled(on)
	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Fire, &k.Confirm, &k.Mode, &k.Restart, &k.Pause} {
		b.SetEnabled(!on)
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Download, k.Copy, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Confirm, k.Mode},
		{k.Pause, k.Restart},
		{k.NextTab, k.PrevTab, k.Download, k.Copy, k.Quit},
	}
}

// gameBindings pairs each game binding with its action, in match order.
func (k KeyMap) gameBindings() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Confirm, core.ActionConfirm},
		{k.Mode, core.ActionMode},
		{k.Restart, core.ActionRestart},
		{k.Pause, core.ActionPause},
	}
}

// MapKey translates a key message to a game action, or ActionNone when
// no enabled game binding matches.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	for _, gb := range k.gameBindings() {
		if key.Matches(msg, gb.binding) {
			return gb.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame records the action for msg in frame and reports whether
// the key was a game key.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action == core.ActionNone {
		return false
	}
	frame.Set(action)
	return true
}
