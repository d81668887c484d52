package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// KeyMap holds the in-game bindings for both seats and the platform keys.
type KeyMap struct {
	P1Up     key.Binding
	P1Down   key.Binding
	P1Left   key.Binding
	P1Right  key.Binding
	P1Attack key.Binding
	P2Up     key.Binding
	P2Down   key.Binding
	P2Left   key.Binding
	P2Right  key.Binding
	P2Attack key.Binding
	Start    key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default two-seat bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 up")),
		P1Down:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P1 down")),
		P1Left:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
		P1Right:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
		P1Attack: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "P1 attack")),
		P2Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 up")),
		P2Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "P2 down")),
		P2Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
		P2Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
		P2Attack: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "P2 attack")),
		Start:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "start")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:     key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Attack, k.P2Attack, k.Pause, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P1Left, k.P1Right, k.P1Attack},
		{k.P2Up, k.P2Down, k.P2Left, k.P2Right, k.P2Attack},
		{k.Start, k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// LogicalKey translates a key message to the logical key it holds down.
func (k KeyMap) LogicalKey(msg tea.KeyMsg) (core.Key, bool) {
	bindings := []struct {
		binding key.Binding
		key     core.Key
	}{
		{k.P1Up, core.KeyW},
		{k.P1Down, core.KeyS},
		{k.P1Left, core.KeyA},
		{k.P1Right, core.KeyD},
		{k.P1Attack, core.KeySpace},
		{k.P2Up, core.KeyArrowUp},
		{k.P2Down, core.KeyArrowDown},
		{k.P2Left, core.KeyArrowLeft},
		{k.P2Right, core.KeyArrowRight},
		{k.P2Attack, core.KeyEnter},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}
	return "", false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
