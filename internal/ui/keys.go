package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"docsearch/internal/ui/input/modes"
)

// keyMap holds the bindings shown as hints; input modes do the matching
type keyMap struct {
	Toggle key.Binding
	Slash  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(shortcut string) keyMap {
	toggle := modes.ShortcutKeys(shortcut)
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(toggle...), key.WithHelp(toggle[0], "search")),
		Slash:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload index")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Slash, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Slash}, {k.Reload, k.Help, k.Quit}}
}

func (k keyMap) toggleLabel() string {
	return strings.Join(k.Toggle.Keys(), ", ")
}
