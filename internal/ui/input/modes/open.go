package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// OpenMode handles keys while the search box is shown and the input has focus
type OpenMode struct {
	TextInputMode
	shortcuts []string
}

func NewOpenMode(ti *textinput.Model, shortcut string) *OpenMode {
	return &OpenMode{
		TextInputMode: NewTextInputMode(types.ModeOpen, "search", "Search: ", ti),
		shortcuts:     ShortcutKeys(shortcut),
	}
}

func (m *OpenMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	return []types.Action{types.OpenSearchAction{}}
}

func (m *OpenMode) Exit(ctx types.Context) []types.Action {
	m.TextInputMode.Exit(ctx)
	return []types.Action{types.CloseSearchAction{}}
}

func (m *OpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if isShortcut(key, m.shortcuts) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeClosed}}, true
	}

	switch key {
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeClosed}}, true
	case "enter":
		if ctx.ResultCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateFirstAction{}}, true
	case "ctrl+r":
		return []types.Action{types.ReloadIndexAction{}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
