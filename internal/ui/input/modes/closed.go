package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/ui/input/types"
)

// ClosedMode handles keys while the search box is hidden
type ClosedMode struct {
	shortcuts []string
}

func NewClosedMode(shortcut string) *ClosedMode {
	return &ClosedMode{shortcuts: ShortcutKeys(shortcut)}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if isShortcut(key, m.shortcuts) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOpen}}, true
	}

	switch key {
	case "ctrl+c", "q":
		return []types.Action{types.QuitAction{Force: key == "ctrl+c"}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOpen}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "ctrl+r":
		return []types.Action{types.ReloadIndexAction{}}, true
	}
	return nil, false
}
