package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Widget actions
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

type CloseSearchAction struct{}

func (a CloseSearchAction) Type() string { return "close_search" }

// ActivateFirstAction navigates to the first result, if any
type ActivateFirstAction struct{}

func (a ActivateFirstAction) Type() string { return "activate_first" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Command actions
type ReloadIndexAction struct{}

func (a ReloadIndexAction) Type() string { return "reload_index" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
