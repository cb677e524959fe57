package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/eventbus"
	"docsearch/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	reload func() tea.Cmd
}

// NewEventHandler creates a new event handler. reload starts an index
// rebuild and may return nil when one is already running.
func NewEventHandler(appState *state.AppState, reload func() tea.Cmd) *EventHandler {
	return &EventHandler{
		state:  appState,
		reload: reload,
	}
}

// HandleEvent processes domain events and returns any necessary commands.
// Load outcomes are reported by the model when the index arrives.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.IndexRebuildRequestedEvent:
		if h.reload == nil {
			return nil
		}
		if e.Reason != "" {
			h.state.StatusMessage = fmt.Sprintf("Rebuilding index: %s", e.Reason)
		}
		return h.reload()
	}

	return nil
}
