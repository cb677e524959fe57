package ui

import (
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// indexLoadedMsg carries the result of an index load or rebuild
type indexLoadedMsg struct {
	index   domain.Index
	rebuild bool
}

// debounceMsg fires when the input has been idle for the debounce delay.
// Only the message carrying the latest sequence number triggers a search.
type debounceMsg struct {
	seq int
}

// navigatedMsg contains the result of opening a result in the browser
type navigatedMsg struct {
	url string
	err error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
