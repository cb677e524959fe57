package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexLoaded           EventType = "IndexLoaded"
	EventIndexLoadFailed       EventType = "IndexLoadFailed"
	EventIndexRebuildRequested EventType = "IndexRebuildRequested"
	EventSearchCompleted       EventType = "SearchCompleted"
	EventNavigationRequested   EventType = "NavigationRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexLoadedEvent is emitted when a source produced an index
type IndexLoadedEvent struct {
	Source string
	Count  int
}

func (e IndexLoadedEvent) Type() EventType { return EventIndexLoaded }

// IndexLoadFailedEvent is emitted when a source failed and the index fell back to empty
type IndexLoadFailedEvent struct {
	Source string
	Err    error
}

func (e IndexLoadFailedEvent) Type() EventType { return EventIndexLoadFailed }

// IndexRebuildRequestedEvent asks the UI to reload the index
type IndexRebuildRequestedEvent struct {
	Reason string
}

func (e IndexRebuildRequestedEvent) Type() EventType { return EventIndexRebuildRequested }

// SearchCompletedEvent is emitted after a match computation
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// NavigationRequestedEvent is emitted when a result link is activated
type NavigationRequestedEvent struct {
	URL string
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }
