package state

import (
	"docsearch/internal/domain"
	"docsearch/internal/search"
)

// Phase is the visible state of the search box
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpenEmpty
	PhaseOpenResults
	PhaseOpenNoResults
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpenEmpty:
		return "open-empty"
	case PhaseOpenResults:
		return "open-results"
	case PhaseOpenNoResults:
		return "open-no-results"
	default:
		return "unknown"
	}
}

// SearchState is the state of the search overlay
type SearchState struct {
	IsOpen       bool
	RawQuery     string         // input value as typed
	Query        string         // normalized query of the last computation
	SearchedText string         // trimmed input of the last computation, for display
	Results      []domain.Entry // last computed matches, already capped
	Searched     bool           // a computation ran for Query
}

// Reset returns the overlay to closed with no input and no results
func (s *SearchState) Reset() {
	*s = SearchState{}
}

// ClearResults drops the last computation, keeping the input
func (s *SearchState) ClearResults() {
	s.Query = ""
	s.SearchedText = ""
	s.Results = nil
	s.Searched = false
}

// Phase derives the visible state. Input below the threshold hides any
// earlier results at once, before a pending debounce fires.
func (s *SearchState) Phase(minQueryLength int) Phase {
	switch {
	case !s.IsOpen:
		return PhaseClosed
	case !s.Searched || search.TooShort(s.RawQuery, minQueryLength):
		return PhaseOpenEmpty
	case len(s.Results) > 0:
		return PhaseOpenResults
	default:
		return PhaseOpenNoResults
	}
}

// RenderedResults returns the results the current phase shows
func (s *SearchState) RenderedResults(minQueryLength int) []domain.Entry {
	if s.Phase(minQueryLength) != PhaseOpenResults {
		return nil
	}
	return s.Results
}

// AppState contains all the application state
type AppState struct {
	Index      domain.Index
	IndexReady bool // the first load finished, successfully or not
	Loading    bool

	Search SearchState

	ShowHelp      bool
	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetIndex replaces the index after a load or rebuild
func (s *AppState) SetIndex(idx domain.Index) {
	s.Index = idx
	s.IndexReady = true
	s.Loading = false
}
