package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsearch/internal/domain"
)

func TestPhaseTransitions(t *testing.T) {
	var s SearchState
	assert.Equal(t, PhaseClosed, s.Phase(2))

	s.IsOpen = true
	assert.Equal(t, PhaseOpenEmpty, s.Phase(2))

	s.RawQuery = "a"
	s.Searched = true
	assert.Equal(t, PhaseOpenEmpty, s.Phase(2))

	s.RawQuery = "apex"
	s.Results = []domain.Entry{{Title: "Apex Basics"}}
	assert.Equal(t, PhaseOpenResults, s.Phase(2))

	s.Results = nil
	assert.Equal(t, PhaseOpenNoResults, s.Phase(2))
}

func TestResetClearsEverything(t *testing.T) {
	s := SearchState{
		IsOpen:   true,
		RawQuery: "apex",
		Query:    "apex",
		Results:  []domain.Entry{{Title: "Apex Basics"}},
		Searched: true,
	}

	s.Reset()

	assert.Equal(t, SearchState{}, s)
	assert.Equal(t, PhaseClosed, s.Phase(2))
}

func TestSetIndexMarksReady(t *testing.T) {
	s := NewAppState()
	s.Loading = true

	s.SetIndex(domain.NewIndex("fetch", []domain.Entry{{Title: "A"}}))

	assert.True(t, s.IndexReady)
	assert.False(t, s.Loading)
	assert.Equal(t, 1, s.Index.Len())
}

func TestRenderedResultsFollowPhase(t *testing.T) {
	s := SearchState{
		IsOpen:       true,
		RawQuery:     "apex",
		Query:        "apex",
		SearchedText: "apex",
		Results:      []domain.Entry{{Title: "Apex Basics"}},
		Searched:     true,
	}
	assert.Len(t, s.RenderedResults(2), 1)

	// shortened input, results of the earlier computation still stored
	s.RawQuery = "a"
	assert.Equal(t, PhaseOpenEmpty, s.Phase(2))
	assert.Empty(t, s.RenderedResults(2))

	s.IsOpen = false
	s.RawQuery = "apex"
	assert.Empty(t, s.RenderedResults(2))
}
