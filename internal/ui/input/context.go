package input

import (
	"docsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State          *state.AppState
	MinQueryLength int
}

// IsOpen reports whether the search box is shown
func (c *ModelContext) IsOpen() bool {
	return c.State.Search.IsOpen
}

// ResultCount returns the number of results on screen, which can be fewer
// than the stored ones while a debounce is pending
func (c *ModelContext) ResultCount() int {
	return len(c.State.Search.RenderedResults(c.MinQueryLength))
}
