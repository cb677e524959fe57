package viewmodels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/search"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/views"
)

// Messages shown in place of results
const (
	MessageNotLoaded = "Search data not loaded. Please refresh the page."
	noResultsFormat  = `No results found for "%s"`
	Placeholder      = "Search documentation..."
)

// NoResultsMessage returns the message shown when a query matched nothing
func NoResultsMessage(query string) string {
	return fmt.Sprintf(noResultsFormat, strings.TrimSpace(query))
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	keyHints  []key.Binding
	inputView string
	helpText  string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings shown on the closed screen
func (vm *ViewModel) SetHelp(helpModel help.Model, hints []key.Binding) {
	vm.help = helpModel
	vm.keyHints = hints
}

// SetHelpContent sets the text of the inline help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpText = content
}

// SetInputView sets the rendered text input
func (vm *ViewModel) SetInputView(view string) {
	vm.inputView = view
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := Build(vm.state, vm.config)
	vs.Width = vm.width
	vs.Height = vm.height
	vs.HelpModel = vm.help
	vs.KeyHints = vm.keyHints
	vs.HelpContent = vm.helpText
	if vs.Expanded {
		vs.InputView = vm.inputView
	}
	return vs
}

// Build derives the view state from application state. It has no side
// effects and is shared by the terminal and HTML renderers.
func Build(s *state.AppState, cfg *config.Config) views.ViewState {
	site := SiteOf(cfg)
	limit := cfg.Search.DescriptionLimit
	phase := s.Search.Phase(cfg.Search.MinQueryLength)

	vs := views.ViewState{
		SiteTitle:     cfg.Site.Title,
		EntryCount:    s.Index.Len(),
		Source:        s.Index.Source,
		Phase:         phase,
		Expanded:      s.Search.IsOpen,
		Hidden:        !s.Search.IsOpen,
		Query:         s.Search.RawQuery,
		Placeholder:   Placeholder,
		StatusMessage: s.StatusMessage,
		ShowHelp:      s.ShowHelp,
	}

	switch {
	case !s.IndexReady || s.Loading:
		vs.IndexStatus = views.IndexLoading
	case s.Index.Empty():
		vs.IndexStatus = views.IndexUnavailable
	default:
		vs.IndexStatus = views.IndexReady
	}

	for _, e := range s.Index.Categories() {
		vs.Categories = append(vs.Categories, NewResultItem(e, "", site, limit))
	}

	switch phase {
	case state.PhaseOpenResults:
		// Highlight with the query that produced the results, not the
		// input typed since
		for _, e := range s.Search.Results {
			vs.Results = append(vs.Results, NewResultItem(e, s.Search.SearchedText, site, limit))
		}
	case state.PhaseOpenNoResults:
		if s.Index.Empty() {
			vs.Message = MessageNotLoaded
		} else {
			vs.Message = NoResultsMessage(s.Search.SearchedText)
		}
	}

	return vs
}

// NewResultItem prepares one entry for display: fallback title, truncated
// description, highlighted segments and a site-normalized URL
func NewResultItem(e domain.Entry, query string, site search.Site, descriptionLimit int) views.ResultItem {
	desc, truncated := search.Truncate(e.DisplayDescription(), descriptionLimit)
	return views.ResultItem{
		Title:       search.Segments(e.DisplayTitle(), query),
		Description: search.Segments(desc, query),
		Truncated:   truncated,
		URL:         search.NormalizeURL(e.Target(), site),
		Path:        e.Path,
		Category:    e.IsCategory,
	}
}

// SiteOf returns the URL normalization prefixes of the configured site
func SiteOf(cfg *config.Config) search.Site {
	return search.Site{
		RootPath:      cfg.Site.RootPath,
		ContentPrefix: cfg.Site.ContentPrefix,
	}
}
