package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/search"
	"docsearch/internal/ui/handlers"
	"docsearch/internal/ui/input"
	inputtypes "docsearch/internal/ui/input/types"
	searchsvc "docsearch/internal/ui/services/search"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/viewmodels"
	"docsearch/internal/ui/views"
)

// ErrMissingComponent is returned when the model is built without one of
// the parts it cannot work without
var ErrMissingComponent = errors.New("search component missing")

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// IndexLoader loads and rebuilds the search index
type IndexLoader interface {
	Load(ctx context.Context) domain.Index
	Rebuild(ctx context.Context) domain.Index
	SourceName() string
}

// Options holds the model's dependencies
type Options struct {
	Context context.Context
	Config  *config.Config
	Loader  IndexLoader
	Bus     eventbus.EventBus // optional
	Opener  Opener            // defaults to the system browser
	Logger  *slog.Logger
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger *slog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	debounceSeq int  // bumped on every input change and on close
	inPagerMode bool // tracks if we're currently in pager mode

	loader       IndexLoader
	opener       Opener
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	searchSvc    *searchsvc.Service
	eventHandler *handlers.EventHandler
	helpRenderer *HelpRenderer

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model
func NewModel(opts Options) (*Model, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("%w: configuration", ErrMissingComponent)
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("%w: index loader", ErrMissingComponent)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opener := opts.Opener
	if opener == nil {
		opener = NewBrowserOpener()
	}

	cfg := opts.Config
	appState := state.NewAppState()

	m := &Model{
		ctx:          ctx,
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		logger:       logger,
		help:         help.New(),
		keys:         newKeyMap(cfg.Search.ShortcutKey),
		loader:       opts.Loader,
		opener:       opener,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.Search.ShortcutKey),
		searchSvc:    searchsvc.NewService(opts.Bus, cfg.Search.CacheSize, logger),
	}

	m.searchSvc.SetMatcherFunction(func(query string) []domain.Entry {
		return search.Match(m.state.Index, query, m.searchOptions())
	})
	m.eventHandler = handlers.NewEventHandler(appState, m.reloadIndex)
	m.helpRenderer = NewHelpRenderer(m.keys)

	m.viewModel = viewmodels.NewViewModel(appState, cfg)
	m.viewModel.SetHelp(m.help, m.keys.ShortHelp())

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts loading the index
func (m *Model) Init() tea.Cmd {
	m.state.Loading = true
	return m.loadIndex(false)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys.ShortHelp())
		if ti := m.inputHandler.TextInput(); ti != nil {
			ti.Width = max(msg.Width-24, 10)
		}
		return m, nil

	case tea.KeyMsg:
		// Inline help popup swallows keys until dismissed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		return m, m.processActions(actions, cmd)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputView(m.inputHandler.TextInput().View())
	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpContent())
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{State: m.state, MinQueryLength: m.config.Search.MinQueryLength}
}

func (m *Model) searchOptions() search.Options {
	return search.Options{
		MinQueryLength: m.config.Search.MinQueryLength,
		MaxResults:     m.config.Search.MaxResults,
	}
}

func (m *Model) processActions(actions []inputtypes.Action, cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", "action", action.Type())

	switch a := action.(type) {
	case inputtypes.OpenSearchAction:
		m.state.Search.IsOpen = true
		return nil

	case inputtypes.CloseSearchAction:
		m.state.Search.Reset()
		// Any pending debounce belongs to the closed session
		m.debounceSeq++
		return nil

	case inputtypes.UpdateTextAction:
		if !m.state.Search.IsOpen || a.Text == m.state.Search.RawQuery {
			return nil
		}
		m.state.Search.RawQuery = a.Text
		m.debounceSeq++

		// Short input never reaches the matcher, clear without waiting
		delay := m.config.Search.Debounce()
		if delay <= 0 || search.TooShort(a.Text, m.config.Search.MinQueryLength) {
			m.runSearch()
			return nil
		}
		seq := m.debounceSeq
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		})

	case inputtypes.ActivateFirstAction:
		return m.activateFirst()

	case inputtypes.ReloadIndexAction:
		m.state.StatusMessage = "Reloading index..."
		return m.reloadIndex()

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp
		return nil

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// runSearch computes results for the current input value
func (m *Model) runSearch() {
	s := &m.state.Search
	if search.TooShort(s.RawQuery, m.config.Search.MinQueryLength) {
		s.ClearResults()
		return
	}

	s.Query = search.Normalize(s.RawQuery)
	s.SearchedText = strings.TrimSpace(s.RawQuery)
	s.Searched = true
	if m.state.Index.Empty() {
		// Rendered as the "not loaded" message
		s.Results = nil
		return
	}
	s.Results = m.searchSvc.Search(s.RawQuery)
}

// activateFirst opens the first rendered result. Widget state is left as is.
func (m *Model) activateFirst() tea.Cmd {
	results := m.state.Search.RenderedResults(m.config.Search.MinQueryLength)
	if len(results) == 0 {
		return nil
	}

	target := search.NormalizeURL(results[0].Target(), viewmodels.SiteOf(m.config))
	url := search.JoinBase(m.config.Site.BaseURL, target)

	m.logger.Info("opening result", "url", url)
	if m.bus != nil {
		m.bus.Publish(domain.NavigationRequestedEvent{URL: url})
	}
	return openURL(m.opener, url)
}

// handleMouse closes the search box on a left click outside of it
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.state.Search.IsOpen {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	surface := m.renderer.Surface()
	if surface.Empty() || surface.Contains(msg.X, msg.Y) {
		return nil
	}

	actions, cmd := m.inputHandler.SwitchMode(inputtypes.ModeClosed, m.inputContext())
	return m.processActions(actions, cmd)
}

// loadIndex returns a command that loads or rebuilds the index
func (m *Model) loadIndex(rebuild bool) tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		if rebuild {
			return indexLoadedMsg{index: loader.Rebuild(ctx), rebuild: true}
		}
		return indexLoadedMsg{index: loader.Load(ctx)}
	}
}

// reloadIndex starts a rebuild unless one is already running
func (m *Model) reloadIndex() tea.Cmd {
	if m.state.Loading {
		return nil
	}
	m.state.Loading = true
	return m.loadIndex(true)
}

func (m *Model) helpContent() string {
	return m.helpRenderer.RenderHelpContent(
		m.config.Search.MinQueryLength,
		m.config.Search.MaxResults,
		m.config.Search.Debounce(),
	)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case indexLoadedMsg:
		m.state.SetIndex(msg.index)
		m.searchSvc.Invalidate()
		m.logger.Debug("index applied", "entries", msg.index.Len(), "rebuild", msg.rebuild)

		// Refresh visible results against the new index
		if m.state.Search.IsOpen && m.state.Search.Searched {
			m.runSearch()
		}
		if msg.rebuild {
			if msg.index.Empty() {
				m.state.StatusMessage = "Index reload failed, see log"
			} else {
				m.state.StatusMessage = fmt.Sprintf("Index reloaded: %d entries", msg.index.Len())
			}
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case debounceMsg:
		// Superseded by newer input or by a close
		if msg.seq != m.debounceSeq || !m.state.Search.IsOpen {
			return m, nil
		}
		m.runSearch()
		return m, nil

	case navigatedMsg:
		if msg.err != nil {
			m.logger.Error("failed to open result", "url", msg.url, "error", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Failed to open %s: %v", msg.url, msg.err)
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			m.logger.Warn("help pager failed, falling back to popup", "error", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}
