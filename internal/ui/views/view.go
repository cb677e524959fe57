package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/search"
	"docsearch/internal/ui/state"
)

// IndexStatus describes the index load for the status line
type IndexStatus int

const (
	IndexLoading IndexStatus = iota
	IndexReady
	IndexUnavailable
)

// ResultItem is one rendered search result
type ResultItem struct {
	Title       []search.Segment
	Description []search.Segment
	Truncated   bool   // description was cut; renderers append "..."
	URL         string // site-normalized link target
	Path        string
	Category    bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SiteTitle   string
	IndexStatus IndexStatus
	EntryCount  int
	Source      string
	Categories  []ResultItem

	Phase       state.Phase
	Expanded    bool // toggle aria-expanded
	Hidden      bool // container aria-hidden
	Query       string
	InputView   string
	Placeholder string
	Message     string
	Results     []ResultItem

	StatusMessage string
	ShowHelp      bool
	HelpContent   string
	HelpModel     help.Model
	KeyHints      []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
	surface     Rect
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Surface returns the area of the search panel from the last Render.
// It is empty while the panel is closed.
func (r *Renderer) Surface() Rect {
	return r.surface
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	r.surface = Rect{}
	if state.ShowHelp && state.HelpContent != "" {
		screen, _ := r.popupRender.RenderPopup(state.HelpContent, state.Height, state.Width, r.styles.HelpBox)
		return screen
	}
	if state.Expanded {
		screen, rect := r.popupRender.RenderPopup(r.renderPanel(state), state.Height, state.Width, r.panelStyle(state.Width))
		r.surface = rect
		return screen
	}
	return r.renderClosed(state)
}

func (r *Renderer) panelStyle(width int) lipgloss.Style {
	style := r.styles.Panel
	if width > 0 {
		w := width - 8
		if w > 90 {
			w = 90
		}
		if w < 20 {
			w = 20
		}
		style = style.Width(w)
	}
	return style
}

// renderClosed renders the landing screen shown while the search box is hidden
func (r *Renderer) renderClosed(state ViewState) string {
	content := &strings.Builder{}

	title := state.SiteTitle
	if title == "" {
		title = "docsearch"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")
	content.WriteString(r.renderIndexStatus(state))
	content.WriteString("\n")

	if len(state.Categories) > 0 {
		content.WriteString("\n")
		content.WriteString(r.styles.Section.Render("Categories"))
		content.WriteString("\n")
		for _, c := range state.Categories {
			content.WriteString("  " + r.styles.ResultTitle.Render(plain(c.Title)))
			if desc := plain(c.Description); desc != "" {
				if c.Truncated {
					desc += "..."
				}
				content.WriteString("  " + r.styles.Dim.Render(desc))
			}
			content.WriteString("\n")
		}
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	helpText := r.styles.Help.Render("Press ? for help")
	if len(state.KeyHints) > 0 {
		helpText = state.HelpModel.ShortHelpView(state.KeyHints)
	}

	// Push the hints to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderIndexStatus(state ViewState) string {
	switch state.IndexStatus {
	case IndexLoading:
		return r.styles.StatusLoading.Render("Loading search index...")
	case IndexUnavailable:
		return r.styles.StatusError.Render("Search index unavailable. Press ctrl+r to reload.")
	default:
		noun := "entries"
		if state.EntryCount == 1 {
			noun = "entry"
		}
		text := fmt.Sprintf("%d %s indexed", state.EntryCount, noun)
		if state.Source != "" {
			text += fmt.Sprintf(" (%s)", state.Source)
		}
		return r.styles.StatusSuccess.Render(text)
	}
}

// renderPanel renders the search box: prompt, input and the result area
func (r *Renderer) renderPanel(state ViewState) string {
	var b strings.Builder

	input := state.InputView
	if input == "" {
		if state.Query != "" {
			input = state.Query
		} else {
			input = r.styles.Dim.Render(state.Placeholder)
		}
	}
	b.WriteString(r.styles.Prompt.Render("Search: "))
	b.WriteString(input)

	if body := r.RenderResults(state); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("enter open first result • esc close"))
	return b.String()
}

// RenderResults renders the result area alone: the message or the result list
func (r *Renderer) RenderResults(state ViewState) string {
	if state.Message != "" {
		return r.styles.Message.Render(state.Message)
	}
	if len(state.Results) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(state.Results))
	for _, item := range state.Results {
		blocks = append(blocks, r.renderItem(item))
	}
	return strings.Join(blocks, "\n\n")
}

func (r *Renderer) renderItem(item ResultItem) string {
	var b strings.Builder
	b.WriteString(r.renderSegments(item.Title, r.styles.ResultTitle))
	if item.Category {
		b.WriteString(" " + r.styles.Badge.Render("[category]"))
	}
	if item.Path != "" {
		b.WriteString("\n" + r.styles.Dim.Render(item.Path))
	}
	if len(item.Description) > 0 {
		b.WriteString("\n" + r.renderSegments(item.Description, lipgloss.NewStyle()))
		if item.Truncated {
			b.WriteString("...")
		}
	}
	b.WriteString("\n" + r.styles.ResultURL.Render(item.URL))
	return b.String()
}

func (r *Renderer) renderSegments(segments []search.Segment, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Marked {
			b.WriteString(r.styles.Highlight.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

func plain(segments []search.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}
