package views

import (
	"fmt"
	"html"
	"strings"

	"docsearch/internal/search"
)

// RenderHTML renders the widget markup for the given state: the toggle,
// the search container with its input and close button, and the result
// area. All text is escaped; matches are wrapped in <mark>.
func RenderHTML(state ViewState) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<button id="search-toggle" class="search-toggle" aria-label="Search" aria-expanded="%t">Search</button>`+"\n", state.Expanded)

	display := "none"
	if state.Expanded {
		display = "block"
	}
	fmt.Fprintf(&b, `<div id="search-container" class="search-container" aria-hidden="%t" style="display: %s">`+"\n", state.Hidden, display)
	fmt.Fprintf(&b, `  <input id="search-input" type="search" placeholder="%s" value="%s" aria-label="Search documentation">`+"\n",
		html.EscapeString(state.Placeholder), html.EscapeString(state.Query))
	b.WriteString(`  <button id="search-close" class="search-close" aria-label="Close search">&times;</button>` + "\n")
	b.WriteString(`  <div id="search-results" class="search-results">`)
	b.WriteString(RenderResultsHTML(state))
	b.WriteString("</div>\n")
	b.WriteString("</div>\n")

	return b.String()
}

// RenderResultsHTML renders the inner markup of the result area
func RenderResultsHTML(state ViewState) string {
	if state.Message != "" {
		return "<p>" + html.EscapeString(state.Message) + "</p>"
	}

	var b strings.Builder
	for _, item := range state.Results {
		b.WriteString("\n")
		b.WriteString(`<div class="search-result-item">` + "\n")
		fmt.Fprintf(&b, `  <h4><a href="%s">%s</a></h4>`+"\n", html.EscapeString(item.URL), segmentsHTML(item.Title))
		fmt.Fprintf(&b, `  <p class="search-result-path">%s</p>`+"\n", html.EscapeString(item.Path))
		desc := segmentsHTML(item.Description)
		if item.Truncated {
			desc += "..."
		}
		fmt.Fprintf(&b, `  <p class="search-result-description">%s</p>`+"\n", desc)
		b.WriteString("</div>")
	}
	return b.String()
}

func segmentsHTML(segments []search.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Marked {
			b.WriteString(search.MarkOpen)
			b.WriteString(html.EscapeString(seg.Text))
			b.WriteString(search.MarkClose)
			continue
		}
		b.WriteString(html.EscapeString(seg.Text))
	}
	return b.String()
}
