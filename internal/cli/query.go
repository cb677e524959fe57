package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/search"
	"docsearch/internal/ui/state"
	"docsearch/internal/ui/viewmodels"
	"docsearch/internal/ui/views"
)

// queryResult is the JSON form of a rendered search
type queryResult struct {
	Query   string       `json:"query"`
	Phase   string       `json:"phase"`
	Message string       `json:"message,omitempty"`
	Results []resultJSON `json:"results"`
}

type resultJSON struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Path        string `json:"path,omitempty"`
	Category    bool   `json:"category,omitempty"`
}

func newQueryCommand(a *app) *cobra.Command {
	var (
		htmlOutput bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Print the results for a query",
		Long: `Load the index once and print what the search box would show for the
query: a terminal rendering by default, the widget markup with --html, or the
view model as JSON with --json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if htmlOutput && jsonOutput {
				return fmt.Errorf("--html and --json are mutually exclusive")
			}

			logger := newLogger(cmd.ErrOrStderr(), a.verbose)
			loader, err := a.newLoader(nil, logger)
			if err != nil {
				return err
			}
			idx := loader.Load(cmd.Context())

			raw := strings.Join(args, " ")
			vs := viewmodels.Build(evaluate(idx, raw, a.cfg), a.cfg)

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(toJSON(vs))
			case htmlOutput:
				_, err := fmt.Fprint(out, views.RenderHTML(vs))
				return err
			}

			if search.TooShort(raw, a.cfg.Search.MinQueryLength) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Queries need at least %d characters\n", a.cfg.Search.MinQueryLength)
				return nil
			}
			_, err = fmt.Fprintln(out, views.NewRenderer().RenderResults(vs))
			return err
		},
	}

	cmd.Flags().BoolVar(&htmlOutput, "html", false, "print the search widget markup")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the results as JSON")

	return cmd
}

// evaluate builds the state of an open search box after the query settled
func evaluate(idx domain.Index, raw string, cfg *config.Config) *state.AppState {
	s := state.NewAppState()
	s.SetIndex(idx)
	s.Search.IsOpen = true
	s.Search.RawQuery = raw

	if search.TooShort(raw, cfg.Search.MinQueryLength) {
		return s
	}
	s.Search.Query = search.Normalize(raw)
	s.Search.SearchedText = strings.TrimSpace(raw)
	s.Search.Searched = true
	if !idx.Empty() {
		s.Search.Results = search.Match(idx, raw, search.Options{
			MinQueryLength: cfg.Search.MinQueryLength,
			MaxResults:     cfg.Search.MaxResults,
		})
	}
	return s
}

func toJSON(vs views.ViewState) queryResult {
	res := queryResult{
		Query:   vs.Query,
		Phase:   vs.Phase.String(),
		Message: vs.Message,
		Results: []resultJSON{},
	}
	for _, item := range vs.Results {
		desc := joinMarked(item.Description)
		if item.Truncated {
			desc += "..."
		}
		res.Results = append(res.Results, resultJSON{
			Title:       joinMarked(item.Title),
			Description: desc,
			URL:         item.URL,
			Path:        item.Path,
			Category:    item.Category,
		})
	}
	return res
}

// joinMarked reassembles segments with <mark> around matches
func joinMarked(segments []search.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Marked {
			b.WriteString(search.MarkOpen + seg.Text + search.MarkClose)
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
