package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"docsearch/internal/config"
	"docsearch/internal/domain"
)

// libraryFile is the JSON document published next to the site pages
type libraryFile struct {
	Files []libraryEntry `json:"files"`
}

type libraryEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Path        string `json:"path"`
	URL         string `json:"url"`
}

// FetchSource loads the index from a JSON resource over HTTP
type FetchSource struct {
	url    string
	client *http.Client
}

// NewFetchSource creates a source reading url with client
func NewFetchSource(url string, client *http.Client) *FetchSource {
	if client == nil {
		client = &http.Client{}
	}
	return &FetchSource{url: url, client: client}
}

func (s *FetchSource) Name() string { return config.SourceFetch }

// URL returns the resource the source reads
func (s *FetchSource) URL() string { return s.url }

// Load issues the GET and decodes the files list
func (s *FetchSource) Load(ctx context.Context) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %w %d", s.url, ErrUnexpectedStatus, resp.StatusCode)
	}

	var doc libraryFile
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}

	entries := make([]domain.Entry, 0, len(doc.Files))
	for _, f := range doc.Files {
		entries = append(entries, domain.Entry{
			Title:       plainText(f.Title),
			Description: plainText(f.Description),
			Summary:     plainText(f.Summary),
			Path:        f.Path,
			URL:         f.URL,
		})
	}
	return entries, nil
}
