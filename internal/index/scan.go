package index

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"docsearch/internal/config"
	"docsearch/internal/domain"
)

// PageOpener opens the landing page to scan
type PageOpener func(ctx context.Context) (io.ReadCloser, error)

// FilePage opens a rendered page from disk
func FilePage(path string) PageOpener {
	return func(ctx context.Context) (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		return f, nil
	}
}

// HTTPPage fetches a rendered page over HTTP
func HTTPPage(client *http.Client, url string) PageOpener {
	return func(ctx context.Context) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %w %d", url, ErrUnexpectedStatus, resp.StatusCode)
		}
		return resp.Body, nil
	}
}

// ScanConfig selects which elements of the page become entries
type ScanConfig struct {
	LinkPattern  string   // substring an href must contain
	Exclude      []string // href suffixes of listing pages to skip
	CardSelector string   // navigation cards, indexed as categories
}

// ScanSource derives entries from the links and cards of a rendered page.
// The first successful scan is kept; later loads return it until Reset.
type ScanSource struct {
	open PageOpener
	cfg  ScanConfig

	mu      sync.Mutex
	indexed bool
	entries []domain.Entry
}

// NewScanSource creates a scan source
func NewScanSource(open PageOpener, cfg ScanConfig) *ScanSource {
	return &ScanSource{open: open, cfg: cfg}
}

func (s *ScanSource) Name() string { return config.SourceScan }

// Load scans the page once
func (s *ScanSource) Load(ctx context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexed {
		return append([]domain.Entry(nil), s.entries...), nil
	}

	body, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	entries := append(s.scanLinks(doc), s.scanCards(doc)...)
	s.entries = entries
	s.indexed = true

	return append([]domain.Entry(nil), entries...), nil
}

// Reset forgets the previous scan so the next Load reads the page again
func (s *ScanSource) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexed = false
	s.entries = nil
}

func (s *ScanSource) scanLinks(doc *goquery.Document) []domain.Entry {
	var entries []domain.Entry
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if s.cfg.LinkPattern != "" && !strings.Contains(href, s.cfg.LinkPattern) {
			return
		}
		if s.excluded(href) {
			return
		}
		if s.cfg.CardSelector != "" && a.Closest(s.cfg.CardSelector).Length() > 0 {
			return
		}

		title := collapseSpace(a.Text())
		desc := a.NextAllFiltered("p").First()
		if desc.Length() == 0 {
			desc = a.Parent().NextAllFiltered("p").First()
		}
		description := collapseSpace(desc.Text())

		entries = append(entries, domain.Entry{
			Title:       title,
			URL:         href,
			Description: description,
			Keywords:    keywords(title, description),
		})
	})
	return entries
}

func (s *ScanSource) scanCards(doc *goquery.Document) []domain.Entry {
	if s.cfg.CardSelector == "" {
		return nil
	}

	var entries []domain.Entry
	doc.Find(s.cfg.CardSelector).Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[href]").First()
		if card.Is("a[href]") {
			link = card
		}
		href, _ := link.Attr("href")

		title := collapseSpace(card.Find("h1, h2, h3, h4, h5, h6").First().Text())
		if title == "" {
			title = collapseSpace(link.Text())
		}
		description := collapseSpace(card.Find("p").First().Text())

		entries = append(entries, domain.Entry{
			Title:       title,
			URL:         href,
			Description: description,
			Keywords:    keywords(title, description),
			IsCategory:  true,
		})
	})
	return entries
}

func (s *ScanSource) excluded(href string) bool {
	path := href
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, suffix := range s.cfg.Exclude {
		if suffix != "" && strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func keywords(title, description string) string {
	return strings.ToLower(strings.TrimSpace(title + " " + description))
}
