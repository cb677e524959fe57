// Package index builds the in-memory search index from either the site's
// JSON library file or a scan of a rendered landing page.
package index

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/search"
)

// ErrUnexpectedStatus is returned when the site answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected status")

// Source produces the entries of an index
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.Entry, error)
}

// Resetter is implemented by sources that cache their first load
type Resetter interface {
	Reset()
}

// NewSource builds the source selected by cfg.Source.Kind
func NewSource(cfg *config.Config, client *http.Client) (Source, error) {
	if client == nil {
		client = &http.Client{}
	}

	switch cfg.Source.Kind {
	case config.SourceFetch:
		return NewFetchSource(search.JoinBase(cfg.Site.BaseURL, cfg.Source.IndexPath), client), nil

	case config.SourceScan:
		scanCfg := ScanConfig{
			LinkPattern:  cfg.Source.LinkPattern,
			Exclude:      cfg.Source.Exclude,
			CardSelector: cfg.Source.CardSelector,
		}
		if cfg.Site.Dir != "" {
			rel := strings.TrimPrefix(cfg.Source.LandingPath, strings.TrimSuffix(cfg.Site.RootPath, "/"))
			return NewScanSource(FilePage(filepath.Join(cfg.Site.Dir, filepath.FromSlash(rel))), scanCfg), nil
		}
		return NewScanSource(HTTPPage(client, search.JoinBase(cfg.Site.BaseURL, cfg.Source.LandingPath)), scanCfg), nil

	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", config.ErrInvalid, cfg.Source.Kind)
	}
}
