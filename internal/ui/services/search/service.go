package search

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/search"
)

// Service runs match computations for the UI and memoizes them per
// normalized query until the index changes
type Service struct {
	bus       eventbus.EventBus
	matcherFn func(query string) []domain.Entry // receives the normalized query
	cache     *lru.Cache[string, []domain.Entry]
	logger    *slog.Logger
}

// NewService creates a new search service. cacheSize <= 0 disables memoization.
func NewService(bus eventbus.EventBus, cacheSize int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{bus: bus, logger: logger}
	if cacheSize > 0 {
		cache, err := lru.New[string, []domain.Entry](cacheSize)
		if err != nil {
			logger.Warn("search cache disabled", "error", err)
		} else {
			s.cache = cache
		}
	}
	return s
}

// SetMatcherFunction sets the function computing matches
func (s *Service) SetMatcherFunction(fn func(query string) []domain.Entry) {
	s.matcherFn = fn
	s.Invalidate()
}

// Search returns the matches for a raw query
func (s *Service) Search(query string) []domain.Entry {
	if s.matcherFn == nil {
		return nil
	}

	q := search.Normalize(query)
	if s.cache != nil {
		if results, ok := s.cache.Get(q); ok {
			return results
		}
	}

	results := s.matcherFn(q)
	if s.cache != nil {
		s.cache.Add(q, results)
	}

	s.logger.Debug("search completed", "query", q, "matches", len(results))
	if s.bus != nil {
		s.bus.Publish(domain.SearchCompletedEvent{Query: q, MatchCount: len(results)})
	}
	return results
}

// Invalidate drops memoized results, e.g. after an index rebuild
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.Purge()
	}
}
