// Package search implements the pure part of the search box: query
// normalization, substring matching, highlighting and URL normalization.
package search

import (
	"strings"
	"unicode/utf8"

	"docsearch/internal/domain"
)

// Options controls matching
type Options struct {
	MinQueryLength int
	MaxResults     int
}

// DefaultOptions mirrors the default configuration
func DefaultOptions() Options {
	return Options{MinQueryLength: 2, MaxResults: 20}
}

// Normalize trims and lower-cases a raw query
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// TooShort reports whether a raw query is below the search threshold
func TooShort(query string, minLength int) bool {
	return utf8.RuneCountInString(Normalize(query)) < minLength
}

// Match returns the entries of idx containing query, in index order,
// capped at opts.MaxResults. Queries below the threshold match nothing.
func Match(idx domain.Index, query string, opts Options) []domain.Entry {
	q := Normalize(query)
	if utf8.RuneCountInString(q) < opts.MinQueryLength {
		return nil
	}

	var results []domain.Entry
	for _, e := range idx.Entries {
		if opts.MaxResults > 0 && len(results) >= opts.MaxResults {
			break
		}
		if Matches(e, q) {
			results = append(results, e)
		}
	}
	return results
}

// Matches reports whether the already normalized query occurs in the
// entry's searchable text. Scanned entries carry a joined keyword haystack;
// fetched entries are tested field by field.
func Matches(e domain.Entry, normalized string) bool {
	if e.Keywords != "" {
		return strings.Contains(e.Keywords, normalized)
	}
	for _, field := range []string{e.Title, e.Description, e.Summary, e.Path} {
		if strings.Contains(strings.ToLower(field), normalized) {
			return true
		}
	}
	return false
}
