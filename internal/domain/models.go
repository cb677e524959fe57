package domain

// Entry is one searchable page of the documentation site
type Entry struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Keywords    string `json:"keywords,omitempty"` // lowercase haystack, set by page scanning
	IsCategory  bool   `json:"isCategory,omitempty"`
}

// DisplayTitle returns the title shown for the entry, falling back to path or URL
func (e Entry) DisplayTitle() string {
	switch {
	case e.Title != "":
		return e.Title
	case e.Path != "":
		return e.Path
	case e.URL != "":
		return e.URL
	default:
		return "Untitled"
	}
}

// DisplayDescription returns the secondary text shown under the title
func (e Entry) DisplayDescription() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Summary
}

// Target returns the raw navigation target before site normalization
func (e Entry) Target() string {
	switch {
	case e.URL != "":
		return e.URL
	case e.Path != "":
		return e.Path
	default:
		return "#"
	}
}

// Index is the ordered set of entries built once per load.
// It is replaced wholesale on rebuild and never edited in place.
type Index struct {
	Entries []Entry
	Source  string
}

// NewIndex creates an index that owns a copy of entries
func NewIndex(source string, entries []Entry) Index {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return Index{Entries: owned, Source: source}
}

// Len returns the number of entries
func (idx Index) Len() int {
	return len(idx.Entries)
}

// Empty reports whether the index has no entries
func (idx Index) Empty() bool {
	return len(idx.Entries) == 0
}

// Categories returns the entries sourced from navigation cards
func (idx Index) Categories() []Entry {
	var cats []Entry
	for _, e := range idx.Entries {
		if e.IsCategory {
			cats = append(cats, e)
		}
	}
	return cats
}
