package search

import (
	"strings"
	"unicode"
)

// Mark delimiters used by Highlight
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// Segment is a run of text that is either a query match or plain text
type Segment struct {
	Text   string
	Marked bool
}

// Segments splits text into runs, marking every case-insensitive occurrence
// of query. The query is compared literally; the matched text keeps its
// original casing.
func Segments(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	src := []rune(text)
	needle := foldRunes([]rune(query))
	hay := foldRunes(src)

	var segs []Segment
	start := 0
	for i := 0; i+len(needle) <= len(hay); {
		if !runesEqual(hay[i:i+len(needle)], needle) {
			i++
			continue
		}
		if i > start {
			segs = append(segs, Segment{Text: string(src[start:i])})
		}
		segs = append(segs, Segment{Text: string(src[i : i+len(needle)]), Marked: true})
		i += len(needle)
		start = i
	}
	if start < len(src) {
		segs = append(segs, Segment{Text: string(src[start:])})
	}
	return segs
}

// Highlight wraps every match of query in text with <mark> tags.
// An empty query returns text unchanged.
func Highlight(text, query string) string {
	if query == "" {
		return text
	}
	var b strings.Builder
	for _, s := range Segments(text, query) {
		if s.Marked {
			b.WriteString(MarkOpen)
			b.WriteString(s.Text)
			b.WriteString(MarkClose)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Truncate cuts text to at most limit runes and reports whether it did
func Truncate(text string, limit int) (string, bool) {
	if limit <= 0 {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
