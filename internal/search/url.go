package search

import "strings"

// Site holds the prefixes used to turn index URLs into site-rooted paths
type Site struct {
	RootPath      string // e.g. /Salesforce-RAG
	ContentPrefix string // e.g. /rag/
}

// NormalizeURL maps a raw index URL onto the site:
//   - relative URLs resolve against the content base
//   - URLs starting with the content prefix get the site root prepended
//   - URLs already under the site root are kept
//   - any other rooted URL gets the site root prepended
//
// Fragments and absolute http(s) URLs are returned unchanged.
func NormalizeURL(raw string, site Site) string {
	if raw == "" || strings.HasPrefix(raw, "#") || isAbsolute(raw) {
		return raw
	}

	root := strings.TrimSuffix(site.RootPath, "/")
	prefix := "/" + strings.Trim(site.ContentPrefix, "/") + "/"

	switch {
	case !strings.HasPrefix(raw, "/"):
		return root + prefix + raw
	case strings.HasPrefix(raw, prefix):
		return root + raw
	case strings.HasPrefix(raw, root+"/"):
		return raw
	default:
		return root + raw
	}
}

// JoinBase prefixes a site-rooted path with the site origin
func JoinBase(baseURL, path string) string {
	if path == "" || isAbsolute(path) {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + path
}

func isAbsolute(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
