// Package search evaluates a text query and filters against a document catalog.
//
// Search is a pure function of its inputs: the catalog is read-only and nothing is
// retained between calls, so it is safe to call concurrently on every keystroke.
package search

import (
	"strings"

	"docsearch/internal/model"
)

// Search returns the catalog documents whose title or content contains query
// (case-insensitive, trimmed) and that satisfy every filter that is set.
// Results keep catalog order. An empty query with no filters returns the whole catalog.
func Search(query string, filters model.QueryFilters, catalog []model.Document) []model.Document {
	q := normalize(query)

	out := make([]model.Document, 0, len(catalog))
	for _, doc := range catalog {
		if Match(q, filters, doc) {
			out = append(out, doc)
		}
	}
	return out
}

// Match reports whether doc satisfies the already normalized query q and filters.
func Match(q string, filters model.QueryFilters, doc model.Document) bool {
	if q != "" && !contains(doc.Title, q) && !contains(doc.Content, q) {
		return false
	}
	if filters.FileType != nil && doc.Type != *filters.FileType {
		return false
	}
	return filters.DateRange.Contains(doc.LastModified)
}

// Normalize trims and lower-cases a raw query the same way Search does.
func Normalize(query string) string {
	return normalize(query)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
