package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/oops"
)

// Entry is one searchable page: a document or an API operation.
type Entry struct {
	Path           string `json:"path"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ContentPreview string `json:"content_preview,omitempty"`
	Breadcrumb     string `json:"breadcrumb"`
	APIMethod      string `json:"api_method,omitempty"`
}

// Result is a fuzzy match, reporting the field that scored best.
type Result struct {
	Entry

	MatchField string `json:"match_field"`
	MatchValue string `json:"match_value"`
	Score      int    `json:"score"`
}

// Options configures fuzzy search behavior.
type Options struct {
	Query string
	Limit int
}

// Tiered returns the entries containing query, case-insensitively: title
// matches first, then description matches, then content matches. Each entry
// appears at most once, in index order within its tier. A blank query
// matches nothing.
func Tiered(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var titles, descriptions, contents []Entry
	for _, entry := range entries {
		switch {
		case strings.Contains(strings.ToLower(entry.Title), q):
			titles = append(titles, entry)
		case strings.Contains(strings.ToLower(entry.Description), q):
			descriptions = append(descriptions, entry)
		case strings.Contains(strings.ToLower(entry.ContentPreview), q):
			contents = append(contents, entry)
		}
	}

	titles = append(titles, descriptions...)
	return append(titles, contents...)
}

type indexEntry struct {
	entry      int
	matchField string
	matchValue string
}

type searchIndex struct {
	entries []indexEntry
}

func (s searchIndex) String(i int) string {
	return s.entries[i].matchValue
}

func (s searchIndex) Len() int {
	return len(s.entries)
}

func buildIndex(entries []Entry) searchIndex {
	idx := searchIndex{entries: make([]indexEntry, 0, len(entries)*3)}
	add := func(i int, field, value string) {
		if value != "" {
			idx.entries = append(idx.entries, indexEntry{entry: i, matchField: field, matchValue: value})
		}
	}

	for i, entry := range entries {
		add(i, "title", entry.Title)
		add(i, "path", entry.Path)
		add(i, "description", entry.Description)
		add(i, "breadcrumb", entry.Breadcrumb)
	}
	return idx
}

// Fuzzy ranks entries against opts.Query across title, path, description
// and breadcrumb. Each path is reported once with its best score; results
// are sorted by score, then path.
func Fuzzy(entries []Entry, opts Options) ([]Result, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	index := buildIndex(entries)
	matches := fuzzy.FindFrom(query, index)

	deduped := make(map[string]Result)
	for _, match := range matches {
		if match.Score < 0 {
			continue
		}
		ie := index.entries[match.Index]
		entry := entries[ie.entry]

		if existing, exists := deduped[entry.Path]; !exists || match.Score > existing.Score {
			deduped[entry.Path] = Result{
				Entry:      entry,
				MatchField: ie.matchField,
				MatchValue: ie.matchValue,
				Score:      match.Score,
			}
		}
	}

	results := make([]Result, 0, len(deduped))
	for _, result := range deduped {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Path < results[j].Path
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, nil
}
