package search

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/samber/oops"
)

// Document is a page body to scan line by line.
type Document struct {
	Path string
	Text string
}

// ContentResult is one matching line.
type ContentResult struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// ContentOptions configures content search behavior.
type ContentOptions struct {
	Query    string
	UseRegex bool
	Limit    int
}

// Content performs a case-insensitive literal or regex search across
// document bodies. Line numbers are 1-based. Scanning stops once Limit
// results are found.
func Content(docs []Document, opts ContentOptions) ([]ContentResult, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	match, err := lineMatcher(query, opts.UseRegex)
	if err != nil {
		return nil, err
	}

	var results []ContentResult
	for _, doc := range docs {
		scanner := bufio.NewScanner(strings.NewReader(doc.Text))
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		line := 0
		for scanner.Scan() {
			line++
			text := scanner.Text()
			if !match(text) {
				continue
			}

			results = append(results, ContentResult{
				Path: doc.Path,
				Line: line,
				Text: strings.TrimSpace(text),
			})
			if opts.Limit > 0 && len(results) >= opts.Limit {
				return results, nil
			}
		}
	}

	return results, nil
}

func lineMatcher(query string, useRegex bool) (func(string) bool, error) {
	if !useRegex {
		lowered := strings.ToLower(query)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), lowered)
		}, nil
	}

	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, oops.
			Code("INVALID_ARGS").
			With("pattern", query).
			Hint("Check the regular expression syntax").
			Wrapf(err, "invalid search pattern")
	}
	return re.MatchString, nil
}
