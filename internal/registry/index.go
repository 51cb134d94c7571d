package registry

import (
	"slices"
	"strings"

	"github.com/g5becks/mdxkit/internal/search"
)

const previewRunes = 200

// SearchIndex returns the entries searched by Search: nav pages first, then
// every API operation.
func (r *Registry) SearchIndex() []search.Entry {
	return slices.Clone(r.index)
}

// Search matches query against titles, then descriptions, then content
// previews.
func (r *Registry) Search(query string) []search.Entry {
	return search.Tiered(r.index, query)
}

// FuzzySearch ranks the index with fuzzy matching.
func (r *Registry) FuzzySearch(opts search.Options) ([]search.Result, error) {
	return search.Fuzzy(r.index, opts)
}

func (r *Registry) buildSearchIndex() []search.Entry {
	var entries []search.Entry

	for _, g := range r.nav.Groups {
		for _, page := range g.Pages {
			doc, ok := r.docs[page]
			if !ok {
				continue
			}

			title := doc.Frontmatter.Title
			if title == "" {
				title = strings.ReplaceAll(lastSegment(page), "-", " ")
			}

			entries = append(entries, search.Entry{
				Path:           page,
				Title:          title,
				Description:    doc.Frontmatter.Description,
				ContentPreview: preview(doc.RawMarkdown),
				Breadcrumb:     g.Group,
			})
		}
	}

	for _, m := range r.specs {
		for _, op := range m.spec.Operations {
			tag := untaggedGroup
			if len(op.Tags) > 0 {
				tag = op.Tags[0]
			}

			entries = append(entries, search.Entry{
				Path:           m.prefix + "/" + op.Slug(),
				Title:          operationTitle(op),
				Description:    op.Description,
				ContentPreview: op.Description,
				Breadcrumb:     r.apiGroupName + " > " + tag,
				APIMethod:      string(op.Method),
			})
		}
	}

	return entries
}

func preview(text string) string {
	n := 0
	for i := range text {
		if n == previewRunes {
			return text[:i]
		}
		n++
	}
	return text
}
