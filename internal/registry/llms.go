package registry

import (
	"strings"
)

// LLMsTxt renders an llms.txt index of the nav pages, linking each to
// baseURL/docs/<page>.
func (r *Registry) LLMsTxt(title, description, baseURL string) string {
	var b strings.Builder
	writeLLMsHeader(&b, title, description)

	r.eachNavDoc(func(page, pageTitle string) {
		url := baseURL + "/docs/" + page
		desc := r.docs[page].Frontmatter.Description
		if desc == "" {
			b.WriteString("- [" + pageTitle + "](" + url + ")\n")
			return
		}
		b.WriteString("- [" + pageTitle + "](" + url + "): " + desc + "\n")
	})

	return b.String()
}

// LLMsFullTxt renders llms-full.txt: every nav page's Markdown under a
// linked heading.
func (r *Registry) LLMsFullTxt(title, description, baseURL string) string {
	var b strings.Builder
	writeLLMsHeader(&b, title, description)

	r.eachNavDoc(func(page, pageTitle string) {
		url := baseURL + "/docs/" + page
		b.WriteString("---\n\n## [" + pageTitle + "](" + url + ")\n\n")
		b.WriteString(r.docs[page].RawMarkdown)
		b.WriteString("\n\n")
	})

	return b.String()
}

func writeLLMsHeader(b *strings.Builder, title, description string) {
	b.WriteString("# " + title + "\n\n> " + description + "\n\n")
}

// eachNavDoc visits the nav pages that have a document, in nav order. The
// title falls back to the last path segment.
func (r *Registry) eachNavDoc(fn func(page, title string)) {
	for _, g := range r.nav.Groups {
		for _, page := range g.Pages {
			doc, ok := r.docs[page]
			if !ok {
				continue
			}
			title := doc.Frontmatter.Title
			if title == "" {
				title = lastSegment(page)
			}
			fn(page, title)
		}
	}
}

func lastSegment(page string) string {
	if i := strings.LastIndexByte(page, '/'); i >= 0 {
		return page[i+1:]
	}
	return page
}
