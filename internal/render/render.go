// Package render turns parsed documents into static HTML.
//
// Markdown goes through gomarkdown. Headings h2 to h4 get the same ids
// parser.ExtractHeaders reports, and fenced code is highlighted with chroma.
// Component nodes become plain semantic HTML with predictable class names
// so a stylesheet can be written against them.
package render

import (
	"html"
	"io"
	"strings"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"

	"github.com/g5becks/mdxkit/internal/highlight"
	"github.com/g5becks/mdxkit/internal/openapi"
	"github.com/g5becks/mdxkit/internal/parser"
)

// DefaultBaseURL is used in curl samples when neither the options nor the
// spec name a server.
const DefaultBaseURL = "https://api.example.com"

const (
	minHeadingIDLevel = 2
	maxHeadingIDLevel = 4
)

// Options configures a Renderer.
type Options struct {
	// Theme is a chroma style name. Empty selects highlight.DefaultTheme.
	Theme string
	// BaseURL overrides the server used in curl samples.
	BaseURL string
}

// Renderer writes HTML for Markdown and DocNode trees. It is safe for
// concurrent use.
type Renderer struct {
	highlighter *highlight.Highlighter
	baseURL     string
}

// New returns a Renderer for opts.
func New(opts Options) *Renderer {
	return &Renderer{
		highlighter: highlight.New(opts.Theme),
		baseURL:     opts.BaseURL,
	}
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	return New(Options{})
})

// Markdown renders md with the default renderer.
func Markdown(md string) string {
	return defaultRenderer().Markdown(md)
}

// Nodes renders nodes with the default renderer.
func Nodes(nodes []parser.DocNode) string {
	return defaultRenderer().Nodes(nodes)
}

// ServerURL returns the curl base URL the default renderer would use for spec.
func ServerURL(spec *openapi.Spec) string {
	return defaultRenderer().ServerURL(spec)
}

// Markdown renders a Markdown fragment to HTML.
func (r *Renderer) Markdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}

	// gomarkdown parsers and renderers keep per-document state.
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	doc := p.Parse([]byte(md))
	assignHeadingIDs(doc)

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags,
		RenderNodeHook: r.codeBlockHook,
	})
	return string(markdown.Render(doc, renderer))
}

// Document renders a parsed document as a standalone HTML page.
func (r *Renderer) Document(doc parser.ParsedDoc) string {
	var b strings.Builder

	title := doc.Frontmatter.Title
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	if doc.Frontmatter.Description != "" {
		b.WriteString(`<meta name="description" content="` + html.EscapeString(doc.Frontmatter.Description) + "\">\n")
	}
	b.WriteString("</head>\n<body>\n<article class=\"doc\">\n")

	if title != "" {
		b.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	}
	if doc.Frontmatter.Description != "" {
		b.WriteString(`<p class="doc-description">` + html.EscapeString(doc.Frontmatter.Description) + "</p>\n")
	}
	b.WriteString(r.Nodes(doc.Content))

	b.WriteString("</article>\n</body>\n</html>\n")
	return b.String()
}

// assignHeadingIDs sets the id of every h2 to h4 to the slug of its text.
// Explicit {#id} anchors are left alone.
func assignHeadingIDs(doc ast.Node) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !ok || !entering || heading.HeadingID != "" {
			return ast.GoToNext
		}
		if heading.Level >= minHeadingIDLevel && heading.Level <= maxHeadingIDLevel {
			heading.HeadingID = parser.Slugify(parser.PlainText(heading))
		}
		return ast.GoToNext
	})
}

func (r *Renderer) codeBlockHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	block, ok := node.(*ast.CodeBlock)
	if !ok {
		return ast.GoToNext, false
	}
	if entering {
		lang, _, _ := strings.Cut(strings.TrimSpace(string(block.Info)), " ")
		_, _ = io.WriteString(w, r.code(string(block.Literal), lang))
	}
	return ast.GoToNext, true
}

// code wraps highlighted code in <pre><code>.
func (r *Renderer) code(source, lang string) string {
	class := ""
	if lang != "" {
		class = ` class="language-` + html.EscapeString(lang) + `"`
	}
	return "<pre><code" + class + ">" + r.highlighter.Code(source, lang) + "</code></pre>\n"
}
