package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/g5becks/mdxkit/internal/parser"
)

// Nodes renders a DocNode tree to HTML.
func (r *Renderer) Nodes(nodes []parser.DocNode) string {
	var b strings.Builder
	for _, node := range nodes {
		r.node(&b, node)
	}
	return b.String()
}

func (r *Renderer) node(b *strings.Builder, node parser.DocNode) {
	switch n := node.(type) {
	case parser.Markdown:
		b.WriteString(r.Markdown(n.Text))
	case parser.Callout:
		r.callout(b, n)
	case parser.Card:
		r.card(b, n)
	case parser.CardGroup:
		b.WriteString(`<div class="card-group" data-cols="` + strconv.Itoa(n.Cols) + "\">\n")
		for _, card := range n.Cards {
			r.card(b, card)
		}
		b.WriteString("</div>\n")
	case parser.Tabs:
		b.WriteString("<div class=\"tabs\">\n")
		for _, tab := range n.Tabs {
			b.WriteString(`<section class="tab" data-title="` + esc(tab.Title) + "\">\n")
			b.WriteString(`<h4 class="tab-title">` + esc(tab.Title) + "</h4>\n")
			b.WriteString(r.Nodes(tab.Content))
			b.WriteString("</section>\n")
		}
		b.WriteString("</div>\n")
	case parser.Steps:
		b.WriteString("<ol class=\"steps\">\n")
		for _, step := range n.Steps {
			b.WriteString("<li class=\"step\">\n")
			b.WriteString(`<p class="step-title">` + esc(step.Title) + "</p>\n")
			b.WriteString(r.Nodes(step.Content))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ol>\n")
	case parser.AccordionGroup:
		b.WriteString("<div class=\"accordion-group\">\n")
		for _, item := range n.Items {
			b.WriteString("<details class=\"accordion\">\n<summary>")
			if item.Icon != "" {
				b.WriteString(icon(item.Icon))
			}
			b.WriteString(esc(item.Title) + "</summary>\n")
			b.WriteString(r.Nodes(item.Content))
			b.WriteString("</details>\n")
		}
		b.WriteString("</div>\n")
	case parser.CodeBlock:
		r.codeBlock(b, n)
	case parser.CodeGroup:
		r.codeBlocks(b, "code-group", n.Blocks)
	case parser.RequestExample:
		r.codeBlocks(b, "request-example", n.Blocks)
	case parser.ResponseExample:
		r.codeBlocks(b, "response-example", n.Blocks)
	case parser.ParamField:
		r.paramField(b, n)
	case parser.ResponseField:
		r.responseField(b, n)
	case parser.Expandable:
		r.expandable(b, n)
	case parser.Update:
		b.WriteString("<section class=\"update\">\n")
		b.WriteString(`<div class="update-label">` + esc(n.Label) + "</div>\n")
		if n.Description != "" {
			b.WriteString(`<p class="update-description">` + esc(n.Description) + "</p>\n")
		}
		b.WriteString(r.Nodes(n.Content))
		b.WriteString("</section>\n")
	case parser.OpenAPI:
		r.openAPI(b, n)
	}
}

func (r *Renderer) callout(b *strings.Builder, n parser.Callout) {
	b.WriteString(`<div class="callout callout-` + string(n.Type) + "\">\n")
	b.WriteString(`<p class="callout-title">` + n.Type.Label() + "</p>\n")
	b.WriteString(r.Markdown(n.Content))
	b.WriteString("</div>\n")
}

func (r *Renderer) card(b *strings.Builder, card parser.Card) {
	if card.Href != "" {
		b.WriteString(`<a class="card" href="` + esc(card.Href) + "\">\n")
	} else {
		b.WriteString("<div class=\"card\">\n")
	}
	if card.Icon != "" {
		b.WriteString(icon(card.Icon) + "\n")
	}
	b.WriteString(`<h3 class="card-title">` + esc(card.Title) + "</h3>\n")
	b.WriteString(r.Markdown(card.Content))
	if card.Href != "" {
		b.WriteString("</a>\n")
	} else {
		b.WriteString("</div>\n")
	}
}

func (r *Renderer) codeBlocks(b *strings.Builder, class string, blocks []parser.CodeBlock) {
	b.WriteString(`<div class="` + class + "\">\n")
	for _, block := range blocks {
		r.codeBlock(b, block)
	}
	b.WriteString("</div>\n")
}

func (r *Renderer) codeBlock(b *strings.Builder, block parser.CodeBlock) {
	b.WriteString("<figure class=\"code-block\">\n")
	if block.Filename != "" {
		b.WriteString("<figcaption>" + esc(block.Filename) + "</figcaption>\n")
	}
	b.WriteString(r.code(block.Code, block.Language))
	b.WriteString("</figure>\n")
}

func (r *Renderer) paramField(b *strings.Builder, n parser.ParamField) {
	b.WriteString("<div class=\"field param-field\">\n<div class=\"field-header\">")
	fieldHeader(b, n.Name, n.Type, n.Required)
	b.WriteString(` <span class="field-location">` + string(n.Location) + "</span>")
	if n.Default != "" {
		b.WriteString(` <span class="field-default">default: <code>` + esc(n.Default) + "</code></span>")
	}
	b.WriteString("</div>\n")
	b.WriteString(r.Nodes(n.Content))
	b.WriteString("</div>\n")
}

func (r *Renderer) responseField(b *strings.Builder, n parser.ResponseField) {
	b.WriteString("<div class=\"field response-field\">\n<div class=\"field-header\">")
	fieldHeader(b, n.Name, n.Type, n.Required)
	b.WriteString("</div>\n")
	b.WriteString(r.Markdown(n.Content))
	if n.Expandable != nil {
		r.expandable(b, *n.Expandable)
	}
	b.WriteString("</div>\n")
}

func (r *Renderer) expandable(b *strings.Builder, n parser.Expandable) {
	b.WriteString("<details class=\"expandable\">\n<summary>" + esc(n.Title) + "</summary>\n")
	for _, field := range n.Fields {
		r.responseField(b, field)
	}
	b.WriteString("</details>\n")
}

func fieldHeader(b *strings.Builder, name, typ string, required bool) {
	b.WriteString(`<code class="field-name">` + esc(name) + "</code>")
	b.WriteString(` <span class="field-type">` + esc(typ) + "</span>")
	if required {
		b.WriteString(` <span class="field-required">required</span>`)
	}
}

func icon(name string) string {
	return `<span class="icon" data-icon="` + esc(name) + `"></span>`
}

func esc(s string) string { return html.EscapeString(s) }
