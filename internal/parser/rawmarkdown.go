package parser

import (
	"fmt"
	"strings"
)

// RawMarkdown flattens nodes back to plain Markdown. The result is lossy but
// keeps every piece of text, which makes it suitable for search and llms.txt.
func RawMarkdown(nodes []DocNode) string {
	var b strings.Builder
	writeRawMarkdown(&b, nodes)
	return b.String()
}

func writeRawMarkdown(b *strings.Builder, nodes []DocNode) {
	for _, node := range nodes {
		switch n := node.(type) {
		case Markdown:
			b.WriteString(n.Text)
			b.WriteString("\n\n")
		case Callout:
			fmt.Fprintf(b, "> **%s:** %s\n\n", n.Type.Label(), n.Content)
		case Card:
			writeRawCard(b, n)
		case CardGroup:
			for _, card := range n.Cards {
				writeRawCard(b, card)
			}
		case Tabs:
			for _, tab := range n.Tabs {
				fmt.Fprintf(b, "#### %s\n", tab.Title)
				writeRawMarkdown(b, tab.Content)
			}
		case Steps:
			for i, step := range n.Steps {
				fmt.Fprintf(b, "%d. **%s**\n", i+1, step.Title)
				writeRawMarkdown(b, step.Content)
			}
		case AccordionGroup:
			for _, item := range n.Items {
				fmt.Fprintf(b, "### %s\n", item.Title)
				writeRawMarkdown(b, item.Content)
			}
		case CodeBlock:
			writeRawCode(b, n)
		case CodeGroup:
			writeRawCode(b, n.Blocks...)
		case ParamField:
			fmt.Fprintf(b, "**`%s`** _%s_%s: ", n.Name, n.Type, requiredMark(n.Required))
			writeRawMarkdown(b, n.Content)
		case ResponseField:
			fmt.Fprintf(b, "**`%s`** _%s_%s: %s\n\n", n.Name, n.Type, requiredMark(n.Required), n.Content)
			if n.Expandable != nil {
				fmt.Fprintf(b, "  **%s**\n", n.Expandable.Title)
				writeRawFieldList(b, "  ", n.Expandable.Fields)
				b.WriteByte('\n')
			}
		case Expandable:
			fmt.Fprintf(b, "**%s**\n\n", n.Title)
			writeRawFieldList(b, "", n.Fields)
			b.WriteByte('\n')
		case RequestExample:
			b.WriteString("**Request:**\n\n")
			writeRawCode(b, n.Blocks...)
		case ResponseExample:
			b.WriteString("**Response:**\n\n")
			writeRawCode(b, n.Blocks...)
		case Update:
			fmt.Fprintf(b, "### %s\n\n", n.Label)
			writeRawMarkdown(b, n.Content)
		case OpenAPI:
			writeRawSpec(b, n)
		}
	}
}

func writeRawCard(b *strings.Builder, c Card) {
	fmt.Fprintf(b, "**%s**\n%s\n\n", c.Title, c.Content)
}

func writeRawCode(b *strings.Builder, blocks ...CodeBlock) {
	for _, block := range blocks {
		fmt.Fprintf(b, "```%s\n%s\n```\n\n", block.Language, block.Code)
	}
}

func writeRawFieldList(b *strings.Builder, indent string, fields []ResponseField) {
	for _, f := range fields {
		fmt.Fprintf(b, "%s- `%s` _%s_: %s\n", indent, f.Name, f.Type, f.Content)
	}
}

func writeRawSpec(b *strings.Builder, n OpenAPI) {
	if n.Spec == nil {
		return
	}

	fmt.Fprintf(b, "# %s\n\n", n.Spec.Info.Title)
	if n.Spec.Info.Description != "" {
		b.WriteString(n.Spec.Info.Description)
		b.WriteString("\n\n")
	}
	for _, op := range n.Spec.Operations {
		fmt.Fprintf(b, "## %s %s\n\n", op.Method, op.Path)
		if op.Summary != "" {
			b.WriteString(op.Summary)
			b.WriteString("\n\n")
		}
	}
}

func requiredMark(required bool) string {
	if required {
		return " *(required)*"
	}
	return ""
}
