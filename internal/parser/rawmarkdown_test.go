package parser_test

import (
	"testing"

	"github.com/g5becks/mdxkit/internal/parser"
)

func TestRawMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		nodes []parser.DocNode
		want  string
	}{
		{
			name:  "markdown",
			nodes: []parser.DocNode{parser.Markdown{Text: "Hello"}},
			want:  "Hello\n\n",
		},
		{
			name:  "callout",
			nodes: []parser.DocNode{parser.Callout{Type: parser.CalloutWarning, Content: "Careful"}},
			want:  "> **Warning:** Careful\n\n",
		},
		{
			name: "card group",
			nodes: []parser.DocNode{parser.CardGroup{Cols: 2, Cards: []parser.Card{
				{Title: "A", Content: "one"},
				{Title: "B", Content: "two"},
			}}},
			want: "**A**\none\n\n**B**\ntwo\n\n",
		},
		{
			name: "steps",
			nodes: []parser.DocNode{parser.Steps{Steps: []parser.Step{
				{Title: "Install", Content: []parser.DocNode{parser.Markdown{Text: "run"}}},
				{Title: "Use"},
			}}},
			want: "1. **Install**\nrun\n\n2. **Use**\n",
		},
		{
			name: "code group",
			nodes: []parser.DocNode{parser.CodeGroup{Blocks: []parser.CodeBlock{
				{Language: "sh", Code: "ls"},
				{Code: "plain"},
			}}},
			want: "```sh\nls\n```\n\n```\nplain\n```\n\n",
		},
		{
			name: "param field",
			nodes: []parser.DocNode{parser.ParamField{
				Name: "id", Type: "string", Required: true,
				Content: []parser.DocNode{parser.Markdown{Text: "The ID."}},
			}},
			want: "**`id`** _string_ *(required)*: The ID.\n\n",
		},
		{
			name: "response field with expandable",
			nodes: []parser.DocNode{parser.ResponseField{
				Name: "user", Type: "object", Content: "The user.",
				Expandable: &parser.Expandable{Title: "Properties", Fields: []parser.ResponseField{
					{Name: "id", Type: "string", Content: "ID"},
				}},
			}},
			want: "**`user`** _object_: The user.\n\n  **Properties**\n  - `id` _string_: ID\n\n",
		},
		{
			name: "request example",
			nodes: []parser.DocNode{parser.RequestExample{Blocks: []parser.CodeBlock{
				{Language: "bash", Code: "curl x"},
			}}},
			want: "**Request:**\n\n```bash\ncurl x\n```\n\n",
		},
		{
			name: "update",
			nodes: []parser.DocNode{parser.Update{Label: "v1", Content: []parser.DocNode{
				parser.Markdown{Text: "Shipped."},
			}}},
			want: "### v1\n\nShipped.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.RawMarkdown(tt.nodes); got != tt.want {
				t.Errorf("RawMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
