package parser_test

import (
	"testing"

	"github.com/g5becks/mdxkit/internal/parser"
)

func TestFindClosingTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want int
	}{
		{"simple", "body</Tab>rest", "Tab", 4},
		{"nested", "<Tab>a</Tab></Tab>", "Tab", 12},
		{"unbalanced", "<Tab>a</Tab>", "Tab", -1},
		{"missing", "no close here", "Tab", -1},
		{"empty body", "</Steps>", "Steps", 0},
		{"prefix counts as opener", "<CardGroup></Card></Card>", "Card", 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.FindClosingTag(tt.text, tt.tag); got != tt.want {
				t.Errorf("FindClosingTag(%q, %q) = %d, want %d", tt.text, tt.tag, got, tt.want)
			}
		})
	}
}

func TestFindClosingTag_Balanced(t *testing.T) {
	// Each closing tag found must leave opens and closes balanced before it.
	inputs := []string{
		"x</A>",
		"<A></A></A>",
		"<A><A>y</A></A>z</A>",
		"<A b=\"1\">q</A><A>r</A></A>tail",
	}

	for _, text := range inputs {
		idx := parser.FindClosingTag(text, "A")
		if idx == -1 {
			t.Fatalf("FindClosingTag(%q) = -1", text)
		}
		inner := text[:idx]
		opens := countOccurrences(inner, "<A")
		closes := countOccurrences(inner, "</A>")
		if opens != closes {
			t.Errorf("FindClosingTag(%q): inner %q has %d opens and %d closes", text, inner, opens, closes)
		}
	}
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

func TestExtractAttr(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		attr    string
		want    string
		wantOK  bool
	}{
		{"present", ` title="Hello" icon="star"`, "title", "Hello", true},
		{"second", ` title="Hello" icon="star"`, "icon", "star", true},
		{"missing", ` title="Hello"`, "href", "", false},
		{"empty value", ` title=""`, "title", "", true},
		{"word boundary", ` subtitle="x"`, "title", "", false},
		{"single quotes unsupported", ` title='x'`, "title", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ExtractAttr(tt.source, tt.attr)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractAttr(%q, %q) = %q, %v, want %q, %v", tt.source, tt.attr, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
